package models

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Admin key
	// required: true
	// example: secret123
	Key string `json:"key"`
}

// AdminLoginResponse represents a successful admin login response
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
