package models

// HelpSection is one question on the help screen.
type HelpSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// HelpResponse represents the help screen content
// swagger:model HelpResponse
type HelpResponse struct {
	Sections     []HelpSection `json:"sections"`
	Rate         float64       `json:"rate"`
	SupportEmail string        `json:"support_email"`
}
