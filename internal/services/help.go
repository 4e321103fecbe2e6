package services

import (
	"fmt"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/rates"
)

// HelpService serves the static help screen.
type HelpService struct {
	supportEmail string
}

// NewHelpService creates a HelpService that points users to supportEmail.
func NewHelpService(supportEmail string) *HelpService {
	return &HelpService{supportEmail: supportEmail}
}

// Help returns the help screen content.
func (s *HelpService) Help() models.HelpResponse {
	return models.HelpResponse{
		Sections: []models.HelpSection{
			{
				Title: "How do I top up?",
				Body:  "Enter the amount, upload the QR code of your payment app, pay using the details shown, then upload a screenshot of the payment.",
			},
			{
				Title: "What rate is used?",
				Body:  fmt.Sprintf("1 CNY = %.2f RUB. RUB amounts are converted to CNY at this rate.", rates.CNYToRUB),
			},
			{
				Title: "When will the funds arrive?",
				Body:  "Funds are usually credited within 5-10 minutes after the payment is confirmed.",
			},
			{
				Title: "Something went wrong?",
				Body:  "Write to " + s.supportEmail + " and include the transaction number from your history.",
			},
		},
		Rate:         rates.CNYToRUB,
		SupportEmail: s.supportEmail,
	}
}
