package handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// HelpProvider serves the help content.
type HelpProvider interface {
	Help() models.HelpResponse
}

// NewHelpHandler returns an HTTP handler for the help screen.
// @Summary Help
// @Description How to top up, the conversion rate and the support contact
// @Tags help
// @Produce json
// @Success 200 {object} models.HelpResponse
// @Router /help [get]
func NewHelpHandler(svc HelpProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Help())
	}
}
