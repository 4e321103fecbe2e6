package facades

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// RelayHTTPFacade posts images to the operator notification relay.
// The response body is not parsed.
type RelayHTTPFacade struct {
	url    string
	client *http.Client
}

// NewRelayHTTPFacade creates a new relay facade.
func NewRelayHTTPFacade(url string, client *http.Client) *RelayHTTPFacade {
	return &RelayHTTPFacade{url: url, client: client}
}

// Send delivers msg. A non-2xx status is reported as an error.
func (f *RelayHTTPFacade) Send(ctx context.Context, msg models.RelayMessage) error {
	return doJSON(ctx, f.client, http.MethodPost, f.url, msg, nil)
}
