package services_test

import (
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func TestEncodeImage(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		url, err := services.EncodeImage(pngImage)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := services.EncodeImage(nil)
		assert.ErrorIs(t, err, services.ErrEmptyImage)
	})

	t.Run("text file", func(t *testing.T) {
		_, err := services.EncodeImage([]byte("just some notes"))
		assert.ErrorIs(t, err, services.ErrNotAnImage)
	})
}
