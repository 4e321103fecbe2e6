package services

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeImage turns an uploaded image into a data URL for the relay.
func EncodeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", ErrNotAnImage
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
