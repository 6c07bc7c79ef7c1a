// services/qrcode_service.go
package services

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can swap it out.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode renders content (normally the public site URL) as a PNG.
func GenerateQRCode(content string, size int, encode QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("nothing to encode")
	}
	if encode == nil {
		encode = qrcode.Encode
	}

	png, err := encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
