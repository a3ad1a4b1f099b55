package res

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRSize is the pixel size of generated QR images
const DefaultQRSize = 256

// QRDataURL encodes payload as a QR code and returns it as a PNG data URL
func QRDataURL(payload string, size int) (string, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	return DataURL("image/png", png), nil
}
