package infrastructure

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRRenderer encodes the public lookup URL for an order so the confirmation
// screen can show a scannable code for the host stand.
type QRRenderer struct {
	baseURL string
}

func NewQRRenderer(publicBaseURL string) *QRRenderer {
	return &QRRenderer{baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (r *QRRenderer) Render(orderNumber int64) ([]byte, error) {
	url := fmt.Sprintf("%s/orders/%d", r.baseURL, orderNumber)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
