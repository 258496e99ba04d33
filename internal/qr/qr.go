package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const size = 256

// Generate кодирует произвольный текст в PNG. Текст не валидируется:
// сюда приходит ссылка оплаты как есть.
func Generate(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// DataURI — тот же PNG, но как data:-URI для инлайна в <img>.
func DataURI(payload string) (string, error) {
	png, err := Generate(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
