package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(sessionID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(sessionID string) ([]byte, error) {
	qrData := g.BaseURL + "/?session=" + url.QueryEscape(sessionID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
