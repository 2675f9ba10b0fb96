// Package qrcode renders shop QR codes with skip2/go-qrcode.
package qrcode

import (
	"encoding/json"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	payloadType = "shop"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// Payload is the JSON document encoded in a shop QR code.
type Payload struct {
	Type   string `json:"type"`
	ShopID string `json:"shop_id"`
	URL    string `json:"url,omitempty"`
}

// NewQRCodeService creates a QR code service from the qrcode configuration section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              baseURL,
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateShopQR renders the shop payload as a PNG.
func (s *qrcodeService) GenerateShopQR(shopID uuid.UUID) ([]byte, error) {
	payload := Payload{Type: payloadType, ShopID: shopID.String()}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/" + shopID.String()
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseShopQR reads the shop ID back from a decoded QR payload.
func (s *qrcodeService) ParseShopQR(qrData string) (uuid.UUID, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != payloadType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}

	shopID, err := uuid.Parse(payload.ShopID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse shop ID")
	}

	return shopID, nil
}
