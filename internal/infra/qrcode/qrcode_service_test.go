package qrcode

import (
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              "https://shop.example.com/api/v1/shops/",
		},
	}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc := newTestService(256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
			assert.Equal(t, "https://shop.example.com/api/v1/shops", svc.baseURL)
		})
	}

	defaults := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, defaultSize, defaults.size)
}

func TestQRCodeService_GenerateShopQR(t *testing.T) {
	svc := newTestService(128, "M")

	qrBytes, err := svc.GenerateShopQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseShopQR(t *testing.T) {
	svc := newTestService(128, "M")
	shopID := uuid.New()

	valid, err := json.Marshal(Payload{Type: "shop", ShopID: shopID.String()})
	require.NoError(t, err)

	parsed, err := svc.ParseShopQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, shopID, parsed)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"type":"subscription","shop_id":"` + shopID.String() + `"}`},
		{"bad id", `{"type":"shop","shop_id":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseShopQR(tt.data)
			assert.Error(t, err)
		})
	}
}
