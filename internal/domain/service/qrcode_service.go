package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and reads the QR codes that link to a shop.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code pointing at the shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)

	// ParseShopQR extracts the shop ID from the QR payload text.
	ParseShopQR(qrData string) (uuid.UUID, error)
}
