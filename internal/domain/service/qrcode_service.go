package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateQRCode encodes the given content as a PNG image.
	GenerateQRCode(content string) ([]byte, error)
}
