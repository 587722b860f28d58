package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRequestQR generates a QR code that links a poster or flyer to
	// a blood request.
	GenerateRequestQR(requestID string) ([]byte, error)

	// ParseRequestQR parses QR code data and returns the request ID.
	ParseRequestQR(qrData string) (string, error)
}
