// Package qrcode generates shareable QR codes linking posters and flyers
// to a blood request.
package qrcode

import (
	"encoding/json"
	"fmt"

	"lifelink/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RequestID string `json:"request_id"`
	Type      string `json:"type"`
}

const qrTypeRequest = "blood-request"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRequestQR generates a QR code for a blood request
func (s *qrcodeService) GenerateRequestQR(requestID string) ([]byte, error) {
	data := QRCodeData{
		RequestID: requestID,
		Type:      qrTypeRequest,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRequestQR parses QR code data and returns the request ID
func (s *qrcodeService) ParseRequestQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeRequest {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RequestID == "" {
		return "", fmt.Errorf("missing request ID in QR code data")
	}

	return data.RequestID, nil
}
