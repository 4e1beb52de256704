package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing.
// Site QR codes let employees clock in at a geofenced site when GPS is
// unreliable (indoor construction floors, basements).
type QRCodeService interface {
	// GenerateSiteQR generates a QR code encoding the clock-in URL of a geofenced site.
	GenerateSiteQR(geofenceID uuid.UUID) ([]byte, error)

	// ParseSiteQR parses QR code data and returns the geofence ID.
	ParseSiteQR(qrData string) (uuid.UUID, error)
}
