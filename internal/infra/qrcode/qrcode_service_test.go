package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSiteQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateSiteQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParseSiteQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	geofenceID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		GeofenceID: geofenceID.String(),
		Type:       "site_clock_in",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseSiteQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, geofenceID, parsed)
}

func TestParseSiteQR_RejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		GeofenceID: uuid.New().String(),
		Type:       "subscription",
	})
	require.NoError(t, err)

	_, err = svc.ParseSiteQR(string(payload))
	assert.ErrorContains(t, err, "invalid QR code type")
}

func TestParseSiteQR_RejectsMalformedData(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseSiteQR("not-json")
	assert.Error(t, err)

	payload, err := json.Marshal(QRCodeData{GeofenceID: "abc", Type: "site_clock_in"})
	require.NoError(t, err)

	_, err = svc.ParseSiteQR(string(payload))
	assert.ErrorContains(t, err, "failed to parse geofence ID")
}
