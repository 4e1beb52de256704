package geo

import (
	"testing"

	"workdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func fence(lat, lon float64, radius int) *entity.Geofence {
	return &entity.Geofence{
		CenterLatitude:  lat,
		CenterLongitude: lon,
		Radius:          radius,
	}
}

func TestEvaluate_CenterIsInside(t *testing.T) {
	eval := Evaluate(fence(25.033, 121.565, 100), 25.033, 121.565)

	assert.True(t, eval.Inside)
	assert.InDelta(t, 0, eval.Distance, 0.001)
}

func TestEvaluate_PointWithinRadius(t *testing.T) {
	// Roughly 55 meters north of the center (0.0005 degrees latitude).
	eval := Evaluate(fence(25.033, 121.565, 100), 25.0335, 121.565)

	assert.True(t, eval.Inside)
	assert.InDelta(t, 55, eval.Distance, 5)
}

func TestEvaluate_PointOutsideRadius(t *testing.T) {
	// Roughly 1.1 kilometers north of the center.
	eval := Evaluate(fence(25.033, 121.565, 1000), 25.043, 121.565)

	assert.False(t, eval.Inside)
	assert.Greater(t, eval.Distance, 1000.0)
}

func TestEvaluate_SmallestAllowedRadius(t *testing.T) {
	// A 10 m zone: 55 m away must be outside.
	eval := Evaluate(fence(25.033, 121.565, entity.GeofenceMinRadius), 25.0335, 121.565)

	assert.False(t, eval.Inside)
}
