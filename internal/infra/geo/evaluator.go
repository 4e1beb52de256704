// Package geo evaluates employee positions against circular geofences using
// great-circle distance.
package geo

import (
	"workdesk/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Evaluation describes where a reported position sits relative to a geofence.
type Evaluation struct {
	Inside   bool    // Whether the point is within the zone radius.
	Distance float64 // Distance in meters from the zone center.
}

// Evaluate computes the distance between the reported position and the
// geofence center and whether the position is inside the zone.
func Evaluate(fence *entity.Geofence, latitude, longitude float64) Evaluation {
	center := orb.Point{fence.CenterLongitude, fence.CenterLatitude}
	position := orb.Point{longitude, latitude}

	distance := orbgeo.Distance(center, position)

	return Evaluation{
		Inside:   distance <= float64(fence.Radius),
		Distance: distance,
	}
}
