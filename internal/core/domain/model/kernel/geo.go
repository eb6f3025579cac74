package kernel

import (
	"errors"
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine distance.
	EarthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate pair with validated latitude and
// longitude. GeoPoint is an immutable value object; the zero value is invalid and
// fails validation - use the constructor to create instances.
//
// Example:
//
//	shop, err := kernel.NewGeoPoint(41.311, 69.279)
//	if err != nil {
//	    // Handle validation error
//	}
//	customer, _ := kernel.NewGeoPoint(41.326, 69.228)
//	km, _ := shop.DistanceKm(customer)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must lie within [LatitudeMin, LatitudeMax] and longitude within
// [LongitudeMin, LongitudeMax]. NaN coordinates are rejected so distance
// calculations stay total.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation of the point.
// Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must pass validation for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the haversine great-circle distance to another point
// in kilometers, using EarthRadiusKm. The result is 0 for identical points and
// symmetric: a.DistanceKm(b) == b.DistanceKm(a).
// Both points must pass validation for the calculation to succeed.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := toRadians(p.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude - p.latitude)
	dLon := toRadians(other.longitude - p.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
