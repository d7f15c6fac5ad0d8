package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

type Coords struct {
	Latitude  float64 `json:"latitude" example:"40.7142"`
	Longitude float64 `json:"longitude" example:"-74.006"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// NewCoordsFromCenter builds coordinates from a GeoJSON style [lng, lat] pair
func NewCoordsFromCenter(center [2]float64) Coords {
	return NewCoords(center[1], center[0])
}

// Validate checks that the coordinates are on the globe
func (c Coords) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: got %f", ErrInvalidLatitude, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: got %f", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// Point returns the coordinates as an orb point (longitude first)
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Center returns the coordinates as a [lng, lat] pair
func (c Coords) Center() [2]float64 {
	return [2]float64{c.Longitude, c.Latitude}
}

// DistanceTo returns the great-circle distance in meters
func (c Coords) DistanceTo(other Coords) float64 {
	return geo.Distance(c.Point(), other.Point())
}

// Key rounds the coordinates to roughly one kilometer for use as a cache key
func (c Coords) Key() string {
	return fmt.Sprintf("%.2f,%.2f", c.Latitude, c.Longitude)
}

func (c Coords) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}
