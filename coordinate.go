/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Coordinate is a validated geographic position in degrees.
// Latitude is in [-90, 90], longitude in [-180, 180]. Coordinates are
// immutable values and may be shared freely across goroutines.
type Coordinate struct {
	latitude  float64
	longitude float64
}

// NewCoordinate returns a Coordinate for the given latitude and longitude in
// degrees. It fails with an error wrapping ErrInvalidCoordinate when either
// value is NaN, infinite, or out of range.
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	if math.IsNaN(latitude) || math.IsInf(latitude, 0) ||
		math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Coordinate{}, fmt.Errorf("%w: non-finite value (%v, %v)",
			ErrInvalidCoordinate, latitude, longitude)
	}
	if latitude < -90 || latitude > 90 {
		return Coordinate{}, fmt.Errorf("%w: latitude %v out of range [-90, 90]",
			ErrInvalidCoordinate, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinate{}, fmt.Errorf("%w: longitude %v out of range [-180, 180]",
			ErrInvalidCoordinate, longitude)
	}
	return Coordinate{latitude: latitude, longitude: longitude}, nil
}

// Lat returns the latitude in degrees.
func (c Coordinate) Lat() float64 { return c.latitude }

// Lng returns the longitude in degrees.
func (c Coordinate) Lng() float64 { return c.longitude }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%v, %v)", c.latitude, c.longitude)
}

// point returns the unit-sphere representation used by the evaluator.
func (c Coordinate) point() s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(c.latitude, c.longitude))
}
