/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"math"

	"github.com/golang/geo/s1"
)

// Circle is a spherical cap: all points within a great-circle angular
// distance of the center. The radius is in radians, not a linear unit; this
// matches the query layer's wire format and is preserved through the API.
type Circle struct {
	center  Coordinate
	radians float64
}

// NewCircle builds a Circle with the given center and angular radius in
// radians. It fails with an InvalidRegionError when the radius is not a
// positive finite value, or when it exceeds π: a cap larger than the full
// sphere's half-angle is ill-defined for containment (its complement is the
// unambiguous region).
func NewCircle(center Coordinate, radians float64) (Circle, error) {
	if math.IsNaN(radians) || radians <= 0 {
		return Circle{}, invalidRegionf(KindCircle, "radius %v must be positive", radians)
	}
	if radians > math.Pi {
		return Circle{}, invalidRegionf(KindCircle, "radius %v exceeds pi", radians)
	}
	return Circle{center: center, radians: radians}, nil
}

// Center returns the circle's center.
func (c Circle) Center() Coordinate { return c.center }

// Radians returns the angular radius in radians.
func (c Circle) Radians() float64 { return c.radians }

func (c Circle) Kind() Kind { return KindCircle }

// Contains reports whether the point lies within the circle's angular radius
// of its center, boundary included. The angle between the two unit-sphere
// points is numerically stable near both zero and π, and containsEpsilon
// absorbs rounding so points constructed exactly on the boundary test true.
func (c Circle) Contains(pt Coordinate) (bool, error) {
	dist := c.center.point().Distance(pt.point())
	return dist <= s1.Angle(c.radians+containsEpsilon), nil
}

func (c Circle) sealed() {}
