/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package modusgeo provides the geospatial region model and containment
// evaluator used by the query layer. Regions (boxes, circles, polygons) are
// validated at construction, immutable afterwards, and evaluated as closed
// sets: a point on a region's boundary counts as contained.
package modusgeo

// Kind identifies the shape of a Region.
type Kind int

const (
	KindBox Kind = iota
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Region is a closed variant over Box, Circle, and Polygon. No other types
// implement it. Regions are constructed only through the builders in this
// package, are immutable once built, and are safe for concurrent use.
type Region interface {
	// Kind returns the shape tag for this region.
	Kind() Kind

	// Contains reports whether the point lies inside the region or on its
	// boundary. The error return fires only when the region is structurally
	// malformed (it bypassed a builder), never for valid input.
	Contains(pt Coordinate) (bool, error)

	// sealed prevents implementations outside this package, keeping the
	// variant closed and the evaluator's type handling total.
	sealed()
}

var (
	_ Region = Box{}
	_ Region = Circle{}
	_ Region = Polygon{}
)

// Contains reports whether the point lies inside the region or on its
// boundary. This is the per-row predicate entry point for the query
// execution engine; it is pure and safe to call concurrently. A nil region
// is a defect in the caller and fails with ErrMalformedRegion.
func Contains(region Region, pt Coordinate) (bool, error) {
	if region == nil {
		return false, ErrMalformedRegion
	}
	return region.Contains(pt)
}

// containsEpsilon absorbs floating rounding at region boundaries so a point
// constructed exactly on a circle or ring edge is reliably classified as
// contained. Expressed in radians of angular distance.
const containsEpsilon = 1e-9
