/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

// ToGeom converts a Region to its go-geom representation for the external
// persistence layer. Coordinates follow the GeoJSON axis order (X=longitude,
// Y=latitude). A Box becomes a five-point polygon ring; for a wrapping box
// the corner longitudes are preserved as-is, so the consumer sees
// right < left exactly as the region was defined. A Circle has no go-geom
// equivalent and fails with ErrNoGeomEquivalent; persist circles through the
// RegionInput wire form instead.
func ToGeom(r Region) (geom.T, error) {
	switch region := r.(type) {
	case Box:
		bl, tr := region.BottomLeft(), region.TopRight()
		ring := []geom.Coord{
			{bl.Lng(), bl.Lat()},
			{tr.Lng(), bl.Lat()},
			{tr.Lng(), tr.Lat()},
			{bl.Lng(), tr.Lat()},
			{bl.Lng(), bl.Lat()},
		}
		return geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})

	case Polygon:
		rings := make([][]geom.Coord, 0, 1+len(region.Holes()))
		rings = append(rings, ringToCoords(region.OuterRing()))
		for _, hole := range region.Holes() {
			rings = append(rings, ringToCoords(hole))
		}
		return geom.NewPolygon(geom.XY).SetCoords(rings)

	case Circle:
		return nil, ErrNoGeomEquivalent
	}
	return nil, ErrMalformedRegion
}

// FromGeom converts a go-geom polygon back into a Region, running the full
// builder validation. The first linear ring is the outer ring; any further
// rings are holes.
func FromGeom(g geom.T) (Region, error) {
	polygon, ok := g.(*geom.Polygon)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidRegion, "unsupported geometry type %T", g)
	}
	if polygon.NumLinearRings() == 0 {
		return nil, errors.Wrap(ErrInvalidRegion, "polygon has no rings")
	}

	outer, err := coordsToRing(polygon.LinearRing(0).Coords())
	if err != nil {
		return nil, err
	}
	holes := make([][]Coordinate, 0, polygon.NumLinearRings()-1)
	for i := 1; i < polygon.NumLinearRings(); i++ {
		hole, err := coordsToRing(polygon.LinearRing(i).Coords())
		if err != nil {
			return nil, err
		}
		holes = append(holes, hole)
	}
	return NewPolygon(outer, holes...)
}

func ringToCoords(ring []Coordinate) []geom.Coord {
	coords := make([]geom.Coord, len(ring))
	for i, c := range ring {
		coords[i] = geom.Coord{c.Lng(), c.Lat()}
	}
	return coords
}

func coordsToRing(coords []geom.Coord) ([]Coordinate, error) {
	ring := make([]Coordinate, len(coords))
	for i, c := range coords {
		coord, err := NewCoordinate(c.Y(), c.X())
		if err != nil {
			return nil, err
		}
		ring[i] = coord
	}
	return ring, nil
}
