/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"

	mg "github.com/matthewmcneely/modusgeo"
)

func TestToGeomBox(t *testing.T) {
	box, err := mg.NewBox(mustCoord(t, -10, -20), mustCoord(t, 10, 20))
	require.NoError(t, err)

	g, err := mg.ToGeom(box)
	require.NoError(t, err)
	polygon, ok := g.(*geom.Polygon)
	require.True(t, ok)
	require.Equal(t, 1, polygon.NumLinearRings())

	coords := polygon.LinearRing(0).Coords()
	require.Len(t, coords, 5)
	// GeoJSON axis order: X is longitude, Y is latitude.
	assert.Equal(t, geom.Coord{-20, -10}, coords[0])
	assert.Equal(t, coords[0], coords[4])
}

func TestToGeomCircle(t *testing.T) {
	circle, err := mg.NewCircle(mustCoord(t, 0, 0), 0.5)
	require.NoError(t, err)

	_, err = mg.ToGeom(circle)
	require.Error(t, err)
	require.ErrorIs(t, err, mg.ErrNoGeomEquivalent)
}

func TestGeomPolygonRoundTrip(t *testing.T) {
	original, err := mg.NewPolygon(squareRing(t, 0, 10), squareRing(t, 4, 6))
	require.NoError(t, err)

	g, err := mg.ToGeom(original)
	require.NoError(t, err)

	restored, err := mg.FromGeom(g)
	require.NoError(t, err)
	require.Equal(t, mg.KindPolygon, restored.Kind())

	sample := []mg.Coordinate{
		mustCoord(t, 5, 5),
		mustCoord(t, 1, 1),
		mustCoord(t, 20, 20),
		mustCoord(t, 0, 0),
		mustCoord(t, 4, 4),
	}
	for _, pt := range sample {
		a, err := original.Contains(pt)
		require.NoError(t, err)
		b, err := restored.Contains(pt)
		require.NoError(t, err)
		assert.Equal(t, a, b, "point %v", pt)
	}
}

func TestFromGeomUnsupported(t *testing.T) {
	point := geom.NewPoint(geom.XY)
	_, err := mg.FromGeom(point)
	require.Error(t, err)
	require.ErrorIs(t, err, mg.ErrInvalidRegion)
}
