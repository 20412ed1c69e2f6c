/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mg "github.com/matthewmcneely/modusgeo"
)

func TestDecodeRegion(t *testing.T) {
	ctx := context.Background()
	decoder := mg.NewDecoder(mg.WithValidator(mg.NewValidator()))

	testCases := []struct {
		name     string
		filter   string
		wantKind mg.Kind
		wantErr  bool
	}{
		{
			name: "Box",
			filter: `{"kind":"box",
				"bottomLeft":{"latitude":-10,"longitude":-20},
				"topRight":{"latitude":10,"longitude":20}}`,
			wantKind: mg.KindBox,
		},
		{
			name: "AntimeridianBox",
			filter: `{"kind":"box",
				"bottomLeft":{"latitude":-10,"longitude":170},
				"topRight":{"latitude":10,"longitude":-170}}`,
			wantKind: mg.KindBox,
		},
		{
			name:     "Circle",
			filter:   `{"kind":"circle","center":{"latitude":40,"longitude":-73},"radians":0.1}`,
			wantKind: mg.KindCircle,
		},
		{
			name: "PolygonWithHole",
			filter: `{"kind":"polygon",
				"outerRing":[
					{"latitude":0,"longitude":0},{"latitude":0,"longitude":10},
					{"latitude":10,"longitude":10},{"latitude":10,"longitude":0}],
				"holes":[[
					{"latitude":4,"longitude":4},{"latitude":4,"longitude":6},
					{"latitude":6,"longitude":6},{"latitude":6,"longitude":4}]]}`,
			wantKind: mg.KindPolygon,
		},
		{
			name:    "UnknownKind",
			filter:  `{"kind":"hexagon"}`,
			wantErr: true,
		},
		{
			name:    "MalformedJSON",
			filter:  `{"kind":"box"`,
			wantErr: true,
		},
		{
			name: "ValidatorRejectsLatitude",
			filter: `{"kind":"box",
				"bottomLeft":{"latitude":91,"longitude":0},
				"topRight":{"latitude":92,"longitude":20}}`,
			wantErr: true,
		},
		{
			name:    "CircleMissingCenter",
			filter:  `{"kind":"circle","radians":0.1}`,
			wantErr: true,
		},
		{
			name:    "CircleNegativeRadius",
			filter:  `{"kind":"circle","center":{"latitude":0,"longitude":0},"radians":-1}`,
			wantErr: true,
		},
		{
			name: "PolygonTooFewVertices",
			filter: `{"kind":"polygon",
				"outerRing":[{"latitude":0,"longitude":0},{"latitude":0,"longitude":10}]}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			region, err := decoder.Decode(ctx, []byte(tc.filter))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, region.Kind())
		})
	}
}

func TestDecodeRegionCached(t *testing.T) {
	cache, err := mg.NewRegionCache(16)
	require.NoError(t, err)
	defer cache.Close()

	decoder := mg.NewDecoder(mg.WithCache(cache))
	filter := []byte(`{"kind":"circle","center":{"latitude":0,"longitude":0},"radians":0.5}`)

	first, err := decoder.Decode(context.Background(), filter)
	require.NoError(t, err)
	cache.Wait()

	cached, ok := cache.Get(string(filter))
	require.True(t, ok)
	assert.Equal(t, first, cached)

	second, err := decoder.Decode(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildRegion(t *testing.T) {
	t.Run("CaseInsensitiveKind", func(t *testing.T) {
		region, err := mg.BuildRegion(mg.RegionInput{
			Kind:    "Circle",
			Center:  &mg.CoordinateInput{Latitude: 0, Longitude: 0},
			Radians: 0.1,
		})
		require.NoError(t, err)
		assert.Equal(t, mg.KindCircle, region.Kind())
	})

	t.Run("BoxMissingCorner", func(t *testing.T) {
		_, err := mg.BuildRegion(mg.RegionInput{
			Kind:       "box",
			BottomLeft: &mg.CoordinateInput{Latitude: 0, Longitude: 0},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, mg.ErrInvalidRegion)
	})

	t.Run("InvalidCoordinatePropagates", func(t *testing.T) {
		_, err := mg.BuildRegion(mg.RegionInput{
			Kind:    "circle",
			Center:  &mg.CoordinateInput{Latitude: 91, Longitude: 0},
			Radians: 0.1,
		})
		require.Error(t, err)
		require.ErrorIs(t, err, mg.ErrInvalidCoordinate)
	})
}
