/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CoordinateInput is the wire form of a coordinate as produced by the
// query-expression parser.
type CoordinateInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// RegionInput is the wire form of a region filter. Exactly one shape's
// fields are expected to be populated, selected by Kind.
type RegionInput struct {
	Kind string `json:"kind" validate:"required,oneof=box circle polygon"`

	// Box fields. Bounds form (top/left/bottom/right) is also accepted and
	// reconciled to the corner form by the builder.
	BottomLeft *CoordinateInput `json:"bottomLeft,omitempty"`
	TopRight   *CoordinateInput `json:"topRight,omitempty"`

	// Circle fields. Radians is a great-circle angular distance.
	Center  *CoordinateInput `json:"center,omitempty"`
	Radians float64          `json:"radians,omitempty"`

	// Polygon fields.
	OuterRing []CoordinateInput   `json:"outerRing,omitempty" validate:"omitempty,dive"`
	Holes     [][]CoordinateInput `json:"holes,omitempty" validate:"omitempty,dive,dive"`
}

// StructValidator is the interface for struct validation.
// This is compatible with github.com/go-playground/validator/v10.Validate.
type StructValidator interface {
	// StructCtx validates a struct with context support.
	StructCtx(ctx context.Context, s interface{}) error
}

// NewValidator creates a new validator instance with default settings.
// This is a convenience function for creating a validator to use with
// WithValidator. It returns a *validator.Validate from
// github.com/go-playground/validator/v10.
func NewValidator() *validator.Validate {
	return validator.New()
}

// decoderOptions holds configuration options for the decoder.
//
// validator: the validator instance for input struct validation.
// cache: a region cache keyed by the raw filter bytes.
// logger: the logger for the decoder.
type decoderOptions struct {
	validator StructValidator
	cache     *RegionCache
	logger    logr.Logger
}

// DecoderOpt is a function that configures a decoder
type DecoderOpt func(*decoderOptions)

// WithValidator sets a validator instance for input struct validation.
// If no validator is provided, structural validation is still performed by
// the region builders; the validator adds field-level range checks before
// any building happens.
func WithValidator(v StructValidator) DecoderOpt {
	return func(o *decoderOptions) {
		o.validator = v
	}
}

// WithCache sets a RegionCache for the decoder. Identical raw filters then
// decode to the same shared Region value; Regions are immutable, so sharing
// is safe across goroutines.
func WithCache(cache *RegionCache) DecoderOpt {
	return func(o *decoderOptions) {
		o.cache = cache
	}
}

// WithDecoderLogger sets a structured logger for the decoder
func WithDecoderLogger(logger logr.Logger) DecoderOpt {
	return func(o *decoderOptions) {
		o.logger = logger
	}
}

// Decoder turns raw region filter bytes from the query-expression layer into
// validated, immutable Regions.
type Decoder struct {
	validator StructValidator
	cache     *RegionCache
	logger    logr.Logger
}

// NewDecoder creates a Decoder.
//
// Optional configuration can be provided via the opts parameter:
//   - WithValidator(StructValidator) - field-level input validation before building
//   - WithCache(*RegionCache) - reuse Regions for repeated identical filters
//   - WithDecoderLogger(logr.Logger) - structured logging with custom verbosity levels
func NewDecoder(opts ...DecoderOpt) *Decoder {
	options := decoderOptions{
		logger: logr.Discard(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Decoder{
		validator: options.validator,
		cache:     options.cache,
		logger:    options.logger,
	}
}

// Decode parses and validates a raw region filter and returns the built
// Region. Invalid input fails with an error in the ErrInvalidCoordinate or
// ErrInvalidRegion class; both are recoverable, the caller rejects the query.
func (d *Decoder) Decode(ctx context.Context, data []byte) (Region, error) {
	if d.cache != nil {
		if region, ok := d.cache.Get(string(data)); ok {
			d.logger.V(2).Info("Region cache hit", "bytes", len(data))
			return region, nil
		}
	}

	var input RegionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, errors.Wrap(err, "error parsing region filter")
	}
	if d.validator != nil {
		if err := d.validator.StructCtx(ctx, &input); err != nil {
			return nil, errors.Wrap(err, "region filter failed validation")
		}
	}

	region, err := BuildRegion(input)
	if err != nil {
		return nil, err
	}

	d.logger.V(2).Info("Decoded region filter", "kind", region.Kind().String())
	if d.cache != nil {
		d.cache.Set(string(data), region)
	}
	return region, nil
}

// BuildRegion constructs a Region from an already-parsed RegionInput,
// dispatching on its Kind. This is the non-JSON entry point for callers that
// assemble inputs programmatically.
func BuildRegion(input RegionInput) (Region, error) {
	switch strings.ToLower(input.Kind) {
	case "box":
		if input.BottomLeft == nil || input.TopRight == nil {
			return nil, invalidRegionf(KindBox, "box requires bottomLeft and topRight")
		}
		bottomLeft, err := NewCoordinate(input.BottomLeft.Latitude, input.BottomLeft.Longitude)
		if err != nil {
			return nil, err
		}
		topRight, err := NewCoordinate(input.TopRight.Latitude, input.TopRight.Longitude)
		if err != nil {
			return nil, err
		}
		return NewBox(bottomLeft, topRight)

	case "circle":
		if input.Center == nil {
			return nil, invalidRegionf(KindCircle, "circle requires a center")
		}
		center, err := NewCoordinate(input.Center.Latitude, input.Center.Longitude)
		if err != nil {
			return nil, err
		}
		return NewCircle(center, input.Radians)

	case "polygon":
		outer, err := coordinatesFromInput(input.OuterRing)
		if err != nil {
			return nil, err
		}
		holes := make([][]Coordinate, 0, len(input.Holes))
		for _, h := range input.Holes {
			hole, err := coordinatesFromInput(h)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
		}
		return NewPolygon(outer, holes...)
	}
	return nil, errors.Wrapf(ErrInvalidRegion, "unknown region kind %q", input.Kind)
}

func coordinatesFromInput(inputs []CoordinateInput) ([]Coordinate, error) {
	coords := make([]Coordinate, len(inputs))
	for i, in := range inputs {
		c, err := NewCoordinate(in.Latitude, in.Longitude)
		if err != nil {
			return nil, err
		}
		coords[i] = c
	}
	return coords, nil
}
