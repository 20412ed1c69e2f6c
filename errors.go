/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCoordinate is returned by NewCoordinate when a latitude or
	// longitude is NaN, infinite, or outside the valid geographic range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidRegion is returned by the region builders when the supplied
	// shape violates a construction invariant. All InvalidRegionError values
	// unwrap to this sentinel.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrMalformedRegion signals a structurally broken region reaching the
	// evaluator, e.g. a zero-value Polygon that never went through a builder.
	// This is a programming error, not a user input error, and callers should
	// surface it rather than treating it as "not contained".
	ErrMalformedRegion = errors.New("malformed region passed to evaluator")

	// ErrNoGeomEquivalent is returned by ToGeom for regions that have no
	// standard geometry representation (a Circle's angular radius has no
	// go-geom analogue).
	ErrNoGeomEquivalent = errors.New("region has no go-geom equivalent")
)

// InvalidRegionError describes why a region builder rejected its input.
type InvalidRegionError struct {
	Kind   Kind
	Reason string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid %s region: %s", e.Kind, e.Reason)
}

func (e *InvalidRegionError) Unwrap() error {
	return ErrInvalidRegion
}

func invalidRegionf(kind Kind, format string, args ...any) error {
	return &InvalidRegionError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
