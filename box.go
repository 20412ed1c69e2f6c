/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

// Box is a latitude/longitude rectangle described by its bottom-left and
// top-right corners. A box whose top-right longitude is numerically less
// than its bottom-left longitude wraps across the antimeridian; that is a
// valid, first-class case, not an error.
type Box struct {
	bottomLeft Coordinate
	topRight   Coordinate
}

// NewBox builds a Box from its bottom-left and top-right corners.
// It fails with an InvalidRegionError when the bottom-left latitude exceeds
// the top-right latitude. Longitude order is not constrained: right < left
// denotes an antimeridian-crossing box.
func NewBox(bottomLeft, topRight Coordinate) (Box, error) {
	if bottomLeft.Lat() > topRight.Lat() {
		return Box{}, invalidRegionf(KindBox,
			"bottom-left latitude %v exceeds top-right latitude %v",
			bottomLeft.Lat(), topRight.Lat())
	}
	return Box{bottomLeft: bottomLeft, topRight: topRight}, nil
}

// NewBoxFromBounds builds a Box from edge values in degrees, reconciling the
// (top, left, bottom, right) form to the canonical corner form. The corner
// and bounds forms are interchangeable: equivalent corners yield boxes with
// identical containment behavior.
func NewBoxFromBounds(top, left, bottom, right float64) (Box, error) {
	bottomLeft, err := NewCoordinate(bottom, left)
	if err != nil {
		return Box{}, err
	}
	topRight, err := NewCoordinate(top, right)
	if err != nil {
		return Box{}, err
	}
	return NewBox(bottomLeft, topRight)
}

// BottomLeft returns the bottom-left corner.
func (b Box) BottomLeft() Coordinate { return b.bottomLeft }

// TopRight returns the top-right corner.
func (b Box) TopRight() Coordinate { return b.topRight }

// WrapsAntimeridian reports whether the box's longitude span crosses the
// ±180° line.
func (b Box) WrapsAntimeridian() bool {
	return b.topRight.Lng() < b.bottomLeft.Lng()
}

func (b Box) Kind() Kind { return KindBox }

// Contains reports whether the point lies within the box, boundary included.
// For a wrapping box the valid longitude set is
// [bottomLeft.Lng, 180] ∪ [-180, topRight.Lng].
func (b Box) Contains(pt Coordinate) (bool, error) {
	if pt.Lat() < b.bottomLeft.Lat() || pt.Lat() > b.topRight.Lat() {
		return false, nil
	}
	if b.WrapsAntimeridian() {
		return pt.Lng() >= b.bottomLeft.Lng() || pt.Lng() <= b.topRight.Lng(), nil
	}
	return pt.Lng() >= b.bottomLeft.Lng() && pt.Lng() <= b.topRight.Lng(), nil
}

func (b Box) sealed() {}
