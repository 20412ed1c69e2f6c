/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package modusgeo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// ring is a compiled polygon boundary: the user-facing closed coordinate
// sequence plus the unit-sphere form the evaluator works on.
type ring struct {
	coords []Coordinate // closed: first and last are equal
	pts    []s2.Point   // open vertex list, no closing duplicate
	loop   *s2.Loop     // normalized so orientation does not matter
}

// Polygon is a region bounded by an outer ring with optional holes. Edges
// are great-circle arcs on the sphere, not straight lines in a flat
// projection, so results stay correct near the poles and the antimeridian.
// A point is contained when it is inside the outer ring (or on it) and not
// strictly inside any hole; hole boundaries count as contained.
type Polygon struct {
	outer *ring
	holes []*ring
}

// NewPolygon builds a Polygon from an outer ring and zero or more holes.
// Rings may arrive open or closed: when the last vertex differs from the
// first, the ring is auto-closed by appending the first vertex. This is the
// accepted input convention; callers never need to close rings themselves.
//
// Construction fails with an InvalidRegionError when a ring has fewer than 3
// distinct vertices, repeats a vertex consecutively, or self-intersects;
// when a hole is not fully nested inside the outer ring; or when two holes
// intersect or one lies inside another. Hole nesting is checked with the
// same containment algorithm Contains uses, so builder and evaluator agree.
//
// Ring winding order carries no meaning: each ring is normalized to enclose
// the smaller of the two regions it bounds.
func NewPolygon(outerRing []Coordinate, holes ...[]Coordinate) (Polygon, error) {
	outer, err := newRing(outerRing, "outer ring")
	if err != nil {
		return Polygon{}, err
	}

	built := make([]*ring, 0, len(holes))
	for i, h := range holes {
		hr, err := newRing(h, "hole")
		if err != nil {
			return Polygon{}, err
		}
		for _, v := range hr.pts {
			if !outer.contains(v) {
				return Polygon{}, invalidRegionf(KindPolygon,
					"hole %d is not contained within the outer ring", i)
			}
		}
		if outer.crosses(hr) {
			return Polygon{}, invalidRegionf(KindPolygon,
				"hole %d crosses the outer ring", i)
		}
		for j, prev := range built {
			if prev.crosses(hr) || prev.containsRing(hr) || hr.containsRing(prev) {
				return Polygon{}, invalidRegionf(KindPolygon,
					"holes %d and %d overlap", j, i)
			}
		}
		built = append(built, hr)
	}

	return Polygon{outer: outer, holes: built}, nil
}

// OuterRing returns a copy of the closed outer ring.
func (p Polygon) OuterRing() []Coordinate {
	if p.outer == nil {
		return nil
	}
	out := make([]Coordinate, len(p.outer.coords))
	copy(out, p.outer.coords)
	return out
}

// Holes returns copies of the closed hole rings, in construction order.
func (p Polygon) Holes() [][]Coordinate {
	if len(p.holes) == 0 {
		return nil
	}
	out := make([][]Coordinate, len(p.holes))
	for i, h := range p.holes {
		out[i] = make([]Coordinate, len(h.coords))
		copy(out[i], h.coords)
	}
	return out
}

func (p Polygon) Kind() Kind { return KindPolygon }

// Contains reports whether the point is inside the polygon, boundary
// included. An error here means the Polygon bypassed NewPolygon; that is a
// defect in the caller, not a property of the point.
func (p Polygon) Contains(pt Coordinate) (bool, error) {
	if p.outer == nil || p.outer.loop == nil {
		return false, ErrMalformedRegion
	}
	sp := pt.point()
	if !p.outer.contains(sp) {
		return false, nil
	}
	for _, h := range p.holes {
		if h.loop == nil {
			return false, ErrMalformedRegion
		}
		// Strictly inside a hole excludes the point; on a hole's edge it is
		// still on the region boundary and therefore contained.
		if h.loop.ContainsPoint(sp) && !h.onBoundary(sp) {
			return false, nil
		}
	}
	return true, nil
}

func (p Polygon) sealed() {}

func newRing(coords []Coordinate, label string) (*ring, error) {
	if len(coords) == 0 {
		return nil, invalidRegionf(KindPolygon, "%s is empty", label)
	}

	closed := make([]Coordinate, len(coords), len(coords)+1)
	copy(closed, coords)
	if closed[0] != closed[len(closed)-1] {
		closed = append(closed, closed[0])
	}

	open := closed[:len(closed)-1]
	distinct := make(map[Coordinate]struct{}, len(open))
	for _, c := range open {
		distinct[c] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil, invalidRegionf(KindPolygon,
			"%s has %d distinct vertices, need at least 3", label, len(distinct))
	}
	for i := 1; i < len(closed); i++ {
		if closed[i] == closed[i-1] {
			return nil, invalidRegionf(KindPolygon,
				"%s repeats vertex %v consecutively", label, closed[i])
		}
	}

	pts := make([]s2.Point, len(open))
	for i, c := range open {
		pts[i] = c.point()
	}
	loop := s2.LoopFromPoints(pts)
	loop.Normalize()
	if err := loop.Validate(); err != nil {
		return nil, invalidRegionf(KindPolygon, "%s is not a valid ring: %v", label, err)
	}

	return &ring{coords: closed, pts: pts, loop: loop}, nil
}

// contains applies the closed-boundary convention: interior or on an edge.
func (r *ring) contains(p s2.Point) bool {
	return r.loop.ContainsPoint(p) || r.onBoundary(p)
}

func (r *ring) onBoundary(p s2.Point) bool {
	n := len(r.pts)
	for i := 0; i < n; i++ {
		if s2.DistanceFromSegment(p, r.pts[i], r.pts[(i+1)%n]) <= s1.Angle(containsEpsilon) {
			return true
		}
	}
	return false
}

// crosses reports whether any edge of r properly crosses any edge of other.
func (r *ring) crosses(other *ring) bool {
	n, m := len(r.pts), len(other.pts)
	for i := 0; i < n; i++ {
		a0, a1 := r.pts[i], r.pts[(i+1)%n]
		for j := 0; j < m; j++ {
			b0, b1 := other.pts[j], other.pts[(j+1)%m]
			if s2.CrossingSign(a0, a1, b0, b1) == s2.Cross {
				return true
			}
		}
	}
	return false
}

// containsRing reports whether any vertex of other lies strictly inside r.
// Used for hole overlap detection once edge crossings are ruled out.
func (r *ring) containsRing(other *ring) bool {
	for _, v := range other.pts {
		if r.loop.ContainsPoint(v) && !r.onBoundary(v) {
			return true
		}
	}
	return false
}
