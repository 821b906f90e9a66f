// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package linear

import "github.com/chewxy/math32"

// AABB3 is an axis-aligned bounding box in 3D space.
// A zero-value AABB3 is the degenerate box at the origin,
// for which Empty reports false; use Reset to obtain an
// empty box suitable for accumulation via Extend.
type AABB3 struct {
	Min V3
	Max V3
}

// Reset sets b to the empty box, ready to accumulate
// points via Extend.
func (b *AABB3) Reset() {
	b.Min = V3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	b.Max = V3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
}

// Empty reports whether b contains no points.
func (b *AABB3) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend grows b so that it encloses p.
func (b *AABB3) Extend(p *V3) {
	for i := range b.Min {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Union sets b to the smallest box enclosing both l and r.
func (b *AABB3) Union(l, r *AABB3) {
	if l.Empty() {
		*b = *r
		return
	}
	if r.Empty() {
		*b = *l
		return
	}
	for i := range b.Min {
		if l.Min[i] < r.Min[i] {
			b.Min[i] = l.Min[i]
		} else {
			b.Min[i] = r.Min[i]
		}
		if l.Max[i] > r.Max[i] {
			b.Max[i] = l.Max[i]
		} else {
			b.Max[i] = r.Max[i]
		}
	}
}

// Center returns the midpoint of b.
func (b *AABB3) Center() (c V3) {
	for i := range c {
		c[i] = (b.Min[i] + b.Max[i]) / 2
	}
	return
}
