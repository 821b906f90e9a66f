// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package render

import "sync/atomic"

// Stats aggregates per-frame counters. FrontendContext keeps
// two instances: one accumulating the frame currently being
// recorded, and one holding the last frame that completed
// Process, which is what Stats() returns.
type Stats struct {
	DrawCalls  atomic.Int64
	ClearCalls atomic.Int64
	BlitCalls  atomic.Int64
	Vertices   atomic.Int64
	Points     atomic.Int64
	Lines      atomic.Int64
	Triangles  atomic.Int64
}

// snapshotInto copies s's counters into dst.
func (s *Stats) snapshotInto(dst *Stats) {
	dst.DrawCalls.Store(s.DrawCalls.Load())
	dst.ClearCalls.Store(s.ClearCalls.Load())
	dst.BlitCalls.Store(s.BlitCalls.Load())
	dst.Vertices.Store(s.Vertices.Load())
	dst.Points.Store(s.Points.Load())
	dst.Lines.Store(s.Lines.Load())
	dst.Triangles.Store(s.Triangles.Load())
}

// reset zeroes every counter.
func (s *Stats) reset() {
	s.DrawCalls.Store(0)
	s.ClearCalls.Store(0)
	s.BlitCalls.Store(0)
	s.Vertices.Store(0)
	s.Points.Store(0)
	s.Lines.Store(0)
	s.Triangles.Store(0)
}

// addPrimitives increments the vertex/point/line/triangle
// counters for a draw of the given primitive topology and
// vertex count, matching the reference implementation's
// per-primitive accounting: lines = count/2, triangle-strip =
// count-2, triangles = count/3, points = count.
func (s *Stats) addPrimitives(prim Primitive, count int) {
	s.Vertices.Add(int64(count))
	switch prim {
	case PPoints:
		s.Points.Add(int64(count))
	case PLines:
		s.Lines.Add(int64(count / 2))
	case PTriangleStrip:
		s.Triangles.Add(int64(count - 2))
	case PTriangles:
		s.Triangles.Add(int64(count / 3))
	}
}
