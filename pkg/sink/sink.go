// Package sink defines the render-output contract used by pkg/polytope's
// dimension-dispatched renderer and the concrete backends that implement
// it. The interface is pure float64/RGB in shape so this package never
// imports pkg/geom or pkg/polytope, keeping the render boundary a one-way
// dependency (polytope and cmd/adsoda import sink, never the reverse).
package sink

// Sink receives a stream of drawing commands from pkg/polytope's Render1D,
// Render2D and Render3D (spec.md §6). Calls are always balanced:
// BeginPolygon/EndPolygon and BeginLineLoop/EndLineLoop each bracket zero
// or more Vertex calls, and SetColor precedes the shape it colors.
type Sink interface {
	SetColor(r, g, b float64)
	BeginPolygon()
	EndPolygon()
	BeginLineLoop()
	EndLineLoop()
	Vertex(x, y, z float64)
}
