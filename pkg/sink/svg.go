package sink

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVGSink adapts a polytope render stream onto an ajstarks/svgo canvas. It
// buffers the vertices of the shape currently being built and flushes them
// as a single <polygon> or <polyline> when the matching End call arrives,
// since svgo's primitives take whole point lists rather than a streaming
// vertex-at-a-time API.
type SVGSink struct {
	canvas *svg.SVG
	color  string

	inPolygon bool
	inLine    bool
	xs, ys    []int

	width, height int
}

// NewSVGSink writes an SVG document of the given pixel dimensions to w and
// returns a Sink that draws into it. Callers must call Close when done to
// emit the closing tag.
func NewSVGSink(w io.Writer, width, height int) *SVGSink {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVGSink{canvas: canvas, width: width, height: height, color: "black"}
}

// Close emits the closing SVG tag. No further Sink calls are valid after
// this.
func (s *SVGSink) Close() { s.canvas.End() }

func (s *SVGSink) SetColor(r, g, b float64) {
	s.color = fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:rgb(%d,%d,%d)",
		channel(r), channel(g), channel(b), channel(r), channel(g), channel(b))
}

func channel(v float64) int {
	c := int(v*255 + 0.5)
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return c
}

func (s *SVGSink) BeginPolygon() {
	s.inPolygon = true
	s.xs, s.ys = s.xs[:0], s.ys[:0]
}

func (s *SVGSink) EndPolygon() {
	if len(s.xs) > 0 {
		s.canvas.Polygon(s.xs, s.ys, s.color)
	}
	s.inPolygon = false
}

func (s *SVGSink) BeginLineLoop() {
	s.inLine = true
	s.xs, s.ys = s.xs[:0], s.ys[:0]
}

func (s *SVGSink) EndLineLoop() {
	if len(s.xs) > 1 {
		closedX := append(append([]int{}, s.xs...), s.xs[0])
		closedY := append(append([]int{}, s.ys...), s.ys[0])
		s.canvas.Polyline(closedX, closedY, s.color)
	}
	s.inLine = false
}

// Vertex projects x,y to pixel space centered in the canvas, ignoring z (an
// SVG sink renders the already-projected 2D frame).
func (s *SVGSink) Vertex(x, y, z float64) {
	px := int(x*float64(s.width)/2) + s.width/2
	py := s.height/2 - int(y*float64(s.height)/2)
	s.xs = append(s.xs, px)
	s.ys = append(s.ys, py)
}
