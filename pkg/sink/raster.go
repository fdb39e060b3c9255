package sink

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/llgcode/draw2d/draw2dimg"
)

// RasterSink adapts a polytope render stream onto a draw2d raster image,
// flattening filled polygons and stroked line loops into one in-memory
// canvas. Vertex buffering mirrors SVGSink for the same reason: draw2d's
// path API wants whole subpaths, not one point at a time.
type RasterSink struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext

	inPolygon, inLine bool
	pts               [][2]float64
	color             color.RGBA

	width, height int
}

// NewRasterSink allocates a width x height RGBA canvas, pre-filled with
// white, and returns a Sink that draws into it.
func NewRasterSink(width, height int) *RasterSink {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	gc := draw2dimg.NewGraphicContext(img)
	return &RasterSink{img: img, gc: gc, width: width, height: height}
}

// WritePNG encodes the accumulated raster as PNG to w.
func (s *RasterSink) WritePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *RasterSink) SetColor(r, g, b float64) {
	s.color = color.RGBA{R: uint8(channel(r)), G: uint8(channel(g)), B: uint8(channel(b)), A: 255}
}

func (s *RasterSink) BeginPolygon() {
	s.inPolygon = true
	s.pts = s.pts[:0]
}

func (s *RasterSink) EndPolygon() {
	if len(s.pts) > 2 {
		s.gc.SetFillColor(s.color)
		s.pathFromPoints(s.pts)
		s.gc.Fill()
	}
	s.inPolygon = false
}

func (s *RasterSink) BeginLineLoop() {
	s.inLine = true
	s.pts = s.pts[:0]
}

func (s *RasterSink) EndLineLoop() {
	if len(s.pts) > 1 {
		s.gc.SetStrokeColor(s.color)
		s.pathFromPoints(append(append([][2]float64{}, s.pts...), s.pts[0]))
		s.gc.Stroke()
	}
	s.inLine = false
}

func (s *RasterSink) pathFromPoints(pts [][2]float64) {
	s.gc.BeginPath()
	s.gc.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		s.gc.LineTo(p[0], p[1])
	}
	s.gc.Close()
}

// Vertex projects x,y to pixel space centered in the canvas, ignoring z.
func (s *RasterSink) Vertex(x, y, z float64) {
	px := x*float64(s.width)/2 + float64(s.width)/2
	py := float64(s.height)/2 - y*float64(s.height)/2
	s.pts = append(s.pts, [2]float64{px, py})
}
