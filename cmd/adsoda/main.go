// Command adsoda renders an n-dimensional solid scene through successive
// axis-aligned projections down to the dimension chosen by -draw1D,
// -draw2D or -draw3D (2D by default), emitting SVG on standard output.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/chazu/adsoda/pkg/geom"
	"github.com/chazu/adsoda/pkg/scenedsl"
	"github.com/chazu/adsoda/pkg/sink"
	"github.com/chazu/adsoda/pkg/space"
	"github.com/chazu/adsoda/pkg/xform"
)

// options collects the CLI surface from spec.md §6. Flags are processed
// left to right; later occurrences of the same flag override earlier
// ones.
type options struct {
	dim int

	draw1D, draw2D, draw3D bool
	rotate2D, rotate3D, rotate4D bool
	removeHidden2D, removeHidden3D, removeHidden4D bool
	nofill, nooutline bool
	drawcube bool
}

func defaultOptions() options {
	return options{dim: 3}
}

// parseArgs implements the CLI's "unknown flags reported to standard
// error, parsing continues" contract (spec.md §6), which the standard
// flag package's fail-fast FlagSet cannot express directly.
func parseArgs(args []string, stderr func(string)) options {
	opt := defaultOptions()
	i := 0
	for i < len(args) {
		name := strings.ToLower(strings.TrimPrefix(args[i], "-"))
		switch name {
		case "dim":
			if i+1 >= len(args) {
				stderr("UnknownOption: -dim requires a value")
				i++
				continue
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 2 || n > 4 {
				stderr(fmt.Sprintf("UnknownOption: -dim value %q is not 2, 3, or 4", args[i+1]))
			} else {
				opt.dim = n
			}
			i += 2
		case "draw1d":
			opt.draw1D = true
			i++
		case "draw2d":
			opt.draw2D = true
			i++
		case "draw3d":
			opt.draw3D = true
			i++
		case "rotate2d":
			opt.rotate2D = true
			i++
		case "rotate3d":
			opt.rotate3D = true
			i++
		case "rotate4d":
			opt.rotate4D = true
			i++
		case "removehidden2d":
			opt.removeHidden2D = true
			i++
		case "removehidden3d":
			opt.removeHidden3D = true
			i++
		case "removehidden4d":
			opt.removeHidden4D = true
			i++
		case "nofill":
			opt.nofill = true
			i++
		case "nooutline":
			opt.nooutline = true
			i++
		case "drawcube":
			opt.drawcube = true
			i++
		default:
			stderr(fmt.Sprintf("UnknownOption: %q", args[i]))
			i++
		}
	}
	return opt
}

func presetFor(dim int) string {
	switch dim {
	case 4:
		return scenedsl.SceneTesseract4D
	case 2:
		return "(cube \"center\" (0 0) \"halfwidth\" 1 \"color\" (0.8 0.2 0.2))\n"
	default:
		return scenedsl.SceneCube3D
	}
}

func main() {
	stderr := colorable.NewColorableStderr()
	warn := func(msg string) {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			fmt.Fprintf(stderr, "\x1b[33m%s\x1b[0m\n", msg)
		} else {
			fmt.Fprintln(stderr, msg)
		}
	}

	opt := parseArgs(os.Args[1:], warn)
	os.Exit(run(opt, warn, os.Stdout))
}

func run(opt options, warn func(string), out *os.File) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(geom.InvariantViolation); ok {
				warn("InvariantViolation: " + iv.Error())
			} else {
				warn(fmt.Sprintf("InvariantViolation: %v", r))
			}
			exitCode = 1
		}
	}()

	top := space.New(opt.dim, geom.RGB{R: 0.1, G: 0.1, B: 0.1})
	top.AddLight(geom.Light{Direction: geom.Vector{-1, -1, -1, -1}[:opt.dim], Intensity: geom.RGB{R: 0.9, G: 0.9, B: 0.9}})

	if _, err := scenedsl.Eval(presetFor(opt.dim), top); err != nil {
		warn("InvariantViolation: scene evaluation failed: " + err.Error())
		return 1
	}

	if opt.drawcube {
		cubeScene := "(cube \"center\" " + originTuple(opt.dim) + " \"halfwidth\" 1 \"color\" (1 1 1))\n"
		if _, err := scenedsl.Eval(cubeScene, top); err != nil {
			warn("InvariantViolation: reference cube failed: " + err.Error())
			return 1
		}
	}

	theta := time.Now().UnixNano() % 1000000000
	angle := 2 * math.Pi * float64(theta) / 1000000000

	applyRotation(top, opt, angle)

	beforeHidden := len(top.Solids())
	applyHiddenRemoval(top, opt)
	if after := len(top.Solids()); after != beforeHidden {
		log.Printf("adsoda: hidden-solid elimination reduced %d solids to %d", beforeHidden, after)
	}

	targetDim := targetDimension(opt)
	cur := top
	for cur.Dim() > targetDim {
		next := space.New(cur.Dim()-1, cur.Ambient())
		for _, l := range cur.Lights() {
			next.AddLight(l)
		}
		cur.ProjectTo(next)
		cur = next
		applyRotation(cur, opt, angle)
		applyHiddenRemoval(cur, opt)
	}

	sk := buildSink(opt, out)
	if closer, ok := sk.(interface{ Close() }); ok {
		defer closer.Close()
	}

	cur.EnsureAdjacencies()
	switch targetDim {
	case 1:
		for _, s := range cur.Solids() {
			s.Render1D(sk)
		}
	case 2:
		for _, s := range cur.Solids() {
			s.Render2D(sk)
		}
	case 3:
		for _, s := range cur.Solids() {
			s.Render3D(cur.Lights(), cur.Ambient(), sk)
		}
	}
	return 0
}

func originTuple(dim int) string {
	parts := make([]string, dim)
	for i := range parts {
		parts[i] = "0"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func targetDimension(opt options) int {
	switch {
	case opt.draw1D:
		return 1
	case opt.draw2D:
		return 2
	case opt.draw3D:
		return 3
	default:
		return 2
	}
}

func applyRotation(sp *space.Space, opt options, angle float64) {
	var enabled bool
	switch sp.Dim() {
	case 4:
		enabled = opt.rotate4D
	case 3:
		enabled = opt.rotate3D
	case 2:
		enabled = opt.rotate2D
	}
	if !enabled {
		return
	}
	m := xform.RotationPlane(sp.Dim(), 0, sp.Dim()-1, angle)
	for _, s := range sp.Solids() {
		s.Transform(m)
	}
}

func applyHiddenRemoval(sp *space.Space, opt options) {
	var enabled bool
	switch sp.Dim() {
	case 4:
		enabled = opt.removeHidden4D
	case 3:
		enabled = opt.removeHidden3D
	case 2:
		enabled = opt.removeHidden2D
	}
	if enabled {
		sp.RemoveHiddenSolids()
	}
}

func buildSink(opt options, out *os.File) sink.Sink {
	base := sink.NewSVGSink(out, 800, 800)
	return &filteredSink{Sink: base, nofill: opt.nofill, nooutline: opt.nooutline, base: base}
}

// filteredSink implements -nofill/-nooutline by dropping the bracketed
// polygon or line-loop calls entirely while still tracking vertex state
// the underlying sink expects.
type filteredSink struct {
	sink.Sink
	base               *sink.SVGSink
	nofill, nooutline  bool
	skippingPolygon    bool
	skippingLineLoop   bool
}

func (f *filteredSink) Close() { f.base.Close() }

func (f *filteredSink) BeginPolygon() {
	if f.nofill {
		f.skippingPolygon = true
		return
	}
	f.Sink.BeginPolygon()
}

func (f *filteredSink) EndPolygon() {
	if f.skippingPolygon {
		f.skippingPolygon = false
		return
	}
	f.Sink.EndPolygon()
}

func (f *filteredSink) BeginLineLoop() {
	if f.nooutline {
		f.skippingLineLoop = true
		return
	}
	f.Sink.BeginLineLoop()
}

func (f *filteredSink) EndLineLoop() {
	if f.skippingLineLoop {
		f.skippingLineLoop = false
		return
	}
	f.Sink.EndLineLoop()
}

func (f *filteredSink) Vertex(x, y, z float64) {
	if f.skippingPolygon || f.skippingLineLoop {
		return
	}
	f.Sink.Vertex(x, y, z)
}
