package sink_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chazu/adsoda/pkg/sink"
)

func TestSVGSinkEmitsPolygonAndClosesDocument(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSVGSink(&buf, 100, 100)

	s.SetColor(1, 0, 0)
	s.BeginPolygon()
	s.Vertex(-1, -1, 0)
	s.Vertex(1, -1, 0)
	s.Vertex(0, 1, 0)
	s.EndPolygon()
	s.Close()

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("expected an <svg> opening tag")
	}
	if !strings.Contains(out, "polygon") {
		t.Error("expected a <polygon> element")
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("expected Close to emit the closing tag")
	}
}

func TestSVGSinkSkipsEmptyPolygon(t *testing.T) {
	var buf bytes.Buffer
	s := sink.NewSVGSink(&buf, 100, 100)
	s.BeginPolygon()
	s.EndPolygon()
	s.Close()

	if strings.Contains(buf.String(), "polygon") {
		t.Error("expected no <polygon> element for a shape with no vertices")
	}
}
