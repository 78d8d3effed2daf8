package svgextract

import (
	stdreflect "reflect"
	"strings"
	"testing"

	"github.com/benoitkugler/svg2dxf/vectordoc"
)

const testSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="100px" height="50px" viewBox="0 0 100 50">
  <g>
    <path d="M0,0 L10,0 C10,5 15,5 15,0 Z" stroke="black"/>
    <rect x="1" y="2" width="3" height="4" fill="red"/>
    <circle cx="5" cy="5" r="3"/>
    <ellipse cx="10" cy="10" rx="4" ry="2"/>
    <line x1="0" y1="0" x2="3" y2="4" stroke="blue"/>
    <polyline points="0,0 1,1 2,0"/>
    <polygon points="0,0 4,0 4,4 0,4"/>
  </g>
  <text x="0" y="0">ignored</text>
</svg>`

func TestReadDocumentStream(t *testing.T) {
	doc, err := ReadDocumentStream(strings.NewReader(testSVG), "test.svg", StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}

	if doc.File != "test.svg" {
		t.Errorf("file = %q", doc.File)
	}
	want := vectordoc.Metadata{ViewBox: "0 0 100 50", Width: "100px", Height: "50px"}
	if doc.Metadata != want {
		t.Errorf("metadata = %+v", doc.Metadata)
	}
	if h, ok := doc.Metadata.CanvasHeight(); !ok || h != 50 {
		t.Errorf("canvas height = %v, %v", h, ok)
	}

	if len(doc.Paths) != 1 {
		t.Fatalf("paths = %d", len(doc.Paths))
	}
	path := doc.Paths[0]
	if path.Stroke != "black" || path.Fill != "none" || path.StrokeWidth != "1" {
		t.Errorf("path style = %+v", path)
	}
	if len(path.Segments) != 4 {
		t.Errorf("segments = %d", len(path.Segments))
	}

	if len(doc.Shapes) != 6 {
		t.Fatalf("shapes = %d", len(doc.Shapes))
	}
	if _, ok := doc.Shapes[0].(vectordoc.Rectangle); !ok {
		t.Errorf("shape 0 = %T", doc.Shapes[0])
	}
	poly, ok := doc.Shapes[5].(vectordoc.Polyline)
	if !ok || !poly.Closed || len(poly.Points) != 4 {
		t.Errorf("shape 5 = %+v", doc.Shapes[5])
	}

	// 1 path line, 1 line shape, 4 rect edges, 2 polyline spans,
	// 4 polygon edges
	if len(doc.Lines) != 12 {
		t.Errorf("lines = %d", len(doc.Lines))
	}
	// 1 path cubic, 1 circle, 1 ellipse
	if len(doc.Curves) != 3 {
		t.Errorf("curves = %d", len(doc.Curves))
	}

	if err := doc.Validate(); err != nil {
		t.Error(err)
	}
}

func TestMissingTopLevelAttributes(t *testing.T) {
	doc, err := ReadDocumentStream(strings.NewReader(`<svg><circle cx="1" cy="1" r="1"/></svg>`),
		"bare.svg", StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Metadata.Width != vectordoc.NotSpecified ||
		doc.Metadata.Height != vectordoc.NotSpecified ||
		doc.Metadata.ViewBox != vectordoc.NotSpecified {
		t.Errorf("metadata = %+v", doc.Metadata)
	}
	if _, ok := doc.Metadata.CanvasHeight(); ok {
		t.Error("expected an unresolved canvas height")
	}
}

func TestErrorModes(t *testing.T) {
	const bad = `<svg><path d="M0,0 L"/><circle cx="1" cy="1" r="1"/></svg>`

	if _, err := ReadDocumentStream(strings.NewReader(bad), "bad.svg", StrictErrorMode); err == nil {
		t.Error("expected strict mode to fail")
	}

	// in ignore mode the malformed path is skipped, the rest survives
	doc, err := ReadDocumentStream(strings.NewReader(bad), "bad.svg", IgnoreErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 0 || len(doc.Shapes) != 1 {
		t.Errorf("paths = %d, shapes = %d", len(doc.Paths), len(doc.Shapes))
	}
}

func TestNotAnSVG(t *testing.T) {
	if _, err := ReadDocumentStream(strings.NewReader("not xml at all"), "x", StrictErrorMode); err == nil {
		t.Error("expected an error")
	}
}

func TestParsePointList(t *testing.T) {
	tests := []struct {
		in   string
		want []vectordoc.Point
	}{
		{"0,0 1,1 2,0", []vectordoc.Point{{0, 0}, {1, 1}, {2, 0}}},
		{"0 0 1 1", []vectordoc.Point{{0, 0}, {1, 1}}},
		{"0,0, 1,1", []vectordoc.Point{{0, 0}, {1, 1}}},
		{"0,0 1,1 2", []vectordoc.Point{{0, 0}, {1, 1}}}, // trailing odd coordinate dropped
		{"0,0 x,1", nil}, // malformed list discarded
		{"", nil},
	}
	for _, test := range tests {
		got := parsePointList(test.in)
		if !stdreflect.DeepEqual(got, test.want) {
			t.Errorf("parsePointList(%q) = %v, expected %v", test.in, got, test.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	paths := []vectordoc.Path{{Segments: vectordoc.Segments{
		vectordoc.Move{From: pt(0, 0), To: pt(0, 0)},
		vectordoc.Line{From: pt(0, 0), To: pt(10, 0)},
		vectordoc.CubicBezier{From: pt(10, 0), Control1: pt(10, 5), Control2: pt(15, 5), To: pt(15, 0)},
		vectordoc.QuadraticBezier{From: pt(15, 0), Control: pt(20, 10), To: pt(25, 0)},
		vectordoc.Arc{From: pt(25, 0), Radius: pt(5, 5), To: pt(35, 0)},
		vectordoc.Close{From: pt(35, 0), To: pt(0, 0)},
	}}}
	shapes := vectordoc.Shapes{
		vectordoc.Rectangle{X: 0, Y: 0, Width: 2, Height: 1},
		vectordoc.Circle{Center: pt(5, 5), Radius: 3},
		vectordoc.LineShape{From: pt(0, 0), To: pt(3, 4)},
		vectordoc.Polyline{Points: []vectordoc.Point{{0, 0}, {1, 1}, {2, 0}}, Closed: true},
	}

	lines, curves := Categorize(paths, shapes)

	// 1 path line, 4 rect edges, 1 line shape, 3 polygon edges
	if len(lines) != 9 {
		t.Fatalf("lines = %d", len(lines))
	}
	// paths come first, then shapes in encounter order
	if lines[0].Source != vectordoc.SourcePath {
		t.Errorf("lines[0].Source = %q", lines[0].Source)
	}
	wantRect := []vectordoc.CategorizedLine{
		vectordoc.NewCategorizedLine(pt(0, 0), pt(2, 0), vectordoc.SourceRect),
		vectordoc.NewCategorizedLine(pt(2, 0), pt(2, 1), vectordoc.SourceRect),
		vectordoc.NewCategorizedLine(pt(2, 1), pt(0, 1), vectordoc.SourceRect),
		vectordoc.NewCategorizedLine(pt(0, 1), pt(0, 0), vectordoc.SourceRect),
	}
	if !stdreflect.DeepEqual(lines[1:5], wantRect) {
		t.Errorf("rect edges = %v", lines[1:5])
	}
	if lines[5].Source != vectordoc.SourceShape {
		t.Errorf("lines[5].Source = %q", lines[5].Source)
	}
	// a closed triangle yields three spans, the last wrapping around
	closing := vectordoc.NewCategorizedLine(pt(2, 0), pt(0, 0), vectordoc.SourcePolygon)
	if lines[8] != closing {
		t.Errorf("lines[8] = %+v", lines[8])
	}

	// 3 path curves (cubic, quadratic, arc) then the circle
	if len(curves) != 4 {
		t.Fatalf("curves = %d", len(curves))
	}
	for i, want := range []string{vectordoc.SourcePath, vectordoc.SourcePath, vectordoc.SourcePath, vectordoc.SourceShape} {
		if curves[i].Source != want {
			t.Errorf("curves[%d].Source = %q", i, curves[i].Source)
		}
	}
	if _, ok := curves[3].Shape.(vectordoc.Circle); !ok {
		t.Errorf("curves[3].Shape = %T", curves[3].Shape)
	}
}
