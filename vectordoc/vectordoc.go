// Package vectordoc defines the intermediate vector document:
// the typed representation of the geometry extracted from an SVG
// file, together with its JSON serialization.
// The document is the sole contract between extraction (see
// svg2dxf/svgextract) and synthesis (see svg2dxf/svgdxf): it is
// written once, persisted, and later consumed unchanged, so its
// serialized form must round-trip field for field.
package vectordoc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/f64"
)

// Point is a 2D coordinate in canvas space (origin top-left,
// Y growing downward). It serializes as a two-element [x,y] array.
type Point = f64.Vec2

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}

// NotSpecified is the placeholder stored for missing top-level
// SVG attributes, preserved verbatim in the serialized document.
const NotSpecified = "not specified"

// Metadata holds the raw top level attributes of the <svg> element.
// Values are kept as strings: unit suffixes and the viewBox layout
// are only interpreted when resolving the canvas height.
type Metadata struct {
	ViewBox string `json:"viewBox"`
	Width   string `json:"width"`
	Height  string `json:"height"`
}

// CanvasHeight resolves the canvas height used for the canvas to
// drawing space flip. The height attribute wins, with any non numeric
// unit suffix stripped; otherwise the fourth component of a 4-tuple
// viewBox is used. The second return value is false when neither
// source yields a height; the transform then degrades to identity.
func (m Metadata) CanvasHeight() (float64, bool) {
	if m.Height != NotSpecified && m.Height != "" {
		if h, err := strconv.ParseFloat(stripUnits(m.Height), 64); err == nil {
			return h, true
		}
	}
	if m.ViewBox != NotSpecified && m.ViewBox != "" {
		parts := strings.Fields(m.ViewBox)
		if len(parts) == 4 {
			if h, err := strconv.ParseFloat(parts[3], 64); err == nil {
				return h, true
			}
		}
	}
	return 0, false
}

// stripUnits keeps only digits and decimal points, so that values
// like "120px" or "12.5pt" resolve to their numeric part.
func stripUnits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Path is one <path> element: its ordered segment sequence plus the
// style hints carried through to the output for provenance only.
// The segment sequence may contain several disjoint contours,
// delimited by Move segments.
type Path struct {
	D           string   `json:"d"`
	Fill        string   `json:"fill"`
	Stroke      string   `json:"stroke"`
	StrokeWidth string   `json:"stroke_width"`
	Segments    Segments `json:"segments"`
}

// Summary counts the document collections; it is recomputed on save
// and checked against the collections on load.
type Summary struct {
	TotalPaths  int `json:"total_paths"`
	TotalShapes int `json:"total_shapes"`
	TotalLines  int `json:"total_lines"`
	TotalCurves int `json:"total_curves"`
}

// Document is the persisted intermediate representation of one SVG
// file: canvas metadata, raw paths and shapes, and the categorized
// flat line/curve collections derived from them.
type Document struct {
	File     string             `json:"file"`
	Metadata Metadata           `json:"svg_metadata"`
	Paths    []Path             `json:"paths"`
	Shapes   Shapes             `json:"shapes"`
	Lines    []CategorizedLine  `json:"lines"`
	Curves   []CategorizedCurve `json:"curves"`
	Summary  Summary            `json:"summary"`
}

// UpdateSummary recomputes the summary block from the collections.
func (d *Document) UpdateSummary() {
	d.Summary = Summary{
		TotalPaths:  len(d.Paths),
		TotalShapes: len(d.Shapes),
		TotalLines:  len(d.Lines),
		TotalCurves: len(d.Curves),
	}
}
