// Package dxfdoc provides a small in-memory model of a DXF drawing:
// a layer table and a flat list of entities, with a writer emitting
// the tagged ASCII format. It only covers the entity kinds produced
// by the SVG synthesizer (see svg2dxf/svgdxf): lines, lightweight
// polylines, splines, circles and ellipses.
package dxfdoc

import (
	"golang.org/x/image/math/f64"
)

// Point is a 2D coordinate in drawing space (origin bottom-left,
// Y growing upward).
type Point = f64.Vec2

// Color is an AutoCAD Color Index value.
type Color int

// The ACI colors used by the layer policy.
const (
	ColorRed     Color = 1
	ColorYellow  Color = 2
	ColorGreen   Color = 3
	ColorCyan    Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorWhite   Color = 7
)

// DefaultLayer is the implicit layer every DXF document carries.
const DefaultLayer = "0"

// Layer is one entry of the layer table.
type Layer struct {
	Name  string
	Color Color
}

// Entity is one drawing entity. It is a closed union: the
// implementations are Line, Polyline, Spline, Circle and Ellipse.
// Entities are owned by their document and share no state.
type Entity interface {
	// encode writes the entity's tag group sequence.
	encode(w *tagWriter)
}

// Line is a single straight segment.
type Line struct {
	Layer    string
	From, To Point
}

// Polyline is a lightweight polyline, optionally closed.
type Polyline struct {
	Layer  string
	Points []Point
	Closed bool
}

// Spline is a B-spline given by its control points; the writer adds
// a clamped uniform knot vector.
type Spline struct {
	Layer         string
	ControlPoints []Point
	Degree        int
}

// Circle is a full circle.
type Circle struct {
	Layer  string
	Center Point
	Radius float64
}

// Ellipse is a full ellipse, defined by its center, the endpoint of
// its major axis relative to the center, and the minor/major ratio.
type Ellipse struct {
	Layer     string
	Center    Point
	MajorAxis Point
	Ratio     float64
}

// Document is a drawing: its layer table and its entities, in
// insertion order.
type Document struct {
	Layers   []Layer
	Entities []Entity
}

// New returns an empty drawing carrying only the implicit "0" layer.
func New() *Document {
	return &Document{Layers: []Layer{{Name: DefaultLayer, Color: ColorWhite}}}
}

// AddLayer appends a layer to the table.
func (d *Document) AddLayer(name string, color Color) {
	d.Layers = append(d.Layers, Layer{Name: name, Color: color})
}

// Add appends an entity to the drawing.
func (d *Document) Add(e Entity) {
	d.Entities = append(d.Entities, e)
}
