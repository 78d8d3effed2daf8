package vectordoc

import (
	"encoding/json"
	"fmt"
)

// Shape is one primitive SVG shape element. Like Segment it is a
// closed union; the implementations are Rectangle, Circle, Ellipse,
// LineShape and Polyline.
type Shape interface {
	// shapeName is the wire discriminator (rectangle, circle,
	// ellipse, line, polyline, polygon).
	shapeName() string
}

// Rectangle is a <rect>, axis aligned, position plus size.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Fill, Stroke  string
}

// Corners lists the four corner points clockwise from top-left
// (canvas space, so "top" is the smaller Y).
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X + r.Width, r.Y + r.Height},
		{r.X, r.Y + r.Height},
	}
}

// Circle is a <circle>.
type Circle struct {
	Center       Point
	Radius       float64
	Fill, Stroke string
}

// Ellipse is an axis aligned <ellipse>.
type Ellipse struct {
	Center           Point
	RadiusX, RadiusY float64
	Fill, Stroke     string
}

// LineShape is a <line> element (as opposed to a Line path segment).
type LineShape struct {
	From, To Point
	Stroke   string
}

// Polyline is a <polyline> or <polygon>; Closed distinguishes the two.
type Polyline struct {
	Points       []Point
	Closed       bool
	Fill, Stroke string
}

func (Rectangle) shapeName() string { return "rectangle" }
func (Circle) shapeName() string    { return "circle" }
func (Ellipse) shapeName() string   { return "ellipse" }
func (LineShape) shapeName() string { return "line" }
func (p Polyline) shapeName() string {
	if p.Closed {
		return "polygon"
	}
	return "polyline"
}

// wire forms, field order matches the persisted schema

type rectangleJSON struct {
	Type    string   `json:"type"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Corners [4]Point `json:"corners"`
	Fill    string   `json:"fill"`
	Stroke  string   `json:"stroke"`
}

type circleJSON struct {
	Type   string  `json:"type"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill"`
	Stroke string  `json:"stroke"`
}

type ellipseJSON struct {
	Type    string  `json:"type"`
	Center  Point   `json:"center"`
	RadiusX float64 `json:"radius_x"`
	RadiusY float64 `json:"radius_y"`
	Fill    string  `json:"fill"`
	Stroke  string  `json:"stroke"`
}

type lineShapeJSON struct {
	Type   string  `json:"type"`
	Start  Point   `json:"start"`
	End    Point   `json:"end"`
	Length float64 `json:"length"`
	Stroke string  `json:"stroke"`
}

type polylineJSON struct {
	Type      string  `json:"type"`
	Points    []Point `json:"points"`
	NumPoints int     `json:"num_points"`
	Closed    bool    `json:"closed"`
	Fill      string  `json:"fill"`
	Stroke    string  `json:"stroke"`
}

func marshalShape(s Shape) ([]byte, error) {
	switch s := s.(type) {
	case Rectangle:
		return json.Marshal(rectangleJSON{
			Type: s.shapeName(), X: s.X, Y: s.Y, Width: s.Width, Height: s.Height,
			Corners: s.Corners(), Fill: s.Fill, Stroke: s.Stroke,
		})
	case Circle:
		return json.Marshal(circleJSON{
			Type: s.shapeName(), Center: s.Center, Radius: s.Radius,
			Fill: s.Fill, Stroke: s.Stroke,
		})
	case Ellipse:
		return json.Marshal(ellipseJSON{
			Type: s.shapeName(), Center: s.Center, RadiusX: s.RadiusX, RadiusY: s.RadiusY,
			Fill: s.Fill, Stroke: s.Stroke,
		})
	case LineShape:
		return json.Marshal(lineShapeJSON{
			Type: s.shapeName(), Start: s.From, End: s.To,
			Length: Distance(s.From, s.To), Stroke: s.Stroke,
		})
	case Polyline:
		pts := s.Points
		if pts == nil {
			pts = []Point{} // an empty point list stays a list on the wire
		}
		return json.Marshal(polylineJSON{
			Type: s.shapeName(), Points: pts, NumPoints: len(s.Points),
			Closed: s.Closed, Fill: s.Fill, Stroke: s.Stroke,
		})
	default:
		return nil, fmt.Errorf("unknown shape %T", s)
	}
}

func unmarshalShape(b []byte) (Shape, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case "rectangle":
		var raw rectangleJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return Rectangle{X: raw.X, Y: raw.Y, Width: raw.Width, Height: raw.Height,
			Fill: raw.Fill, Stroke: raw.Stroke}, nil
	case "circle":
		var raw circleJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return Circle{Center: raw.Center, Radius: raw.Radius,
			Fill: raw.Fill, Stroke: raw.Stroke}, nil
	case "ellipse":
		var raw ellipseJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return Ellipse{Center: raw.Center, RadiusX: raw.RadiusX, RadiusY: raw.RadiusY,
			Fill: raw.Fill, Stroke: raw.Stroke}, nil
	case "line":
		var raw lineShapeJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return LineShape{From: raw.Start, To: raw.End, Stroke: raw.Stroke}, nil
	case "polyline", "polygon":
		var raw polylineJSON
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, err
		}
		return Polyline{Points: raw.Points, Closed: head.Type == "polygon",
			Fill: raw.Fill, Stroke: raw.Stroke}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", head.Type)
	}
}

// Shapes is the document shape collection.
type Shapes []Shape

func (ss Shapes) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, len(ss))
	for i, s := range ss {
		b, err := marshalShape(s)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return json.Marshal(out)
}

func (ss *Shapes) UnmarshalJSON(b []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(b, &raws); err != nil {
		return err
	}
	out := make(Shapes, len(raws))
	for i, raw := range raws {
		s, err := unmarshalShape(raw)
		if err != nil {
			return err
		}
		out[i] = s
	}
	*ss = out
	return nil
}
