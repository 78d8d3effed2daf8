package vectordoc

import (
	"encoding/json"
	"fmt"
)

// This file defines the typed path segment union and its
// serialization. Each variant maps to one command of the SVG path
// mini-language, with all coordinates already resolved to absolute
// canvas space by the interpreter.

// Segment is one parsed path command. It is a closed union: the only
// implementations are Move, Line, CubicBezier, QuadraticBezier, Arc
// and Close, so consumers may type switch exhaustively.
type Segment interface {
	// Start is the point the segment begins at.
	Start() Point
	// End is the point left as current point after the segment.
	End() Point

	// operation is the one-letter wire tag (m, l, c, q, a, z).
	operation() string
	// variant is the wire type name (Move, Line, CubicBezier, ...).
	variant() string
	// data returns the kind-specific payload for serialization.
	data() interface{}
}

// Move starts a new disjoint contour. Both points are the move
// target: a move draws nothing.
type Move struct {
	From, To Point
}

// Line is a straight span between two points.
type Line struct {
	From, To Point
}

// CubicBezier is a cubic curve with two control points.
type CubicBezier struct {
	From, Control1, Control2, To Point
}

// QuadraticBezier is a quadratic curve with one control point.
type QuadraticBezier struct {
	From, Control, To Point
}

// Arc is an elliptical arc in SVG endpoint parameterization.
// Rotation is in degrees; LargeArc and Sweep are the two arc flags.
type Arc struct {
	From     Point
	Radius   Point // (rx, ry)
	Rotation float64
	LargeArc bool
	Sweep    bool
	To       Point
}

// Close closes the current contour back to its starting point.
type Close struct {
	From, To Point
}

func (s Move) Start() Point            { return s.From }
func (s Move) End() Point              { return s.To }
func (s Line) Start() Point            { return s.From }
func (s Line) End() Point              { return s.To }
func (s CubicBezier) Start() Point     { return s.From }
func (s CubicBezier) End() Point       { return s.To }
func (s QuadraticBezier) Start() Point { return s.From }
func (s QuadraticBezier) End() Point   { return s.To }
func (s Arc) Start() Point             { return s.From }
func (s Arc) End() Point               { return s.To }
func (s Close) Start() Point           { return s.From }
func (s Close) End() Point             { return s.To }

func (Move) operation() string            { return "m" }
func (Line) operation() string            { return "l" }
func (CubicBezier) operation() string     { return "c" }
func (QuadraticBezier) operation() string { return "q" }
func (Arc) operation() string             { return "a" }
func (Close) operation() string           { return "z" }

func (Move) variant() string            { return "Move" }
func (Line) variant() string            { return "Line" }
func (CubicBezier) variant() string     { return "CubicBezier" }
func (QuadraticBezier) variant() string { return "QuadraticBezier" }
func (Arc) variant() string             { return "Arc" }
func (Close) variant() string           { return "Close" }

// wire payloads, field order matches the persisted schema

type moveData struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

type lineData struct {
	Start  Point   `json:"start"`
	End    Point   `json:"end"`
	Length float64 `json:"length"`
}

type cubicData struct {
	Start    Point `json:"start"`
	Control1 Point `json:"control1"`
	Control2 Point `json:"control2"`
	End      Point `json:"end"`
}

type quadData struct {
	Start   Point `json:"start"`
	Control Point `json:"control"`
	End     Point `json:"end"`
}

type arcData struct {
	Start    Point   `json:"start"`
	Radius   Point   `json:"radius"`
	Rotation float64 `json:"rotation"`
	Arc      bool    `json:"arc"`
	Sweep    bool    `json:"sweep"`
	End      Point   `json:"end"`
}

func (s Move) data() interface{} { return moveData{Start: s.From, End: s.To} }

// The line length is always recomputed from the endpoints, never
// carried over from an input document.
func (s Line) data() interface{} {
	return lineData{Start: s.From, End: s.To, Length: Distance(s.From, s.To)}
}

func (s CubicBezier) data() interface{} {
	return cubicData{Start: s.From, Control1: s.Control1, Control2: s.Control2, End: s.To}
}

func (s QuadraticBezier) data() interface{} {
	return quadData{Start: s.From, Control: s.Control, End: s.To}
}

func (s Arc) data() interface{} {
	return arcData{Start: s.From, Radius: s.Radius, Rotation: s.Rotation,
		Arc: s.LargeArc, Sweep: s.Sweep, End: s.To}
}

func (s Close) data() interface{} { return moveData{Start: s.From, End: s.To} }

// Segments is an ordered segment sequence with the wire encoding
// {"type": ..., "operation": ..., "data": {...}} per element.
type Segments []Segment

type segmentEnvelope struct {
	Type      string          `json:"type"`
	Operation string          `json:"operation"`
	Data      json.RawMessage `json:"data"`
}

func (ss Segments) MarshalJSON() ([]byte, error) {
	out := make([]segmentEnvelope, len(ss))
	for i, s := range ss {
		payload, err := json.Marshal(s.data())
		if err != nil {
			return nil, err
		}
		out[i] = segmentEnvelope{Type: s.variant(), Operation: s.operation(), Data: payload}
	}
	return json.Marshal(out)
}

func (ss *Segments) UnmarshalJSON(b []byte) error {
	var envelopes []segmentEnvelope
	if err := json.Unmarshal(b, &envelopes); err != nil {
		return err
	}
	out := make(Segments, len(envelopes))
	for i, env := range envelopes {
		seg, err := decodeSegment(env)
		if err != nil {
			return err
		}
		out[i] = seg
	}
	*ss = out
	return nil
}

func decodeSegment(env segmentEnvelope) (Segment, error) {
	switch env.Operation {
	case "m":
		var d moveData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return Move{From: d.Start, To: d.End}, nil
	case "l":
		var d lineData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return Line{From: d.Start, To: d.End}, nil
	case "c":
		var d cubicData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return CubicBezier{From: d.Start, Control1: d.Control1, Control2: d.Control2, To: d.End}, nil
	case "q":
		var d quadData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return QuadraticBezier{From: d.Start, Control: d.Control, To: d.End}, nil
	case "a":
		var d arcData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return Arc{From: d.Start, Radius: d.Radius, Rotation: d.Rotation,
			LargeArc: d.Arc, Sweep: d.Sweep, To: d.End}, nil
	case "z":
		var d moveData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			return nil, err
		}
		return Close{From: d.Start, To: d.End}, nil
	default:
		return nil, fmt.Errorf("unknown segment operation %q", env.Operation)
	}
}

// pathJSON fixes the constant "type":"path" discriminator on the wire.
type pathJSON struct {
	Type        string   `json:"type"`
	D           string   `json:"d"`
	Fill        string   `json:"fill"`
	Stroke      string   `json:"stroke"`
	StrokeWidth string   `json:"stroke_width"`
	Segments    Segments `json:"segments"`
}

func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(pathJSON{
		Type:        "path",
		D:           p.D,
		Fill:        p.Fill,
		Stroke:      p.Stroke,
		StrokeWidth: p.StrokeWidth,
		Segments:    p.Segments,
	})
}

func (p *Path) UnmarshalJSON(b []byte) error {
	var raw pathJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Type != "path" {
		return fmt.Errorf("unexpected path type %q", raw.Type)
	}
	*p = Path{D: raw.D, Fill: raw.Fill, Stroke: raw.Stroke,
		StrokeWidth: raw.StrokeWidth, Segments: raw.Segments}
	return nil
}
