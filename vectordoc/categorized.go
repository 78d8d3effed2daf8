package vectordoc

import (
	"encoding/json"
	"fmt"
)

// Provenance tags for categorized geometry.
const (
	SourcePath     = "path"
	SourceShape    = "shape"     // a <line> element
	SourceRect     = "rectangle" // one edge of a <rect>
	SourcePolyline = "polyline"
	SourcePolygon  = "polygon"
)

// CategorizedLine is one straight span collected from a path or a
// shape. Length is always recomputed from the endpoints.
type CategorizedLine struct {
	From, To Point
	Length   float64
	Source   string
}

// NewCategorizedLine builds a line with its length recomputed.
func NewCategorizedLine(from, to Point, source string) CategorizedLine {
	return CategorizedLine{From: from, To: to, Length: Distance(from, to), Source: source}
}

type categorizedLineJSON struct {
	Type   string  `json:"type"`
	Start  Point   `json:"start"`
	End    Point   `json:"end"`
	Length float64 `json:"length"`
	Source string  `json:"source"`
}

func (l CategorizedLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(categorizedLineJSON{
		Type: "line", Start: l.From, End: l.To,
		Length: Distance(l.From, l.To), Source: l.Source,
	})
}

func (l *CategorizedLine) UnmarshalJSON(b []byte) error {
	var raw categorizedLineJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	// the serialized length is ignored: it is derived data
	*l = NewCategorizedLine(raw.Start, raw.End, raw.Source)
	return nil
}

// CategorizedCurve is one curved element collected from a path
// segment (cubic, quadratic, arc) or from a circle/ellipse shape.
// Exactly one of Segment and Shape is set.
type CategorizedCurve struct {
	Segment Segment // cubic, quadratic or arc, when collected from a path
	Shape   Shape   // circle or ellipse, when collected from a shape
	Source  string
}

type categorizedCurveJSON struct {
	Type      string          `json:"type"`
	Operation string          `json:"operation,omitempty"`
	Data      json.RawMessage `json:"data"`
	Source    string          `json:"source"`
}

func (c CategorizedCurve) MarshalJSON() ([]byte, error) {
	switch {
	case c.Segment != nil:
		payload, err := json.Marshal(c.Segment.data())
		if err != nil {
			return nil, err
		}
		return json.Marshal(categorizedCurveJSON{
			Type: c.Segment.variant(), Operation: c.Segment.operation(),
			Data: payload, Source: c.Source,
		})
	case c.Shape != nil:
		// the payload is the full shape object, type tag included
		payload, err := marshalShape(c.Shape)
		if err != nil {
			return nil, err
		}
		return json.Marshal(categorizedCurveJSON{
			Type: c.Shape.shapeName(), Data: payload, Source: c.Source,
		})
	default:
		return nil, fmt.Errorf("categorized curve with no payload")
	}
}

func (c *CategorizedCurve) UnmarshalJSON(b []byte) error {
	var raw categorizedCurveJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Operation != "" {
		seg, err := decodeSegment(segmentEnvelope{Type: raw.Type, Operation: raw.Operation, Data: raw.Data})
		if err != nil {
			return err
		}
		*c = CategorizedCurve{Segment: seg, Source: raw.Source}
		return nil
	}
	shape, err := unmarshalShape(raw.Data)
	if err != nil {
		return err
	}
	*c = CategorizedCurve{Shape: shape, Source: raw.Source}
	return nil
}
