package svgextract

import (
	"encoding/xml"
	"log"
	"strconv"
	"strings"

	"github.com/benoitkugler/svg2dxf/vectordoc"
)

type elementFunc func(c *cursor, attrs []xml.Attr) error

var elementFuncs = map[string]elementFunc{
	"svg":      svgF,
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  ellipseF,
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

// handleError applies the cursor error mode to a recoverable,
// per-element error.
func (c *cursor) handleError(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Println("svgextract:", err)
	}
	return nil
}

// attrValue returns the named attribute, or def when absent.
func attrValue(attrs []xml.Attr, name, def string) string {
	for _, attr := range attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return def
}

// attrFloat parses a numeric attribute; missing or malformed values
// default to 0, matching the extraction contract.
func attrFloat(attrs []xml.Attr, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(attrValue(attrs, name, "")), 64)
	if err != nil {
		return 0
	}
	return v
}

func svgF(c *cursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			c.doc.Metadata.ViewBox = attr.Value
		case "width":
			c.doc.Metadata.Width = attr.Value
		case "height":
			c.doc.Metadata.Height = attr.Value
		}
	}
	return nil
}

func pathF(c *cursor, attrs []xml.Attr) error {
	d := attrValue(attrs, "d", "")
	if d == "" {
		return nil
	}
	segments, err := ParsePath(d)
	if err != nil {
		// a malformed path is contained to that one element
		return c.handleError(err)
	}
	c.doc.Paths = append(c.doc.Paths, vectordoc.Path{
		D:           d,
		Fill:        attrValue(attrs, "fill", "none"),
		Stroke:      attrValue(attrs, "stroke", "none"),
		StrokeWidth: attrValue(attrs, "stroke-width", "1"),
		Segments:    segments,
	})
	return nil
}

func rectF(c *cursor, attrs []xml.Attr) error {
	c.doc.Shapes = append(c.doc.Shapes, vectordoc.Rectangle{
		X:      attrFloat(attrs, "x"),
		Y:      attrFloat(attrs, "y"),
		Width:  attrFloat(attrs, "width"),
		Height: attrFloat(attrs, "height"),
		Fill:   attrValue(attrs, "fill", "none"),
		Stroke: attrValue(attrs, "stroke", "none"),
	})
	return nil
}

func circleF(c *cursor, attrs []xml.Attr) error {
	c.doc.Shapes = append(c.doc.Shapes, vectordoc.Circle{
		Center: vectordoc.Point{attrFloat(attrs, "cx"), attrFloat(attrs, "cy")},
		Radius: attrFloat(attrs, "r"),
		Fill:   attrValue(attrs, "fill", "none"),
		Stroke: attrValue(attrs, "stroke", "none"),
	})
	return nil
}

func ellipseF(c *cursor, attrs []xml.Attr) error {
	c.doc.Shapes = append(c.doc.Shapes, vectordoc.Ellipse{
		Center:  vectordoc.Point{attrFloat(attrs, "cx"), attrFloat(attrs, "cy")},
		RadiusX: attrFloat(attrs, "rx"),
		RadiusY: attrFloat(attrs, "ry"),
		Fill:    attrValue(attrs, "fill", "none"),
		Stroke:  attrValue(attrs, "stroke", "none"),
	})
	return nil
}

func lineF(c *cursor, attrs []xml.Attr) error {
	c.doc.Shapes = append(c.doc.Shapes, vectordoc.LineShape{
		From:   vectordoc.Point{attrFloat(attrs, "x1"), attrFloat(attrs, "y1")},
		To:     vectordoc.Point{attrFloat(attrs, "x2"), attrFloat(attrs, "y2")},
		Stroke: attrValue(attrs, "stroke", "none"),
	})
	return nil
}

func polylineF(c *cursor, attrs []xml.Attr) error {
	return polyShape(c, attrs, false)
}

func polygonF(c *cursor, attrs []xml.Attr) error {
	return polyShape(c, attrs, true)
}

func polyShape(c *cursor, attrs []xml.Attr, closed bool) error {
	c.doc.Shapes = append(c.doc.Shapes, vectordoc.Polyline{
		Points: parsePointList(attrValue(attrs, "points", "")),
		Closed: closed,
		Fill:   attrValue(attrs, "fill", "none"),
		Stroke: attrValue(attrs, "stroke", "none"),
	})
	return nil
}

// parsePointList reads a comma or whitespace delimited coordinate
// list into points. A malformed list yields an empty point list, not
// a failure; a trailing unpaired coordinate is dropped.
func parsePointList(s string) []vectordoc.Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	coords := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		coords = append(coords, v)
	}
	var points []vectordoc.Point
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, vectordoc.Point{coords[i], coords[i+1]})
	}
	return points
}
