package dxfdoc

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
)

// The DXF tagged ASCII format is a flat stream of (group code, value)
// pairs, one per line. This writer emits the minimal document
// skeleton accepted by CAD tools: a HEADER naming the version, the
// LAYER table, and the ENTITIES section.

// tagWriter accumulates group/value pairs, keeping the first error.
type tagWriter struct {
	w   *bufio.Writer
	err error
}

func (t *tagWriter) tag(code int, value string) {
	if t.err != nil {
		return
	}
	_, err := t.w.WriteString(strconv.Itoa(code) + "\n" + value + "\n")
	t.err = err
}

func (t *tagWriter) tagInt(code, value int) {
	t.tag(code, strconv.Itoa(value))
}

func (t *tagWriter) tagFloat(code int, value float64) {
	t.tag(code, strconv.FormatFloat(value, 'f', -1, 64))
}

// tagPoint writes the x,y,z groups for the given base code
// (10/20/30, 11/21/31, ...). Z is always 0: the drawing is planar.
func (t *tagWriter) tagPoint(code int, p Point) {
	t.tagFloat(code, p[0])
	t.tagFloat(code+10, p[1])
	t.tagFloat(code+20, 0)
}

// WriteTo emits the document as tagged ASCII DXF.
func (d *Document) WriteTo(w io.Writer) error {
	t := &tagWriter{w: bufio.NewWriter(w)}

	t.tag(0, "SECTION")
	t.tag(2, "HEADER")
	t.tag(9, "$ACADVER")
	t.tag(1, "AC1015")
	t.tag(0, "ENDSEC")

	t.tag(0, "SECTION")
	t.tag(2, "TABLES")
	t.tag(0, "TABLE")
	t.tag(2, "LAYER")
	t.tagInt(70, len(d.Layers))
	for _, l := range d.Layers {
		t.tag(0, "LAYER")
		t.tag(2, l.Name)
		t.tagInt(70, 0)
		t.tagInt(62, int(l.Color))
		t.tag(6, "CONTINUOUS")
	}
	t.tag(0, "ENDTAB")
	t.tag(0, "ENDSEC")

	t.tag(0, "SECTION")
	t.tag(2, "ENTITIES")
	for _, e := range d.Entities {
		e.encode(t)
	}
	t.tag(0, "ENDSEC")
	t.tag(0, "EOF")

	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}

// Save writes the document to the named file.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (e Line) encode(t *tagWriter) {
	t.tag(0, "LINE")
	t.tag(8, e.Layer)
	t.tagPoint(10, e.From)
	t.tagPoint(11, e.To)
}

func (e Polyline) encode(t *tagWriter) {
	t.tag(0, "LWPOLYLINE")
	t.tag(8, e.Layer)
	t.tagInt(90, len(e.Points))
	closed := 0
	if e.Closed {
		closed = 1
	}
	t.tagInt(70, closed)
	for _, p := range e.Points {
		t.tagFloat(10, p[0])
		t.tagFloat(20, p[1])
	}
}

func (e Spline) encode(t *tagWriter) {
	knots := clampedKnots(e.Degree, len(e.ControlPoints))
	t.tag(0, "SPLINE")
	t.tag(8, e.Layer)
	t.tagInt(70, 8) // planar
	t.tagInt(71, e.Degree)
	t.tagInt(72, len(knots))
	t.tagInt(73, len(e.ControlPoints))
	t.tagInt(74, 0)
	for _, k := range knots {
		t.tagFloat(40, k)
	}
	for _, p := range e.ControlPoints {
		t.tagPoint(10, p)
	}
}

// clampedKnots builds a clamped uniform knot vector: degree+1
// repeated end knots and uniformly spaced interior knots.
func clampedKnots(degree, control int) []float64 {
	n := degree + control + 1
	knots := make([]float64, n)
	interior := control - degree // spans between the clamped ends
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= control:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(interior)
		}
	}
	return knots
}

func (e Circle) encode(t *tagWriter) {
	t.tag(0, "CIRCLE")
	t.tag(8, e.Layer)
	t.tagPoint(10, e.Center)
	t.tagFloat(40, e.Radius)
}

func (e Ellipse) encode(t *tagWriter) {
	t.tag(0, "ELLIPSE")
	t.tag(8, e.Layer)
	t.tagPoint(10, e.Center)
	t.tagPoint(11, e.MajorAxis)
	t.tagFloat(40, e.Ratio)
	t.tagFloat(41, 0)
	t.tagFloat(42, 2*math.Pi)
}
