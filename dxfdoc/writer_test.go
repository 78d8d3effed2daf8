package dxfdoc

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func tags(t *testing.T, d *Document) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

// pairAfter returns the value following the first occurrence of the
// given (code, value) pair plus offset lines.
func pairAfter(lines []string, code, value string, offset int) string {
	for i := 0; i+1 < len(lines); i += 2 {
		if lines[i] == code && lines[i+1] == value {
			return lines[i+1+offset]
		}
	}
	return ""
}

func TestDocumentSkeleton(t *testing.T) {
	lines := tags(t, New())

	// tagged ASCII comes in (code, value) pairs
	if len(lines)%2 != 0 {
		t.Fatalf("odd line count %d", len(lines))
	}
	if lines[len(lines)-2] != "0" || lines[len(lines)-1] != "EOF" {
		t.Errorf("missing EOF, got %q", lines[len(lines)-2:])
	}
	if pairAfter(lines, "9", "$ACADVER", 2) != "AC1015" {
		t.Error("missing $ACADVER AC1015")
	}

	// the empty document still carries the implicit "0" layer
	out := strings.Join(lines, "\n")
	if !strings.Contains(out, "0\nLAYER\n2\n0\n70\n0\n62\n7\n6\nCONTINUOUS") {
		t.Errorf("missing default layer in:\n%s", out)
	}
}

func TestLayerTable(t *testing.T) {
	d := New()
	d.AddLayer("LINES", ColorWhite)
	d.AddLayer("CURVES", ColorGreen)
	out := strings.Join(tags(t, d), "\n")

	if !strings.Contains(out, "0\nLAYER\n2\nLINES\n70\n0\n62\n7") {
		t.Error("missing LINES layer")
	}
	if !strings.Contains(out, "0\nLAYER\n2\nCURVES\n70\n0\n62\n3") {
		t.Error("missing CURVES layer")
	}
}

func TestEntityEncoding(t *testing.T) {
	d := New()
	d.Add(Line{Layer: "0", From: Point{0, 0}, To: Point{10, 20}})
	d.Add(Polyline{Layer: "0", Points: []Point{{0, 0}, {1, 1}, {2, 0}}, Closed: true})
	d.Add(Circle{Layer: "0", Center: Point{5, 5}, Radius: 2.5})
	d.Add(Ellipse{Layer: "0", Center: Point{1, 1}, MajorAxis: Point{4, 0}, Ratio: 0.5})
	out := strings.Join(tags(t, d), "\n")

	if !strings.Contains(out, "0\nLINE\n8\n0\n10\n0\n20\n0\n30\n0\n11\n10\n21\n20\n31\n0") {
		t.Errorf("bad LINE in:\n%s", out)
	}
	if !strings.Contains(out, "0\nLWPOLYLINE\n8\n0\n90\n3\n70\n1\n10\n0\n20\n0\n10\n1\n20\n1\n10\n2\n20\n0") {
		t.Errorf("bad LWPOLYLINE in:\n%s", out)
	}
	if !strings.Contains(out, "0\nCIRCLE\n8\n0\n10\n5\n20\n5\n30\n0\n40\n2.5") {
		t.Errorf("bad CIRCLE in:\n%s", out)
	}
	if !strings.Contains(out, "0\nELLIPSE\n8\n0\n10\n1\n20\n1\n30\n0\n11\n4\n21\n0\n31\n0\n40\n0.5") {
		t.Errorf("bad ELLIPSE in:\n%s", out)
	}
}

func TestSplineEncoding(t *testing.T) {
	d := New()
	d.Add(Spline{Layer: "0", Degree: 3, ControlPoints: []Point{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
	}})
	out := strings.Join(tags(t, d), "\n")

	// degree 3, 8 knots, 4 control points
	if !strings.Contains(out, "0\nSPLINE\n8\n0\n70\n8\n71\n3\n72\n8\n73\n4\n74\n0") {
		t.Errorf("bad SPLINE header in:\n%s", out)
	}
	// clamped at both ends: 0,0,0,0,1,1,1,1
	if strings.Count(out, "40\n0\n") < 4 || strings.Count(out, "40\n1\n") < 4 {
		t.Errorf("bad knot vector in:\n%s", out)
	}
}

func TestClampedKnots(t *testing.T) {
	tests := []struct {
		degree, control int
		want            []float64
	}{
		{3, 4, []float64{0, 0, 0, 0, 1, 1, 1, 1}},
		{3, 6, []float64{0, 0, 0, 0, 1.0 / 3, 2.0 / 3, 1, 1, 1, 1}},
		{2, 3, []float64{0, 0, 0, 1, 1, 1}},
	}
	for _, test := range tests {
		got := clampedKnots(test.degree, test.control)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("clampedKnots(%d, %d) = %v, expected %v",
				test.degree, test.control, got, test.want)
		}
	}
}

func TestDeterministicOutput(t *testing.T) {
	d := New()
	d.AddLayer("LINES", ColorWhite)
	d.Add(Line{Layer: "LINES", From: Point{0, 0}, To: Point{1, 1}})

	var a, b bytes.Buffer
	if err := d.WriteTo(&a); err != nil {
		t.Fatal(err)
	}
	if err := d.WriteTo(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("output differs between writes")
	}
}
