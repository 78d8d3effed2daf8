package svgdxf

import (
	"github.com/benoitkugler/svg2dxf/vectordoc"
)

// Fixed sample counts for Bézier flattening. The sampling is
// deliberately non adaptive: the output point count is part of the
// synthesizer's contract.
const (
	cubicSteps = 20 // 21 points
	quadSteps  = 15 // 16 points
)

// FlattenCubic samples a cubic Bézier at t = i/20 for i = 0..20,
// yielding 21 points; the first equals p0 and the last equals p3.
func FlattenCubic(p0, p1, p2, p3 vectordoc.Point) []vectordoc.Point {
	points := make([]vectordoc.Point, cubicSteps+1)
	for i := 0; i <= cubicSteps; i++ {
		t := float64(i) / cubicSteps
		u := 1 - t
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		points[i] = vectordoc.Point{
			a*p0[0] + b*p1[0] + c*p2[0] + d*p3[0],
			a*p0[1] + b*p1[1] + c*p2[1] + d*p3[1],
		}
	}
	return points
}

// FlattenQuadratic samples a quadratic Bézier at t = i/15 for
// i = 0..15, yielding 16 points; the first equals p0 and the last
// equals p2.
func FlattenQuadratic(p0, p1, p2 vectordoc.Point) []vectordoc.Point {
	points := make([]vectordoc.Point, quadSteps+1)
	for i := 0; i <= quadSteps; i++ {
		t := float64(i) / quadSteps
		u := 1 - t
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		a := u * u
		b := 2 * u * t
		c := t * t
		points[i] = vectordoc.Point{
			a*p0[0] + b*p1[0] + c*p2[0],
			a*p0[1] + b*p1[1] + c*p2[1],
		}
	}
	return points
}
