// Package svgdxf synthesizes a DXF drawing (see svg2dxf/dxfdoc) from
// an intermediate vector document (see svg2dxf/vectordoc). It is the
// only place the canvas-to-drawing coordinate flip happens: every
// point is flipped exactly once, inside the emitter, so extraction
// and accumulation always work in canvas space.
package svgdxf

import (
	"github.com/benoitkugler/svg2dxf/dxfdoc"
	"github.com/benoitkugler/svg2dxf/vectordoc"
)

// The fixed layer names used when organizing entities by kind.
const (
	LayerLines  = "LINES"
	LayerCurves = "CURVES"
	LayerShapes = "SHAPES"
	LayerPaths  = "PATHS"
)

// Options configures the synthesis.
type Options struct {
	// LayerByType organizes entities into the LINES, CURVES,
	// SHAPES and PATHS layers; when false everything lands on the
	// default "0" layer.
	LayerByType bool
}

// layer resolves a logical layer name under the current policy.
func (o Options) layer(name string) string {
	if o.LayerByType {
		return name
	}
	return dxfdoc.DefaultLayer
}

// Stats counts the synthesized geometry. The counters tally the
// source elements encountered, including degenerate ones that were
// skipped at emission.
type Stats struct {
	Lines     int
	Polylines int
	Splines   int
	Circles   int
	Ellipses  int
	Arcs      int

	// HeightResolved is false when the document metadata yields no
	// canvas height; the flip then degrades to identity and output
	// coordinates stay in canvas space.
	HeightResolved bool
}

// Total is the number of source elements tallied.
func (s Stats) Total() int {
	return s.Lines + s.Polylines + s.Splines + s.Circles + s.Ellipses + s.Arcs
}

// Synthesize converts a vector document into a DXF drawing. It is a
// pure function of its inputs: synthesizing the same document twice
// yields identical drawings.
func Synthesize(doc *vectordoc.Document, opts Options) (*dxfdoc.Document, Stats) {
	out := dxfdoc.New()
	if opts.LayerByType {
		out.AddLayer(LayerLines, dxfdoc.ColorWhite)
		out.AddLayer(LayerCurves, dxfdoc.ColorGreen)
		out.AddLayer(LayerShapes, dxfdoc.ColorCyan)
		out.AddLayer(LayerPaths, dxfdoc.ColorYellow)
	}

	height, resolved := doc.Metadata.CanvasHeight()
	e := &emitter{out: out, height: height, flip: resolved}
	e.stats.HeightResolved = resolved

	for _, path := range doc.Paths {
		e.path(path, opts.layer(LayerPaths))
	}
	for _, shape := range doc.Shapes {
		e.shape(shape, opts.layer(LayerShapes))
	}
	for _, line := range doc.Lines {
		e.line(line.From, line.To, opts.layer(LayerLines))
	}
	// circle and ellipse curves are re-emitted from the categorized
	// collection even though the shape walk above already produced
	// them; both collections are part of the output contract
	for _, curve := range doc.Curves {
		e.curve(curve, opts.layer(LayerCurves))
	}

	return out, e.stats
}

// emitter appends entities to the drawing, applying the coordinate
// flip. All receiving points are canvas space; the flip happens here
// and nowhere else.
type emitter struct {
	out    *dxfdoc.Document
	height float64
	flip   bool
	stats  Stats
}

// pt converts one canvas-space point to drawing space.
func (e *emitter) pt(p vectordoc.Point) dxfdoc.Point {
	if !e.flip {
		return p
	}
	return dxfdoc.Point{p[0], e.height - p[1]}
}

func (e *emitter) pts(points []vectordoc.Point) []dxfdoc.Point {
	out := make([]dxfdoc.Point, len(points))
	for i, p := range points {
		out[i] = e.pt(p)
	}
	return out
}

func (e *emitter) line(from, to vectordoc.Point, layer string) {
	e.out.Add(dxfdoc.Line{Layer: layer, From: e.pt(from), To: e.pt(to)})
}

// polyline drops degenerate input (fewer than two points).
func (e *emitter) polyline(points []vectordoc.Point, layer string, closed bool) {
	if len(points) < 2 {
		return
	}
	e.out.Add(dxfdoc.Polyline{Layer: layer, Points: e.pts(points), Closed: closed})
}

func (e *emitter) spline(controlPoints []vectordoc.Point, layer string) {
	e.out.Add(dxfdoc.Spline{Layer: layer, ControlPoints: e.pts(controlPoints), Degree: 3})
}

// circle skips non-positive radii.
func (e *emitter) circle(center vectordoc.Point, radius float64, layer string) {
	if radius <= 0 {
		return
	}
	e.out.Add(dxfdoc.Circle{Layer: layer, Center: e.pt(center), Radius: radius})
}

// ellipse skips degenerate radii. The major axis lies along whichever
// of X/Y has the larger radius; the ratio is min/max.
func (e *emitter) ellipse(center vectordoc.Point, rx, ry float64, layer string) {
	if rx <= 0 || ry <= 0 {
		return
	}
	major, ratio := dxfdoc.Point{rx, 0}, ry/rx
	if ry > rx {
		major, ratio = dxfdoc.Point{0, ry}, rx/ry
	}
	e.out.Add(dxfdoc.Ellipse{Layer: layer, Center: e.pt(center), MajorAxis: major, Ratio: ratio})
}

// path walks a path's segments with a fresh accumulation state.
//
// Accumulation rules: straight spans grow the current polyline; a
// move flushes it open; a close flushes it closed; curves never join
// it. Cubics become standalone splines, quadratics standalone
// flattened polylines, and arcs two-point stubs (the arc geometry is
// deliberately not reconstructed).
func (e *emitter) path(path vectordoc.Path, layer string) {
	b := pathBuilder{e: e, layer: layer}
	for _, seg := range path.Segments {
		switch seg := seg.(type) {
		case vectordoc.Move:
			b.flush(false)
			b.points = append(b.points, seg.To)
		case vectordoc.Line:
			if len(b.points) == 0 {
				b.points = append(b.points, seg.From)
			}
			b.points = append(b.points, seg.To)
			e.stats.Lines++
		case vectordoc.CubicBezier:
			e.spline(FlattenCubic(seg.From, seg.Control1, seg.Control2, seg.To), layer)
			e.stats.Splines++
		case vectordoc.QuadraticBezier:
			e.polyline(FlattenQuadratic(seg.From, seg.Control, seg.To), layer, false)
			e.stats.Polylines++
		case vectordoc.Arc:
			e.polyline([]vectordoc.Point{seg.From, seg.To}, layer, false)
			e.stats.Arcs++
		case vectordoc.Close:
			b.flush(true)
		}
	}
	b.flush(false)
}

// pathBuilder is the per-path polyline accumulation state.
type pathBuilder struct {
	e      *emitter
	layer  string
	points []vectordoc.Point
}

// flush emits the accumulated polyline if it has at least two points,
// then clears the accumulator.
func (b *pathBuilder) flush(closed bool) {
	if len(b.points) >= 2 {
		b.e.polyline(b.points, b.layer, closed)
		b.e.stats.Polylines++
	}
	b.points = nil
}

func (e *emitter) shape(shape vectordoc.Shape, layer string) {
	switch s := shape.(type) {
	case vectordoc.LineShape:
		e.line(s.From, s.To, layer)
		e.stats.Lines++
	case vectordoc.Rectangle:
		corners := s.Corners()
		e.polyline(corners[:], layer, true)
		e.stats.Polylines++
	case vectordoc.Circle:
		e.circle(s.Center, s.Radius, layer)
		e.stats.Circles++
	case vectordoc.Ellipse:
		e.ellipse(s.Center, s.RadiusX, s.RadiusY, layer)
		e.stats.Ellipses++
	case vectordoc.Polyline:
		if len(s.Points) > 0 {
			e.polyline(s.Points, layer, s.Closed)
			e.stats.Polylines++
		}
	}
}

// curve re-emits the circle and ellipse entries of the categorized
// curve collection. Path curves (cubic, quadratic, arc) were already
// synthesized during the path walk and are not duplicated here.
func (e *emitter) curve(curve vectordoc.CategorizedCurve, layer string) {
	switch s := curve.Shape.(type) {
	case vectordoc.Circle:
		e.circle(s.Center, s.Radius, layer)
		e.stats.Circles++
	case vectordoc.Ellipse:
		e.ellipse(s.Center, s.RadiusX, s.RadiusY, layer)
		e.stats.Ellipses++
	}
}
