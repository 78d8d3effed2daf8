package svgextract

import (
	"github.com/benoitkugler/svg2dxf/vectordoc"
)

// Categorize flattens paths and shapes into the two provenance-tagged
// collections of the vector document: straight spans and curved
// elements. Output order is deterministic: encounter order, paths
// before shapes.
func Categorize(paths []vectordoc.Path, shapes vectordoc.Shapes) ([]vectordoc.CategorizedLine, []vectordoc.CategorizedCurve) {
	var lines []vectordoc.CategorizedLine
	var curves []vectordoc.CategorizedCurve

	for _, path := range paths {
		for _, seg := range path.Segments {
			switch seg := seg.(type) {
			case vectordoc.Line:
				lines = append(lines, vectordoc.NewCategorizedLine(seg.From, seg.To, vectordoc.SourcePath))
			case vectordoc.CubicBezier, vectordoc.QuadraticBezier, vectordoc.Arc:
				curves = append(curves, vectordoc.CategorizedCurve{Segment: seg, Source: vectordoc.SourcePath})
			}
			// Move and Close carry no drawable geometry
		}
	}

	for _, shape := range shapes {
		switch s := shape.(type) {
		case vectordoc.LineShape:
			lines = append(lines, vectordoc.NewCategorizedLine(s.From, s.To, vectordoc.SourceShape))
		case vectordoc.Rectangle:
			corners := s.Corners()
			for i := 0; i < 4; i++ {
				lines = append(lines, vectordoc.NewCategorizedLine(corners[i], corners[(i+1)%4], vectordoc.SourceRect))
			}
		case vectordoc.Circle, vectordoc.Ellipse:
			curves = append(curves, vectordoc.CategorizedCurve{Shape: shape, Source: vectordoc.SourceShape})
		case vectordoc.Polyline:
			source := vectordoc.SourcePolyline
			if s.Closed {
				source = vectordoc.SourcePolygon
			}
			for i := 0; i+1 < len(s.Points); i++ {
				lines = append(lines, vectordoc.NewCategorizedLine(s.Points[i], s.Points[i+1], source))
			}
			if s.Closed && len(s.Points) > 2 {
				lines = append(lines, vectordoc.NewCategorizedLine(s.Points[len(s.Points)-1], s.Points[0], source))
			}
		}
	}

	return lines, curves
}
