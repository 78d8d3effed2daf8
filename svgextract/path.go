package svgextract

import (
	"fmt"
	"strconv"

	"github.com/benoitkugler/svg2dxf/vectordoc"
)

// This file implements the interpreter for the path description
// mini-language (the "d" attribute): commands
// M m L l H h V v C c S s Q q T t A a Z z, with implicit command
// repetition and relative variants. The emitted segments always carry
// absolute canvas coordinates.

// MalformedPathError reports an unparseable construct in a path
// description. Snippet holds the offending portion of the input.
type MalformedPathError struct {
	Snippet string
	Reason  string
}

func (e MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path near %q: %s", e.Snippet, e.Reason)
}

// ParsePath interprets a path description into a segment sequence,
// or fails with a MalformedPathError. An unknown command fails the
// whole path: the caller decides whether to skip the element.
func ParsePath(d string) (vectordoc.Segments, error) {
	p := &pathParser{d: d}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.segments, nil
}

type pathParser struct {
	d   string
	pos int

	segments vectordoc.Segments
	cur      vectordoc.Point // current point
	first    vectordoc.Point // start of the current subpath
	lastCmd  byte            // last emitted command, normalized to upper case
	cubicCtl vectordoc.Point // second control point of the last cubic
	quadCtl  vectordoc.Point // control point of the last quadratic
}

func (p *pathParser) run() error {
	p.skipSeparators()
	var cmd byte
	for p.pos < len(p.d) {
		if c := p.d[p.pos]; isPathCommand(c) {
			cmd = c
			p.pos++
		} else if cmd == 0 {
			return p.errorf("expected a command letter")
		} else {
			// implicit repetition: extra coordinates after a
			// moveto continue as lineto of the same flavor
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 'Z', 'z':
				return p.errorf("coordinates after close")
			}
		}
		if err := p.command(cmd); err != nil {
			return err
		}
		p.skipSeparators()
	}
	return nil
}

func (p *pathParser) command(cmd byte) error {
	relative := cmd >= 'a'
	switch normalize(cmd) {
	case 'M':
		pt, err := p.point(relative)
		if err != nil {
			return err
		}
		p.emit(vectordoc.Move{From: pt, To: pt}, 'M')
		p.first = pt
	case 'L':
		pt, err := p.point(relative)
		if err != nil {
			return err
		}
		p.emit(vectordoc.Line{From: p.cur, To: pt}, 'L')
	case 'H':
		x, err := p.number()
		if err != nil {
			return err
		}
		if relative {
			x += p.cur[0]
		}
		p.emit(vectordoc.Line{From: p.cur, To: vectordoc.Point{x, p.cur[1]}}, 'L')
	case 'V':
		y, err := p.number()
		if err != nil {
			return err
		}
		if relative {
			y += p.cur[1]
		}
		p.emit(vectordoc.Line{From: p.cur, To: vectordoc.Point{p.cur[0], y}}, 'L')
	case 'C':
		c1, err := p.point(relative)
		if err != nil {
			return err
		}
		return p.finishCubic(c1, relative)
	case 'S':
		// the first control point mirrors the previous cubic's
		// second control point about the current point
		c1 := p.cur
		if p.lastCmd == 'C' {
			c1 = reflect(p.cubicCtl, p.cur)
		}
		return p.finishCubic(c1, relative)
	case 'Q':
		ctl, err := p.point(relative)
		if err != nil {
			return err
		}
		return p.finishQuad(ctl, relative)
	case 'T':
		ctl := p.cur
		if p.lastCmd == 'Q' {
			ctl = reflect(p.quadCtl, p.cur)
		}
		return p.finishQuad(ctl, relative)
	case 'A':
		rx, err := p.number()
		if err != nil {
			return err
		}
		ry, err := p.number()
		if err != nil {
			return err
		}
		rot, err := p.number()
		if err != nil {
			return err
		}
		large, err := p.flag()
		if err != nil {
			return err
		}
		sweep, err := p.flag()
		if err != nil {
			return err
		}
		to, err := p.point(relative)
		if err != nil {
			return err
		}
		p.emit(vectordoc.Arc{From: p.cur, Radius: vectordoc.Point{rx, ry},
			Rotation: rot, LargeArc: large, Sweep: sweep, To: to}, 'A')
	case 'Z':
		p.emit(vectordoc.Close{From: p.cur, To: p.first}, 'Z')
	default:
		return p.errorf("unsupported command %q", string(cmd))
	}
	return nil
}

func (p *pathParser) finishCubic(c1 vectordoc.Point, relative bool) error {
	c2, err := p.point(relative)
	if err != nil {
		return err
	}
	to, err := p.point(relative)
	if err != nil {
		return err
	}
	p.emit(vectordoc.CubicBezier{From: p.cur, Control1: c1, Control2: c2, To: to}, 'C')
	p.cubicCtl = c2
	return nil
}

func (p *pathParser) finishQuad(ctl vectordoc.Point, relative bool) error {
	to, err := p.point(relative)
	if err != nil {
		return err
	}
	p.emit(vectordoc.QuadraticBezier{From: p.cur, Control: ctl, To: to}, 'Q')
	p.quadCtl = ctl
	return nil
}

// emit appends the segment and advances the current point.
func (p *pathParser) emit(seg vectordoc.Segment, cmd byte) {
	p.segments = append(p.segments, seg)
	p.cur = seg.End()
	p.lastCmd = cmd
}

// reflect mirrors ctl about the pivot point.
func reflect(ctl, pivot vectordoc.Point) vectordoc.Point {
	return vectordoc.Point{2*pivot[0] - ctl[0], 2*pivot[1] - ctl[1]}
}

func normalize(cmd byte) byte {
	if cmd >= 'a' {
		return cmd - 'a' + 'A'
	}
	return cmd
}

func isPathCommand(c byte) bool {
	switch normalize(c) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (p *pathParser) skipSeparators() {
	for p.pos < len(p.d) {
		switch p.d[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// number scans one floating point literal. Numbers may run together
// ("-1-2", "1.5.5") as the mini-language allows.
func (p *pathParser) number() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.d) && (p.d[p.pos] == '+' || p.d[p.pos] == '-') {
		p.pos++
	}
	for p.pos < len(p.d) && isDigit(p.d[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.d) && p.d[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.d) && isDigit(p.d[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.d) && (p.d[p.pos] == 'e' || p.d[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.d) && (p.d[p.pos] == '+' || p.d[p.pos] == '-') {
			p.pos++
		}
		for p.pos < len(p.d) && isDigit(p.d[p.pos]) {
			p.pos++
		}
	}
	v, err := strconv.ParseFloat(p.d[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0, p.errorf("expected a number")
	}
	return v, nil
}

// point scans an x,y pair, resolving relative coordinates against the
// current point.
func (p *pathParser) point(relative bool) (vectordoc.Point, error) {
	x, err := p.number()
	if err != nil {
		return vectordoc.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return vectordoc.Point{}, err
	}
	if relative {
		x += p.cur[0]
		y += p.cur[1]
	}
	return vectordoc.Point{x, y}, nil
}

// flag scans a single arc flag, which must be exactly 0 or 1 and,
// unlike numbers, may be followed immediately by another flag.
func (p *pathParser) flag() (bool, error) {
	p.skipSeparators()
	if p.pos < len(p.d) {
		switch p.d[p.pos] {
		case '0':
			p.pos++
			return false, nil
		case '1':
			p.pos++
			return true, nil
		}
	}
	return false, p.errorf("expected an arc flag")
}

func (p *pathParser) errorf(format string, args ...interface{}) error {
	end := p.pos + 24
	if end > len(p.d) {
		end = len(p.d)
	}
	return MalformedPathError{Snippet: p.d[p.pos:end], Reason: fmt.Sprintf(format, args...)}
}
