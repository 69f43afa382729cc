package sketch

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for the SVG writers.
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG returns the curve as SVG path data, suitable for the d attribute of a
// path element. An empty curve results in an empty string.
func (c Curve) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	c.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the curve as SVG path data to w. See [Curve.SVG].
func (c Curve) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := svgWriter{w: w, opts: opts}
	for i, seg := range c {
		if i == 0 {
			sw.command('M', seg.P0)
		}
		sw.command('C', seg.P1, seg.P2, seg.P3)
	}
	return sw.err
}

// SVG returns the polyline as SVG path data, suitable for the d attribute of
// a path element. An empty polyline results in an empty string.
func (pl Polyline) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	pl.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the polyline as SVG path data to w. See [Polyline.SVG].
func (pl Polyline) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := svgWriter{w: w, opts: opts}
	for i, p := range pl {
		if i == 0 {
			sw.command('M', p)
		} else {
			sw.command('L', p)
		}
	}
	return sw.err
}

type svgWriter struct {
	w       io.Writer
	opts    SVGOptions
	started bool
	err     error
}

func (sw *svgWriter) format(n float64) string {
	if sw.opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', sw.opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func (sw *svgWriter) command(cmd byte, pts ...Point) {
	if sw.err != nil {
		return
	}
	var sb strings.Builder
	if sw.started {
		sb.WriteByte(' ')
	}
	sw.started = true
	sb.WriteByte(cmd)
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s,%s", sw.format(p.X), sw.format(p.Y))
	}
	_, sw.err = io.WriteString(sw.w, sb.String())
}
