// Package courtyard draws the placement courtyard around body and
// pads, from simple bounding rectangles to family-specific outlines
// that hug the pad rows.
package courtyard

import (
	"sort"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

func preamble(p *pattern.Pattern) *pattern.Pattern {
	return p.Layer(pattern.TopCourtyard).LineWidth(p.Settings.LineWidth.Courtyard)
}

// Body draws a rectangle around the body only.
func Body(p *pattern.Pattern, h *element.Housing, excess float64) {
	x := h.BodyWidth.Nom/2 + excess
	y := h.BodyLength.Nom/2 + excess
	preamble(p).Rectangle(-x, -y, x, y)
}

// Boundary draws the bounding rectangle of body and pads.
func Boundary(p *pattern.Pattern, h *element.Housing, excess float64) {
	xmin := -h.BodyWidth.Nom / 2
	ymin := -h.BodyLength.Nom / 2
	xmax := -xmin
	ymax := -ymin
	for _, pad := range p.Pads() {
		xmin = min(xmin, pad.X-pad.Width/2)
		xmax = max(xmax, pad.X+pad.Width/2)
		ymin = min(ymin, pad.Y-pad.Height/2)
		ymax = max(ymax, pad.Y+pad.Height/2)
	}
	preamble(p).Rectangle(xmin-excess, ymin-excess, xmax+excess, ymax+excess)
}

type rect struct {
	x1, y1, x2, y2 float64
}

// BoundaryFlex traces the contour of the union of the expanded body
// and pad rectangles, so the courtyard follows the pads instead of
// boxing the whole package.
func BoundaryFlex(p *pattern.Pattern, h *element.Housing, excess float64) {
	preamble(p)

	rects := []rect{{
		x1: -h.BodyWidth.Nom/2 - excess,
		y1: -h.BodyLength.Nom/2 - excess,
		x2: h.BodyWidth.Nom/2 + excess,
		y2: h.BodyLength.Nom/2 + excess,
	}}
	for _, pad := range p.Pads() {
		rects = append(rects, rect{
			x1: pad.X - pad.Width/2 - excess,
			y1: pad.Y - pad.Height/2 - excess,
			x2: pad.X + pad.Width/2 + excess,
			y2: pad.Y + pad.Height/2 + excess,
		})
	}

	xs := coords(rects, func(r rect) (float64, float64) { return r.x1, r.x2 })
	ys := coords(rects, func(r rect) (float64, float64) { return r.y1, r.y2 })

	covered := func(i, j int) bool {
		if i < 0 || j < 0 || i >= len(xs)-1 || j >= len(ys)-1 {
			return false
		}
		cx := (xs[i] + xs[i+1]) / 2
		cy := (ys[j] + ys[j+1]) / 2
		for _, r := range rects {
			if r.x1 <= cx && cx <= r.x2 && r.y1 <= cy && cy <= r.y2 {
				return true
			}
		}
		return false
	}

	// A grid edge lies on the contour when exactly one of its two
	// neighbouring cells is covered.
	for i := 0; i < len(xs)-1; i++ {
		for j := 0; j < len(ys); j++ {
			if covered(i, j) != covered(i, j-1) {
				p.Line(xs[i], ys[j], xs[i+1], ys[j])
			}
		}
	}
	for i := 0; i < len(xs); i++ {
		for j := 0; j < len(ys)-1; j++ {
			if covered(i-1, j) != covered(i, j) {
				p.Line(xs[i], ys[j], xs[i], ys[j+1])
			}
		}
	}
}

func coords(rects []rect, get func(rect) (float64, float64)) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, r := range rects {
		a, b := get(r)
		for _, v := range [2]float64{a, b} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Float64s(out)
	return out
}

// Dual draws the cross-shaped outline around a dual-row package: the
// body rectangle widened where the pad columns stick out.
func Dual(p *pattern.Pattern, h *element.Housing, excess float64) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	_, by := h.BodyOffset()
	first, last := p.ExtremePads()
	if first == nil {
		return
	}

	x1 := min(first.X-first.Width/2-excess, -bw/2-excess)
	x3 := bw/2 + excess
	x4 := max(last.X+last.Width/2+excess, x3)
	x2 := -bw/2 - excess

	y1 := -bl/2 - excess
	yl2 := first.Y - first.Height/2 - excess
	yr2 := last.Y - last.Height/2 - excess
	y1 = min(y1, min(yl2, yr2))
	yl3 := -yl2 - 2*by
	yr3 := -yr2 - 2*by
	y4 := bl/2 + excess

	preamble(p)
	p.MoveTo(x1, yl2).LineTo(x2, yl2).LineTo(x2, y1).LineTo(x3, y1).
		LineTo(x3, yr2).LineTo(x4, yr2).LineTo(x4, yr3).LineTo(x3, yr3).
		LineTo(x3, y4).LineTo(x2, y4).LineTo(x2, yl3).LineTo(x1, yl3).
		LineTo(x1, yl2)
}

// GridArray draws the bounding rectangle of body and outer balls.
func GridArray(p *pattern.Pattern, h *element.Housing, excess float64) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	first, last := p.ExtremePads()
	if first == nil {
		return
	}
	x1 := min(-bw/2, first.X-first.Width/2) - excess
	y1 := min(-bl/2, first.Y-first.Height/2) - excess
	x2 := max(bw/2, last.X-last.Width/2) + excess
	y2 := max(bl/2, last.Y-last.Height/2) + excess
	preamble(p).Rectangle(x1, y1, x2, y2)
}

// Pak draws the stepped outline of a tabbed power package, following
// lead pads, body and tab pad.
func Pak(p *pattern.Pattern, h *element.Housing, excess float64) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	ls := h.LeadSpan.Nom
	tabLedge := 0.0
	if h.TabLedge != nil {
		tabLedge = h.TabLedge.Nom
	}
	first, last := p.ExtremePads()
	if first == nil {
		return
	}

	x1 := first.X - first.Width/2 - excess
	x2 := ls/2 - tabLedge - bw - excess
	x3 := last.X - last.Width/2 - excess
	x4 := ls/2 - tabLedge + excess
	x5 := last.X + last.Width/2 + excess
	y1 := first.Y - first.Height/2 - excess
	y2 := -bl/2 - excess
	y3 := last.Y - last.Height/2 - excess
	ym := min(y2, y3)

	preamble(p)
	p.MoveTo(x1, y1).LineTo(x2, y1).LineTo(x2, y2).LineTo(x3, y2).
		LineTo(x3, ym).LineTo(x4, ym).LineTo(x4, y3).LineTo(x5, y3).
		LineTo(x5, -y3).LineTo(x4, -y3).LineTo(x4, -ym).LineTo(x3, -ym).
		LineTo(x3, -y2).LineTo(x2, -y2).LineTo(x2, -y1).LineTo(x1, -y1).
		LineTo(x1, y1)
}

// Quad draws the cross-shaped outline around all four pad rows of a
// quad package.
func Quad(p *pattern.Pattern, h *element.Housing, excess float64) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	first, last := p.ExtremePads()
	if first == nil {
		return
	}

	x1 := first.X - first.Width/2 - excess
	x2 := -bw/2 - excess
	x3 := last.X - last.Width/2 - excess
	if x1 > x2 {
		x1 = x2
	}
	if x2 > x3 {
		x2 = x3
	}
	x4, x5, x6 := -x3, -x2, -x1

	y1 := last.Y - last.Height/2 - excess
	y2 := -bl/2 - excess
	y3 := first.Y - first.Height/2 - excess
	if y1 > y2 {
		y1 = y2
	}
	if y2 > y3 {
		y2 = y3
	}
	y4, y5, y6 := -y3, -y2, -y1

	preamble(p)
	p.MoveTo(x1, y3).LineTo(x2, y3).LineTo(x2, y2).LineTo(x3, y2).
		LineTo(x3, y1).LineTo(x4, y1).LineTo(x4, y2).LineTo(x5, y2).
		LineTo(x5, y3).LineTo(x6, y3).LineTo(x6, y4).LineTo(x5, y4).
		LineTo(x5, y5).LineTo(x4, y5).LineTo(x4, y6).LineTo(x3, y6).
		LineTo(x3, y5).LineTo(x2, y5).LineTo(x2, y4).LineTo(x1, y4).
		LineTo(x1, y3)
}

// TwoPin draws the plus-shaped outline of a two-terminal part, or a
// circle for cylindrical bodies.
func TwoPin(p *pattern.Pattern, h *element.Housing, excess float64) {
	if h.BodyWidth != nil && h.BodyLength != nil {
		pads := p.Pads()
		if len(pads) == 0 {
			return
		}
		first := pads[0]
		last := pads[len(pads)-1]

		if h.Chip {
			y1 := first.Height/2 + excess
			ym := max(y1, h.BodyWidth.Nom/2+excess)
			x1 := last.X + last.Width/2 + excess
			x2 := h.BodyLength.Nom/2 + excess
			preamble(p)
			p.MoveTo(-x1, -y1).LineTo(-x2, -y1).LineTo(-x2, -ym).LineTo(x2, -ym).
				LineTo(x2, -y1).LineTo(x1, -y1).LineTo(x1, y1).LineTo(x2, y1).
				LineTo(x2, ym).LineTo(-x2, ym).LineTo(-x2, y1).LineTo(-x1, y1).
				LineTo(-x1, -y1)
			return
		}

		x1 := first.Width/2 + excess
		xm := max(x1, h.BodyWidth.Nom/2+excess)
		y1 := last.Y + last.Height/2 + excess
		y2 := h.BodyLength.Nom/2 + excess
		preamble(p)
		p.MoveTo(-x1, -y1).LineTo(-x1, -y2).LineTo(-xm, -y2).LineTo(-xm, y2).
			LineTo(-x1, y2).LineTo(-x1, y1).LineTo(x1, y1).LineTo(x1, y2).
			LineTo(xm, y2).LineTo(xm, -y2).LineTo(x1, -y2).LineTo(x1, -y1).
			LineTo(-x1, -y1)
		return
	}
	if h.BodyDiameter != nil {
		preamble(p).Circle(0, 0, h.BodyDiameter.Nom/2+excess)
	}
}
