// Package silk draws the silkscreen artwork: body outlines kept clear
// of the pads, pin 1 markers and the reference designator text.
package silk

import (
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// preamble switches the pen onto the silkscreen layer and places the
// reference designator above the component, clear of body and pads.
func preamble(p *pattern.Pattern, h *element.Housing) *pattern.Pattern {
	lw := p.Settings.LineWidth.Silkscreen
	textY := -1.5
	if h.BodyWidth != nil && h.BodyLength != nil {
		bodyY := h.BodyLength.Nom / 2
		textY = -(max(bodyY, padExtentY(p)) + 1.25)
	}
	p.Layer(pattern.TopSilkscreen).LineWidth(lw)
	p.Attribute("refDes", pattern.Attr{Y: textY})
	return p
}

// horizontalPreamble places the reference designator for parts drawn
// rotated, where the body width is the vertical extent.
func horizontalPreamble(p *pattern.Pattern, h *element.Housing) *pattern.Pattern {
	lw := p.Settings.LineWidth.Silkscreen
	textY := -1.5
	if len(p.Pads()) > 0 && h.BodyWidth != nil {
		textY = -(max(h.BodyWidth.Nom/2, padExtentY(p)) + 1.25)
	}
	p.Layer(pattern.TopSilkscreen).LineWidth(lw)
	p.Attribute("refDes", pattern.Attr{Y: textY})
	return p
}

func padExtentY(p *pattern.Pattern) float64 {
	extent := 0.0
	for _, pad := range p.Pads() {
		if e := abs(pad.Y) + pad.Height/2; e > extent {
			extent = e
		}
	}
	if extent == 0 {
		extent = 0.7
	}
	return extent
}

// dot draws a filled pin 1 marker.
func dot(p *pattern.Pattern, x, y float64) {
	p.Layer(pattern.TopSilkscreen).LineWidth(0.1).Fill(true).Circle(x, y, 0.2).Fill(false)
}

// Body draws a plain body rectangle.
func Body(p *pattern.Pattern, h *element.Housing) {
	lw := p.Settings.LineWidth.Silkscreen
	x := h.BodyWidth.Nom/2 + lw/2
	y := h.BodyLength.Nom/2 + lw/2
	preamble(p, h).Rectangle(-x, -y, x, y)
}

// Dual draws the outline of a dual-row package. Gullwing and J-lead
// families get two horizontal body lines with a pad-aligned pin 1 dot;
// other duals get a full rectangle around body and pads.
func Dual(p *pattern.Pattern, h *element.Housing) {
	s := p.Settings
	lw := s.LineWidth.Silkscreen
	w := h.BodyWidth.Nom
	l := h.BodyLength.Nom
	pads := p.Pads()
	if len(pads) == 0 {
		preamble(p, h)
		return
	}
	first := pads[0]
	gap := lw/2 + s.Clearance.PadToSilk

	x1 := -w/2 - lw/2
	x2 := -x1
	yb := -l/2 - lw/2
	yf := first.Y - first.Height/2 - gap
	y1 := min(yb, yf)
	y2 := -y1

	preamble(p, h)

	if h.SON || h.SOT23 || h.SOP || h.SOJ || h.SOIC {
		bodyY1 := -l/2 - lw/2
		bodyY2 := l/2 + lw/2
		p.Line(-w/2, bodyY1, w/2, bodyY1)
		p.Line(-w/2, bodyY2, w/2, bodyY2)

		if h.Polarized {
			dotY := first.Y - first.Height/2 - 0.25 - s.Clearance.SilkToPad
			dotX := first.X
			if h.SON {
				dotX = -w/2 - 0.25 - s.Clearance.SilkToPad
			}
			// Keep the dot a silk-to-silk distance away from the
			// horizontal lines, sliding it left when it collides.
			required := 0.2 + 0.1/2 + 0.2 + lw/2
			closest := min(abs(dotY-bodyY2), abs(dotY-bodyY1))
			if closest < required {
				dotX -= required - closest
			}
			if dotX < first.X-1.0 {
				dotX = first.X - 1.0
			}
			dot(p, dotX, dotY)
		}
		return
	}

	p.Rectangle(x1, y1, x2, y2)
	if h.Polarized {
		p.Attribute("value", pattern.Attr{Text: p.Name})
	}
}

// CornerConcave draws per-side lines between the four corner pads and
// a pin 1 dot beside the top-left pad.
func CornerConcave(p *pattern.Pattern, h *element.Housing) {
	s := p.Settings
	lw := s.LineWidth.Silkscreen
	w := h.BodyWidth.Nom
	l := h.BodyLength.Nom
	offset := s.Clearance.SilkToPad + lw/2

	pads := p.Pads()
	if len(pads) < 4 {
		preamble(p, h)
		return
	}
	var bl, tl, tr, br *pattern.Shape
	for _, pad := range pads {
		switch {
		case pad.X < 0 && pad.Y < 0:
			bl = pad
		case pad.X < 0 && pad.Y > 0:
			tl = pad
		case pad.X > 0 && pad.Y > 0:
			tr = pad
		case pad.X > 0 && pad.Y < 0:
			br = pad
		}
	}
	preamble(p, h)

	bodyTop := l/2 + lw/2
	bodyBottom := -l/2 - lw/2
	if tl != nil && tr != nil {
		xa := tl.X + tl.Width/2 + offset
		xb := tr.X - tr.Width/2 - offset
		if xb > xa {
			p.Line(xa, bodyTop, xb, bodyTop)
		}
	}
	if bl != nil && br != nil {
		xa := bl.X + bl.Width/2 + offset
		xb := br.X - br.Width/2 - offset
		if xb > xa {
			p.Line(xa, bodyBottom, xb, bodyBottom)
		}
	}

	bodyLeft := -w/2 - lw/2
	bodyRight := w/2 + lw/2
	if bl != nil && tl != nil {
		ya := bl.Y + bl.Height/2 + offset
		yb := tl.Y - tl.Height/2 - offset
		if yb > ya {
			p.Line(bodyLeft, ya, bodyLeft, yb)
		}
	}
	if br != nil && tr != nil {
		ya := br.Y + br.Height/2 + offset
		yb := tr.Y - tr.Height/2 - offset
		if yb > ya {
			p.Line(bodyRight, ya, bodyRight, yb)
		}
	}

	if h.Polarized && tl != nil {
		dot(p, tl.X-tl.Width/2-0.5, tl.Y)
	}
}

// GridArray draws corner marks around the body, shortened to clear the
// outer ball rows.
func GridArray(p *pattern.Pattern, h *element.Housing) {
	lw := p.Settings.LineWidth.Silkscreen
	x := h.BodyWidth.Nom/2 + lw/2
	y := h.BodyLength.Nom/2 + lw/2
	dx := x - h.HorizontalPitch*(float64(h.ColumnCount)/2-0.5)
	dy := y - h.VerticalPitch*(float64(h.RowCount)/2-0.5)
	d := min(dx, dy)
	length := min(min(2*h.HorizontalPitch, 2*h.VerticalPitch), min(x, y))
	preamble(p, h)
	p.MoveTo(-x, -y+length).LineTo(-x, -y+d).LineTo(-x+d, -y).LineTo(-x+length, -y)
	p.MoveTo(x, -y+length).LineTo(x, -y).LineTo(x-length, -y)
	p.MoveTo(x, y-length).LineTo(x, y).LineTo(x-length, y)
	p.MoveTo(-x, y-length).LineTo(-x, y).LineTo(-x+length, y)
}

// Pak draws the body and lead-side notches of a tabbed power package.
func Pak(p *pattern.Pattern, h *element.Housing) {
	s := p.Settings
	lw := s.LineWidth.Silkscreen
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	ls := h.LeadSpan.Nom
	tabLedge := 0.0
	if h.TabLedge != nil {
		tabLedge = h.TabLedge.Nom
	}
	first, last := p.ExtremePads()
	if first == nil {
		preamble(p, h)
		return
	}
	gap := lw/2 + s.Clearance.PadToSilk
	dx := ls/2 - tabLedge - bw/2
	x1 := dx - bw/2 - lw/2
	x2 := dx + bw/2 + lw/2
	y1 := -bl/2 - lw/2
	xf := first.X - first.Width/2 - gap
	yf := first.Y - first.Height/2 - gap
	xt := last.X - last.Width/2 - gap
	yt := last.Y - last.Height/2 - gap

	preamble(p, h)
	p.Rectangle(x1, y1, x2, -y1)
	p.MoveTo(x1, yf).LineTo(xf, yf).LineTo(xf, yf+first.Height+gap)
	if yt < y1 {
		p.MoveTo(x2, yt).LineTo(xt, yt).LineTo(xt, y1)
		p.MoveTo(x2, -yt).LineTo(xt, -yt).LineTo(xt, -y1)
	}
}

// Quad draws L-shaped corner marks sized to hold the silk-to-pad
// clearance against the outermost pads, plus a pin 1 dot.
func Quad(p *pattern.Pattern, h *element.Housing) {
	s := p.Settings
	lw := s.LineWidth.Silkscreen
	clearance := s.Clearance.SilkToPad
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom

	bodyX := bw/2 + 0.1
	bodyY := bl/2 + 0.1

	pads := p.Pads()
	if len(pads) == 0 {
		preamble(p, h)
		return
	}

	// Group the pads on each package edge to find the outer pad edge
	// each corner line must stay clear of.
	minX, maxX := pads[0].X, pads[0].X
	minY, maxY := pads[0].Y, pads[0].Y
	for _, pad := range pads {
		minX = min(minX, pad.X)
		maxX = max(maxX, pad.X)
		minY = min(minY, pad.Y)
		maxY = max(maxY, pad.Y)
	}
	const tolerance = 0.1
	maxLenX := -1.0
	maxLenY := -1.0
	for _, pad := range pads {
		onTop := abs(pad.Y-maxY) < tolerance
		onBottom := abs(pad.Y-minY) < tolerance
		onLeft := abs(pad.X-minX) < tolerance
		onRight := abs(pad.X-maxX) < tolerance
		switch {
		case onTop || onBottom:
			length := bodyX - lw - clearance - (abs(pad.X) + pad.Width/2)
			if length > 0 && (maxLenX < 0 || length < maxLenX) {
				maxLenX = length
			}
		case onLeft || onRight:
			length := bodyY - lw - clearance - (abs(pad.Y) + pad.Height/2)
			if length > 0 && (maxLenY < 0 || length < maxLenY) {
				maxLenY = length
			}
		}
	}
	lenX := bw * 0.15
	if maxLenX >= 0 {
		lenX = maxLenX
	}
	lenY := bl * 0.15
	if maxLenY >= 0 {
		lenY = maxLenY
	}
	lenX = max(min(lenX, bw*0.3), 0.2)
	lenY = max(min(lenY, bl*0.3), 0.2)

	preamble(p, h)

	p.Line(-bodyX, bodyY, -bodyX+lenX, bodyY)
	p.Line(-bodyX, bodyY, -bodyX, bodyY-lenY)
	p.Line(bodyX, bodyY, bodyX-lenX, bodyY)
	p.Line(bodyX, bodyY, bodyX, bodyY-lenY)
	p.Line(bodyX, -bodyY, bodyX-lenX, -bodyY)
	p.Line(bodyX, -bodyY, bodyX, -bodyY+lenY)
	p.Line(-bodyX, -bodyY, -bodyX+lenX, -bodyY)
	p.Line(-bodyX, -bodyY, -bodyX, -bodyY+lenY)

	if h.Polarized {
		first := pads[0]
		dot(p, first.X-0.75, first.Y-first.Height/2-0.25-clearance)
	}
}

// SOTFL draws the flat-lead SOT outline: two horizontal body lines,
// and for the three-lead layout vertical marks on the single-pad side
// split around the lone pad. The pin 1 dot slides left when it would
// touch a body line.
func SOTFL(p *pattern.Pattern, h *element.Housing) {
	s := p.Settings
	lw := s.LineWidth.Silkscreen
	w := h.BodyWidth.Nom
	l := h.BodyLength.Nom
	pads := p.Pads()
	preamble(p, h)
	if len(pads) == 0 {
		return
	}
	first := pads[0]

	y := l/2 + lw/2
	p.Line(-w/2, -y, w/2, -y)
	p.Line(-w/2, y, w/2, y)

	if len(pads) == 3 {
		single := pads[2]
		gap := lw/2 + s.Clearance.PadToSilk
		x := w/2 + lw/2
		ya := single.Y - single.Height/2 - gap
		yb := single.Y + single.Height/2 + gap
		if ya > -y {
			p.Line(x, -y, x, ya)
		}
		if yb < y {
			p.Line(x, yb, x, y)
		}
	}

	dotY := first.Y - first.Height/2 - 0.25 - s.Clearance.SilkToPad
	dotX := first.X
	required := 0.2 + 0.1/2 + 0.2 + lw/2
	closest := min(abs(dotY-y), abs(dotY+y))
	if closest < required {
		dotX -= required - closest
	}
	if dotX < first.X-1.0 {
		dotX = first.X - 1.0
	}
	dot(p, dotX, dotY)
}

// uShapes draws the horizontal U outlines used by SODFL, molded and
// DFN parts: top and bottom body lines whose verticals stop clear of
// the pads.
func uShapes(p *pattern.Pattern, h *element.Housing, padTop float64) {
	lw := p.Settings.LineWidth.Silkscreen
	bodyLeft := -h.BodyLength.Nom/2 - lw/2
	bodyRight := -bodyLeft
	bodyTop := h.BodyWidth.Nom/2 + lw/2
	bodyBottom := -bodyTop

	topEnd := padTop + lw/2
	p.Line(bodyLeft, bodyTop, bodyLeft, topEnd)
	p.Line(bodyLeft, bodyTop, bodyRight, bodyTop)
	p.Line(bodyRight, bodyTop, bodyRight, topEnd)

	bottomEnd := -padTop - lw/2
	p.Line(bodyLeft, bodyBottom, bodyLeft, bottomEnd)
	p.Line(bodyLeft, bodyBottom, bodyRight, bodyBottom)
	p.Line(bodyRight, bodyBottom, bodyRight, bottomEnd)
}

// SODFL draws the U-shaped outline of a flat-lead diode with a
// polarity dot left of the anode pad.
func SODFL(p *pattern.Pattern, h *element.Housing) {
	pads := p.Pads()
	horizontalPreamble(p, h)
	if len(pads) < 2 {
		return
	}
	pad1, pad2 := pads[0], pads[1]
	padTop := max(abs(pad1.Y)+pad1.Height/2, abs(pad2.Y)+pad2.Height/2) + 0.2
	uShapes(p, h, padTop)
	if h.Polarized {
		dot(p, pad1.X-pad1.Width/2-p.Settings.Clearance.SilkToPad-0.6, 0)
	}
}

// Molded draws the molded-body outline, identical in form to SODFL.
func Molded(p *pattern.Pattern, h *element.Housing) {
	SODFL(p, h)
}

// DFNMolded draws molded-style U outlines for small DFN parts without
// assuming a two-pad layout.
func DFNMolded(p *pattern.Pattern, h *element.Housing) {
	pads := p.Pads()
	horizontalPreamble(p, h)
	if len(pads) == 0 {
		return
	}
	padTop := 0.0
	leftmost := pads[0]
	for _, pad := range pads {
		padTop = max(padTop, abs(pad.Y)+pad.Height/2)
		if pad.X < leftmost.X {
			leftmost = pad
		}
	}
	uShapes(p, h, padTop+0.2)
	if h.Polarized {
		dot(p, leftmost.X-leftmost.Width/2-0.6, 0)
	}
}

// TwoPin draws the outline of a two-terminal part: gap lines for
// chips, a chamfered outline for aluminium electrolytics, side lines
// for the rest, or a circle for cylindrical bodies.
func TwoPin(p *pattern.Pattern, h *element.Housing) {
	if h.SODFL {
		SODFL(p, h)
		return
	}
	if h.Molded {
		Molded(p, h)
		return
	}

	s := p.Settings
	lw := s.LineWidth.Silkscreen
	pads := p.Pads()
	if len(pads) == 0 {
		preamble(p, h)
		return
	}
	first := pads[0]
	gap := lw/2 + s.Clearance.PadToSilk

	if h.BodyWidth != nil && h.BodyLength != nil {
		w := h.BodyWidth.Nom
		l := h.BodyLength.Nom

		if h.Chip {
			offset := s.Clearance.SilkToPad + lw/2
			startX := first.X + first.Width/2 + offset
			endX := -first.X - first.Width/2 - offset
			silkY := w/2 + 0.1
			horizontalPreamble(p, h)
			if endX-startX > 0.2 {
				p.Line(startX, silkY, endX, silkY)
				p.Line(startX, -silkY, endX, -silkY)
				if h.Polarized {
					p.Circle(first.X-first.Width/2-offset-0.1, 0, 0.05)
				}
			}
			return
		}

		x := max(first.Width/2+gap, w/2+lw/2)
		y := l/2 + lw/2
		preamble(p, h)
		if h.CAE && !h.NoSilk {
			d := h.Chamfer
			if d <= 0 {
				d = min(w/4, l/4)
			}
			xSilk := w/2 + 0.06
			ySilk := l/2 + 0.06
			dSilk := d + 0.06
			pad1, pad2 := pads[0], pads[1]
			clear := s.Clearance.SilkToPad + lw/2
			pad1Top := pad1.Y - pad1.Height/2 - clear
			pad1Bottom := pad1.Y + pad1.Height/2 + clear
			pad2Top := pad2.Y - pad2.Height/2 - clear
			pad2Bottom := pad2.Y + pad2.Height/2 + clear

			p.MoveTo(-xSilk, pad1Top).LineTo(-xSilk, -ySilk+dSilk).
				LineTo(-xSilk+dSilk, -ySilk).LineTo(xSilk, -ySilk).LineTo(xSilk, pad2Top)
			p.MoveTo(-xSilk, pad1Bottom).LineTo(-xSilk, ySilk-dSilk).
				LineTo(-xSilk+dSilk, ySilk).LineTo(xSilk, ySilk).LineTo(xSilk, pad2Bottom)
			if h.Polarized {
				dot(p, pad1.X-pad1.Width/2-0.5, pad1.Y)
			}
		} else if !h.NoSilk {
			p.Line(-x, -y, -x, y).Line(x, -y, x, y)
			x1 := first.Width/2 + gap
			x2 := w/2 + lw/2
			if x1 < x2 { // leads narrower than the body
				p.Line(-x1, -y, -x2, -y).Line(-x1, y, -x2, y)
				p.Line(x1, -y, x2, -y).Line(x1, y, x2, y)
			}
		}
		return
	}

	if h.BodyDiameter != nil {
		r := h.BodyDiameter.Nom/2 + lw/2
		preamble(p, h)
		if !h.NoSilk {
			p.Circle(0, 0, r)
		}
		if h.Polarized {
			y := first.Y + first.Height/2 + gap
			p.Rectangle(-first.Width/2-gap, -r, first.Width/2+gap, y)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
