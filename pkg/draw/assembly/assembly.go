// Package assembly draws the fabrication layer: the true body outline,
// pin 1 markers and the reference and value texts sized to the body.
package assembly

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

const courtyardGap = 0.25

// texts places the reference, value and hidden REF** texts with a font
// scaled to the body and clamped so it fits inside it.
func texts(p *pattern.Pattern, w, h, refSize, fabAngle, userAngle float64) {
	lineWidth := p.Settings.LineWidth.Assembly
	fontSize := refSize
	if maxFont := 0.66 * min(w, h); fontSize > maxFont {
		fontSize = maxFont
	}
	textLineWidth := min(lineWidth, fontSize/5)

	bodyY := max(w, h) / 2
	valueY := max(bodyY, 0.7) + courtyardGap + 0.75

	p.Layer(pattern.TopAssembly).LineWidth(textLineWidth)
	p.Attribute("reference", pattern.Attr{
		Text: "${REFERENCE}", FontSize: fontSize,
		Angle: fabAngle, HasAngle: fabAngle != 0,
	})
	p.Attribute("value", pattern.Attr{
		Text: p.Name, Y: valueY, FontSize: fontSize,
		Angle: fabAngle, HasAngle: fabAngle != 0,
	})
	p.Attribute("user", pattern.Attr{
		Text: "REF**", FontSize: fontSize,
		Angle: userAngle, HasAngle: userAngle != 0,
		Hidden: true,
	})
	p.LineWidth(lineWidth)
}

// bodySize resolves the drawable body size, falling back on the body
// diameter and finally the lead span for packages without body data.
func bodySize(h *element.Housing) (w, l float64) {
	switch {
	case h.BodyWidth != nil:
		w = h.BodyWidth.Nom
	case h.BodyDiameter != nil:
		w = h.BodyDiameter.Nom
	case h.LeadSpan != nil:
		w = h.LeadSpan.Nom
	}
	switch {
	case h.BodyLength != nil:
		l = h.BodyLength.Nom
	case h.BodyDiameter != nil:
		l = h.BodyDiameter.Nom
	}
	return w, l
}

// preamble places the texts with the standard sizing: reference scaled
// to the longer body dimension, rotated when the body is taller than
// wide.
func preamble(p *pattern.Pattern, h *element.Housing) *pattern.Pattern {
	w, l := bodySize(h)
	angle := 0.0
	if w < l {
		angle = 90
	}
	texts(p, w, l, min(max(w, l)/4, 0.8), angle, angle)
	return p
}

// pinDot draws a filled pin 1 marker inset from the top-left corner.
func pinDot(p *pattern.Pattern, x, y float64) {
	p.Layer(pattern.TopAssembly).LineWidth(0.1).Fill(true).Circle(x, y, 0.2).Fill(false)
}

// Body draws a plain body rectangle.
func Body(p *pattern.Pattern, h *element.Housing) {
	x := h.BodyWidth.Nom / 2
	y := h.BodyLength.Nom / 2
	preamble(p, h).Rectangle(-x, -y, x, y)
}

// Polarized draws the body with a chamfered pin 1 corner.
func Polarized(p *pattern.Pattern, h *element.Housing) {
	w, l := bodySize(h)
	x := w / 2
	y := l / 2
	d := min(1, min(x, y))
	preamble(p, h)
	p.MoveTo(-x+d, -y).LineTo(x, -y).LineTo(x, y).LineTo(-x, y).
		LineTo(-x, -y+d).LineTo(-x+d, -y)
}

// Pak draws a tabbed power package: offset body, tab ledge and one
// line per present lead.
func Pak(p *pattern.Pattern, e *element.Element) {
	h := &e.Housing
	w, l := bodySize(h)
	ls := h.LeadSpan.Nom
	tabLedge := 0.0
	if h.TabLedge != nil {
		tabLedge = h.TabLedge.Nom
	}
	tabWidth := 0.0
	if h.TabWidth != nil {
		tabWidth = h.TabWidth.Nom
	}
	x1 := ls/2 - tabLedge
	x2 := x1 - w
	preamble(p, h).
		Rectangle(x1, -l/2, x2, l/2).
		Rectangle(x1, -tabWidth/2, x1+tabLedge, tabWidth/2)
	y := -h.Pitch * (float64(h.LeadCount)/2 - 0.5)
	for i := 1; i <= h.LeadCount; i++ {
		if e.HasPin(strconv.Itoa(i)) {
			p.Line(-ls/2, y, x2, y)
		}
		y += h.Pitch
	}
}

// Quad draws the body with a pin 1 dot 0.8 mm inside the top-left
// corner.
func Quad(p *pattern.Pattern, h *element.Housing) {
	x := h.BodyWidth.Nom / 2
	y := h.BodyLength.Nom / 2
	preamble(p, h).Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.8, -y+0.8)
}

// SON draws the body with a pin 1 dot 0.5 mm inside the corner.
func SON(p *pattern.Pattern, h *element.Housing) {
	x := h.BodyWidth.Nom / 2
	y := h.BodyLength.Nom / 2
	preamble(p, h).Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.5, -y+0.5)
}

// SOT23 draws the SON outline with a fixed small reference text.
func SOT23(p *pattern.Pattern, h *element.Housing) {
	w := h.BodyWidth.Nom
	l := h.BodyLength.Nom
	angle := 0.0
	if w < l {
		angle = 90
	}
	texts(p, w, l, 0.4, angle, angle)
	x, y := w/2, l/2
	p.Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.5, -y+0.5)
}

// SOP draws the SON outline with the reference text scaled to the body
// length rather than the longer dimension.
func SOP(p *pattern.Pattern, h *element.Housing) {
	w := h.BodyWidth.Nom
	l := h.BodyLength.Nom
	angle := 0.0
	if w < l {
		angle = 90
	}
	texts(p, w, l, min(l/4, 0.8), angle, angle)
	x, y := w/2, l/2
	p.Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.5, -y+0.5)
}

// CornerConcave draws the oscillator body with the pin 1 dot at the
// top-left pad corner.
func CornerConcave(p *pattern.Pattern, h *element.Housing) {
	x := h.BodyWidth.Nom / 2
	y := h.BodyLength.Nom / 2
	preamble(p, h).Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.5, y-0.5)
}

// horizontalTexts places the texts for parts drawn rotated, with the
// reference scaled to the body length and no rotation.
func horizontalTexts(p *pattern.Pattern, h *element.Housing) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	texts(p, bw, bl, min(bl/4, 0.8), 0, 0)
}

// SODFL draws a flat-lead diode horizontally with a pin 1 dot in the
// bottom-left corner.
func SODFL(p *pattern.Pattern, h *element.Housing) {
	x := h.BodyLength.Nom / 2
	y := h.BodyWidth.Nom / 2
	horizontalTexts(p, h)
	p.Rectangle(-x, -y, x, y)
	pinDot(p, -x+0.4, -y+0.4)
}

// Molded draws a molded two-pin body, identical in form to SODFL.
func Molded(p *pattern.Pattern, h *element.Housing) {
	SODFL(p, h)
}

// DFNMolded draws a DFN body in the molded style.
func DFNMolded(p *pattern.Pattern, h *element.Housing) {
	SODFL(p, h)
}

// chipTexts places the texts for chips, whose value text is rotated
// with the part.
func chipTexts(p *pattern.Pattern, h *element.Housing) {
	bw := h.BodyWidth.Nom
	bl := h.BodyLength.Nom
	lineWidth := p.Settings.LineWidth.Assembly
	fontSize := min(bl/4, 0.8)
	if maxFont := 0.66 * min(bw, bl); fontSize > maxFont {
		fontSize = maxFont
	}
	textLineWidth := min(lineWidth, fontSize/5)
	valueY := max(max(bw, bl)/2, 0.7) + courtyardGap + 0.75

	p.Layer(pattern.TopAssembly).LineWidth(textLineWidth)
	p.Attribute("reference", pattern.Attr{Text: "${REFERENCE}", FontSize: fontSize})
	p.Attribute("value", pattern.Attr{
		Text: p.Name, Y: valueY, FontSize: fontSize, Angle: 90, HasAngle: true,
	})
	p.Attribute("user", pattern.Attr{Text: "REF**", FontSize: fontSize, Hidden: true})
	p.LineWidth(lineWidth)
}

// TwoPin draws the body of a two-terminal part, picking the family
// variant from the housing flags.
func TwoPin(p *pattern.Pattern, h *element.Housing) {
	if h.SODFL {
		SODFL(p, h)
		return
	}
	if h.Molded {
		Molded(p, h)
		return
	}
	if h.Chip {
		chipTexts(p, h)
	} else {
		preamble(p, h)
	}

	if h.BodyWidth != nil && h.BodyLength != nil {
		bw := h.BodyWidth.Nom
		bl := h.BodyLength.Nom

		if h.Chip {
			x := bl / 2
			y := bw / 2
			if h.Polarized {
				d := min(1, min(x, y))
				p.MoveTo(-x+d, -y).LineTo(x, -y).LineTo(x, y).LineTo(-x, y).
					LineTo(-x, -y+d).LineTo(-x+d, -y)
			} else {
				p.Rectangle(-x, -y, x, y)
			}
			return
		}

		x := bw / 2
		y := bl / 2
		switch {
		case h.CAE:
			d := h.Chamfer
			if d <= 0 {
				d = min(bw/4, bl/4)
			}
			p.MoveTo(-x, -y+d).LineTo(-x+d, -y).LineTo(x, -y).LineTo(x, y).
				LineTo(-x+d, y).LineTo(-x, y-d).LineTo(-x, -y+d)
			if h.BodyDiameter != nil {
				p.Circle(0, 0, h.BodyDiameter.Nom/2)
			}
			if pads := p.Pads(); len(pads) > 0 {
				pad1 := pads[0]
				const arm = 0.7 / 2
				plusY := pad1.Y - pad1.Height/2 - 0.5
				p.Line(pad1.X-arm, plusY, pad1.X+arm, plusY)
				p.Line(pad1.X, plusY-arm, pad1.X, plusY+arm)
			}
		case h.Polarized:
			d := min(1, min(x, y))
			p.MoveTo(-x+d, -y).LineTo(x, -y).LineTo(x, y).LineTo(-x, y).
				LineTo(-x, -y+d).LineTo(-x+d, -y)
		default:
			p.Rectangle(-x, -y, x, y)
		}
		return
	}

	if h.BodyDiameter != nil {
		p.Circle(0, 0, h.BodyDiameter.Nom/2)
	}
}
