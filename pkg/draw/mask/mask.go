// Package mask draws solder mask cutouts for housings that ask for an
// open mask window over the whole part.
package mask

import (
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

func preamble(p *pattern.Pattern) *pattern.Pattern {
	return p.Layer(pattern.TopMask).LineWidth(p.Settings.LineWidth.Courtyard)
}

func rect(p *pattern.Pattern, h *element.Housing) {
	if !h.MaskCutout {
		return
	}
	pads := p.Pads()
	if len(pads) == 0 {
		return
	}
	first := pads[0]
	last := pads[len(pads)-1]
	width := max(max(first.Width, last.Width), h.BodyWidth.Max)
	height := max(max(first.Height, last.Height), h.BodyLength.Max)
	width += p.Settings.Clearance.PadToMask
	height += p.Settings.Clearance.PadToMask
	preamble(p).Fill(true).Rectangle(-width/2, -height/2, width/2, height/2).Fill(false)
}

// Dual draws the cutout window of a dual-row package.
func Dual(p *pattern.Pattern, h *element.Housing) {
	rect(p, h)
}

// Quad draws the cutout window of a quad package.
func Quad(p *pattern.Pattern, h *element.Housing) {
	rect(p, h)
}

// TwoPin draws the cutout window of a two-terminal part, a circle for
// cylindrical bodies.
func TwoPin(p *pattern.Pattern, h *element.Housing) {
	if !h.MaskCutout {
		return
	}
	if h.BodyWidth != nil && h.BodyLength != nil {
		rect(p, h)
		return
	}
	if h.BodyDiameter != nil {
		r := h.BodyDiameter.Max/2 + p.Settings.Clearance.PadToMask
		preamble(p).Fill(true).Circle(0, 0, r).Fill(false)
	}
}
