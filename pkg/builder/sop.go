package builder

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/mask"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// buildSOP places a gullwing dual package with an optional exposed
// thermal pad in the body center.
func buildSOP(b *ctx) error {
	h := b.h
	h.SOP = true
	h.Polarized = true

	pads, err := dualCalc(b.s, h, "sop")
	if err != nil {
		return err
	}

	count := countPins(b.e, h.LeadCount)
	thermal := h.HasTab()

	suffix := ""
	thermalDesc := ""
	if thermal {
		suffix = fmt.Sprintf("T%sX%s", h3(h.TabLength.Nom), h3(h.TabWidth.Nom))
		thermalDesc = fmt.Sprintf(", Thermal Pad %.2fmm x %.2fmm",
			h.TabLength.Nom, h.TabWidth.Nom)
	}
	b.p.Name = fmt.Sprintf("SOP%dP%s_%sX%sX%sL%sX%s%s%s",
		count, h3(h.Pitch),
		h3(nomOf(h.BodyLength)), h3(nomOf(h.LeadSpan)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)),
		suffix, b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Small Outline Package (SOP), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm%s, %s Density",
		count, h.Pitch,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth),
		thermalDesc, densityWord(b.s.DensityLevel))
	b.p.Tags = "sop"

	copper.Dual(b.p, b.e, copper.DualPads{
		Pad: pattern.Pad{
			Type:   pattern.SMDPad,
			Shape:  pattern.RectPad,
			Width:  pads.Width,
			Height: pads.Height,
			Layers: smdRect,
		},
		Distance: pads.Distance,
		Order:    copper.RoundOrder,
	})
	if thermal {
		b.p.PadNum(h.LeadCount+1, pattern.Pad{
			Type:   pattern.SMDPad,
			Shape:  pattern.RectPad,
			Width:  h.TabWidth.Nom,
			Height: h.TabLength.Nom,
			Layers: smdRect,
		})
		copper.Margins(b.p)
	}

	silk.Dual(b.p, h)
	assembly.SOP(b.p, h)
	courtyard.BoundaryFlex(b.p, h, pads.Courtyard)
	mask.Dual(b.p, h)
	return nil
}

// buildSOJ places a J-lead dual package.
func buildSOJ(b *ctx) error {
	h := b.h
	h.SOJ = true
	h.Polarized = true

	pads, err := sojCalc(b.s, h)
	if err != nil {
		return err
	}

	count := countPins(b.e, h.LeadCount)
	b.p.Name = fmt.Sprintf("SOJ%dP%s_%sX%sX%sL%s%s",
		count, h3(h.Pitch),
		h3(nomOf(h.BodyLength)), h3(nomOf(h.LeadSpan)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Small Outline J-Lead (SOJ), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Lead Span %.2fmm, Lead Width %.2fmm, %s Density",
		count, h.Pitch,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadSpan), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = "soj"

	copper.Dual(b.p, b.e, copper.DualPads{
		Pad: pattern.Pad{
			Type:   pattern.SMDPad,
			Shape:  pattern.RectPad,
			Width:  pads.Width,
			Height: pads.Height,
			Layers: smdRect,
		},
		Distance: pads.Distance,
		Order:    copper.RoundOrder,
	})
	silk.Dual(b.p, h)
	assembly.SOP(b.p, h)
	courtyard.Dual(b.p, h, pads.Courtyard)
	mask.Dual(b.p, h)
	return nil
}
