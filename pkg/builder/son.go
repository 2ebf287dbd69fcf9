package builder

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// buildSON places a no-lead dual package. A longer pin 1 terminal gets
// its wider pad shifted to keep the outer edge aligned.
func buildSON(b *ctx) error {
	h := b.h
	h.SON = true
	h.Polarized = true

	pads, err := sonCalc(b.s, h)
	if err != nil {
		return err
	}

	count := countPins(b.e, h.LeadCount)
	suffix := ""
	thermalDesc := ""
	if h.HasTab() {
		suffix = fmt.Sprintf("T%sX%s", h3(h.TabLength.Nom), h3(h.TabWidth.Nom))
		thermalDesc = fmt.Sprintf(", Thermal Pad %.2fmm x %.2fmm",
			h.TabLength.Nom, h.TabWidth.Nom)
	}
	b.p.Name = fmt.Sprintf("SON%dP%s_%sX%sX%sL%sX%s%s%s",
		count, h3(h.Pitch),
		h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)),
		suffix, b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Small Outline No-Lead (SON), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm%s, %s Density",
		count, h.Pitch,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth),
		thermalDesc, densityWord(b.s.DensityLevel))
	b.p.Tags = "son ic"

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
	if pads.Width1 > 0 && pads.Width1 != pads.Width {
		if first := b.p.PadByName("1"); first != nil {
			first.X += (pads.Width1 - pads.Width) / 2
			first.Width = pads.Width1
			copper.Margins(b.p)
		}
	}

	silk.Dual(b.p, h)
	assembly.SON(b.p, h)
	courtyard.Dual(b.p, h, pads.Courtyard)
	copper.Tab(b.p, b.e)
	return nil
}

// buildPSON is a SON with pulled-back terminals.
func buildPSON(b *ctx) error {
	return buildSON(b)
}

// buildDFN places a 2 to 4 pin DFN discrete. The pad size comes from
// the no-lead stack; positions follow the fixed pitch fields, with a
// transistor-style enlarged pad 3 on three-pin parts.
func buildDFN(b *ctx) error {
	h := b.h
	h.DFN = true

	count := h.LeadCount
	if count < 2 || count > 4 {
		count = 2
	}

	compType := b.e.ComponentType
	if compType == "" {
		compType = "diode"
	}
	entry, ok := dfnTypes[compType]
	if !ok {
		entry = dfnTypes["diode"]
	}
	prefix, descName, tag := entry[0], entry[1], entry[2]
	switch compType {
	case "diode", "diode_non_polarized", "resistor", "transistor":
		if count > 2 {
			prefix = fmt.Sprintf("%s%d", prefix, count)
		}
	}
	b.p.Name = fmt.Sprintf("%s%sX%sX%sL%sX%s%s",
		prefix,
		h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"%s, %d Pin, Body %.2fmm x %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm, %s Density",
		descName, count,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = tag

	// The no-lead stack sees the along-length pitch when given.
	sonHousing := *h
	if h.Pitch1 != 0 {
		sonHousing.Pitch = h.Pitch1
	}
	pads, err := sonCalc(b.s, &sonHousing)
	if err != nil {
		return err
	}

	hSpacing := h.Pitch1
	if hSpacing == 0 {
		hSpacing = 2.0
	}
	vSpacing := h.Pitch
	if vSpacing == 0 {
		vSpacing = 0.8
	}
	xLeft, xRight := -hSpacing/2, hSpacing/2
	yOff := vSpacing / 2

	small := pattern.Pad{
		Type:   pattern.SMDPad,
		Shape:  pattern.RectPad,
		Width:  pads.Width,
		Height: pads.Height,
		Layers: smdRect,
	}
	place := func(num int, x, y float64, pad pattern.Pad) {
		pad.X, pad.Y = x, y
		if b.e.HasPin(fmt.Sprintf("%d", num)) {
			b.p.PadNum(num, pad)
		}
	}

	ox, oy := h.BodyOffset()
	b.p.Center(-ox, -oy)
	switch count {
	case 2:
		place(1, xLeft, 0, small)
		place(2, xRight, 0, small)
	case 3:
		place(1, xLeft, -yOff, small)
		place(2, xLeft, yOff, small)
		large := small
		large.Width = 1.8
		large.Height = 1.2
		if h.LargePadLength != nil {
			large.Width = h.LargePadLength.Nom
		}
		if h.LargePadWidth != nil {
			large.Height = h.LargePadWidth.Nom
		}
		place(3, xRight, 0, large)
	case 4:
		place(2, xLeft, yOff, small)
		place(1, xLeft, -yOff, small)
		place(3, xRight, yOff, small)
		place(4, xRight, -yOff, small)
	}
	b.p.Center(0, 0)
	copper.Margins(b.p)

	silk.DFNMolded(b.p, h)
	assembly.DFNMolded(b.p, h)
	courtyard.Boundary(b.p, h, pads.Courtyard)
	return nil
}
