package builder

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// buildChipArray places a dual-row array of chip terminations, the
// concave or flat castellations of resistor and capacitor networks.
func buildChipArray(b *ctx) error {
	h := b.h

	pads, err := chipArrayCalc(b.s, h)
	if err != nil {
		return err
	}

	compType := b.e.ComponentType
	if compType == "" {
		compType = "CAPCAV"
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("%s%dP%s_%sX%sX%s%sX%s%s",
			compType, h.LeadCount, h3(h.Pitch),
			h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
			h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	}
	if b.p.Description == "" {
		b.p.Description = fmt.Sprintf(
			"Chip Array, %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, %s Density",
			h.LeadCount, h.Pitch,
			nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
			densityWord(b.s.DensityLevel))
	}

	copper.Dual(b.p, b.e, copper.DualPads{
		Pad: pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			Width: pads.Width, Height: pads.Height,
			Layers: smdRect,
		},
		Distance: pads.Distance,
		Order:    copper.RoundOrder,
	})
	silk.Dual(b.p, h)
	assembly.Body(b.p, h)
	courtyard.Boundary(b.p, h, pads.Courtyard)
	return nil
}

// buildOscillator places a crystal oscillator. Corner-concave bodies
// get the four corner castellations; side-concave and side-flat bodies
// reuse the chip array layout under their own names.
func buildOscillator(b *ctx) error {
	h := b.h

	switch {
	case h.SideConcave, h.SideFlat:
		abbr := "OSCSC"
		if h.SideFlat {
			abbr = "OSCSF"
		}
		h.Concave = h.SideConcave
		b.p.Name = fmt.Sprintf("%s%dP%s_%sX%sX%s%sX%s%s",
			abbr, h.LeadCount, h3(h.Pitch),
			h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
			h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
		b.p.Description = fmt.Sprintf(
			"Crystal Oscillator, %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, %s Density",
			h.LeadCount, h.Pitch,
			nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
			densityWord(b.s.DensityLevel))
		b.p.Tags = "oscillator"
		return buildChipArray(b)
	case h.DFN:
		return fmt.Errorf("oscillator: dfn body: %w", ErrUnsupported)
	}

	h.CornerConcave = true
	pads, err := cornerCalc(b.s, h)
	if err != nil {
		return err
	}
	h.LeadCount = 4
	h.Pitch = pads.Distance2

	bl := nomOf(h.BodyLength)
	bw := nomOf(h.BodyWidth)
	bh := maxOf(h.Height)
	b.p.Name = fmt.Sprintf("OSCC%dX%dX%dL%dX%d%s",
		hundredths(bl), hundredths(bw), hundredths(bh),
		hundredths(nomOf(h.LeadLength)), hundredths(nomOf(h.LeadWidth)),
		b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Crystal Oscillator %.1fmmx%.1fmm , Body %.2fmmx%.2fmm, Height %.2fmm, Lead %.2fmmx%.2fmm, %s Density",
		bl, bw, bl, bw, bh,
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = "oscillator"

	copper.Dual(b.p, b.e, copper.DualPads{
		Pad: pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			Width: pads.Width, Height: pads.Height,
			Layers: smdRect,
		},
		Distance: pads.Distance1,
		Order:    copper.CustomOrder,
		Numbers:  []int{4, 1, 3, 2},
	})
	silk.CornerConcave(b.p, h)
	assembly.CornerConcave(b.p, h)
	courtyard.Boundary(b.p, h, pads.Courtyard)
	return nil
}
