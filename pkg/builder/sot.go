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

func sotPad(x, y, w, h float64) pattern.Pad {
	return pattern.Pad{
		Type: pattern.SMDPad, Shape: pattern.RectPad,
		X: x, Y: y, Width: w, Height: h,
		Layers: smdRect,
	}
}

// buildSOT143 places the asymmetric four-lead SOT143: three narrow leads
// and one wide lead whose inner edge lines up with its neighbour.
func buildSOT143(b *ctx) error {
	h := b.h
	h.Polarized = true
	if h.LeadCount == 0 {
		h.LeadCount = 4
	}

	pads, err := sotCalc(b.s, h)
	if err != nil {
		return err
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("SOT143%dP%d_%sX%sX%s%sX%s%s",
			h.LeadCount, hundredths(h.Pitch),
			h3(nomOf(h.LeadSpan)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
			h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	}

	d := pads.Distance
	pitch := h.Pitch
	if h.Reversed {
		b.p.PadNum(1, sotPad(-d/2, -pitch/2, pads.Width1, pads.Height1))
		b.p.PadNum(2, sotPad(-d/2, pitch/2+pads.Height1/2-pads.Height2/2,
			pads.Width2, pads.Height2))
	} else {
		b.p.PadNum(1, sotPad(-d/2, -pitch/2-pads.Height1/2+pads.Height2/2,
			pads.Width2, pads.Height2))
		b.p.PadNum(2, sotPad(-d/2, pitch/2, pads.Width1, pads.Height1))
	}
	b.p.PadNum(3, sotPad(d/2, pitch/2, pads.Width1, pads.Height1))
	b.p.PadNum(4, sotPad(d/2, -pitch/2, pads.Width1, pads.Height1))
	copper.Margins(b.p)

	silk.Dual(b.p, h)
	assembly.Polarized(b.p, h)
	courtyard.Dual(b.p, h, pads.Courtyard)
	return nil
}

// buildSOT223 places the SOT223 power package: a row of leads on the
// left and one wide tab lead on the right.
func buildSOT223(b *ctx) error {
	h := b.h
	h.Polarized = true
	if h.LeadCount == 0 {
		h.LeadCount = 4
	}

	pads, err := sotCalc(b.s, h)
	if err != nil {
		return err
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("SOT223%dP%d_%sX%sX%s%sX%s%s",
			h.LeadCount, hundredths(h.Pitch),
			h3(nomOf(h.LeadSpan)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
			h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	}

	d := pads.Distance
	leftCount := h.LeadCount - 1
	y := -h.Pitch * (float64(leftCount)/2 - 0.5)
	for i := 1; i <= leftCount; i++ {
		b.p.PadNum(i, sotPad(-d/2, y, pads.Width1, pads.Height1))
		y += h.Pitch
	}
	b.p.PadNum(leftCount+1, sotPad(d/2, 0, pads.Width2, pads.Height2))
	copper.Margins(b.p)

	silk.Dual(b.p, h)
	assembly.Polarized(b.p, h)
	courtyard.Dual(b.p, h, pads.Courtyard)
	return nil
}

// buildSOT895 places the flat-lead SOT89-5: two leads each side of a
// wide center lead that runs under the body.
func buildSOT895(b *ctx) error {
	h := b.h
	h.Polarized = true
	h.FlatLead = true
	if h.LeadCount == 0 {
		h.LeadCount = 5
	}

	pads, err := sotCalc(b.s, h)
	if err != nil {
		return err
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("SOTFL%dP%dX%d-%d%s",
			hundredths(h.Pitch), hundredths(nomOf(h.LeadSpan)),
			hundredths(maxOf(h.Height)), h.LeadCount, b.s.DensityLevel)
	}

	d := pads.Distance
	pitch := h.Pitch
	b.p.PadNum(1, sotPad(-d/2, -pitch, pads.Width1, pads.Height1))
	b.p.PadNum(2, sotPad(0, 0, pads.Width2+d, pads.Height2))
	b.p.PadNum(3, sotPad(-d/2, pitch, pads.Width1, pads.Height1))
	b.p.PadNum(4, sotPad(d/2, pitch, pads.Width1, pads.Height1))
	b.p.PadNum(5, sotPad(d/2, -pitch, pads.Width1, pads.Height1))
	copper.Margins(b.p)

	silk.Dual(b.p, h)
	assembly.Polarized(b.p, h)
	courtyard.Dual(b.p, h, pads.Courtyard)
	return nil
}

// buildSOTFL places the flat-lead SOT23 variants with three, five or
// six leads. Even lead counts other than six route through the SOP
// builder, which handles symmetric dual rows.
func buildSOTFL(b *ctx) error {
	h := b.h
	h.Polarized = true
	h.SOT23 = true

	if h.LeadCount%2 == 0 && h.LeadCount != 6 {
		return buildSOP(b)
	}

	pads, err := sotflCalc(b.s, h)
	if err != nil {
		return err
	}

	compType := b.e.ComponentType
	if compType == "" {
		compType = "ICSOFL"
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("%s%dP%s_%sX%sL%sX%s%s",
			compType, h.LeadCount, h3(h.Pitch),
			h3(nomOf(h.LeadSpan)), h3(maxOf(h.Height)),
			h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	}
	b.p.Description = fmt.Sprintf(
		"Small Outline Transistor Flat Lead (SOTFL), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm, %s Density",
		h.LeadCount, h.Pitch,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = "sotfl"

	var leftCount, rightCount int
	leftPitch, rightPitch := h.Pitch, h.Pitch
	switch h.LeadCount {
	case 3:
		leftCount, rightCount = 2, 1
		leftPitch = h.Pitch * 2
	case 5:
		leftCount, rightCount = 3, 2
		rightPitch = h.Pitch * 2
	case 6:
		leftCount, rightCount = 3, 3
	default:
		return fmt.Errorf("sotfl: %d leads: %w", h.LeadCount, ErrUnsupported)
	}

	d := pads.Distance
	y := -leftPitch * (float64(leftCount)/2 - 0.5)
	for i := 1; i <= leftCount; i++ {
		b.p.PadNum(i, sotPad(-d/2, y, pads.Width1, pads.Height1))
		y += leftPitch
	}
	y = rightPitch * (float64(rightCount)/2 - 0.5)
	for i := 1; i <= rightCount; i++ {
		b.p.PadNum(leftCount+i, sotPad(d/2, y, pads.Width1, pads.Height1))
		y -= rightPitch
	}
	copper.Margins(b.p)

	silk.SOTFL(b.p, h)
	assembly.SOT23(b.p, h)
	courtyard.BoundaryFlex(b.p, h, pads.Courtyard)
	mask.Dual(b.p, h)
	return nil
}
