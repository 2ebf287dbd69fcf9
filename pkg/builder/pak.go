package builder

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// buildPak places a DPAK/TO-style power package: a row of gullwing
// leads on the left and the heat tab on the right. Absent pins in the
// pinout leave gaps in the lead row; the tab keeps the next number.
func buildPak(b *ctx) error {
	h := b.h
	h.Polarized = true
	h.NormalizePakLeads()

	pads, err := pakCalc(b.s, h)
	if err != nil {
		return err
	}
	if b.p.Name == "" {
		b.p.Name = fmt.Sprintf("TO%dP%dX%dX%d-%d%s",
			hundredths(h.Pitch),
			hundredths(nomOf(h.BodyLength)), hundredths(nomOf(h.BodyWidth)),
			hundredths(maxOf(h.Height)), h.LeadCount, b.s.DensityLevel)
	}
	b.p.Description = fmt.Sprintf(
		"Transistor Outline, %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, %s Density",
		h.LeadCount, h.Pitch,
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		densityWord(b.s.DensityLevel))
	b.p.Tags = "pak"

	y := -h.Pitch * (float64(h.LeadCount)/2 - 0.5)
	for i := 1; i <= h.LeadCount; i++ {
		if b.e.HasPin(strconv.Itoa(i)) {
			b.p.PadNum(i, pattern.Pad{
				Type: pattern.SMDPad, Shape: pattern.RectPad,
				X: -pads.Distance1 / 2, Y: y,
				Width: pads.Width1, Height: pads.Height1,
				Layers: smdRect,
			})
		}
		y += h.Pitch
	}
	b.p.PadNum(h.LeadCount+1, pattern.Pad{
		Type: pattern.SMDPad, Shape: pattern.RectPad,
		X:     pads.Distance2 / 2,
		Width: pads.Width2, Height: pads.Height2,
		Layers: smdRect,
	})
	copper.Margins(b.p)

	silk.Pak(b.p, h)
	assembly.Pak(b.p, b.e)
	courtyard.Pak(b.p, h, pads.Courtyard)
	return nil
}
