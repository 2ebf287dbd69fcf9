package builder

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// gridBuild is the shared path of the grid arrays: one pad per grid
// cell named by row letter and column number.
func gridBuild(b *ctx) error {
	h := b.h
	h.NormalizeGridPitch()
	if h.RowCount == 0 || h.ColumnCount == 0 {
		return errMissing("rowCount")
	}
	if h.Pitch == 0 {
		return errMissing("pitch")
	}

	pad, err := gridCalc(b.s, h)
	if err != nil {
		return err
	}

	count := h.LeadCount
	if count == 0 {
		count = b.e.PinCount()
	}
	if count == 0 {
		count = h.RowCount * h.ColumnCount
	}

	d := b.s.DensityLevel
	body := fmt.Sprintf("%sX%sX%s",
		h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)))

	switch {
	case h.CGA:
		b.p.Name = fmt.Sprintf("CGA%dP%d_%dX%d_%s%s%s",
			count, hundredths(h.Pitch), h.ColumnCount, h.RowCount,
			body, h3(nomOf(h.LeadDiameter)), d)
		b.p.Description = fmt.Sprintf(
			"Ceramic Column Grid Array (CGA), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, %s Density",
			count, h.Pitch, nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height), densityWord(d))
		b.p.Tags = "cga ic"
	case h.LGA:
		b.p.Name = fmt.Sprintf("LGA%dP%d_%dX%d_%s%s%s",
			count, hundredths(h.Pitch), h.ColumnCount, h.RowCount,
			body, h3(nomOf(h.LeadLength)), d)
		b.p.Description = fmt.Sprintf(
			"Land Grid Array (LGA), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, %s Density",
			count, h.Pitch, nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height), densityWord(d))
		b.p.Tags = "lga ic"
	default:
		collapse := "N"
		if b.s.Ball.Collapsible {
			collapse = "C"
		}
		b.p.Name = fmt.Sprintf("BGA%d%sP%d_%dX%d_%s%s%s",
			count, collapse, hundredths(h.Pitch), h.ColumnCount, h.RowCount,
			body, h3(nomOf(h.LeadDiameter)), d)
		b.p.Description = fmt.Sprintf(
			"Ball Grid Array (BGA), %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Ball Diameter %.2fmm, IPC-7351 %s Density",
			count, h.Pitch, nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
			nomOf(h.LeadDiameter), densityWord(d))
		b.p.Tags = "bga ic"
	}

	shape := pattern.CirclePad
	if h.LGA {
		shape = pattern.RectPad
	}
	copper.GridArray(b.p, b.e, pattern.Pad{
		Type:   pattern.SMDPad,
		Shape:  shape,
		Width:  pad.Width,
		Height: pad.Height,
		Layers: smdRect,
	})
	silk.GridArray(b.p, h)
	assembly.Body(b.p, h)
	courtyard.GridArray(b.p, h, pad.Courtyard)
	return nil
}

func buildBGA(b *ctx) error {
	return gridBuild(b)
}

func buildCGA(b *ctx) error {
	b.h.CGA = true
	return gridBuild(b)
}

func buildLGA(b *ctx) error {
	b.h.LGA = true
	return gridBuild(b)
}
