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

// quadBuild is the shared path of the four-sided packages. Row pads sit
// left and right, column pads top and bottom with width and height
// swapped, numbered counterclockwise from the top left.
func quadBuild(b *ctx) error {
	h := b.h
	if h.RowCount == 0 && h.ColumnCount == 0 && h.LeadCount > 0 {
		h.RowCount = h.LeadCount / 4
		h.ColumnCount = h.LeadCount / 4
	}
	if h.LeadCount == 0 {
		h.LeadCount = 2 * (h.RowCount + h.ColumnCount)
	}
	// QFP spans may be given as one leadSpan for both axes.
	if h.RowSpan == nil && h.LeadSpan != nil {
		d := *h.LeadSpan
		h.RowSpan = &d
	}
	if h.ColumnSpan == nil && h.LeadSpan != nil {
		d := *h.LeadSpan
		h.ColumnSpan = &d
	}

	qfn := h.QFN || h.PQFN
	pads, err := quadCalc(b.s, h, qfn)
	if err != nil {
		return err
	}

	var abbr, pkg, tags string
	var length, width float64
	switch {
	case h.CQFP:
		abbr = "CQFP"
		pkg, tags = "Ceramic Quad Flat Package (CQFP)", "cqfp ic"
		length, width = nomOf(h.RowSpan), nomOf(h.ColumnSpan)
	case h.PQFN:
		abbr = "PQFN"
		pkg, tags = "Pullback Quad Flat No-Lead (PQFN)", "pqfn ic"
		length, width = nomOf(h.BodyLength), nomOf(h.BodyWidth)
	case h.QFN:
		abbr = "QFN"
		pkg, tags = "Quad Flat No-Lead (QFN)", "qfn ic"
		length, width = nomOf(h.BodyLength), nomOf(h.BodyWidth)
	default:
		abbr = "QFP"
		pkg, tags = "Quad Flat Package (QFP)", "qfp ic"
		length, width = nomOf(h.ColumnSpan), nomOf(h.RowSpan)
	}

	count := countPins(b.e, h.LeadCount)
	suffix := ""
	thermalDesc := ""
	if qfn && h.HasTab() {
		suffix = fmt.Sprintf("T%dX%d",
			hundredths(h.TabLength.Nom), hundredths(h.TabWidth.Nom))
		thermalDesc = fmt.Sprintf(", Thermal Pad %.2fmm x %.2fmm",
			h.TabLength.Nom, h.TabWidth.Nom)
	}
	b.p.Name = fmt.Sprintf("%s%dP%s_%sX%sX%sL%sX%s%s%s",
		abbr, count, h3(h.Pitch),
		h3(length), h3(width), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)),
		suffix, b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"%s, %d Pin (%.2fmm pitch), Body %.2fmm x %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm%s, %s Density",
		pkg, count, h.Pitch,
		length, width, maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth),
		thermalDesc, densityWord(b.s.DensityLevel))
	b.p.Tags = tags

	copper.Quad(b.p, b.e, copper.QuadPads{
		RowPad: pattern.Pad{
			Type:   pattern.SMDPad,
			Shape:  pattern.RectPad,
			Width:  pads.Width1,
			Height: pads.Height1,
			Layers: smdRect,
		},
		ColumnPad: pattern.Pad{
			Type:   pattern.SMDPad,
			Shape:  pattern.RectPad,
			Width:  pads.Height2,
			Height: pads.Width2,
			Layers: smdRect,
		},
		Distance1: pads.Distance1,
		Distance2: pads.Distance2,
	})
	silk.Quad(b.p, h)
	assembly.Quad(b.p, h)
	courtyard.BoundaryFlex(b.p, h, pads.Courtyard)
	mask.Quad(b.p, h)
	copper.Tab(b.p, b.e)
	return nil
}

func buildQFP(b *ctx) error {
	return quadBuild(b)
}

func buildCQFP(b *ctx) error {
	b.h.CQFP = true
	return quadBuild(b)
}

func buildQFN(b *ctx) error {
	b.h.QFN = true
	return quadBuild(b)
}

func buildPQFN(b *ctx) error {
	b.h.QFN = true
	b.h.PQFN = true
	return quadBuild(b)
}
