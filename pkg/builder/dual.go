package builder

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/mask"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// smdRect is the layer stack an SMD copper pad lands on.
var smdRect = []pattern.Layer{pattern.TopCopper, pattern.TopMask, pattern.TopPaste}

// dualBuild is the shared path of the dual-row flat packages: resolve
// the pad pair, name the pattern from the housing dimensions and draw
// the standard decoration around the two pad columns.
func dualBuild(b *ctx) error {
	h := b.h
	var abbr, opt, pkg, tags string
	switch {
	case h.CFP:
		abbr, opt = "CFP", "sop"
		pkg, tags = "Ceramic Flat Package (CFP)", "cfp ic"
	case h.FlatLead:
		abbr, opt = "SOPFL", "flatlead"
		pkg, tags = "Small Outline Package Flat Lead (SOPFL)", "sopfl ic"
	case h.SOIC:
		abbr, opt = "SOIC", "sop"
		pkg, tags = "Small Outline Integrated Circuit (SOIC)", "soic ic"
	case h.SOL:
		abbr, opt = "SOL", "sol"
		pkg, tags = "Small Outline L-Lead (SOL)", "sol ic"
	default:
		abbr, opt = "SOP", "sop"
		pkg, tags = "Small Outline Package (SOP)", "sop ic"
	}

	// Datasheets sometimes omit the body length; the lead row extent is
	// close enough for the artwork.
	if h.BodyLength == nil && h.LeadCount > 0 {
		l := element.Exact(h.Pitch * float64(h.LeadCount) / 2)
		h.BodyLength = &l
	}

	pads, err := dualCalc(b.s, h, opt)
	if err != nil {
		return err
	}

	count := countPins(b.e, h.LeadCount)
	d := string(b.s.DensityLevel)
	ls := hundredths(nomOf(h.LeadSpan))
	bw := hundredths(nomOf(h.BodyWidth))
	bh := hundredths(maxOf(h.Height))
	ll := hundredths(nomOf(h.LeadLength))
	lw := hundredths(nomOf(h.LeadWidth))
	if abbr == "SOIC" {
		b.p.Name = fmt.Sprintf("SOIC%dP%d_%dX%dX%dL%dX%d%s",
			count, hundredths(h.Pitch), ls, bw, bh, ll, lw, d)
	} else {
		b.p.Name = fmt.Sprintf("%s%dP%d_%dX%dX%d%dX%d%s",
			abbr, count, hundredths(h.Pitch), ls, bw, bh, ll, lw, d)
	}
	b.p.Description = dualDescription(b, pkg, count)
	b.p.Tags = tags

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
	switch {
	case h.Polarized && h.SOIC:
		assembly.SOP(b.p, h)
	case h.Polarized:
		assembly.Polarized(b.p, h)
	default:
		assembly.Body(b.p, h)
	}
	courtyard.Dual(b.p, h, pads.Courtyard)
	mask.Dual(b.p, h)
	copper.Tab(b.p, b.e)
	return nil
}

// dualDescription composes the human-readable summary shared by the
// dual-row families.
func dualDescription(b *ctx, pkg string, count int) string {
	h := b.h
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s, %d Pin (%.2fmm pitch), ", pkg, count, h.Pitch)
	if h.BodyLength != nil {
		fmt.Fprintf(&sb, "Body %.2fmm x %.2fmm x %.2fmm, ",
			h.BodyLength.Nom, nomOf(h.BodyWidth), maxOf(h.Height))
	} else {
		fmt.Fprintf(&sb, "Body Width %.2fmm x %.2fmm, ",
			nomOf(h.BodyWidth), maxOf(h.Height))
	}
	if ls := nomOf(h.LeadSpan); ls > 0 {
		fmt.Fprintf(&sb, "Lead Span %.2fmm, ", ls)
	}
	fmt.Fprintf(&sb, "Lead %.2fmm x %.2fmm, %s Density",
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	return sb.String()
}

func buildSOIC(b *ctx) error {
	if b.h.Pitch == 0 {
		b.h.Pitch = 1.27
	}
	b.h.SOIC = true
	b.h.Polarized = true
	return dualBuild(b)
}

func buildSOPFL(b *ctx) error {
	b.h.FlatLead = true
	b.h.Polarized = true
	return dualBuild(b)
}
