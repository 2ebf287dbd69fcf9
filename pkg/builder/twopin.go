package builder

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/mask"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

var throughHoleLayers = []pattern.Layer{
	pattern.TopCopper, pattern.TopMask,
	pattern.IntCopper,
	pattern.BottomCopper, pattern.BottomMask,
}

// twoPinBuild is the shared path of the two-terminal parts. Chip-style
// bodies lie horizontally with pin 1 on the left; the rest stand
// vertically with pin 1 on top. Radial parts become through-hole pads.
func twoPinBuild(b *ctx, opt string) error {
	h := b.h
	if h.Radial {
		opt = "radial"
	} else {
		h.DefaultBodyWidthFromDiameter()
	}

	pads, err := twoPinCalc(b.s, h, opt)
	if err != nil {
		return err
	}
	if b.p.Name == "" {
		b.p.Name = twoPinName(b, opt)
	}

	if pads.Hole > 0 {
		shape1 := pattern.CirclePad
		if h.Polarized {
			shape1 = pattern.RectPad
		}
		b.p.PadNum(1, pattern.Pad{
			Type: pattern.ThroughHolePad, Shape: shape1,
			Y:     -pads.Distance / 2,
			Width: pads.Width, Height: pads.Height,
			Hole:   pads.Hole,
			Layers: throughHoleLayers,
		})
		b.p.PadNum(2, pattern.Pad{
			Type: pattern.ThroughHolePad, Shape: pattern.CirclePad,
			Y:     pads.Distance / 2,
			Width: pads.Width, Height: pads.Height,
			Hole:   pads.Hole,
			Layers: throughHoleLayers,
		})
	} else if h.CAE || h.Chip {
		b.p.PadNum(1, pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			X:     -pads.Distance / 2,
			Width: pads.Width, Height: pads.Height,
			Layers: smdRect,
		})
		b.p.PadNum(2, pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			X:     pads.Distance / 2,
			Width: pads.Width, Height: pads.Height,
			Layers: smdRect,
		})
	} else {
		// Vertical orientation swaps the pad sides.
		b.p.PadNum(1, pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			Y:     -pads.Distance / 2,
			Width: pads.Height, Height: pads.Width,
			Layers: smdRect,
		})
		b.p.PadNum(2, pattern.Pad{
			Type: pattern.SMDPad, Shape: pattern.RectPad,
			Y:     pads.Distance / 2,
			Width: pads.Height, Height: pads.Width,
			Layers: smdRect,
		})
	}
	copper.Margins(b.p)

	silk.TwoPin(b.p, h)
	assembly.TwoPin(b.p, h)
	if h.CAE {
		courtyard.Boundary(b.p, h, pads.Courtyard)
	} else {
		courtyard.TwoPin(b.p, h, pads.Courtyard)
	}
	mask.TwoPin(b.p, h)
	return nil
}

// twoPinName is the fallback naming of the two-pin families whose kind
// builder does not set its own.
func twoPinName(b *ctx, opt string) string {
	h := b.h
	d := string(b.s.DensityLevel)
	bl := nomOf(h.BodyLength)
	bw := nomOf(h.BodyWidth)
	hh := maxOf(h.Height)
	switch {
	case h.CAE:
		return fmt.Sprintf("UAE%dX%d%s", hundredths(bw), hundredths(hh), d)
	case h.Concave:
		return fmt.Sprintf("USC%02dX%02dX%d%s", tenths(bl), tenths(bw), hundredths(hh), d)
	case h.Crystal:
		return fmt.Sprintf("U%02dX%02dX%d%s", tenths(bl), tenths(bw), hundredths(hh), d)
	case h.DFN:
		return fmt.Sprintf("UDFN%02dX%02dX%d%s", tenths(bl), tenths(bw), hundredths(hh), d)
	case h.Molded:
		return fmt.Sprintf("UM%02d%02dX%d%s", tenths(bl), tenths(bw), hundredths(hh), d)
	case h.Melf:
		return fmt.Sprintf("UMELF%02d%02d%s", tenths(bl), tenths(nomOf(h.BodyDiameter)), d)
	case h.Radial:
		abbr := "UR"
		if h.BodyDiameter != nil {
			abbr = "URD"
		}
		return fmt.Sprintf("%s%02dW%02dD%02dH%02d%s", abbr,
			hundredths(nomOf(h.LeadSpan)), hundredths(nomOf(h.LeadDiameter)),
			hundredths(nomOf(h.BodyDiameter)), hundredths(hh), d)
	case h.SOD:
		return fmt.Sprintf("SOD%02d%02dX%d%s",
			tenths(nomOf(h.LeadSpan)), tenths(bw), hundredths(hh), d)
	case h.SODFL:
		return fmt.Sprintf("SODFL%02d%02dX%d%s",
			tenths(nomOf(h.LeadSpan)), tenths(bw), hundredths(hh), d)
	default:
		return fmt.Sprintf("UC%02d%02dX%d%s", tenths(bl), tenths(bw), hundredths(hh), d)
	}
}

// buildChip places a rectangular chip component: resistor, capacitor,
// LED and friends, named by the component type prefix.
func buildChip(b *ctx) error {
	h := b.h
	h.Chip = true

	compType := b.e.ComponentType
	if compType == "" {
		compType = "CAPC"
	}
	entry, ok := chipTypes[compType]
	if !ok {
		entry = [2]string{"Component", "component"}
	}

	bl := nomOf(h.BodyLength)
	bw := nomOf(h.BodyWidth)
	b.p.Name = fmt.Sprintf("%s%sX%sX%sL%s%s",
		compType, h3(bl), h3(bw), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"%s %s (%02d%02d Metric), Length %.2fmm, Width %.2fmm, Height %.2fmm, Lead Length %.2fmm, %s Density",
		entry[0], imperialSize(bl, bw), tenths(bl), tenths(bw),
		bl, bw, maxOf(h.Height), nomOf(h.LeadLength), densityWord(b.s.DensityLevel))
	b.p.Tags = entry[1]
	return twoPinBuild(b, "chip")
}

// buildMelf places a cylindrical MELF diode.
func buildMelf(b *ctx) error {
	h := b.h
	h.Melf = true
	h.DefaultBodyWidthFromDiameter()

	b.p.Name = fmt.Sprintf("DIOMELF%s%s%s%s",
		h3(nomOf(h.BodyLength)), h3(nomOf(h.BodyDiameter)),
		h3(nomOf(h.LeadLength)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"MELF Diode, Length %.2fmm, Diameter %.2fmm, Lead Length %.2fmm, %s Density",
		nomOf(h.BodyLength), nomOf(h.BodyDiameter), nomOf(h.LeadLength),
		densityWord(b.s.DensityLevel))
	b.p.Tags = "diode melf"
	return twoPinBuild(b, "melf")
}

// buildMolded places a molded-body two-pin part, lying flat like a chip.
func buildMolded(b *ctx) error {
	h := b.h
	h.Molded = true
	h.Chip = true
	h.DefaultLeadSpan()

	compType := b.e.ComponentType
	if compType == "" {
		compType = "diode"
	}
	entry, ok := moldedTypes[compType]
	if !ok {
		entry = moldedTypes["diode"]
	}
	b.p.Name = fmt.Sprintf("%s%sX%sX%sL%sX%s%s",
		entry[0], h3(nomOf(h.LeadSpan)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"%s, Lead Span %.2fmm, Body %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm, %s Density",
		entry[1], nomOf(h.LeadSpan), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = entry[2]
	return twoPinBuild(b, "molded")
}

// buildCAE places an aluminium electrolytic capacitor. The lead span
// reconciles with the lead length and the gap between the leads,
// whichever two the datasheet gives.
func buildCAE(b *ctx) error {
	h := b.h
	h.CAE = true
	h.Polarized = true

	if h.LeadSpan == nil && h.LeadLength != nil && h.LeadSpace != nil {
		ll, sp := *h.LeadLength, *h.LeadSpace
		h.LeadSpan = &element.Dim{
			Min: 2*ll.Min + sp.Min,
			Nom: 2*ll.Nom + sp.Nom,
			Max: 2*ll.Max + sp.Max,
		}
	}
	if h.LeadLength == nil && h.LeadSpan != nil && h.LeadSpace != nil {
		span, sp := *h.LeadSpan, *h.LeadSpace
		h.LeadLength = &element.Dim{
			Min: (span.Min - sp.Max) / 2,
			Nom: (span.Nom - sp.Nom) / 2,
			Max: (span.Max - sp.Min) / 2,
		}
	}

	b.p.Name = fmt.Sprintf("CAPAE%sX%sL%sX%s%s",
		h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Aluminium Electrolytic Capacitor, Length %.2fmm, Width %.2fmm, Height %.2fmm, Lead Length %.2fmm, %s Density",
		nomOf(h.BodyLength), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), densityWord(b.s.DensityLevel))
	b.p.Tags = "capacitor electrolytic"
	return twoPinBuild(b, "crystal")
}

// buildSOD places a gullwing-lead SOD diode.
func buildSOD(b *ctx) error {
	h := b.h
	h.SOD = true
	h.Polarized = true
	h.DefaultLeadSpan()

	b.p.Name = fmt.Sprintf("SOD%sX%sX%s%sX%s%s",
		h3(nomOf(h.LeadSpan)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Small Outline Diode (SOD), Lead Span %.2fmm, Body %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm, %s Density",
		nomOf(h.LeadSpan), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = "diode"
	return twoPinBuild(b, "sod")
}

// buildSODFL places a flat-lead SOD diode.
func buildSODFL(b *ctx) error {
	h := b.h
	h.SODFL = true
	h.Chip = true
	h.Polarized = true
	h.DefaultLeadSpan()

	b.p.Name = fmt.Sprintf("SODFL%sX%sX%sL%sX%s%s",
		h3(nomOf(h.LeadSpan)), h3(nomOf(h.BodyWidth)), h3(maxOf(h.Height)),
		h3(nomOf(h.LeadLength)), h3(nomOf(h.LeadWidth)), b.s.DensityLevel)
	b.p.Description = fmt.Sprintf(
		"Small Outline Diode, Flat Lead (SODFL), Lead Span %.2fmm, Body %.2fmm x %.2fmm, Lead %.2fmm x %.2fmm, %s Density",
		nomOf(h.LeadSpan), nomOf(h.BodyWidth), maxOf(h.Height),
		nomOf(h.LeadLength), nomOf(h.LeadWidth), densityWord(b.s.DensityLevel))
	b.p.Tags = "diode"
	return twoPinBuild(b, "sodfl")
}

// buildCrystal places a two-pin crystal.
func buildCrystal(b *ctx) error {
	b.h.Crystal = true
	b.p.Tags = "crystal"
	return twoPinBuild(b, "crystal")
}
