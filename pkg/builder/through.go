package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/assembly"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/copper"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/courtyard"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/draw/silk"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// buildDIP places a through-hole dual in-line package. The first pad
// turns rectangular as the pin 1 marker; the rest stay round.
func buildDIP(b *ctx) error {
	h := b.h
	h.Polarized = true
	if h.Pitch == 0 {
		h.Pitch = 2.54
	}
	if h.LeadWidth == nil {
		h.LeadWidth = h.LeadDiameter
	}
	if h.LeadHeight == nil {
		h.LeadHeight = h.LeadDiameter
	}
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return err
	}
	if h.BodyWidth == nil && h.LeadWidth != nil {
		w := element.Exact(span.Nom - 2*h.LeadWidth.Nom)
		h.BodyWidth = &w
	}

	hole, padD, err := throughHole(b.s, h)
	if err != nil {
		return err
	}

	if b.p.Name == "" {
		prefix := "DIP"
		if h.Ceramic {
			prefix = "CDIP"
		}
		if h.Socket {
			prefix += "S"
		}
		b.p.Name = fmt.Sprintf("%s%dW%dP%dL%dH%dQ%d",
			prefix,
			hundredths(span.Nom), hundredths(nomOf(h.LeadWidth)),
			hundredths(h.Pitch), hundredths(nomOf(h.BodyLength)),
			hundredths(nomOf(h.Height)), h.LeadCount)
	}
	b.p.Description = fmt.Sprintf(
		"Dual In-Line Package, %d Pin (%.2fmm pitch), Lead Span %.2fmm, Body %.2fmm x %.2fmm",
		h.LeadCount, h.Pitch, span.Nom, nomOf(h.BodyLength), nomOf(h.BodyWidth))
	b.p.Tags = "dip"

	copper.Dual(b.p, b.e, copper.DualPads{
		Pad: pattern.Pad{
			Type: pattern.ThroughHolePad, Shape: pattern.CirclePad,
			Width: padD, Height: padD, Hole: hole,
			Layers: throughHoleLayers,
		},
		Distance: span.Nom,
		Order:    copper.RoundOrder,
	})
	if first := b.p.PadByName("1"); first != nil {
		first.PadShape = pattern.RectPad
	}

	silk.Dual(b.p, h)
	assembly.Polarized(b.p, h)
	courtyard.Dual(b.p, h, byDensity(b.s.DensityLevel, 0.2, 0.8, 1.5))
	return nil
}

// buildBridge places two touching copper-only pads that join nets
// under solder mask.
func buildBridge(b *ctx) error {
	h := b.h
	if h.PadWidth == nil || h.PadHeight == nil {
		return errMissing("padWidth")
	}
	w, ht := *h.PadWidth, *h.PadHeight

	b.p.Name = strings.ToUpper(b.e.Name)
	b.p.Description = fmt.Sprintf("Solder Bridge, %.2fmm x %.2fmm", w, ht)
	b.p.Tags = "bridge"

	bare := []pattern.Layer{pattern.TopCopper}
	b.p.PadNum(1, pattern.Pad{
		Type: pattern.SMDPad, Shape: pattern.RectPad,
		X: -w / 2, Width: w, Height: ht,
		Layers: bare,
	})
	b.p.PadNum(2, pattern.Pad{
		Type: pattern.SMDPad, Shape: pattern.RectPad,
		X: w / 2, Width: w, Height: ht,
		Layers: bare,
	})
	return nil
}

// buildMountingHole places a mounting hole: plated with a pad when the
// element gives one, otherwise a bare unplated hole. An optional via
// ring stitches the annulus to the bottom copper.
func buildMountingHole(b *ctx) error {
	h := b.h
	if h.HoleDiameter == nil {
		return errMissing("holeDiameter")
	}
	hole := *h.HoleDiameter

	b.p.Name = strings.ToUpper(b.e.Name)
	b.p.Description = fmt.Sprintf("Mounting Hole, %.2fmm", hole)
	b.p.Tags = "mounting hole"

	var pad pattern.Pad
	switch {
	case h.PadDiameter != nil:
		pad = pattern.Pad{
			Type: pattern.ThroughHolePad, Shape: pattern.CirclePad,
			Width: *h.PadDiameter, Height: *h.PadDiameter, Hole: hole,
			Layers: throughHoleLayers,
		}
	case h.PadWidth != nil && h.PadHeight != nil:
		pad = pattern.Pad{
			Type: pattern.ThroughHolePad, Shape: pattern.RectPad,
			Width: *h.PadWidth, Height: *h.PadHeight, Hole: hole,
			Layers: throughHoleLayers,
		}
	default:
		pad = pattern.Pad{
			Type: pattern.MountingHolePad, Shape: pattern.CirclePad,
			Width: hole, Height: hole, Hole: hole,
			Layers: throughHoleLayers,
		}
	}
	b.p.Pad("1", pad)
	copper.Margins(b.p)

	if h.ViaDiameter > 0 && h.PadDiameter != nil {
		count := h.ViaCount
		if count == 0 {
			count = 8
		}
		r := hole/2 + (*h.PadDiameter-hole)/4
		viaPad := h.ViaDiameter + b.s.Minimum.RingWidth
		for i := 0; i < count; i++ {
			a := 2 * math.Pi * float64(i) / float64(count)
			b.p.AppendPad("1", pattern.Pad{
				Type: pattern.ThroughHolePad, Shape: pattern.CirclePad,
				X: r * math.Cos(a), Y: r * math.Sin(a),
				Width: viaPad, Height: viaPad, Hole: h.ViaDiameter,
				Layers: []pattern.Layer{pattern.TopCopper, pattern.BottomCopper},
			})
		}
	}

	keepout := byDensity(b.s.DensityLevel, 0.12, 0.25, 0.5)
	if h.Keepout != nil {
		keepout = *h.Keepout
	}
	b.p.Layer(pattern.TopCourtyard).LineWidth(b.p.Settings.LineWidth.Courtyard)
	if pad.Shape == pattern.CirclePad {
		b.p.Circle(0, 0, pad.Width/2+keepout)
	} else {
		x := pad.Width/2 + keepout
		y := pad.Height/2 + keepout
		b.p.Rectangle(-x, -y, x, y)
	}

	b.p.Layer(pattern.TopAssembly).LineWidth(b.p.Settings.LineWidth.Assembly)
	b.p.Attribute("refDes", pattern.Attr{})
	b.p.Attribute("value", pattern.Attr{Text: b.p.Name, Hidden: true})
	return nil
}
