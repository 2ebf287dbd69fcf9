package builder

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
)

// placeRound is the grid pad center distances snap to.
const placeRound = 0.1

// axisPads is a resolved pad pair along one axis: two equal pads facing
// each other across Distance.
type axisPads struct {
	Width    float64
	Height   float64
	Distance float64
	Width1   float64 // pin 1 width when it differs, otherwise zero
	Hole     float64 // finished hole for through-hole pads
	Courtyard float64
	Trimmed  bool
}

// quadPads resolves both axes of a quad or tabbed package: the row pads
// (left and right columns) and the column pads (top and bottom rows).
type quadPads struct {
	Width1, Height1, Distance1 float64
	Width2, Height2, Distance2 float64
	Courtyard                  float64
	Trimmed                    bool
}

// sotPads resolves the asymmetric lead pair of SOT packages: pin 1 side
// geometry and the opposing (often wider) side, sharing one distance.
type sotPads struct {
	Width1, Height1 float64
	Width2, Height2 float64
	Distance        float64
	Courtyard       float64
	Trimmed         bool
}

func byDensity(d ipc.Density, l, n, m float64) float64 {
	switch d {
	case ipc.Least:
		return l
	case ipc.Most:
		return m
	default:
		return n
	}
}

// resolve runs the tolerance stack for one axis and trims the result.
// A zero GoalSet size round falls back on the 0.05 mm grid.
func resolve(s config.Settings, span, lead, width element.Dim, g ipc.GoalSet, c ipc.Constraints) axisPads {
	sizeRound := g.SizeRound
	if sizeRound == 0 {
		sizeRound = 0.05
	}
	goals := ipc.Compute(ipc.Params{
		Lmin: span.Min, Lmax: span.Max,
		Tmin: lead.Min, Tmax: lead.Max,
		Wmin: width.Min, Wmax: width.Max,
		F:  s.Tolerance.Fabrication,
		P:  s.Tolerance.Placement,
		Jt: g.Toe, Jh: g.Heel, Js: g.Side,
	})
	pad := ipc.ResolvePad(goals, c, sizeRound, placeRound)
	return axisPads{
		Width:     pad.Width,
		Height:    pad.Height,
		Distance:  pad.Distance,
		Courtyard: g.Courtyard,
		Trimmed:   pad.Trimmed,
	}
}

// preferSingle lets manufacturer-recommended pad geometry override the
// calculated one. A recommended width pairs with either the inner space
// or the outer span to fix the distance.
func preferSingle(s config.Settings, h *element.Housing, pad *axisPads) {
	if !s.PreferManufacturer {
		return
	}
	if h.PadWidth != nil {
		pad.Width = *h.PadWidth
		if h.PadSpace != nil {
			pad.Distance = *h.PadSpace + *h.PadWidth
		}
		if h.PadSpan != nil {
			pad.Distance = *h.PadSpan - *h.PadWidth
		}
	}
	if h.PadWidth1 != nil {
		pad.Width1 = *h.PadWidth1
	}
	if h.PadHeight != nil {
		pad.Height = *h.PadHeight
	}
	if h.PadDistance != nil {
		pad.Distance = *h.PadDistance
	}
	if h.HoleDiameter != nil {
		pad.Hole = *h.HoleDiameter
	}
}

// preferQuad applies per-axis manufacturer overrides.
func preferQuad(s config.Settings, h *element.Housing, q *quadPads) {
	if !s.PreferManufacturer {
		return
	}
	if h.PadWidth1 != nil {
		q.Width1 = *h.PadWidth1
		if h.PadSpace != nil {
			q.Distance1 = *h.PadSpace + *h.PadWidth1
		}
		if h.PadSpace1 != nil {
			q.Distance1 = *h.PadSpace1 + *h.PadWidth1
		}
		if h.PadSpan != nil {
			q.Distance1 = *h.PadSpan - *h.PadWidth1
		}
		if h.PadSpan1 != nil {
			q.Distance1 = *h.PadSpan1 - *h.PadWidth1
		}
	}
	if h.PadWidth2 != nil {
		q.Width2 = *h.PadWidth2
		if h.PadSpace != nil {
			q.Distance2 = *h.PadSpace + *h.PadWidth2
		}
		if h.PadSpace2 != nil {
			q.Distance2 = *h.PadSpace2 + *h.PadWidth2
		}
		if h.PadSpan != nil {
			q.Distance2 = *h.PadSpan - *h.PadWidth2
		}
		if h.PadSpan2 != nil {
			q.Distance2 = *h.PadSpan2 - *h.PadWidth2
		}
	}
	if h.PadHeight1 != nil {
		q.Height1 = *h.PadHeight1
	}
	if h.PadHeight2 != nil {
		q.Height2 = *h.PadHeight2
	}
	if h.PadWidth != nil {
		if h.PadSpace1 != nil {
			q.Distance1 = *h.PadSpace1 + *h.PadWidth
		}
		if h.PadSpan1 != nil {
			q.Distance1 = *h.PadSpan1 - *h.PadWidth
		}
		if h.PadSpace2 != nil {
			q.Distance2 = *h.PadSpace2 + *h.PadWidth
		}
		if h.PadSpan2 != nil {
			q.Distance2 = *h.PadSpan2 - *h.PadWidth
		}
	}
	if h.PadDistance1 != nil {
		q.Distance1 = *h.PadDistance1
	}
	if h.PadDistance2 != nil {
		q.Distance2 = *h.PadDistance2
	}
}

// preferSOT applies manufacturer overrides for the SOT pad pair.
func preferSOT(s config.Settings, h *element.Housing, p *sotPads) {
	if !s.PreferManufacturer {
		return
	}
	if h.PadWidth1 != nil {
		p.Width1 = *h.PadWidth1
	}
	if h.PadWidth2 != nil {
		p.Width2 = *h.PadWidth2
	}
	if h.PadHeight1 != nil {
		p.Height1 = *h.PadHeight1
	}
	if h.PadHeight2 != nil {
		p.Height2 = *h.PadHeight2
	}
	if h.PadDistance != nil {
		p.Distance = *h.PadDistance
	}
}

// widen pushes the pad outward until the lead-to-pad overhang leaves
// room for a soldering iron tip.
func widen(s config.Settings, pad *axisPads, spanNom float64) {
	if spanNom <= 0 {
		return
	}
	leadToPad := (pad.Distance + pad.Width - spanNom) / 2
	if leadToPad < s.Minimum.SpaceForIron {
		d := s.Minimum.SpaceForIron - leadToPad
		pad.Width += d
		pad.Distance += d
	}
}

func widenAxis(s config.Settings, width, distance *float64, spanNom float64) {
	if spanNom <= 0 {
		return
	}
	leadToPad := (*distance + *width - spanNom) / 2
	if leadToPad < s.Minimum.SpaceForIron {
		d := s.Minimum.SpaceForIron - leadToPad
		*width += d
		*distance += d
	}
}

// dualCalc resolves the pad pair of a dual-row package. The option picks
// the lead bend: sop (gullwing), flatlead, soj, or sol.
func dualCalc(s config.Settings, h *element.Housing, opt string) (axisPads, error) {
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return axisPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return axisPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return axisPads{}, err
	}

	d := s.DensityLevel
	var g ipc.GoalSet
	switch opt {
	case "flatlead":
		g = ipc.Flatlead(d)
	case "soj":
		g = ipc.JLead(d)
	case "sol":
		g = ipc.LLead(d)
	default: // sop
		g = ipc.Gullwing(d, h.Pitch)
	}

	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	if opt == "sop" && h.BodyWidth != nil {
		c.Body = h.BodyWidth.Nom
		c.HasBody = true
	}

	pad := resolve(s, span, lead, width, g, c)
	preferSingle(s, h, &pad)
	widen(s, &pad, span.Nom)
	return pad, nil
}

// sojCalc resolves the pad pair of an SOJ package, whose J-bent lead
// swaps the toe and heel roles.
func sojCalc(s config.Settings, h *element.Housing) (axisPads, error) {
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return axisPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return axisPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return axisPads{}, err
	}
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	pad := resolve(s, span, lead, width, ipc.SOJJLead(s.DensityLevel), c)
	preferSingle(s, h, &pad)
	widen(s, &pad, span.Nom)
	return pad, nil
}

// chipArrayCalc resolves the pad pair of a concave-terminal chip array.
func chipArrayCalc(s config.Settings, h *element.Housing) (axisPads, error) {
	h.DefaultLeadSpanFromWidth()
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return axisPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return axisPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return axisPads{}, err
	}
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	pad := resolve(s, span, lead, width, ipc.ChipArray(s.DensityLevel), c)
	preferSingle(s, h, &pad)
	widen(s, &pad, span.Nom)
	return pad, nil
}

// sonCalc resolves the pad pair of a no-lead dual package. A longer
// first terminal widens pad 1 as far as the pad-to-pad clearance allows.
func sonCalc(s config.Settings, h *element.Housing) (axisPads, error) {
	bodyWidth, err := need("bodyWidth", h.BodyWidth)
	if err != nil {
		return axisPads{}, err
	}
	bodyLength, err := need("bodyLength", h.BodyLength)
	if err != nil {
		return axisPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return axisPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return axisPads{}, err
	}

	d := s.DensityLevel
	pull := 0.0
	if h.PullBack != nil {
		pull = h.PullBack.Nom
	}
	g := ipc.Nolead(d, pull, bodyLength.Nom)
	g.Courtyard = byDensity(d, 0.10, 0.20, 0.40)
	g.SizeRound = 0.05

	span := element.Dim{
		Min: bodyWidth.Min - 2*pull,
		Nom: bodyWidth.Nom - 2*pull,
		Max: bodyWidth.Max - 2*pull,
	}
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	pad := resolve(s, span, lead, width, g, c)

	if h.LeadLength1 != nil {
		dw := h.LeadLength1.Nom - lead.Nom
		space := pad.Distance - pad.Width
		if space-dw < s.Clearance.PadToPad {
			dw = space - s.Clearance.PadToPad
		}
		pad.Width1 = pad.Width + dw
	}

	preferSingle(s, h, &pad)
	widen(s, &pad, bodyWidth.Nom)
	return pad, nil
}

// quadCalc resolves both axes of a quad package: no-lead (QFN) or
// gullwing (QFP).
func quadCalc(s config.Settings, h *element.Housing, qfn bool) (quadPads, error) {
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return quadPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return quadPads{}, err
	}

	d := s.DensityLevel
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}

	var g ipc.GoalSet
	var rowSpan, colSpan element.Dim
	var rowNom, colNom float64
	rowC, colC := c, c

	if qfn {
		bodyWidth, err := need("bodyWidth", h.BodyWidth)
		if err != nil {
			return quadPads{}, err
		}
		bodyLength, err := need("bodyLength", h.BodyLength)
		if err != nil {
			return quadPads{}, err
		}
		pull := 0.0
		if h.PullBack != nil {
			pull = h.PullBack.Nom
		}
		g = ipc.Nolead(d, pull, bodyLength.Nom)
		g.Courtyard = byDensity(d, 0.10, 0.20, 0.40)
		g.SizeRound = 0.05
		rowSpan = element.Dim{Min: bodyWidth.Min - 2*pull, Nom: bodyWidth.Nom - 2*pull, Max: bodyWidth.Max - 2*pull}
		colSpan = element.Dim{Min: bodyLength.Min - 2*pull, Nom: bodyLength.Nom - 2*pull, Max: bodyLength.Max - 2*pull}
		rowNom = bodyWidth.Nom
		colNom = bodyLength.Nom
	} else {
		var err error
		rowSpan, err = need("rowSpan", h.RowSpan)
		if err != nil {
			return quadPads{}, err
		}
		colSpan, err = need("columnSpan", h.ColumnSpan)
		if err != nil {
			return quadPads{}, err
		}
		g = ipc.Gullwing(d, h.Pitch)
		rowNom = rowSpan.Nom
		colNom = colSpan.Nom
		if h.BodyWidth != nil {
			rowC.Body = h.BodyWidth.Nom
			rowC.HasBody = true
		}
		if h.BodyLength != nil {
			colC.Body = h.BodyLength.Nom
			colC.HasBody = true
		}
	}

	row := resolve(s, rowSpan, lead, width, g, rowC)
	col := resolve(s, colSpan, lead, width, g, colC)

	q := quadPads{
		Width1: row.Width, Height1: row.Height, Distance1: row.Distance,
		Width2: col.Width, Height2: col.Height, Distance2: col.Distance,
		Courtyard: g.Courtyard,
		Trimmed:   row.Trimmed || col.Trimmed,
	}
	preferQuad(s, h, &q)
	widenAxis(s, &q.Width1, &q.Distance1, rowNom)
	widenAxis(s, &q.Width2, &q.Distance2, colNom)
	return q, nil
}

// cornerPads is the resolved geometry of a corner-concave package: one
// pad size at the four corners of a distance1 x distance2 rectangle.
type cornerPads struct {
	Width, Height        float64
	Distance1, Distance2 float64
	Courtyard            float64
}

// cornerCalc sizes the corner pads from the lead faces plus the outer
// periphery; the inner periphery stays at zero.
func cornerCalc(s config.Settings, h *element.Housing) (cornerPads, error) {
	h.DeriveCornerConcave()
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return cornerPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return cornerPads{}, err
	}
	rowSpan, err := need("rowSpan", h.RowSpan)
	if err != nil {
		return cornerPads{}, err
	}
	colSpan, err := need("columnSpan", h.ColumnSpan)
	if err != nil {
		return cornerPads{}, err
	}

	g := ipc.CornerConcave(s.DensityLevel)
	out := g.Toe
	c := cornerPads{
		Width:     ipc.Round(width.Max+out, g.SizeRound),
		Height:    ipc.Round(lead.Max+out, g.SizeRound),
		Distance1: ipc.Round(colSpan.Nom+out/2, g.SizeRound),
		Distance2: ipc.Round(rowSpan.Nom+out/2, g.SizeRound),
		Courtyard: g.Courtyard,
	}
	if s.PreferManufacturer {
		if h.PadWidth != nil {
			c.Width = *h.PadWidth
		}
		if h.PadHeight != nil {
			c.Height = *h.PadHeight
		}
		if h.PadDistance1 != nil {
			c.Distance1 = *h.PadDistance1
		}
		if h.PadDistance2 != nil {
			c.Distance2 = *h.PadDistance2
		}
	}
	widenAxis(s, &c.Width, &c.Distance1, rowSpan.Nom)
	widenAxis(s, &c.Height, &c.Distance2, colSpan.Nom)
	return c, nil
}

// pakCalc resolves a tabbed power package: gullwing leads on one side
// and the unconstrained tab pad on the other.
func pakCalc(s config.Settings, h *element.Housing) (quadPads, error) {
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return quadPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return quadPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return quadPads{}, err
	}
	tabLength, err := need("tabLength", h.TabLength)
	if err != nil {
		return quadPads{}, err
	}
	tabWidth, err := need("tabWidth", h.TabWidth)
	if err != nil {
		return quadPads{}, err
	}

	g := ipc.Gullwing(s.DensityLevel, h.Pitch)
	leadPad := resolve(s, span, lead, width, g,
		ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch})
	tabPad := resolve(s, span, tabLength, tabWidth, g, ipc.Constraints{})

	q := quadPads{
		Width1: leadPad.Width, Height1: leadPad.Height, Distance1: leadPad.Distance,
		Width2: tabPad.Width, Height2: tabPad.Height, Distance2: tabPad.Distance,
		Courtyard: g.Courtyard,
		Trimmed:   leadPad.Trimmed,
	}
	preferQuad(s, h, &q)
	widenAxis(s, &q.Width1, &q.Distance1, span.Nom)
	widenAxis(s, &q.Width2, &q.Distance2, span.Nom)
	return q, nil
}

// twoPinCalc resolves a two-terminal part. The option picks the goal
// table; radial parts short-circuit into the through-hole path. The lead
// span defaults to the body length and the lead width to the body width;
// an absent terminal length contributes nothing to the heel.
func twoPinCalc(s config.Settings, h *element.Housing, opt string) (axisPads, error) {
	d := s.DensityLevel

	if opt == "radial" {
		hole, padD, err := throughHole(s, h)
		if err != nil {
			return axisPads{}, err
		}
		span, err := need("leadSpan", h.LeadSpan)
		if err != nil {
			return axisPads{}, err
		}
		pad := axisPads{
			Width: padD, Height: padD,
			Distance:  span.Nom,
			Hole:      hole,
			Courtyard: ipc.DefaultCourtyard(d),
		}
		preferSingle(s, h, &pad)
		return pad, nil
	}

	h.DefaultLeadSpan()
	h.DefaultLeadWidth()
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return axisPads{}, err
	}
	width, err := need("leadWidth", h.LeadWidth)
	if err != nil {
		return axisPads{}, err
	}
	var lead element.Dim
	if h.LeadLength != nil {
		lead = *h.LeadLength
	}

	var g ipc.GoalSet
	switch opt {
	case "chip":
		bl, err := need("bodyLength", h.BodyLength)
		if err != nil {
			return axisPads{}, err
		}
		g = ipc.Chip(d, bl.Nom)
	case "concave":
		g = ipc.Concave(d)
	case "crystal":
		g = ipc.Crystal(d, h.HeightMax())
	case "dfn":
		g = ipc.DFNTwoPin(d)
	case "melf":
		g = ipc.Melf(d)
	case "molded":
		g = ipc.Molded(d, h.HeightMax())
	case "sod":
		g = ipc.SOD(d)
	case "sodfl":
		g = ipc.SODFL(d)
	default:
		return axisPads{}, errUnsupportedOption(opt)
	}

	c := ipc.Constraints{Clearance: s.Clearance.PadToPad}
	pad := resolve(s, span, lead, width, g, c)
	preferSingle(s, h, &pad)
	widen(s, &pad, span.Nom)
	return pad, nil
}

// sotResolve shares the SOT pad math: the pin 1 side resolves under the
// full constraints, the opposing side reuses the stack with its own lead
// width and no constraints.
func sotResolve(s config.Settings, h *element.Housing, g ipc.GoalSet, c ipc.Constraints) (sotPads, error) {
	span, err := need("leadSpan", h.LeadSpan)
	if err != nil {
		return sotPads{}, err
	}
	lead, err := need("leadLength", h.LeadLength)
	if err != nil {
		return sotPads{}, err
	}
	width1, err := need("leadWidth1", h.LeadWidth1)
	if err != nil {
		return sotPads{}, err
	}
	width2, err := need("leadWidth2", h.LeadWidth2)
	if err != nil {
		return sotPads{}, err
	}

	pad1 := resolve(s, span, lead, width1, g, c)
	pad2 := resolve(s, span, lead, width2, g, ipc.Constraints{})

	p := sotPads{
		Width1: pad1.Width, Height1: pad1.Height,
		Width2: pad2.Width, Height2: pad2.Height,
		Distance:  pad1.Distance,
		Courtyard: g.Courtyard,
		Trimmed:   pad1.Trimmed || pad2.Trimmed,
	}
	preferSOT(s, h, &p)

	leadToPad := (p.Distance + p.Width1/2 + p.Width2/2 - span.Nom) / 2
	if leadToPad < s.Minimum.SpaceForIron {
		d := s.Minimum.SpaceForIron - leadToPad
		p.Width1 += d
		p.Width2 += d
		p.Distance += d
	}
	return p, nil
}

// sotCalc resolves an SOT package with gullwing or flat leads.
func sotCalc(s config.Settings, h *element.Housing) (sotPads, error) {
	h.NormalizeSOTLeads()
	d := s.DensityLevel
	var g ipc.GoalSet
	if h.FlatLead {
		g = ipc.Flatlead(d)
	} else {
		g = ipc.SOTGullwing(d, h.Pitch)
	}
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	if h.BodyWidth != nil {
		c.Body = h.BodyWidth.Nom
		c.HasBody = true
	}
	return sotResolve(s, h, g, c)
}

// sotflCalc resolves a flat-lead SOT without the body gap constraint.
func sotflCalc(s config.Settings, h *element.Housing) (sotPads, error) {
	h.NormalizeSOTLeads()
	g := ipc.SOTFLFlatlead(s.DensityLevel)
	c := ipc.Constraints{Clearance: s.Clearance.PadToPad, Pitch: h.Pitch}
	return sotResolve(s, h, g, c)
}

// throughHole derives the finished hole from the thickest lead and the
// matching pad diameter.
func throughHole(s config.Settings, h *element.Housing) (hole, padD float64, err error) {
	var diameter float64
	switch {
	case h.LeadDiameter != nil:
		diameter = h.LeadDiameter.Max
	case h.LeadWidth != nil && h.LeadHeight != nil:
		diameter = math.Hypot(h.LeadWidth.Max, h.LeadHeight.Max)
	default:
		return 0, 0, errMissing("leadDiameter")
	}
	hole = ipc.HoleDiameter(diameter, s.Clearance.LeadToHole, s.Minimum.HoleDiameter, 0.05)
	return hole, padDiameter(s, h, hole), nil
}

// padDiameter sizes a through-hole pad for the given hole, kept clear of
// its pitch neighbours.
func padDiameter(s config.Settings, h *element.Housing, hole float64) float64 {
	pitch := h.Pitch
	if pitch == 0 && h.HorizontalPitch != 0 && h.VerticalPitch != 0 {
		pitch = math.Min(math.Abs(h.HorizontalPitch), math.Abs(h.VerticalPitch))
	}
	clearance := s.Clearance.PadToPad
	if h.PadSpace != nil {
		clearance = *h.PadSpace
	}
	return ipc.PadDiameter(hole, s.Ratio.PadToHole, s.Minimum.RingWidth, pitch, clearance, 0.05)
}

// gridPad is the resolved cell of a grid array.
type gridPad struct {
	Width, Height float64
	Round         bool
	Courtyard     float64
}

// gridCalc sizes the grid array pad: scaled ball diameter for BGA, the
// lead diameter for CGA, or the rectangular land for LGA. Pads cap at
// the pitch minus clearance.
func gridCalc(s config.Settings, h *element.Housing) (gridPad, error) {
	d := s.DensityLevel
	clearance := s.Clearance.PadToPad
	if h.PadSpace != nil {
		clearance = *h.PadSpace
	}
	capped := func(v, pitch float64) float64 {
		if pitch != 0 && v > pitch-clearance {
			v = pitch - clearance
		}
		return ipc.Round(v, 0.05)
	}

	if h.LGA {
		lead, err := need("leadLength", h.LeadLength)
		if err != nil {
			return gridPad{}, err
		}
		width, err := need("leadWidth", h.LeadWidth)
		if err != nil {
			return gridPad{}, err
		}
		g := gridPad{
			Width:     capped(lead.Nom, h.HorizontalPitch),
			Height:    capped(width.Nom, h.VerticalPitch),
			Courtyard: 1.00,
		}
		applyGridPrefer(s, h, &g)
		return g, nil
	}

	ball, err := need("leadDiameter", h.LeadDiameter)
	if err != nil {
		return gridPad{}, err
	}
	g := gridPad{Round: true}
	if h.CGA {
		g.Width = capped(ball.Nom, h.Pitch)
		g.Courtyard = 1.00
	} else {
		g.Width = capped(ball.Nom*ipc.BallFactor(d, s.Ball.Collapsible), h.Pitch)
		g.Courtyard = ipc.BGACourtyard(d)
	}
	g.Height = g.Width
	applyGridPrefer(s, h, &g)
	return g, nil
}

func applyGridPrefer(s config.Settings, h *element.Housing, g *gridPad) {
	if !s.PreferManufacturer {
		return
	}
	if h.PadWidth != nil {
		g.Width = *h.PadWidth
		if g.Round {
			g.Height = *h.PadWidth
		}
	}
	if h.PadHeight != nil && !g.Round {
		g.Height = *h.PadHeight
	}
	if h.PadDiameter != nil && g.Round {
		g.Width = *h.PadDiameter
		g.Height = *h.PadDiameter
	}
}

func errMissing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingDimension, name)
}

func errUnsupportedOption(opt string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, opt)
}
