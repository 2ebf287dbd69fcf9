// Package ipc implements the IPC-7351 land pattern calculations: RMS
// tolerance stacking of package dimensions into pad goals, and the
// density-level goal tables for each lead geometry.
//
// All dimensions are in millimeters.
package ipc

import "math"

// Params collects the inputs of a single IPC-7351 calculation along one
// axis of a package.
type Params struct {
	Lmin, Lmax float64 // lead span (outermost lead edge to edge)
	Tmin, Tmax float64 // lead (terminal) length
	Wmin, Wmax float64 // lead width
	F          float64 // fabrication tolerance
	P          float64 // placement tolerance
	Jt         float64 // toe goal
	Jh         float64 // heel goal
	Js         float64 // side goal
}

// Goals are the three IPC-7351 land dimensions produced by the RMS stack.
type Goals struct {
	Zmax float64 // outer pad-to-pad extent
	Gmin float64 // inner pad-to-pad gap
	Xmax float64 // pad height
}

// Compute runs the IPC-7351 RMS tolerance stack.
func Compute(p Params) Goals {
	ltol := p.Lmax - p.Lmin
	ttol := p.Tmax - p.Tmin
	wtol := p.Wmax - p.Wmin

	smax := p.Lmax - 2*p.Tmin
	stol := ltol + 2*ttol
	stolRMS := math.Sqrt(ltol*ltol + 2*ttol*ttol)
	smaxRMS := smax - (stol-stolRMS)/2

	cl := ltol
	cs := stolRMS
	cw := wtol

	return Goals{
		Zmax: p.Lmin + 2*p.Jt + math.Sqrt(cl*cl+p.F*p.F+p.P*p.P),
		Gmin: smaxRMS - 2*p.Jh - math.Sqrt(cs*cs+p.F*p.F+p.P*p.P),
		Xmax: p.Wmin + 2*p.Js + math.Sqrt(cw*cw+p.F*p.F+p.P*p.P),
	}
}

// Constraints limit the pad derived from a Goals triple. Zero-valued
// fields are ignored except Clearance, which always applies when the gap
// would otherwise shrink below it.
type Constraints struct {
	Clearance float64 // minimum copper-to-copper gap between opposing pads
	Pitch     float64 // neighbouring pad pitch; caps pad height
	Body      float64 // nominal body extent between the pad rows
	HasBody   bool
}

// Pad is a single resolved pad along one axis: its size and the
// center-to-center distance of the opposing pad pair.
type Pad struct {
	Width    float64
	Height   float64
	Distance float64
	Trimmed  bool
}

// Round snaps x to the nearest multiple of step. A zero step leaves x
// unchanged.
func Round(x, step float64) float64 {
	if step == 0 {
		return x
	}
	return math.Round(x/step) * step
}

// CeilTo snaps x up to the next multiple of step.
func CeilTo(x, step float64) float64 {
	if step == 0 {
		return x
	}
	return math.Ceil(x/step) * step
}

// ResolvePad converts land goals into a rounded, constraint-trimmed pad.
// Widths and heights snap to sizeRound, distances to placeRound. When the
// inter-pad gap falls below the clearance or under the component body the
// pad pair is narrowed keeping the outer span, and the distance is then
// ceiled back onto the placement grid.
func ResolvePad(g Goals, c Constraints, sizeRound, placeRound float64) Pad {
	width := Round((g.Zmax-g.Gmin)/2, sizeRound)
	height := Round(g.Xmax, sizeRound)
	distance := Round((g.Zmax+g.Gmin)/2, placeRound)

	gap := distance - width
	span := distance + width
	trimmed := false

	if gap < c.Clearance {
		gap = c.Clearance
		trimmed = true
	}
	if c.HasBody && gap < c.Body-0.1 {
		gap = c.Body - 0.1
		trimmed = true
	}
	if trimmed {
		width = (span - gap) / 2
		distance = CeilTo((span+gap)/2, placeRound)
	}
	if c.Pitch != 0 && height > c.Pitch-c.Clearance {
		height = c.Pitch - c.Clearance
		trimmed = true
	}

	return Pad{Width: width, Height: height, Distance: distance, Trimmed: trimmed}
}

// PadDiameter derives a through-hole pad diameter from a finished hole
// diameter: the pad-to-hole ratio, floored by the minimum annular ring and
// capped so adjacent pads keep their clearance at the given pitch.
func PadDiameter(hole, padToHole, ringWidth, pitch, clearance, sizeRound float64) float64 {
	d := hole * padToHole
	if d < hole+2*ringWidth {
		d = hole + 2*ringWidth
	}
	if pitch != 0 && d > pitch-clearance {
		d = pitch - clearance
	}
	return Round(d, sizeRound)
}

// HoleDiameter derives a finished hole from the maximum lead diameter and
// the lead-to-hole clearance, floored at the minimum drill and ceiled onto
// the size grid.
func HoleDiameter(lead, leadToHole, minHole, sizeRound float64) float64 {
	hole := lead + 2*leadToHole
	if hole < minHole {
		hole = minHole
	}
	return CeilTo(hole, sizeRound)
}
