package ipc

// Density selects one of the three IPC-7351 pattern density levels.
type Density string

const (
	Least   Density = "L" // minimum land protrusion
	Nominal Density = "N" // median land protrusion
	Most    Density = "M" // maximum land protrusion
)

// Valid reports whether d is one of the three defined levels.
func (d Density) Valid() bool {
	return d == Least || d == Nominal || d == Most
}

// levels holds one value per density level.
type levels struct {
	L, N, M float64
}

func (v levels) at(d Density) float64 {
	switch d {
	case Least:
		return v.L
	case Most:
		return v.M
	default:
		return v.N
	}
}

// GoalSet carries the density-driven goals for one lead geometry. A zero
// SizeRound means the caller's default applies.
type GoalSet struct {
	Toe       float64
	Heel      float64
	Side      float64
	Courtyard float64
	SizeRound float64
}

// DefaultCourtyard is the fallback courtyard excess for geometries whose
// table does not specify one.
func DefaultCourtyard(d Density) float64 {
	return levels{L: 0.12, N: 0.25, M: 0.5}.at(d)
}

// Gullwing returns the goals for gullwing leads (SOIC, SOP, QFP). The
// table brackets by pitch.
func Gullwing(d Density, pitch float64) GoalSet {
	var toe, heel, side levels
	switch {
	case pitch > 1.00:
		toe = levels{L: 0.30, N: 0.35, M: 0.40}
		heel = levels{L: 0.40, N: 0.45, M: 0.50}
		side = levels{L: 0.05, N: 0.06, M: 0.07}
	case pitch > 0.80:
		toe = levels{L: 0.25, N: 0.30, M: 0.35}
		heel = levels{L: 0.35, N: 0.40, M: 0.45}
		side = levels{L: 0.04, N: 0.05, M: 0.06}
	case pitch > 0.65:
		toe = levels{L: 0.20, N: 0.25, M: 0.30}
		heel = levels{L: 0.30, N: 0.35, M: 0.40}
		side = levels{L: 0.03, N: 0.04, M: 0.05}
	case pitch > 0.50:
		toe = levels{L: 0.15, N: 0.20, M: 0.25}
		heel = levels{L: 0.25, N: 0.30, M: 0.35}
		side = levels{L: 0.01, N: 0.02, M: 0.03}
	default:
		toe = levels{L: 0.10, N: 0.15, M: 0.20}
		heel = levels{L: 0.20, N: 0.25, M: 0.30}
		side = levels{}
	}
	return GoalSet{
		Toe:       toe.at(d),
		Heel:      heel.at(d),
		Side:      side.at(d),
		Courtyard: levels{L: 0.10, N: 0.20, M: 0.40}.at(d),
		SizeRound: 0.05,
	}
}

// SOTGullwing returns the goals for small-outline transistor gullwing
// leads, which bracket by pitch at tighter thresholds than Gullwing.
func SOTGullwing(d Density, pitch float64) GoalSet {
	var toe, heel, side levels
	switch {
	case pitch > 1.92:
		toe = levels{L: 0.20, N: 0.25, M: 0.30}
		heel = levels{L: 0.30, N: 0.35, M: 0.40}
		side = levels{L: 0.05, N: 0.06, M: 0.07}
	case pitch > 0.95:
		toe = levels{L: 0.15, N: 0.20, M: 0.25}
		heel = levels{L: 0.20, N: 0.25, M: 0.30}
		side = levels{L: 0.04, N: 0.05, M: 0.06}
	case pitch > 0.65:
		toe = levels{L: 0.15, N: 0.20, M: 0.25}
		heel = levels{L: 0.20, N: 0.25, M: 0.30}
		side = levels{L: 0.03, N: 0.04, M: 0.05}
	case pitch > 0.50:
		toe = levels{L: 0.10, N: 0.15, M: 0.20}
		heel = levels{L: 0.15, N: 0.20, M: 0.25}
		side = levels{L: 0.01, N: 0.02, M: 0.03}
	default:
		toe = levels{L: 0.10, N: 0.15, M: 0.20}
		heel = levels{L: 0.15, N: 0.20, M: 0.25}
		side = levels{}
	}
	return GoalSet{
		Toe:       toe.at(d),
		Heel:      heel.at(d),
		Side:      side.at(d),
		Courtyard: levels{L: 0.10, N: 0.20, M: 0.40}.at(d),
		SizeRound: 0.05,
	}
}

// Flatlead returns the goals for flat (L-bend cut) leads.
func Flatlead(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.1, N: 0.2, M: 0.3}.at(d),
		Heel:      0,
		Side:      levels{L: -0.05, N: 0, M: 0.05}.at(d),
		Courtyard: levels{L: 0.10, N: 0.15, M: 0.20}.at(d),
		SizeRound: 0.05,
	}
}

// SOTFLFlatlead returns the flatlead goals used by SOTFL packages.
func SOTFLFlatlead(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.1, N: 0.2, M: 0.3}.at(d),
		Heel:      0,
		Side:      levels{L: 0, N: 0, M: 0.05}.at(d),
		Courtyard: levels{L: 0.1, N: 0.2, M: 0.4}.at(d),
		SizeRound: 0.05,
	}
}

// JLead returns the goals for J-bend leads. The lead wraps under the
// body, so the heel goal applies at the outer pad edge and the toe goal
// at the inner one.
func JLead(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.15, N: 0.35, M: 0.55}.at(d),
		Heel:      levels{L: -0.1, N: 0, M: 0.1}.at(d),
		Side:      levels{L: 0.01, N: 0.03, M: 0.05}.at(d),
		Courtyard: levels{L: 0.10, N: 0.25, M: 0.50}.at(d),
		SizeRound: 0.05,
	}
}

// SOJJLead returns the J-lead goals used by SOJ packages, with the same
// outer/inner swap as JLead.
func SOJJLead(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.15, N: 0.35, M: 0.55}.at(d),
		Heel:      levels{L: 0, N: 0, M: 0.1}.at(d),
		Side:      levels{L: 0.01, N: 0.03, M: 0.05}.at(d),
		Courtyard: levels{L: 0.1, N: 0.2, M: 0.4}.at(d),
		SizeRound: 0.05,
	}
}

// LLead returns the goals for L-bend leads (SOL), with the outer/inner
// swap as JLead.
func LLead(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.15, N: 0.35, M: 0.55}.at(d),
		Heel:      levels{L: -0.1, N: 0, M: 0.1}.at(d),
		Side:      levels{L: -0.04, N: -0.02, M: 0.01}.at(d),
		Courtyard: DefaultCourtyard(d),
	}
}

// Nolead returns the goals for no-lead packages (SON, QFN, DFN). With a
// pull-back terminal the periphery comes from the pull-back table;
// otherwise it depends on the body length.
func Nolead(d Density, pullBack, bodyLength float64) GoalSet {
	var periphery float64
	sizeRound := 0.0
	if pullBack != 0 {
		periphery = levels{L: -0.05, N: 0, M: 0.05}.at(d)
		sizeRound = 0.05
	} else if d == Most && bodyLength >= 1.60 {
		periphery = 0.05
	}

	var courtyard float64
	switch d {
	case Most:
		courtyard = 0.20
		if bodyLength >= 1.60 {
			courtyard = 0.40
		}
	case Nominal:
		courtyard = 0.15
		if bodyLength >= 1.60 {
			courtyard = 0.20
		}
	default:
		courtyard = 0.10
	}

	return GoalSet{
		Toe:       periphery,
		Heel:      0,
		Side:      periphery,
		Courtyard: courtyard,
		SizeRound: sizeRound,
	}
}

// Chip returns the goals for rectangular chip components, bracketed by
// nominal body length.
func Chip(d Density, bodyLength float64) GoalSet {
	var toe levels
	small := false
	switch {
	case bodyLength > 4.75: // 2010 and larger
		toe = levels{L: 0.40, N: 0.50, M: 0.60}
	case bodyLength > 3.85: // 1812, 1825
		toe = levels{L: 0.30, N: 0.40, M: 0.50}
	case bodyLength > 2.85: // 1206, 1210, 0612
		toe = levels{L: 0.25, N: 0.35, M: 0.45}
	case bodyLength > 1.30: // 0603, 0705, 0805
		toe = levels{L: 0.20, N: 0.30, M: 0.40}
	case bodyLength > 0.75: // 0402, 0306, 0502
		toe = levels{L: 0.15, N: 0.20, M: 0.25}
		small = true
	case bodyLength > 0.50: // 0201
		toe = levels{L: 0.08, N: 0.10, M: 0.12}
		small = true
	default: // 01005 and smaller
		toe = levels{L: 0.04, N: 0.05, M: 0.06}
		small = true
	}

	g := GoalSet{
		Toe:       toe.at(d),
		Courtyard: levels{L: 0.10, N: 0.20, M: 0.40}.at(d),
		SizeRound: 0.05,
	}
	if d == Most && !small {
		g.Side = 0.05
	}
	if small {
		g.Courtyard = levels{L: 0.10, N: 0.15, M: 0.20}.at(d)
		g.SizeRound = 0.02
	}
	return g
}

// Concave returns the goals for concave-terminal two-pin components.
func Concave(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.35, N: 0.45, M: 0.55}.at(d),
		Heel:      levels{L: -0.1, N: -0.07, M: -0.05}.at(d),
		Side:      levels{L: -0.1, N: -0.07, M: -0.05}.at(d),
		Courtyard: DefaultCourtyard(d),
	}
}

// Crystal returns the goals for crystal packages, split on body height.
func Crystal(d Density, height float64) GoalSet {
	if height > 10 {
		return GoalSet{
			Toe:       levels{L: 0.4, N: 0.7, M: 1.0}.at(d),
			Heel:      levels{L: 0, N: 0, M: 0.1}.at(d),
			Side:      levels{L: 0.4, N: 0.5, M: 0.6}.at(d),
			Courtyard: levels{L: 0.2, N: 0.4, M: 0.8}.at(d),
			SizeRound: 0.05,
		}
	}
	return GoalSet{
		Toe:       levels{L: 0.3, N: 0.5, M: 0.7}.at(d),
		Heel:      levels{L: 0, N: 0, M: 0.05}.at(d),
		Side:      levels{L: 0.3, N: 0.4, M: 0.5}.at(d),
		Courtyard: levels{L: 0.1, N: 0.2, M: 0.4}.at(d),
		SizeRound: 0.05,
	}
}

// DFNTwoPin returns the goals for two-pin DFN diodes.
func DFNTwoPin(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.2, N: 0.4, M: 0.6}.at(d),
		Heel:      levels{L: 0.02, N: 0.1, M: 0.2}.at(d),
		Side:      levels{L: 0.01, N: 0.05, M: 0.1}.at(d),
		Courtyard: DefaultCourtyard(d),
	}
}

// Melf returns the goals for cylindrical MELF components.
func Melf(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.20, N: 0.40, M: 0.60}.at(d),
		Heel:      levels{L: 0.02, N: 0.10, M: 0.20}.at(d),
		Side:      levels{L: 0.01, N: 0.05, M: 0.10}.at(d),
		Courtyard: levels{L: 0.10, N: 0.25, M: 0.50}.at(d),
		SizeRound: 0.05,
	}
}

// Molded returns the goals for molded-body components, bracketed by
// maximum body height.
func Molded(d Density, height float64) GoalSet {
	var toe, heel levels
	switch {
	case height > 4.20:
		toe = levels{L: 0.15, N: 0.20, M: 0.25}
		heel = levels{L: 0.50, N: 0.60, M: 0.70}
	case height > 3.20:
		toe = levels{L: 0.10, N: 0.15, M: 0.20}
		heel = levels{L: 0.45, N: 0.55, M: 0.65}
	case height > 2.20:
		toe = levels{L: 0.05, N: 0.10, M: 0.15}
		heel = levels{L: 0.40, N: 0.50, M: 0.60}
	case height > 1.20:
		toe = levels{L: 0.00, N: 0.05, M: 0.10}
		heel = levels{L: 0.35, N: 0.45, M: 0.55}
	default:
		toe = levels{L: 0.00, N: 0.00, M: 0.05}
		heel = levels{L: 0.30, N: 0.40, M: 0.50}
	}
	g := GoalSet{
		Toe:       toe.at(d),
		Heel:      heel.at(d),
		Courtyard: levels{L: 0.10, N: 0.20, M: 0.40}.at(d),
		SizeRound: 0.05,
	}
	if d == Most {
		g.Side = 0.05
	}
	return g
}

// SOD returns the goals for gullwing-lead SOD diodes.
func SOD(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.15, N: 0.35, M: 0.55}.at(d),
		Heel:      levels{L: 0.25, N: 0.35, M: 0.45}.at(d),
		Side:      levels{L: 0.01, N: 0.03, M: 0.05}.at(d),
		Courtyard: DefaultCourtyard(d),
	}
}

// SODFL returns the goals for flat-lead SODFL diodes.
func SODFL(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.1, N: 0.2, M: 0.3}.at(d),
		Heel:      0,
		Side:      levels{L: 0, N: 0, M: 0.05}.at(d),
		Courtyard: levels{L: 0.1, N: 0.2, M: 0.4}.at(d),
	}
}

// ChipArray returns the goals for concave chip arrays.
func ChipArray(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.35, N: 0.45, M: 0.55}.at(d),
		Heel:      levels{L: -0.10, N: -0.07, M: -0.05}.at(d),
		Side:      levels{L: -0.10, N: -0.07, M: -0.05}.at(d),
		Courtyard: levels{L: 0.10, N: 0.25, M: 0.50}.at(d),
		SizeRound: 0.05,
	}
}

// CornerConcave returns the outer periphery and courtyard for
// corner-concave oscillator packages. The inner periphery is zero at all
// levels; pad sizes round to a 0.01 mm grid.
func CornerConcave(d Density) GoalSet {
	return GoalSet{
		Toe:       levels{L: 0.10, N: 0.15, M: 0.20}.at(d),
		Courtyard: levels{L: 0.10, N: 0.20, M: 0.40}.at(d),
		SizeRound: 0.01,
	}
}

// BGACourtyard returns the courtyard excess for ball grid arrays.
func BGACourtyard(d Density) float64 {
	return levels{L: 0.50, N: 1.00, M: 2.00}.at(d)
}

// BallFactor returns the pad diameter factor applied to the nominal ball
// diameter: a reduction for collapsible balls, an enlargement otherwise.
func BallFactor(d Density, collapsible bool) float64 {
	if collapsible {
		return levels{L: 0.85, N: 0.80, M: 0.75}.at(d)
	}
	return levels{L: 1.05, N: 1.10, M: 1.15}.at(d)
}
