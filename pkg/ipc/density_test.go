package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGullwingPitchBrackets(t *testing.T) {
	cases := []struct {
		pitch float64
		toe   float64
	}{
		{1.27, 0.35},
		{1.00, 0.30},
		{0.80, 0.25},
		{0.65, 0.20},
		{0.50, 0.15},
		{0.40, 0.15},
		{0.35, 0.15},
	}
	for _, c := range cases {
		g := Gullwing(Nominal, c.pitch)
		assert.InDelta(t, c.toe, g.Toe, 1e-9, "pitch %v", c.pitch)
	}
}

func TestJLeadSwapsOuterGoal(t *testing.T) {
	// For J-bend leads the larger heel goal drives the outer pad edge.
	g := JLead(Nominal)
	assert.Equal(t, 0.35, g.Toe)
	assert.Equal(t, 0.0, g.Heel)
}

func TestNolead(t *testing.T) {
	// Pull-back terminals take the periphery from the pull-back table.
	g := Nolead(Most, 0.05, 3.0)
	assert.Equal(t, 0.05, g.Toe)
	assert.Equal(t, 0.05, g.Side)

	// Without pull-back the periphery depends on body length.
	g = Nolead(Most, 0, 2.0)
	assert.Equal(t, 0.05, g.Toe)
	g = Nolead(Most, 0, 1.0)
	assert.Equal(t, 0.0, g.Toe)
	assert.Equal(t, 0.20, g.Courtyard)

	g = Nolead(Nominal, 0, 2.0)
	assert.Equal(t, 0.0, g.Toe)
	assert.Equal(t, 0.20, g.Courtyard)
	g = Nolead(Nominal, 0, 1.0)
	assert.Equal(t, 0.15, g.Courtyard)
}

func TestChipBrackets(t *testing.T) {
	cases := []struct {
		length    float64
		toe       float64
		sizeRound float64
	}{
		{5.0, 0.50, 0.05},
		{4.5, 0.40, 0.05},
		{3.2, 0.35, 0.05},
		{2.0, 0.30, 0.05},
		{1.0, 0.20, 0.02},
		{0.6, 0.10, 0.02},
		{0.4, 0.05, 0.02},
	}
	for _, c := range cases {
		g := Chip(Nominal, c.length)
		assert.InDelta(t, c.toe, g.Toe, 1e-9, "length %v", c.length)
		assert.Equal(t, c.sizeRound, g.SizeRound, "length %v", c.length)
	}
}

func TestCrystalHeightSplit(t *testing.T) {
	tall := Crystal(Nominal, 12)
	flat := Crystal(Nominal, 4)
	assert.Greater(t, tall.Toe, flat.Toe)
	assert.Greater(t, tall.Courtyard, flat.Courtyard)
}

func TestCourtyardMonotonicInDensity(t *testing.T) {
	type fn struct {
		name string
		f    func(Density) GoalSet
	}
	fns := []fn{
		{"flatlead", Flatlead},
		{"jlead", JLead},
		{"sojjlead", SOJJLead},
		{"llead", LLead},
		{"concave", Concave},
		{"dfn", DFNTwoPin},
		{"melf", Melf},
		{"sod", SOD},
		{"sodfl", SODFL},
		{"chiparray", ChipArray},
		{"cornerconcave", CornerConcave},
		{"sotflflatlead", SOTFLFlatlead},
		{"gullwing 0.65", func(d Density) GoalSet { return Gullwing(d, 0.65) }},
		{"sotgullwing 0.95", func(d Density) GoalSet { return SOTGullwing(d, 0.95) }},
		{"nolead", func(d Density) GoalSet { return Nolead(d, 0, 2.0) }},
		{"chip 2.0", func(d Density) GoalSet { return Chip(d, 2.0) }},
		{"crystal 5", func(d Density) GoalSet { return Crystal(d, 5) }},
		{"molded 2.5", func(d Density) GoalSet { return Molded(d, 2.5) }},
	}
	for _, c := range fns {
		t.Run(c.name, func(t *testing.T) {
			least := c.f(Least).Courtyard
			nominal := c.f(Nominal).Courtyard
			most := c.f(Most).Courtyard
			assert.LessOrEqual(t, least, nominal)
			assert.LessOrEqual(t, nominal, most)
		})
	}
}

func TestBallFactor(t *testing.T) {
	assert.Equal(t, 0.80, BallFactor(Nominal, true))
	assert.Equal(t, 1.10, BallFactor(Nominal, false))
	assert.Less(t, BallFactor(Most, true), BallFactor(Least, true))
	assert.Greater(t, BallFactor(Most, false), BallFactor(Least, false))
}

func TestDensityValid(t *testing.T) {
	assert.True(t, Least.Valid())
	assert.True(t, Nominal.Valid())
	assert.True(t, Most.Valid())
	assert.False(t, Density("X").Valid())
	assert.False(t, Density("").Valid())
}
