package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChipAliasing(t *testing.T) {
	// A bare chip description gives only its body; terminals default to
	// the body faces.
	h := Housing{
		BodyLength: &Dim{1.9, 2.0, 2.1},
		BodyWidth:  &Dim{1.15, 1.25, 1.35},
	}
	h.DefaultLeadSpan()
	h.DefaultLeadWidth()

	require.NotNil(t, h.LeadSpan)
	require.NotNil(t, h.LeadWidth)
	assert.Equal(t, Dim{1.9, 2.0, 2.1}, *h.LeadSpan)
	assert.Equal(t, 1.15, h.LeadWidth.Min)
	assert.Equal(t, 1.35, h.LeadWidth.Max)

	// Aliasing never overwrites explicit values.
	explicit := Dim{1.0, 1.1, 1.2}
	h2 := Housing{BodyLength: &Dim{1.9, 2.0, 2.1}, LeadSpan: &explicit}
	h2.DefaultLeadSpan()
	assert.Equal(t, explicit, *h2.LeadSpan)
}

func TestMelfAliasing(t *testing.T) {
	h := Housing{BodyDiameter: &Dim{1.3, 1.4, 1.5}}
	h.DefaultBodyWidthFromDiameter()
	require.NotNil(t, h.BodyWidth)
	assert.Equal(t, Dim{1.3, 1.4, 1.5}, *h.BodyWidth)
}

func TestNormalizeSOTLeads(t *testing.T) {
	lw := Dim{0.3, 0.4, 0.5}
	h := Housing{LeadWidth: &lw}
	h.NormalizeSOTLeads()
	require.NotNil(t, h.LeadWidth1)
	require.NotNil(t, h.LeadWidth2)
	assert.Equal(t, lw, *h.LeadWidth1)
	assert.Equal(t, lw, *h.LeadWidth2)

	// With distinct widths, the first one becomes the working width.
	w1 := Dim{0.4, 0.45, 0.5}
	w2 := Dim{0.5, 0.55, 0.6}
	h = Housing{LeadWidth1: &w1, LeadWidth2: &w2}
	h.NormalizeSOTLeads()
	assert.Equal(t, w1, *h.LeadWidth)
	assert.Equal(t, w2, *h.LeadWidth2)
}

func TestNormalizeGridPitch(t *testing.T) {
	h := Housing{HorizontalPitch: 0.8, VerticalPitch: 1.0}
	h.NormalizeGridPitch()
	assert.Equal(t, 1.0, h.Pitch)

	h = Housing{Pitch: 0.5}
	h.NormalizeGridPitch()
	assert.Equal(t, 0.5, h.HorizontalPitch)
	assert.Equal(t, 0.5, h.VerticalPitch)
}

func TestDeriveCornerConcave(t *testing.T) {
	h := Housing{
		BodyLength:          &Dim{4.9, 5.0, 5.1},
		BodyWidth:           &Dim{3.1, 3.2, 3.3},
		PadSeparationLength: &Dim{2.4, 2.6, 2.8},
		PadSeparationWidth:  &Dim{1.0, 1.2, 1.4},
	}
	h.DeriveCornerConcave()

	require.NotNil(t, h.RowSpan)
	require.NotNil(t, h.ColumnSpan)
	require.NotNil(t, h.LeadLength)
	require.NotNil(t, h.LeadWidth)

	assert.InDelta(t, (5.0+2.6)/2, h.RowSpan.Nom, 1e-9)
	assert.InDelta(t, (3.2+1.2)/2, h.ColumnSpan.Nom, 1e-9)
	assert.InDelta(t, (5.0-2.6)/2, h.LeadLength.Nom, 1e-9)
	// Tolerances widen the lead band at both ends.
	assert.InDelta(t, (4.9-2.8)/2, h.LeadLength.Min, 1e-9)
	assert.InDelta(t, (5.1-2.4)/2, h.LeadLength.Max, 1e-9)
}

func TestDeriveCornerConcaveEstimate(t *testing.T) {
	h := Housing{
		BodyLength: &Dim{4.9, 5.0, 5.1},
		BodyWidth:  &Dim{3.1, 3.2, 3.3},
	}
	h.DeriveCornerConcave()

	require.NotNil(t, h.RowSpan)
	require.NotNil(t, h.LeadLength)
	assert.InDelta(t, 4.0, h.RowSpan.Nom, 1e-9)
	assert.InDelta(t, 1.0, h.LeadLength.Nom, 1e-9)
}

func TestDeriveCornerConcaveLeadFloor(t *testing.T) {
	h := Housing{
		BodyLength:          &Dim{2.0, 2.0, 2.0},
		PadSeparationLength: &Dim{1.95, 1.95, 1.95},
	}
	h.DeriveCornerConcave()
	require.NotNil(t, h.LeadLength)
	assert.Equal(t, 0.05, h.LeadLength.Nom)
}

func TestHasTab(t *testing.T) {
	h := Housing{}
	assert.False(t, h.HasTab())

	zero := Exact(0)
	h = Housing{TabLength: &zero, TabWidth: &zero}
	assert.False(t, h.HasTab())

	tl, tw := Exact(2.0), Exact(1.5)
	h = Housing{TabLength: &tl, TabWidth: &tw}
	assert.True(t, h.HasTab())
}

func TestHeightMax(t *testing.T) {
	h := Housing{Height: &Dim{1.0, 1.2, 1.4}}
	assert.Equal(t, 1.4, h.HeightMax())

	h = Housing{BodyDiameter: &Dim{2.0, 2.1, 2.2}}
	assert.Equal(t, 2.2, h.HeightMax())

	assert.Equal(t, 0.0, (&Housing{}).HeightMax())
}
