package builder

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

func dim(min, nom, max float64) *element.Dim {
	return &element.Dim{Min: min, Nom: nom, Max: max}
}

func soicElement() *element.Element {
	return &element.Element{
		Name: "test",
		Housing: element.Housing{
			LeadCount:  4,
			Pitch:      2.5,
			LeadSpan:   dim(6.1, 6.4, 6.7),
			LeadLength: dim(0.48, 0.79, 1.1),
			LeadWidth:  dim(0.43, 0.635, 0.84),
			BodyWidth:  dim(3.6, 3.9, 4.2),
			Height:     dim(2.3, 2.6, 2.9),
		},
	}
}

func TestSOICName(t *testing.T) {
	p, err := Build("soic", soicElement(), config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, "SOIC4P250_640X390X290L79X64N", p.Name)
}

func TestSOICPads(t *testing.T) {
	p, err := Build("soic", soicElement(), config.Default(), nil)
	require.NoError(t, err)
	require.Len(t, p.Pads(), 4)

	// two pads per column, pin 4 opposite pin 1
	for _, tc := range []struct {
		name string
		x, y float64
	}{
		{"1", -2.8, -1.25},
		{"2", -2.8, 1.25},
		{"3", 2.8, 1.25},
		{"4", 2.8, -1.25},
	} {
		pad := p.PadByName(tc.name)
		require.NotNil(t, pad, "pad %s", tc.name)
		assert.InDelta(t, tc.x, pad.X, 1e-9, "pad %s x", tc.name)
		assert.InDelta(t, tc.y, pad.Y, 1e-9, "pad %s y", tc.name)
		assert.InDelta(t, 1.80, pad.Width, 1e-9, "pad %s width", tc.name)
		assert.InDelta(t, 1.00, pad.Height, 1e-9, "pad %s height", tc.name)
	}
}

func TestQFNWithoutThermalTab(t *testing.T) {
	e := &element.Element{
		Housing: element.Housing{
			QFN:        true,
			LeadCount:  8,
			Pitch:      0.5,
			BodyLength: dim(2.9, 3.0, 3.1),
			BodyWidth:  dim(2.9, 3.0, 3.1),
			Height:     dim(0.7, 0.75, 0.8),
			LeadLength: dim(0.3, 0.4, 0.5),
			LeadWidth:  dim(0.2, 0.25, 0.3),
		},
	}
	p, err := Build("qfn", e, config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, "QFN8P050_300X300X080L040X025N", p.Name)
	assert.Len(t, p.Pads(), 8)
	assert.Nil(t, p.PadByName("9"))
}

func TestChipSymmetricPads(t *testing.T) {
	e := &element.Element{
		ComponentType: "CAPC",
		Housing: element.Housing{
			BodyLength: dim(1.9, 2.0, 2.1),
			BodyWidth:  dim(1.15, 1.25, 1.35),
			Height:     dim(1.2, 1.3, 1.4),
		},
	}
	p, err := Build("chip", e, config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, "CAPC200X125X140L000N", p.Name)
	require.Len(t, p.Pads(), 2)

	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.InDelta(t, -1.15, p1.X, 1e-9)
	assert.InDelta(t, 1.15, p2.X, 1e-9)
	assert.InDelta(t, 0, p1.Y, 1e-9)
	assert.InDelta(t, 0, p2.Y, 1e-9)
	assert.InDelta(t, 0.45, p1.Width, 1e-9)
	assert.InDelta(t, 1.40, p1.Height, 1e-9)
	assert.Equal(t, p1.Width, p2.Width)
	assert.Equal(t, p1.Height, p2.Height)
}

// courtyardExtent returns the largest |x| and |y| reached by shapes on
// the top courtyard layer.
func courtyardExtent(p *pattern.Pattern) (x, y float64) {
	for _, s := range p.Shapes {
		onCourtyard := false
		for _, l := range s.Layers {
			if l == pattern.TopCourtyard {
				onCourtyard = true
			}
		}
		if !onCourtyard {
			continue
		}
		switch s.Kind {
		case pattern.LineKind, pattern.RectKind:
			x = math.Max(x, math.Max(math.Abs(s.X1), math.Abs(s.X2)))
			y = math.Max(y, math.Max(math.Abs(s.Y1), math.Abs(s.Y2)))
		case pattern.CircleKind:
			x = math.Max(x, math.Abs(s.X)+s.Radius)
			y = math.Max(y, math.Abs(s.Y)+s.Radius)
		}
	}
	return x, y
}

func TestCourtyardGrowsWithDensity(t *testing.T) {
	least := config.Default()
	least.DensityLevel = ipc.Least
	most := config.Default()
	most.DensityLevel = ipc.Most

	pl, err := Build("soic", soicElement(), least, nil)
	require.NoError(t, err)
	pm, err := Build("soic", soicElement(), most, nil)
	require.NoError(t, err)

	lx, ly := courtyardExtent(pl)
	mx, my := courtyardExtent(pm)
	require.Greater(t, lx, 0.0)
	assert.GreaterOrEqual(t, mx, lx)
	assert.GreaterOrEqual(t, my, ly)
}

func TestBuildDeterministic(t *testing.T) {
	p1, err := Build("soic", soicElement(), config.Default(), nil)
	require.NoError(t, err)
	p2, err := Build("soic", soicElement(), config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, p1.Name, p2.Name)
	assert.Equal(t, p1.Shapes, p2.Shapes)
}

func TestUnknownKind(t *testing.T) {
	_, err := Build("flux-capacitor", &element.Element{}, config.Default(), nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestInvalidDensity(t *testing.T) {
	s := config.Default()
	s.DensityLevel = "X"
	_, err := Build("soic", soicElement(), s, nil)
	assert.Error(t, err)
}

func TestKindsSorted(t *testing.T) {
	kinds := Kinds()
	assert.True(t, sort.StringsAreSorted(kinds))
	assert.Contains(t, kinds, "soic")
	assert.Contains(t, kinds, "bga")
	assert.Contains(t, kinds, "mounting-hole")
}

func TestDFNTransistorLargePad(t *testing.T) {
	e := &element.Element{
		ComponentType: "transistor",
		Housing: element.Housing{
			LeadCount:  3,
			BodyLength: dim(2.8, 2.9, 3.0),
			BodyWidth:  dim(1.4, 1.5, 1.6),
			Height:     dim(0.9, 1.0, 1.1),
			LeadLength: dim(0.2, 0.3, 0.4),
			LeadWidth:  dim(0.25, 0.3, 0.35),
		},
	}
	p, err := Build("dfn", e, config.Default(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.Name, "TRXDFN3"), "name %q", p.Name)
	require.Len(t, p.Pads(), 3)

	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	p3 := p.PadByName("3")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.NotNil(t, p3)
	assert.InDelta(t, -1.0, p1.X, 1e-9)
	assert.InDelta(t, -0.4, p1.Y, 1e-9)
	assert.InDelta(t, -1.0, p2.X, 1e-9)
	assert.InDelta(t, 0.4, p2.Y, 1e-9)
	assert.InDelta(t, 1.0, p3.X, 1e-9)
	assert.InDelta(t, 0, p3.Y, 1e-9)
	assert.InDelta(t, 1.8, p3.Width, 1e-9)
	assert.InDelta(t, 1.2, p3.Height, 1e-9)
}

func TestOscillatorCornerNumbering(t *testing.T) {
	e := &element.Element{
		Housing: element.Housing{
			CornerConcave: true,
			BodyLength:    dim(3.1, 3.2, 3.3),
			BodyWidth:     dim(2.4, 2.5, 2.6),
			Height:        dim(1.0, 1.1, 1.2),
			LeadLength:    dim(0.9, 1.0, 1.1),
			LeadWidth:     dim(1.1, 1.2, 1.3),
		},
	}
	p, err := Build("oscillator", e, config.Default(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.Name, "OSCC"), "name %q", p.Name)
	require.Len(t, p.Pads(), 4)

	// pin 1 bottom left, numbering runs 1-2 along the bottom edge
	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	p3 := p.PadByName("3")
	p4 := p.PadByName("4")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.NotNil(t, p3)
	require.NotNil(t, p4)
	assert.True(t, p1.X < 0 && p1.Y > 0)
	assert.True(t, p2.X > 0 && p2.Y > 0)
	assert.True(t, p3.X > 0 && p3.Y < 0)
	assert.True(t, p4.X < 0 && p4.Y < 0)
}

func TestDIPThroughHole(t *testing.T) {
	e := &element.Element{
		Housing: element.Housing{
			LeadCount:    8,
			LeadSpan:     dim(7.62, 7.62, 7.62),
			LeadDiameter: dim(0.4, 0.46, 0.56),
			BodyLength:   dim(9.0, 9.27, 9.5),
			Height:       dim(3.0, 3.3, 3.6),
		},
	}
	p, err := Build("dip", e, config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, pattern.ThroughHolePad, p.Type)
	require.Len(t, p.Pads(), 8)

	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.Equal(t, pattern.RectPad, p1.PadShape)
	assert.Equal(t, pattern.CirclePad, p2.PadShape)
	assert.Greater(t, p1.Hole, 0.56)
	assert.InDelta(t, -3.81, p1.X, 1e-9)
	assert.InDelta(t, -2.54*1.5, p1.Y, 1e-9)
}

func TestMountingHoleViaRing(t *testing.T) {
	padD := 6.0
	hole := 3.2
	e := &element.Element{
		Name: "mh1",
		Housing: element.Housing{
			HoleDiameter: &hole,
			PadDiameter:  &padD,
			ViaDiameter:  0.3,
		},
	}
	p, err := Build("mounting-hole", e, config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, "MH1", p.Name)

	vias := 0
	for _, s := range p.Shapes {
		if s.Kind == pattern.PadKind && s.Hole == 0.3 {
			vias++
			assert.Equal(t, "1", s.PadName)
		}
	}
	assert.Equal(t, 8, vias)

	// keepout circle beyond the pad edge
	extent := 0.0
	for _, s := range p.Shapes {
		if s.Kind == pattern.CircleKind {
			for _, l := range s.Layers {
				if l == pattern.TopCourtyard {
					extent = s.Radius
				}
			}
		}
	}
	assert.InDelta(t, padD/2+0.25, extent, 1e-9)
}

func TestSOTFLThreeLead(t *testing.T) {
	e := &element.Element{
		Housing: element.Housing{
			LeadCount:  3,
			Pitch:      0.95,
			LeadSpan:   dim(2.10, 2.37, 2.64),
			BodyLength: dim(2.80, 2.92, 3.04),
			BodyWidth:  dim(1.20, 1.30, 1.40),
			Height:     dim(0.89, 1.00, 1.12),
			LeadLength: dim(0.30, 0.43, 0.55),
			LeadWidth:  dim(0.30, 0.40, 0.50),
		},
	}
	p, err := Build("sot23", e, config.Default(), nil)
	require.NoError(t, err)
	require.Len(t, p.Pads(), 3)

	// two leads left at double pitch, one lead right on the center line
	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	p3 := p.PadByName("3")
	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.NotNil(t, p3)
	assert.Less(t, p1.X, 0.0)
	assert.InDelta(t, -0.95, p1.Y, 1e-9)
	assert.InDelta(t, 0.95, p2.Y, 1e-9)
	assert.Greater(t, p3.X, 0.0)
	assert.InDelta(t, 0, p3.Y, 1e-9)
}

func TestSOTFLUniformPadSize(t *testing.T) {
	e := &element.Element{
		Housing: element.Housing{
			LeadCount:  3,
			Pitch:      0.95,
			LeadSpan:   dim(2.10, 2.37, 2.64),
			BodyLength: dim(2.80, 2.92, 3.04),
			BodyWidth:  dim(1.20, 1.30, 1.40),
			Height:     dim(0.89, 1.00, 1.12),
			LeadLength: dim(0.30, 0.43, 0.55),
			LeadWidth1: dim(0.30, 0.40, 0.50),
			LeadWidth2: dim(0.40, 0.50, 0.60),
		},
	}
	p, err := Build("sot23", e, config.Default(), nil)
	require.NoError(t, err)

	// all leads share the pad-1 geometry even with distinct lead widths
	p1 := p.PadByName("1")
	p3 := p.PadByName("3")
	require.NotNil(t, p1)
	require.NotNil(t, p3)
	assert.InDelta(t, p1.Width, p3.Width, 1e-9)
	assert.InDelta(t, p1.Height, p3.Height, 1e-9)
}

func TestBridgePadsTouch(t *testing.T) {
	w, h := 1.0, 0.6
	e := &element.Element{
		Name: "bridge1",
		Housing: element.Housing{
			PadWidth:  &w,
			PadHeight: &h,
		},
	}
	p, err := Build("bridge", e, config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, "BRIDGE1", p.Name)
	require.Len(t, p.Pads(), 2)
	p1 := p.PadByName("1")
	p2 := p.PadByName("2")
	assert.InDelta(t, -0.5, p1.X, 1e-9)
	assert.InDelta(t, 0.5, p2.X, 1e-9)
	// copper only, no mask opening
	assert.Equal(t, []pattern.Layer{pattern.TopCopper}, p1.Layers)
}

func TestErrorCarriesKind(t *testing.T) {
	e := &element.Element{Housing: element.Housing{LeadCount: 4}}
	_, err := Build("soic", e, config.Default(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDimension)
	assert.Contains(t, err.Error(), "build soic")
}
