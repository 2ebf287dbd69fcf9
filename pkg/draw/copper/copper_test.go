package copper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

func dualElement(count int, pitch float64) *element.Element {
	return &element.Element{
		Housing: element.Housing{LeadCount: count, Pitch: pitch},
	}
}

func TestDualRoundOrder(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := dualElement(8, 1.27)
	Dual(p, e, DualPads{
		Pad:      pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1.0, Height: 0.6},
		Distance: 5.0,
		Order:    RoundOrder,
	})

	pads := p.Pads()
	require.Len(t, pads, 8)

	p1 := p.PadByName("1")
	require.NotNil(t, p1)
	assert.InDelta(t, -2.5, p1.X, 1e-9)
	assert.InDelta(t, -1.905, p1.Y, 1e-9)

	// pin 8 sits opposite pin 1, pin 5 opposite pin 4
	p8 := p.PadByName("8")
	require.NotNil(t, p8)
	assert.InDelta(t, 2.5, p8.X, 1e-9)
	assert.InDelta(t, -1.905, p8.Y, 1e-9)

	p5 := p.PadByName("5")
	require.NotNil(t, p5)
	assert.InDelta(t, 2.5, p5.X, 1e-9)
	assert.InDelta(t, 1.905, p5.Y, 1e-9)
}

func TestDualRowsOrder(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := dualElement(6, 2.54)
	Dual(p, e, DualPads{
		Pad:      pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1.5, Height: 0.8},
		Distance: 7.62,
		Order:    RowsOrder,
	})

	// odd numbers down the left column, even numbers down the right
	for _, name := range []string{"1", "3", "5"} {
		pad := p.PadByName(name)
		require.NotNil(t, pad)
		assert.InDelta(t, -3.81, pad.X, 1e-9, "pad %s", name)
	}
	for _, name := range []string{"2", "4", "6"} {
		pad := p.PadByName(name)
		require.NotNil(t, pad)
		assert.InDelta(t, 3.81, pad.X, 1e-9, "pad %s", name)
	}
}

func TestDualMirrorSwapsColumns(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := dualElement(4, 1.0)
	Dual(p, e, DualPads{
		Pad:      pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1, Height: 0.5},
		Distance: 4.0,
		Mirror:   true,
	})
	assert.InDelta(t, 2.0, p.PadByName("1").X, 1e-9)
	assert.InDelta(t, -2.0, p.PadByName("4").X, 1e-9)
}

func TestDualSkipsAbsentPins(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := dualElement(4, 1.0)
	e.Pins = map[string]string{"1": "A", "2": "B", "4": "C"}
	Dual(p, e, DualPads{
		Pad:      pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1, Height: 0.5},
		Distance: 4.0,
	})
	assert.Len(t, p.Pads(), 3)
	assert.Nil(t, p.PadByName("3"))
}

func TestDualPad1Height(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := dualElement(4, 1.0)
	Dual(p, e, DualPads{
		Pad:        pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1, Height: 0.5},
		Distance:   4.0,
		Pad1Height: 0.9,
	})
	assert.InDelta(t, 0.9, p.PadByName("1").Height, 1e-9)
	assert.InDelta(t, 0.5, p.PadByName("2").Height, 1e-9)
}

func TestQuadNumbersCounterclockwise(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := &element.Element{Housing: element.Housing{
		Pitch: 0.5, RowCount: 4, ColumnCount: 4,
	}}
	Quad(p, e, QuadPads{
		RowPad:    pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 1.0, Height: 0.3},
		ColumnPad: pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 0.3, Height: 1.0},
		Distance1: 5.0,
		Distance2: 5.0,
	})
	require.Len(t, p.Pads(), 16)

	// pin 1 top of the left side, pin 5 left of the bottom side,
	// pin 9 bottom of the right side, pin 13 right of the top side
	assert.InDelta(t, -2.5, p.PadByName("1").X, 1e-9)
	assert.InDelta(t, -0.75, p.PadByName("1").Y, 1e-9)
	assert.InDelta(t, -0.75, p.PadByName("5").X, 1e-9)
	assert.InDelta(t, 2.5, p.PadByName("5").Y, 1e-9)
	assert.InDelta(t, 2.5, p.PadByName("9").X, 1e-9)
	assert.InDelta(t, 0.75, p.PadByName("9").Y, 1e-9)
	assert.InDelta(t, 0.75, p.PadByName("13").X, 1e-9)
	assert.InDelta(t, -2.5, p.PadByName("13").Y, 1e-9)
}

func TestGridArrayNames(t *testing.T) {
	p := pattern.New("test", config.Default())
	e := &element.Element{Housing: element.Housing{
		HorizontalPitch: 0.8, VerticalPitch: 0.8,
		RowCount: 3, ColumnCount: 3,
	}}
	GridArray(p, e, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.CirclePad, Width: 0.4, Height: 0.4})
	require.Len(t, p.Pads(), 9)

	a1 := p.PadByName("A1")
	require.NotNil(t, a1)
	assert.InDelta(t, -0.8, a1.X, 1e-9)
	assert.InDelta(t, -0.8, a1.Y, 1e-9)

	c3 := p.PadByName("C3")
	require.NotNil(t, c3)
	assert.InDelta(t, 0.8, c3.X, 1e-9)
	assert.InDelta(t, 0.8, c3.Y, 1e-9)
}

func TestMarginsShrinkBetweenClosePads(t *testing.T) {
	settings := config.Default()
	settings.Clearance.PadToMask = 0.1
	p := pattern.New("test", settings)
	// two pads 0.3 mm apart: full padToMask margins would leave less
	// than the minimum mask sliver
	p.Pad("1", pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -0.65, Width: 1, Height: 1})
	p.Pad("2", pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: 0.65, Width: 1, Height: 1})
	Margins(p)

	p1 := p.PadByName("1")
	require.NotNil(t, p1.Mask)
	assert.InDelta(t, 0.05, *p1.Mask, 1e-9)
}

func TestMarginsSinglePad(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.Pad("1", pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, Width: 2, Height: 2})
	Margins(p)
	pad := p.PadByName("1")
	require.NotNil(t, pad.Mask)
	assert.InDelta(t, 0.2, *pad.Mask, 1e-9)
}

func TestTabPlacesPadAfterLeads(t *testing.T) {
	p := pattern.New("test", config.Default())
	tab := element.Span(3.0, 3.2)
	width := element.Span(2.0, 2.2)
	e := &element.Element{Housing: element.Housing{
		LeadCount: 8,
		TabLength: &tab,
		TabWidth:  &width,
	}}
	Tab(p, e)

	pad := p.PadByName("9")
	require.NotNil(t, pad)
	assert.Equal(t, pattern.SMDPad, pad.PadType)
	assert.InDelta(t, width.Nom, pad.Width, 1e-9)
	assert.InDelta(t, tab.Nom, pad.Height, 1e-9)
}

func TestTabVias(t *testing.T) {
	p := pattern.New("test", config.Default())
	tab := element.Span(3.0, 3.0)
	width := element.Span(2.0, 2.0)
	e := &element.Element{Housing: element.Housing{
		LeadCount:   4,
		TabLength:   &tab,
		TabWidth:    &width,
		ViaDiameter: 0.3,
		ViaPosition: "-0.5, 0, 0.5, 0",
	}}
	Tab(p, e)

	// vias share the tab pad number and flip the pattern type
	vias := 0
	for _, s := range p.Shapes {
		if s.Kind == pattern.PadKind && s.PadType == pattern.ThroughHolePad {
			vias++
			assert.Equal(t, "5", s.PadName)
			assert.InDelta(t, 0.3, s.Hole, 1e-9)
			assert.InDelta(t, 0.4, s.Width, 1e-9)
		}
	}
	assert.Equal(t, 2, vias)
	assert.Equal(t, pattern.ThroughHolePad, p.Type)
}
