package courtyard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

func housing(w, l float64) *element.Housing {
	bw := element.Exact(w)
	bl := element.Exact(l)
	return &element.Housing{BodyWidth: &bw, BodyLength: &bl}
}

func lines(p *pattern.Pattern) []pattern.Shape {
	var out []pattern.Shape
	for _, s := range p.Shapes {
		if s.Kind == pattern.LineKind {
			out = append(out, s)
		}
	}
	return out
}

func TestBoundaryCoversPads(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -3.0, Width: 2.0, Height: 0.6})
	p.PadNum(2, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: 3.0, Width: 2.0, Height: 0.6})
	Boundary(p, housing(3.9, 4.9), 0.25)

	var rect *pattern.Shape
	for i := range p.Shapes {
		if p.Shapes[i].Kind == pattern.RectKind {
			rect = &p.Shapes[i]
		}
	}
	require.NotNil(t, rect)
	assert.InDelta(t, -4.25, rect.X1, 1e-9)
	assert.InDelta(t, 4.25, rect.X2, 1e-9)
	assert.InDelta(t, -2.7, rect.Y1, 1e-9)
	assert.InDelta(t, 2.7, rect.Y2, 1e-9)
	assert.Equal(t, []pattern.Layer{pattern.TopCourtyard}, rect.Layers)
}

func TestBoundaryFlexTracesUnionContour(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -3.0, Width: 2.0, Height: 0.6})
	p.PadNum(2, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: 3.0, Width: 2.0, Height: 0.6})
	const excess = 0.25
	BoundaryFlex(p, housing(3.9, 4.9), excess)

	segs := lines(p)
	require.NotEmpty(t, segs)

	// every segment lies on the boundary of the union, so no segment
	// may sit strictly inside the body rectangle
	bodyX := 3.9/2 + excess
	bodyY := 4.9/2 + excess
	for _, s := range segs {
		midX := (s.X1 + s.X2) / 2
		midY := (s.Y1 + s.Y2) / 2
		inside := midX > -bodyX+1e-9 && midX < bodyX-1e-9 &&
			midY > -bodyY+1e-9 && midY < bodyY-1e-9
		assert.False(t, inside, "segment (%v,%v)-(%v,%v) inside the body", s.X1, s.Y1, s.X2, s.Y2)
	}

	// the pad lobes stick out to the pad edge plus the excess
	minX := 0.0
	for _, s := range segs {
		minX = min(minX, min(s.X1, s.X2))
	}
	assert.InDelta(t, -(3.0 + 1.0 + excess), minX, 1e-9)
}

func TestDualOutlineIsClosed(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -2.7, Y: -1.905, Width: 1.5, Height: 0.6})
	p.PadNum(8, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: 2.7, Y: -1.905, Width: 1.5, Height: 0.6})
	Dual(p, housing(3.9, 4.9), 0.25)

	segs := lines(p)
	require.Len(t, segs, 12)
	first := segs[0]
	last := segs[len(segs)-1]
	assert.InDelta(t, first.X1, last.X2, 1e-9)
	assert.InDelta(t, first.Y1, last.Y2, 1e-9)
}

func TestQuadOutlineIsClosed(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -4.2, Y: -2.25, Width: 1.5, Height: 0.3})
	p.PadNum(32, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -2.25, Y: -4.2, Width: 0.3, Height: 1.5})
	Quad(p, housing(7.0, 7.0), 0.25)

	segs := lines(p)
	require.Len(t, segs, 20)
	first := segs[0]
	last := segs[len(segs)-1]
	assert.InDelta(t, first.X1, last.X2, 1e-9)
	assert.InDelta(t, first.Y1, last.Y2, 1e-9)
}

func TestTwoPinCircle(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.ThroughHolePad, Shape: pattern.CirclePad, Y: -2.5, Width: 1.2, Height: 1.2, Hole: 0.7})
	p.PadNum(2, pattern.Pad{Type: pattern.ThroughHolePad, Shape: pattern.CirclePad, Y: 2.5, Width: 1.2, Height: 1.2, Hole: 0.7})
	diam := element.Exact(8.0)
	h := &element.Housing{BodyDiameter: &diam}
	TwoPin(p, h, 0.25)

	var circle *pattern.Shape
	for i := range p.Shapes {
		if p.Shapes[i].Kind == pattern.CircleKind {
			circle = &p.Shapes[i]
		}
	}
	require.NotNil(t, circle)
	assert.InDelta(t, 4.25, circle.Radius, 1e-9)
}

func TestGridArrayBounds(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.CirclePad, X: -2.0, Y: -2.0, Width: 0.4, Height: 0.4})
	p.PadNum(2, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.CirclePad, X: 2.0, Y: 2.0, Width: 0.4, Height: 0.4})
	GridArray(p, housing(5.0, 5.0), 0.5)

	var rect *pattern.Shape
	for i := range p.Shapes {
		if p.Shapes[i].Kind == pattern.RectKind {
			rect = &p.Shapes[i]
		}
	}
	require.NotNil(t, rect)
	assert.InDelta(t, -3.0, rect.X1, 1e-9)
	assert.InDelta(t, 3.0, rect.Y2, 1e-9)
}
