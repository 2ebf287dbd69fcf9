package assembly

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

func shapes(p *pattern.Pattern, kind pattern.Kind) []pattern.Shape {
	var out []pattern.Shape
	for _, s := range p.Shapes {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

func TestBodyTexts(t *testing.T) {
	p := pattern.New("SOIC8P127_490X390X175L104X40N", config.Default())
	Body(p, housing(3.9, 4.9))

	attrs := shapes(p, pattern.AttributeKind)
	require.Len(t, attrs, 3)

	ref := attrs[0]
	assert.Equal(t, "reference", ref.Name)
	assert.Equal(t, "${REFERENCE}", ref.Text)
	// taller than wide: texts rotate with the part
	assert.True(t, ref.HasAngle)
	assert.InDelta(t, 90, ref.Angle, 1e-9)

	value := attrs[1]
	assert.Equal(t, p.Name, value.Text)
	// below the body with the courtyard gap
	assert.InDelta(t, 2.45+0.25+0.75, value.Y, 1e-9)

	user := attrs[2]
	assert.Equal(t, "REF**", user.Text)
	assert.False(t, user.Visible)
}

func TestFontClampedToBody(t *testing.T) {
	p := pattern.New("test", config.Default())
	Body(p, housing(0.5, 4.0))
	attrs := shapes(p, pattern.AttributeKind)
	require.NotEmpty(t, attrs)
	// 0.66 of the smaller body dimension caps the font
	assert.InDelta(t, 0.33, attrs[0].FontSize, 1e-9)
}

func TestPolarizedChamfer(t *testing.T) {
	p := pattern.New("test", config.Default())
	Polarized(p, housing(4.0, 6.0))
	// chamfered outline drawn as five segments
	assert.Len(t, shapes(p, pattern.LineKind), 5)
	assert.Empty(t, shapes(p, pattern.RectKind))
}

func TestQuadPinDot(t *testing.T) {
	p := pattern.New("test", config.Default())
	Quad(p, housing(7.0, 7.0))

	rects := shapes(p, pattern.RectKind)
	require.Len(t, rects, 1)
	dots := shapes(p, pattern.CircleKind)
	require.Len(t, dots, 1)
	assert.True(t, dots[0].Fill)
	assert.InDelta(t, -3.5+0.8, dots[0].X, 1e-9)
	assert.InDelta(t, -3.5+0.8, dots[0].Y, 1e-9)
}

func TestSOT23SmallText(t *testing.T) {
	p := pattern.New("test", config.Default())
	SOT23(p, housing(1.3, 2.9))
	attrs := shapes(p, pattern.AttributeKind)
	require.NotEmpty(t, attrs)
	assert.InDelta(t, 0.4, attrs[0].FontSize, 1e-9)
}

func TestPakBodyAndLeads(t *testing.T) {
	p := pattern.New("test", config.Default())
	span := element.Exact(10.0)
	ledge := element.Exact(1.0)
	tabW := element.Exact(6.0)
	h := housing(6.5, 6.0)
	h.LeadSpan = &span
	h.TabLedge = &ledge
	h.TabWidth = &tabW
	h.LeadCount = 3
	h.Pitch = 2.28
	e := &element.Element{Housing: *h}

	Pak(p, e)
	assert.Len(t, shapes(p, pattern.RectKind), 2)
	assert.Len(t, shapes(p, pattern.LineKind), 3)
}

func TestTwoPinCAE(t *testing.T) {
	p := pattern.New("test", config.Default())
	p.PadNum(1, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: -2.8, Width: 2.0, Height: 1.6})
	p.PadNum(2, pattern.Pad{Type: pattern.SMDPad, Shape: pattern.RectPad, X: 2.8, Width: 2.0, Height: 1.6})
	diam := element.Exact(6.3)
	h := housing(6.6, 6.6)
	h.CAE = true
	h.Polarized = true
	h.BodyDiameter = &diam
	TwoPin(p, h)

	// chamfered outline plus the polarity plus marker
	assert.Len(t, shapes(p, pattern.LineKind), 6+2)
	circles := shapes(p, pattern.CircleKind)
	require.Len(t, circles, 1)
	assert.InDelta(t, 6.3/2, circles[0].Radius, 1e-9)
}

func TestTwoPinChipRotated(t *testing.T) {
	p := pattern.New("test", config.Default())
	h := housing(1.6, 3.2)
	h.Chip = true
	TwoPin(p, h)

	rects := shapes(p, pattern.RectKind)
	require.Len(t, rects, 1)
	// drawn horizontally: length on X, width on Y
	assert.InDelta(t, -1.6, rects[0].X1, 1e-9)
	assert.InDelta(t, -0.8, rects[0].Y1, 1e-9)
}

func TestSODFLDot(t *testing.T) {
	p := pattern.New("test", config.Default())
	h := housing(1.7, 3.8)
	h.SODFL = true
	TwoPin(p, h)

	dots := shapes(p, pattern.CircleKind)
	require.Len(t, dots, 1)
	assert.InDelta(t, -3.8/2+0.4, dots[0].X, 1e-9)
	assert.InDelta(t, -1.7/2+0.4, dots[0].Y, 1e-9)
}
