// Package pattern provides the drawing canvas a land pattern is built
// on: an ordered shape list plus a named pad map, driven by a small pen
// state (layer set, line width, fill flag and a center offset).
package pattern

import (
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
)

// Pattern accumulates the shapes of one footprint. Drawing methods
// return the pattern so calls chain.
type Pattern struct {
	Name        string
	Description string
	Tags        string
	Type        PadType // flips to through-hole once such a pad lands

	Settings config.Settings

	Shapes []Shape

	padIndex map[string]int // pad name -> index into Shapes
	padOrder []string

	layers    []Layer
	lineWidth float64
	fill      bool
	cx, cy    float64
	penX      float64
	penY      float64
}

// New returns an empty SMD pattern drawing on the top copper layer.
func New(name string, settings config.Settings) *Pattern {
	return &Pattern{
		Name:     name,
		Type:     SMDPad,
		Settings: settings,
		padIndex: make(map[string]int),
		layers:   []Layer{TopCopper},
	}
}

// Layer switches the pen onto the given layers.
func (p *Pattern) Layer(layers ...Layer) *Pattern {
	p.layers = layers
	return p
}

// LineWidth sets the pen stroke width.
func (p *Pattern) LineWidth(w float64) *Pattern {
	p.lineWidth = w
	return p
}

// Fill switches area fill for subsequent circles and rectangles.
func (p *Pattern) Fill(enable bool) *Pattern {
	p.fill = enable
	return p
}

// Center offsets all subsequent shapes by (x, y).
func (p *Pattern) Center(x, y float64) *Pattern {
	p.cx = x
	p.cy = y
	return p
}

// Attribute places a text attribute.
func (p *Pattern) Attribute(name string, a Attr) *Pattern {
	size := a.FontSize
	if size == 0 {
		size = p.Settings.FontSize.Default
	}
	p.Shapes = append(p.Shapes, Shape{
		Kind:      AttributeKind,
		Name:      name,
		Text:      a.Text,
		X:         p.cx + a.X,
		Y:         p.cy + a.Y,
		FontSize:  size,
		Angle:     a.Angle,
		HasAngle:  a.HasAngle,
		Visible:   !a.Hidden,
		LineWidth: p.lineWidth,
		Layers:    p.layers,
	})
	return p
}

// Circle draws a circle of the given radius around (x, y). Degenerate
// zero-radius circles are dropped.
func (p *Pattern) Circle(x, y, radius float64) *Pattern {
	if radius <= 0 {
		return p
	}
	p.Shapes = append(p.Shapes, Shape{
		Kind:      CircleKind,
		X:         p.cx + x,
		Y:         p.cy + y,
		Radius:    radius,
		LineWidth: p.lineWidth,
		Layers:    p.layers,
		Fill:      p.fill,
	})
	return p
}

// Line draws a segment. Degenerate zero-length segments are dropped.
func (p *Pattern) Line(x1, y1, x2, y2 float64) *Pattern {
	if x1 == x2 && y1 == y2 {
		return p
	}
	p.Shapes = append(p.Shapes, Shape{
		Kind:      LineKind,
		X1:        p.cx + x1,
		Y1:        p.cy + y1,
		X2:        p.cx + x2,
		Y2:        p.cy + y2,
		LineWidth: p.lineWidth,
		Layers:    p.layers,
	})
	return p
}

// Rectangle draws an axis-aligned rectangle between two corners.
// Degenerate rectangles are dropped.
func (p *Pattern) Rectangle(x1, y1, x2, y2 float64) *Pattern {
	if x1 == x2 && y1 == y2 {
		return p
	}
	p.Shapes = append(p.Shapes, Shape{
		Kind:      RectKind,
		X1:        p.cx + x1,
		Y1:        p.cy + y1,
		X2:        p.cx + x2,
		Y2:        p.cy + y2,
		LineWidth: p.lineWidth,
		Layers:    p.layers,
		Fill:      p.fill,
	})
	return p
}

// MoveTo lifts the pen to (x, y) without drawing.
func (p *Pattern) MoveTo(x, y float64) *Pattern {
	p.penX = x
	p.penY = y
	return p
}

// LineTo draws from the current pen position to (x, y) and moves the
// pen there.
func (p *Pattern) LineTo(x, y float64) *Pattern {
	p.Line(p.penX, p.penY, x, y)
	return p.MoveTo(x, y)
}

// Pad places a named pad. Placing a pad under an existing name replaces
// it in place, keeping its original position in the shape order. A pad
// that is neither SMD nor a bare mounting hole flips the pattern type to
// through-hole.
func (p *Pattern) Pad(name string, pad Pad) *Pattern {
	shape := p.padShape(name, pad)
	if i, ok := p.padIndex[name]; ok {
		p.Shapes[i] = shape
	} else {
		p.padIndex[name] = len(p.Shapes)
		p.padOrder = append(p.padOrder, name)
		p.Shapes = append(p.Shapes, shape)
	}
	if pad.Type != SMDPad && pad.Type != MountingHolePad {
		p.Type = ThroughHolePad
	}
	return p
}

// AppendPad appends a pad without registering it for lookup, so several
// pads can share one name. Thermal vias carry the tab pad number this
// way.
func (p *Pattern) AppendPad(name string, pad Pad) *Pattern {
	p.Shapes = append(p.Shapes, p.padShape(name, pad))
	if pad.Type != SMDPad && pad.Type != MountingHolePad {
		p.Type = ThroughHolePad
	}
	return p
}

func (p *Pattern) padShape(name string, pad Pad) Shape {
	layers := pad.Layers
	if layers == nil {
		layers = p.layers
	}
	return Shape{
		Kind:       PadKind,
		PadName:    name,
		X:          p.cx + pad.X,
		Y:          p.cy + pad.Y,
		Width:      pad.Width,
		Height:     pad.Height,
		PadType:    pad.Type,
		PadShape:   pad.Shape,
		Hole:       pad.Hole,
		SlotWidth:  pad.SlotWidth,
		SlotHeight: pad.SlotHeight,
		Mask:       pad.Mask,
		Paste:      pad.Paste,
		Clearance:  pad.Clearance,
		DieLength:  pad.DieLength,
		Property:   pad.Property,
		Layers:     layers,
	}
}

// PadNum places a pad under a numeric name.
func (p *Pattern) PadNum(number int, pad Pad) *Pattern {
	return p.Pad(strconv.Itoa(number), pad)
}

// PadByName returns the pad shape placed under name for in-place
// adjustment, or nil.
func (p *Pattern) PadByName(name string) *Shape {
	i, ok := p.padIndex[name]
	if !ok {
		return nil
	}
	return &p.Shapes[i]
}

// Pads returns the pads in placement order.
func (p *Pattern) Pads() []*Shape {
	out := make([]*Shape, 0, len(p.padOrder))
	for _, name := range p.padOrder {
		out = append(out, &p.Shapes[p.padIndex[name]])
	}
	return out
}

// ExtremePads returns the first and last pad, sorting numeric names
// numerically before any non-numeric names. Both are nil when the
// pattern has no pads.
func (p *Pattern) ExtremePads() (first, last *Shape) {
	if len(p.padOrder) == 0 {
		return nil, nil
	}
	keys := append([]string(nil), p.padOrder...)
	sort.Slice(keys, func(i, j int) bool {
		ni, iErr := strconv.Atoi(keys[i])
		nj, jErr := strconv.Atoi(keys[j])
		switch {
		case iErr == nil && jErr == nil:
			return ni < nj
		case iErr == nil:
			return true
		case jErr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return p.PadByName(keys[0]), p.PadByName(keys[len(keys)-1])
}

// ParsePosition parses a flat "x, y, x, y, ..." coordinate list into
// points. A trailing unpaired value gets y = 0.
func ParsePosition(value string) []Point {
	fields := strings.Split(strings.ReplaceAll(value, " ", ""), ",")
	var values []float64
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	var points []Point
	for i := 0; i < len(values); i += 2 {
		pt := Point{X: values[i]}
		if i+1 < len(values) {
			pt.Y = values[i+1]
		}
		points = append(points, pt)
	}
	return points
}
