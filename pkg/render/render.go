// Package render rasterizes a land pattern into a PNG preview. Copper,
// silkscreen and courtyard draw in KiCad-like colors on a dark board
// background, with optional pad name labels.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// Options controls the raster output.
type Options struct {
	Scale  float64 // pixels per millimeter, 50 when zero
	Margin float64 // millimeters around the artwork, 1 when zero
	Labels bool    // draw pad names
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 50
	}
	if o.Margin <= 0 {
		o.Margin = 1.0
	}
	return o
}

var (
	background = color.NRGBA{30, 30, 30, 255}
	holeColor  = color.NRGBA{20, 20, 20, 255}
	labelColor = color.NRGBA{255, 255, 255, 255}
)

var layerColors = map[pattern.Layer]color.NRGBA{
	pattern.TopCopper:     {188, 63, 63, 255},
	pattern.BottomCopper:  {63, 63, 188, 255},
	pattern.TopSilkscreen: {242, 237, 161, 255},
	pattern.TopAssembly:   {175, 175, 175, 255},
	pattern.TopCourtyard:  {255, 38, 226, 255},
}

// drawOrder lists the layers painted, bottom-up.
var drawOrder = []pattern.Layer{
	pattern.BottomCopper,
	pattern.TopCopper,
	pattern.TopAssembly,
	pattern.TopCourtyard,
	pattern.TopSilkscreen,
}

// canvas maps pattern millimeters onto image pixels.
type canvas struct {
	img     *image.RGBA
	scale   float64
	originX float64
	originY float64
}

func (c *canvas) px(x, y float64) (float32, float32) {
	return float32((x - c.originX) * c.scale), float32((y - c.originY) * c.scale)
}

func (c *canvas) fill(path func(r *vector.Rasterizer), col color.NRGBA) {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	path(r)
	r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) fillRect(x1, y1, x2, y2 float64, col color.NRGBA) {
	ax, ay := c.px(math.Min(x1, x2), math.Min(y1, y2))
	bx, by := c.px(math.Max(x1, x2), math.Max(y1, y2))
	c.fill(func(r *vector.Rasterizer) {
		r.MoveTo(ax, ay)
		r.LineTo(bx, ay)
		r.LineTo(bx, by)
		r.LineTo(ax, by)
		r.ClosePath()
	}, col)
}

func (c *canvas) fillCircle(x, y, radius float64, col color.NRGBA) {
	const segments = 64
	c.fill(func(r *vector.Rasterizer) {
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			px, py := c.px(x+radius*math.Cos(a), y+radius*math.Sin(a))
			if i == 0 {
				r.MoveTo(px, py)
			} else {
				r.LineTo(px, py)
			}
		}
		r.ClosePath()
	}, col)
}

// stroke draws a line segment as a filled quad of the given width.
func (c *canvas) stroke(x1, y1, x2, y2, width float64, col color.NRGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.fillCircle(x1, y1, width/2, col)
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	ax, ay := c.px(x1+nx, y1+ny)
	bx, by := c.px(x2+nx, y2+ny)
	cx, cy := c.px(x2-nx, y2-ny)
	ex, ey := c.px(x1-nx, y1-ny)
	c.fill(func(r *vector.Rasterizer) {
		r.MoveTo(ax, ay)
		r.LineTo(bx, by)
		r.LineTo(cx, cy)
		r.LineTo(ex, ey)
		r.ClosePath()
	}, col)
}

func (c *canvas) strokeRect(x1, y1, x2, y2, width float64, col color.NRGBA) {
	c.stroke(x1, y1, x2, y1, width, col)
	c.stroke(x2, y1, x2, y2, width, col)
	c.stroke(x2, y2, x1, y2, width, col)
	c.stroke(x1, y2, x1, y1, width, col)
}

func (c *canvas) strokeCircle(x, y, radius, width float64, col color.NRGBA) {
	const segments = 64
	px, py := x+radius, y
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		nx, ny := x+radius*math.Cos(a), y+radius*math.Sin(a)
		c.stroke(px, py, nx, ny, width, col)
		px, py = nx, ny
	}
}

func (c *canvas) label(x, y float64, text string) {
	px, py := c.px(x, y)
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(px)) - width/2,
		Y: fixed.I(int(py) + 4),
	}
	d.DrawString(text)
}

// bounds returns the drawing extent of the pattern in millimeters.
func bounds(p *pattern.Pattern) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for i := range p.Shapes {
		s := &p.Shapes[i]
		switch s.Kind {
		case pattern.PadKind:
			grow(s.X-s.Width/2, s.Y-s.Height/2)
			grow(s.X+s.Width/2, s.Y+s.Height/2)
		case pattern.LineKind, pattern.RectKind:
			grow(s.X1-s.LineWidth, s.Y1-s.LineWidth)
			grow(s.X2+s.LineWidth, s.Y2+s.LineWidth)
			grow(s.X2-s.LineWidth, s.Y2-s.LineWidth)
			grow(s.X1+s.LineWidth, s.Y1+s.LineWidth)
		case pattern.CircleKind:
			grow(s.X-s.Radius-s.LineWidth, s.Y-s.Radius-s.LineWidth)
			grow(s.X+s.Radius+s.LineWidth, s.Y+s.Radius+s.LineWidth)
		}
	}
	if minX > maxX {
		return -1, -1, 1, 1
	}
	return minX, minY, maxX, maxY
}

func onLayer(s *pattern.Shape, layer pattern.Layer) bool {
	for _, l := range s.Layers {
		if l == layer {
			return true
		}
	}
	return false
}

// PNG renders the pattern and writes it as a PNG image.
func PNG(p *pattern.Pattern, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	minX, minY, maxX, maxY := bounds(p)
	minX -= opts.Margin
	minY -= opts.Margin
	maxX += opts.Margin
	maxY += opts.Margin

	width := int(math.Ceil((maxX - minX) * opts.Scale))
	height := int(math.Ceil((maxY - minY) * opts.Scale))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pattern %q has no drawable extent", p.Name)
	}

	c := &canvas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		scale:   opts.Scale,
		originX: minX,
		originY: minY,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, layer := range drawOrder {
		col := layerColors[layer]
		for i := range p.Shapes {
			s := &p.Shapes[i]
			if !onLayer(s, layer) {
				continue
			}
			switch s.Kind {
			case pattern.PadKind:
				if s.PadShape == pattern.CirclePad {
					c.fillCircle(s.X, s.Y, s.Width/2, col)
				} else {
					c.fillRect(s.X-s.Width/2, s.Y-s.Height/2,
						s.X+s.Width/2, s.Y+s.Height/2, col)
				}
			case pattern.LineKind:
				c.stroke(s.X1, s.Y1, s.X2, s.Y2, s.LineWidth, col)
			case pattern.RectKind:
				if s.Fill {
					c.fillRect(s.X1, s.Y1, s.X2, s.Y2, col)
				} else {
					c.strokeRect(s.X1, s.Y1, s.X2, s.Y2, s.LineWidth, col)
				}
			case pattern.CircleKind:
				if s.Fill {
					c.fillCircle(s.X, s.Y, s.Radius, col)
				} else {
					c.strokeCircle(s.X, s.Y, s.Radius, s.LineWidth, col)
				}
			}
		}
	}

	// drill holes punch through everything
	for i := range p.Shapes {
		s := &p.Shapes[i]
		if s.Kind == pattern.PadKind && s.Hole > 0 {
			c.fillCircle(s.X, s.Y, s.Hole/2, holeColor)
		}
	}

	if opts.Labels {
		for _, pad := range p.Pads() {
			c.label(pad.X, pad.Y, pad.PadName)
		}
	}

	return png.Encode(w, c.img)
}
