// Package copper places the copper pads of a land pattern: dual rows,
// quad rings, grid arrays and thermal tabs, plus the per-pad solder
// mask margins derived from pad spacing.
package copper

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// PadOrder selects how dual-row pad numbers walk the two columns.
type PadOrder string

const (
	// RoundOrder counts down the left column and up the right one,
	// the way leaded IC packages number their pins.
	RoundOrder PadOrder = "round"
	// RowsOrder places odd numbers left and even numbers right, the
	// way connectors and DIP sockets are numbered.
	RowsOrder PadOrder = "rows"
	// CustomOrder uses an explicit number list.
	CustomOrder PadOrder = "custom"
)

// DualPads describes the two pad columns of a dual-row package.
type DualPads struct {
	Pad        pattern.Pad // template; X and Y are filled per pad
	Distance   float64     // column center to column center
	Pad1Height float64     // height override for pad 1, 0 keeps the template
	Order      PadOrder
	Mirror     bool  // swap the left and right columns
	Numbers    []int // explicit numbering for CustomOrder
}

// QuadPads describes the four pad rows of a quad package. The column
// pad already carries swapped width and height.
type QuadPads struct {
	RowPad    pattern.Pad
	ColumnPad pattern.Pad
	Distance1 float64 // left to right row center distance
	Distance2 float64 // top to bottom column center distance
}

func preamble(p *pattern.Pattern, h *element.Housing) {
	x, y := h.BodyOffset()
	p.Center(-x, -y)
}

func postscriptum(p *pattern.Pattern) {
	p.Center(0, 0)
	Margins(p)
}

// Margins assigns each pad the solder mask margin that keeps at least
// the minimum mask sliver between neighbouring openings. Every pad
// pair is checked; the smallest margin wins.
func Margins(p *pattern.Pattern) {
	settings := p.Settings
	maskWidth := settings.Minimum.MaskWidth
	if maskWidth <= 0 {
		return
	}
	pads := p.Pads()
	if len(pads) == 1 {
		v := maskWidth
		pads[0].Mask = &v
		return
	}
	for i := 0; i < len(pads); i++ {
		for j := i + 1; j < len(pads); j++ {
			p1, p2 := pads[i], pads[j]
			margin := settings.Clearance.PadToMask
			if p1.PadType != pattern.MountingHolePad && p2.PadType != pattern.MountingHolePad {
				hspace := abs(p2.X-p1.X) - (p1.Width+p2.Width)/2
				vspace := abs(p2.Y-p1.Y) - (p1.Height+p2.Height)/2
				space := hspace
				if vspace > space {
					space = vspace
				}
				if space-2*margin < maskWidth {
					margin = (space - maskWidth) / 2
					if margin < 0 {
						margin = 0
					}
				}
			}
			if p1.Mask == nil || margin < *p1.Mask {
				v := margin
				p1.Mask = &v
			}
			if p2.Mask == nil || margin < *p2.Mask {
				v := margin
				p2.Mask = &v
			}
		}
	}
}

// Dual places the two pad columns of a dual-row package.
func Dual(p *pattern.Pattern, e *element.Element, dp DualPads) {
	h := &e.Housing
	count := h.LeadCount
	pitch := h.Pitch

	var numbers []int
	switch dp.Order {
	case RowsOrder:
		for n := 1; n <= count; n += 2 {
			numbers = append(numbers, n)
		}
		for n := 2; n <= count; n += 2 {
			numbers = append(numbers, n)
		}
	case CustomOrder:
		numbers = dp.Numbers
		if len(numbers) == 0 {
			for n := 1; n <= count; n++ {
				numbers = append(numbers, n)
			}
		}
	default: // RoundOrder
		for n := 1; n <= count/2; n++ {
			numbers = append(numbers, n)
		}
		for n := count; n > count/2; n-- {
			numbers = append(numbers, n)
		}
	}

	preamble(p, h)

	left := -dp.Distance / 2
	right := dp.Distance / 2
	if dp.Mirror {
		left, right = right, left
	}

	y := -pitch * (float64(count)/4 - 0.5)
	for i := 0; i < count/2; i++ {
		pad := dp.Pad
		pad.X = left
		pad.Y = y
		if numbers[i] == 1 && dp.Pad1Height > 0 {
			pad.Height = dp.Pad1Height
		}
		if e.HasPin(strconv.Itoa(numbers[i])) {
			p.PadNum(numbers[i], pad)
		}
		y += pitch
	}
	y = -pitch * (float64(count)/4 - 0.5)
	for i := count / 2; i < count; i++ {
		pad := dp.Pad
		pad.X = right
		pad.Y = y
		if numbers[i] == 1 && dp.Pad1Height > 0 {
			pad.Height = dp.Pad1Height
		}
		if e.HasPin(strconv.Itoa(numbers[i])) {
			p.PadNum(numbers[i], pad)
		}
		y += pitch
	}

	postscriptum(p)
}

// GridArray places the ball or land grid row by row, naming pads by
// row letter and column number.
func GridArray(p *pattern.Pattern, e *element.Element, pad pattern.Pad) {
	h := &e.Housing
	preamble(p, h)
	y := -h.VerticalPitch * (float64(h.RowCount)/2 - 0.5)
	for row := 1; row <= h.RowCount; row++ {
		x := -h.HorizontalPitch * (float64(h.ColumnCount)/2 - 0.5)
		for col := 1; col <= h.ColumnCount; col++ {
			name := element.GridLetter(row) + strconv.Itoa(col)
			if e.HasPin(name) {
				cell := pad
				cell.X = x
				cell.Y = y
				p.Pad(name, cell)
			}
			x += h.HorizontalPitch
		}
		y += h.VerticalPitch
	}
	postscriptum(p)
}

// Quad places the four pad rows of a quad package counterclockwise
// from the top of the left side.
func Quad(p *pattern.Pattern, e *element.Element, qp QuadPads) {
	h := &e.Housing
	pitch := h.Pitch
	preamble(p, h)

	num := 1
	place := func(pad pattern.Pad) {
		if e.HasPin(strconv.Itoa(num)) {
			p.PadNum(num, pad)
		}
		num++
	}

	// left side, top to bottom
	y := -pitch * (float64(h.RowCount)/2 - 0.5)
	for i := 0; i < h.RowCount; i++ {
		pad := qp.RowPad
		pad.X = -qp.Distance1 / 2
		pad.Y = y
		place(pad)
		y += pitch
	}

	// bottom side, left to right
	x := -pitch * (float64(h.ColumnCount)/2 - 0.5)
	for i := 0; i < h.ColumnCount; i++ {
		pad := qp.ColumnPad
		pad.X = x
		pad.Y = qp.Distance2 / 2
		place(pad)
		x += pitch
	}

	// right side, bottom to top
	y -= pitch
	for i := 0; i < h.RowCount; i++ {
		pad := qp.RowPad
		pad.X = qp.Distance1 / 2
		pad.Y = y
		place(pad)
		y -= pitch
	}

	// top side, right to left
	x -= pitch
	for i := 0; i < h.ColumnCount; i++ {
		pad := qp.ColumnPad
		pad.X = x
		pad.Y = -qp.Distance2 / 2
		place(pad)
		x -= pitch
	}

	postscriptum(p)
}

// Tab places the thermal tab pad and its stitching vias, numbered after
// the last lead. Vias share the tab number so they join its net.
func Tab(p *pattern.Pattern, e *element.Element) {
	h := &e.Housing
	base := h.LeadCount
	if base == 0 {
		base = 2 * (h.RowCount + h.ColumnCount)
	}
	if base == 0 {
		base = e.PinCount()
	}
	number := base + 1

	if h.HasTab() {
		pos := h.TabPosition
		if pos == "" {
			pos = "0, 0"
		}
		for i, pt := range pattern.ParsePosition(pos) {
			p.PadNum(number+i, pattern.Pad{
				Type:   pattern.SMDPad,
				Shape:  pattern.RectPad,
				X:      pt.X,
				Y:      pt.Y,
				Width:  h.TabWidth.Nom,
				Height: h.TabLength.Nom,
				Layers: []pattern.Layer{pattern.TopCopper, pattern.TopMask, pattern.TopPaste},
			})
		}
		Margins(p)
	}

	if h.ViaDiameter > 0 {
		for _, pt := range pattern.ParsePosition(h.ViaPosition) {
			p.AppendPad(strconv.Itoa(number), pattern.Pad{
				Type:   pattern.ThroughHolePad,
				Shape:  pattern.CirclePad,
				X:      pt.X,
				Y:      pt.Y,
				Hole:   h.ViaDiameter,
				Width:  h.ViaDiameter + 0.1,
				Height: h.ViaDiameter + 0.1,
				Layers: []pattern.Layer{pattern.TopCopper, pattern.IntCopper, pattern.BottomCopper},
			})
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
