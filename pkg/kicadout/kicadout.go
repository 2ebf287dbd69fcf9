// Package kicadout serializes a land pattern into the KiCad footprint
// file format. Output lands atomically: the footprint is written to a
// temporary file in the target directory and renamed into place.
package kicadout

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

// layerNames maps drawing layers to KiCad board layer names.
var layerNames = map[pattern.Layer]string{
	pattern.TopCopper:        "F.Cu",
	pattern.TopMask:          "F.Mask",
	pattern.TopPaste:         "F.Paste",
	pattern.TopSilkscreen:    "F.SilkS",
	pattern.TopAssembly:      "F.Fab",
	pattern.TopCourtyard:     "F.CrtYd",
	pattern.IntCopper:        "*.Cu",
	pattern.BottomCopper:     "B.Cu",
	pattern.BottomMask:       "B.Mask",
	pattern.BottomPaste:      "B.Paste",
	pattern.BottomSilkscreen: "B.SilkS",
	pattern.BottomAssembly:   "B.Fab",
	pattern.BottomCourtyard:  "B.CrtYd",
}

// num formats a coordinate with float noise stripped.
func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // avoid -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// padLayers collapses a pad layer set into KiCad layer names: a pad
// reaching the inner copper becomes "*.Cu", masks on both sides become
// "*.Mask".
func padLayers(layers []pattern.Layer) []string {
	has := make(map[pattern.Layer]bool, len(layers))
	for _, l := range layers {
		has[l] = true
	}
	var out []string
	if has[pattern.IntCopper] {
		out = append(out, "*.Cu")
	} else {
		if has[pattern.TopCopper] {
			out = append(out, "F.Cu")
		}
		if has[pattern.BottomCopper] {
			out = append(out, "B.Cu")
		}
	}
	if has[pattern.TopMask] && has[pattern.BottomMask] {
		out = append(out, "*.Mask")
	} else {
		if has[pattern.TopMask] {
			out = append(out, "F.Mask")
		}
		if has[pattern.BottomMask] {
			out = append(out, "B.Mask")
		}
	}
	if has[pattern.TopPaste] {
		out = append(out, "F.Paste")
	}
	if has[pattern.BottomPaste] {
		out = append(out, "B.Paste")
	}
	return out
}

func drawLayer(layers []pattern.Layer) string {
	if len(layers) == 0 {
		return "F.SilkS"
	}
	if name, ok := layerNames[layers[0]]; ok {
		return name
	}
	return "F.SilkS"
}

// roundrectRatio keeps pad corners at a 0.1 mm radius, capped at a
// quarter of the smaller pad side.
func roundrectRatio(w, h float64) float64 {
	side := math.Min(w, h)
	if side <= 0 {
		return 0.25
	}
	return math.Min(0.25, 0.1/side)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// Format renders the pattern as KiCad footprint text.
func Format(p *pattern.Pattern) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(footprint %s\n", quote(p.Name))
	sb.WriteString("  (version 20221018)\n")
	sb.WriteString("  (generator \"otfp\")\n")
	sb.WriteString("  (layer \"F.Cu\")\n")
	if p.Description != "" {
		fmt.Fprintf(&sb, "  (descr %s)\n", quote(p.Description))
	}
	if p.Tags != "" {
		fmt.Fprintf(&sb, "  (tags %s)\n", quote(p.Tags))
	}
	// A pattern holding only unplated holes gets no fabrication attribute.
	bareHole := false
	for i := range p.Shapes {
		if p.Shapes[i].Kind == pattern.PadKind && p.Shapes[i].PadType == pattern.MountingHolePad {
			bareHole = true
		}
	}
	switch {
	case p.Type == pattern.ThroughHolePad:
		sb.WriteString("  (attr through_hole)\n")
	case !bareHole:
		sb.WriteString("  (attr smd)\n")
	}

	for i := range p.Shapes {
		writeShape(&sb, p, &p.Shapes[i])
	}
	sb.WriteString(")\n")
	return sb.String()
}

func writeShape(sb *strings.Builder, p *pattern.Pattern, s *pattern.Shape) {
	switch s.Kind {
	case pattern.AttributeKind:
		writeText(sb, p, s)
	case pattern.LineKind:
		fmt.Fprintf(sb,
			"  (fp_line (start %s %s) (end %s %s) (stroke (width %s) (type solid)) (layer %s))\n",
			num(s.X1), num(s.Y1), num(s.X2), num(s.Y2),
			num(s.LineWidth), quote(drawLayer(s.Layers)))
	case pattern.RectKind:
		fill := "none"
		if s.Fill {
			fill = "solid"
		}
		fmt.Fprintf(sb,
			"  (fp_rect (start %s %s) (end %s %s) (stroke (width %s) (type solid)) (fill %s) (layer %s))\n",
			num(s.X1), num(s.Y1), num(s.X2), num(s.Y2),
			num(s.LineWidth), fill, quote(drawLayer(s.Layers)))
	case pattern.CircleKind:
		fill := "none"
		if s.Fill {
			fill = "solid"
		}
		fmt.Fprintf(sb,
			"  (fp_circle (center %s %s) (end %s %s) (stroke (width %s) (type solid)) (fill %s) (layer %s))\n",
			num(s.X), num(s.Y), num(s.X+s.Radius), num(s.Y),
			num(s.LineWidth), fill, quote(drawLayer(s.Layers)))
	case pattern.PadKind:
		writePad(sb, s)
	}
}

func writeText(sb *strings.Builder, p *pattern.Pattern, s *pattern.Shape) {
	kind, text := "user", s.Text
	layer := drawLayer(s.Layers)
	switch s.Name {
	case "refDes":
		kind, text = "reference", "REF**"
	case "value":
		kind = "value"
		if text == "" {
			text = p.Name
		}
	}
	size := s.FontSize
	if size == 0 {
		size = 1.0
	}
	at := fmt.Sprintf("(at %s %s)", num(s.X), num(s.Y))
	if s.HasAngle {
		at = fmt.Sprintf("(at %s %s %s)", num(s.X), num(s.Y), num(s.Angle))
	}
	hide := ""
	if !s.Visible {
		hide = " hide"
	}
	fmt.Fprintf(sb,
		"  (fp_text %s %s %s (layer %s)%s\n    (effects (font (size %s %s) (thickness %s)))\n  )\n",
		kind, quote(text), at, quote(layer), hide,
		num(size), num(size), num(size*0.15))
}

func writePad(sb *strings.Builder, s *pattern.Shape) {
	var padType string
	switch s.PadType {
	case pattern.SMDPad:
		padType = "smd"
	case pattern.ThroughHolePad:
		padType = "thru_hole"
	case pattern.MountingHolePad:
		padType = "np_thru_hole"
	}

	var shape, extra string
	switch s.PadShape {
	case pattern.CirclePad:
		shape = "circle"
	default:
		shape = "roundrect"
		extra = fmt.Sprintf(" (roundrect_rratio %s)", num(roundrectRatio(s.Width, s.Height)))
	}

	fmt.Fprintf(sb, "  (pad %s %s %s (at %s %s) (size %s %s)",
		quote(s.PadName), padType, shape,
		num(s.X), num(s.Y), num(s.Width), num(s.Height))
	if s.Hole > 0 {
		if s.SlotWidth > 0 && s.SlotHeight > 0 {
			fmt.Fprintf(sb, " (drill oval %s %s)", num(s.SlotWidth), num(s.SlotHeight))
		} else {
			fmt.Fprintf(sb, " (drill %s)", num(s.Hole))
		}
	}
	layers := padLayers(s.Layers)
	quoted := make([]string, len(layers))
	for i, l := range layers {
		quoted[i] = quote(l)
	}
	fmt.Fprintf(sb, " (layers %s)", strings.Join(quoted, " "))
	if s.Mask != nil {
		fmt.Fprintf(sb, " (solder_mask_margin %s)", num(*s.Mask))
	}
	if s.Paste != nil {
		fmt.Fprintf(sb, " (solder_paste_margin %s)", num(*s.Paste))
	}
	if s.Clearance != nil {
		fmt.Fprintf(sb, " (clearance %s)", num(*s.Clearance))
	}
	fmt.Fprintf(sb, "%s)\n", extra)
}

// WriteFile writes the footprint into dir as <name>.kicad_mod and
// returns the file path. The write is atomic.
func WriteFile(p *pattern.Pattern, dir string) (string, error) {
	if p.Name == "" {
		return "", fmt.Errorf("pattern has no name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, p.Name+".kicad_mod")

	tmp, err := os.CreateTemp(dir, "."+p.Name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(Format(p)); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write footprint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close footprint file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move footprint into place: %w", err)
	}
	return path, nil
}
