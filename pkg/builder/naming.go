package builder

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
)

// Pattern names encode dimensions in hundredths of a millimeter, body
// sizes sometimes in tenths, and end in the density level letter.

func hundredths(v float64) int {
	return int(math.Round(v * 100))
}

func tenths(v float64) int {
	return int(math.Round(v * 10))
}

// h3 formats hundredths zero-padded to three digits.
func h3(v float64) string {
	return fmt.Sprintf("%03d", hundredths(v))
}

func densityWord(d ipc.Density) string {
	switch d {
	case ipc.Least:
		return "Least"
	case ipc.Most:
		return "Most"
	default:
		return "Nominal"
	}
}

func nomOf(d *element.Dim) float64 {
	if d == nil {
		return 0
	}
	return d.Nom
}

func maxOf(d *element.Dim) float64 {
	if d == nil {
		return 0
	}
	return d.Max
}

// chipSizes maps metric chip body length x width to the imperial size
// code the industry names these parts by.
var chipSizes = []struct {
	l, w float64
	code string
}{
	{0.4, 0.2, "01005"},
	{0.6, 0.3, "0201"},
	{1.0, 0.5, "0402"},
	{1.6, 0.8, "0603"},
	{2.0, 1.25, "0805"},
	{3.2, 1.6, "1206"},
	{3.2, 2.5, "1210"},
	{4.5, 3.2, "1812"},
	{5.0, 2.5, "2010"},
	{6.4, 3.2, "2512"},
}

// imperialSize returns the closest standard imperial chip size code.
func imperialSize(bodyLength, bodyWidth float64) string {
	best := chipSizes[0].code
	bestDiff := math.Inf(1)
	for _, c := range chipSizes {
		diff := math.Abs(bodyLength-c.l) + math.Abs(bodyWidth-c.w)
		if diff < bestDiff {
			bestDiff = diff
			best = c.code
		}
	}
	return best
}

// chipTypes maps the chip component type prefix to its description name
// and tag.
var chipTypes = map[string][2]string{
	"CAPC":  {"Capacitor", "capacitor"},
	"RESC":  {"Resistor", "resistor"},
	"LEDC":  {"LED", "led"},
	"DIOC":  {"Diode", "diode"},
	"BEADC": {"Ferrite Bead", "ferrite_bead"},
	"FUSC":  {"Fuse", "fuse"},
	"THRMC": {"Thermistor", "thermistor"},
	"VARC":  {"Varistor", "varistor"},
}

// dfnTypes maps the DFN component type to its name prefix, description
// name and tag.
var dfnTypes = map[string][3]string{
	"capacitor":           {"CAPDFN", "Capacitor, DFN", "capacitor"},
	"capacitor_polarized": {"CAPPDFN", "Capacitor, Polarized, DFN", "capacitor polarized"},
	"crystal":             {"XTALDFN", "Crystal, DFN", "crystal"},
	"diode":               {"DIODFN", "Diode, DFN", "diode"},
	"diode_non_polarized": {"DIONDFN", "Diode, Non-polarized, DFN", "diode non-polarized"},
	"fuse":                {"FUSDFN", "Fuse, DFN", "fuse"},
	"inductor":            {"INDDFN", "Inductor, DFN", "inductor"},
	"led":                 {"LEDDFN", "LED, DFN", "led"},
	"resistor":            {"RESDFN", "Resistor, DFN", "resistor"},
	"transistor":          {"TRXDFN", "Transistor, DFN", "transistor"},
}

// moldedTypes maps the molded component type to its name prefix,
// description name and tag.
var moldedTypes = map[string][3]string{
	"capacitor":           {"CAPM", "Molded Capacitor", "capacitor"},
	"capacitor_polarized": {"CAPPM", "Molded Polarized Capacitor", "capacitor polarized"},
	"diode":               {"DIOM", "Molded Diode", "diode"},
	"diode_non_polarized": {"DIONM", "Molded Non-polarized Diode", "diode non-polarized"},
	"fuse":                {"FUSM", "Molded Fuse", "fuse"},
	"inductor":            {"INDM", "Molded Inductor", "inductor"},
	"inductor_precision":  {"INDPM", "Molded Precision Inductor", "inductor precision"},
	"resistor":            {"RESM", "Molded Resistor", "resistor"},
	"led":                 {"LEDM", "Molded LED", "led"},
}
