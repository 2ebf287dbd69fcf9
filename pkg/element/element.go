package element

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Housing carries the package dimensions and flags of a component. All
// dimension fields are optional; nil means the datasheet does not give
// the value and the normalizer or builder derives it.
type Housing struct {
	BodyLength   *Dim `yaml:"bodyLength"`
	BodyWidth    *Dim `yaml:"bodyWidth"`
	BodyDiameter *Dim `yaml:"bodyDiameter"`
	Height       *Dim `yaml:"height"`

	LeadLength   *Dim `yaml:"leadLength"`
	LeadLength1  *Dim `yaml:"leadLength1"`
	LeadWidth    *Dim `yaml:"leadWidth"`
	LeadWidth1   *Dim `yaml:"leadWidth1"`
	LeadWidth2   *Dim `yaml:"leadWidth2"`
	LeadHeight   *Dim `yaml:"leadHeight"`
	LeadSpan     *Dim `yaml:"leadSpan"`
	LeadDiameter *Dim `yaml:"leadDiameter"`

	RowSpan             *Dim `yaml:"rowSpan"`
	ColumnSpan          *Dim `yaml:"columnSpan"`
	PadSeparationLength *Dim `yaml:"padSeparationLength"`
	PadSeparationWidth  *Dim `yaml:"padSeparationWidth"`
	PullBack            *Dim `yaml:"pullBack"`
	LeadSpace           *Dim `yaml:"leadSpace"`

	TabLength   *Dim   `yaml:"tabLength"`
	TabWidth    *Dim   `yaml:"tabWidth"`
	TabLedge    *Dim   `yaml:"tabLedge"`
	TabPosition string `yaml:"tabPosition"`
	ViaDiameter float64 `yaml:"viaDiameter"`
	ViaPosition string  `yaml:"viaPosition"`

	Pitch           float64 `yaml:"pitch"`
	Pitch1          float64 `yaml:"pitch1"`
	Pitch2          float64 `yaml:"pitch2"`
	HorizontalPitch float64 `yaml:"horizontalPitch"`
	VerticalPitch   float64 `yaml:"verticalPitch"`

	// DFN transistor packages place one enlarged drain pad.
	LargePadLength *Dim `yaml:"largePadLength"`
	LargePadWidth  *Dim `yaml:"largePadWidth"`

	LeadCount   int `yaml:"leadCount"`
	RowCount    int `yaml:"rowCount"`
	ColumnCount int `yaml:"columnCount"`

	BodyPosition string `yaml:"bodyPosition"`

	// Family flags. The kind-specific builders set most of these; the
	// element file may also carry them directly.
	Polarized  bool `yaml:"polarized"`
	FlatLead   bool `yaml:"flatlead"`
	SOIC       bool `yaml:"soic"`
	SOJ        bool `yaml:"soj"`
	SOL        bool `yaml:"sol"`
	SON        bool `yaml:"son"`
	SOT23      bool `yaml:"sot23"`
	SOP        bool `yaml:"sop"`
	CFP        bool `yaml:"cfp"`
	CQFP       bool `yaml:"cqfp"`
	QFN        bool `yaml:"qfn"`
	PQFN       bool `yaml:"pqfn"`
	CAE        bool `yaml:"cae"`
	Concave    bool `yaml:"concave"`
	Crystal    bool `yaml:"crystal"`
	DFN        bool `yaml:"dfn"`
	Molded     bool `yaml:"molded"`
	Melf       bool `yaml:"melf"`
	Radial     bool `yaml:"radial"`
	SOD        bool `yaml:"sod"`
	SODFL      bool `yaml:"sodfl"`
	Chip       bool `yaml:"chip"`
	LGA        bool `yaml:"lga"`
	CGA        bool `yaml:"cga"`
	Reversed   bool `yaml:"reversed"`
	LargePad   bool `yaml:"largePad"`
	MaskCutout bool `yaml:"maskCutout"`
	Ceramic    bool `yaml:"ceramic"`
	Socket     bool `yaml:"socket"`
	NoSilk     bool `yaml:"nosilk"`

	// Oscillator terminal arrangement.
	CornerConcave bool `yaml:"cornerConcave"`
	SideConcave   bool `yaml:"sideConcave"`
	SideFlat      bool `yaml:"sideFlat"`

	// Chamfer overrides the CAE body chamfer size; zero means a quarter
	// of the smaller body dimension.
	Chamfer float64 `yaml:"chamfer"`

	// Manufacturer-recommended pad geometry. When the settings prefer
	// the manufacturer, these override the calculated values.
	PadWidth     *float64 `yaml:"padWidth"`
	PadWidth1    *float64 `yaml:"padWidth1"`
	PadWidth2    *float64 `yaml:"padWidth2"`
	PadHeight    *float64 `yaml:"padHeight"`
	PadHeight1   *float64 `yaml:"padHeight1"`
	PadHeight2   *float64 `yaml:"padHeight2"`
	PadSpan      *float64 `yaml:"padSpan"`
	PadSpan1     *float64 `yaml:"padSpan1"`
	PadSpan2     *float64 `yaml:"padSpan2"`
	PadSpace     *float64 `yaml:"padSpace"`
	PadSpace1    *float64 `yaml:"padSpace1"`
	PadSpace2    *float64 `yaml:"padSpace2"`
	PadDistance  *float64 `yaml:"padDistance"`
	PadDistance1 *float64 `yaml:"padDistance1"`
	PadDistance2 *float64 `yaml:"padDistance2"`
	HoleDiameter *float64 `yaml:"holeDiameter"`

	// Mounting hole geometry.
	PadDiameter *float64 `yaml:"padDiameter"`
	ViaCount    int      `yaml:"viaCount"`
	Keepout     *float64 `yaml:"keepout"`
}

// Element is one component description as read from a YAML file.
type Element struct {
	Name          string            `yaml:"name"`
	Description   string            `yaml:"description"`
	ComponentType string            `yaml:"componentType"`
	Housing       Housing           `yaml:"housing"`
	Pins          map[string]string `yaml:"pins"`
}

// HasPin reports whether the pad with the given name should be placed.
// An element without an explicit pin list places every pad.
func (e *Element) HasPin(name string) bool {
	if len(e.Pins) == 0 {
		return true
	}
	_, ok := e.Pins[name]
	return ok
}

// PinCount returns the number of listed pins, or zero when the element
// places every pad.
func (e *Element) PinCount() int {
	return len(e.Pins)
}

// Load reads an element description from a YAML file.
func Load(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read element file: %w", err)
	}
	var e Element
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to parse element file %s: %w", path, err)
	}
	return &e, nil
}

// GridLetter returns the row name of a grid array pad: "A" for row 1,
// doubling past "Z" ("AA", "AB", ...).
func GridLetter(row int) string {
	if row < 1 {
		return ""
	}
	if row <= 26 {
		return string(rune('A' + row - 1))
	}
	q := (row - 1) / 26
	r := (row - 1) % 26
	return string(rune('A'+q-1)) + string(rune('A'+r))
}

// BodyOffset returns the body position offset of the housing, (0, 0)
// when unset.
func (h *Housing) BodyOffset() (x, y float64) {
	if h.BodyPosition == "" {
		return 0, 0
	}
	fields := strings.Split(strings.ReplaceAll(h.BodyPosition, " ", ""), ",")
	if len(fields) > 0 {
		x, _ = strconv.ParseFloat(fields[0], 64)
	}
	if len(fields) > 1 {
		y, _ = strconv.ParseFloat(fields[1], 64)
	}
	return x, y
}
