// Package builder turns component descriptions into land patterns. Each
// package kind has one build function that derives the pad geometry from
// the housing dimensions, places the copper and draws the silkscreen,
// assembly, courtyard and mask artwork around it.
package builder

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/element"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/pattern"
)

var (
	// ErrUnknownKind reports a package kind no builder is registered for.
	ErrUnknownKind = errors.New("unknown package kind")
	// ErrMissingDimension reports a housing dimension a builder cannot
	// work without.
	ErrMissingDimension = errors.New("missing housing dimension")
	// ErrUnsupported reports a housing variant no builder covers.
	ErrUnsupported = errors.New("unsupported housing variant")
)

// ctx carries the state one build runs on.
type ctx struct {
	p   *pattern.Pattern
	e   *element.Element
	h   *element.Housing
	s   config.Settings
	log *log.Logger
}

type buildFunc func(*ctx) error

var kinds = map[string]buildFunc{
	"bga":           buildBGA,
	"bridge":        buildBridge,
	"cae":           buildCAE,
	"cga":           buildCGA,
	"chip":          buildChip,
	"chip-array":    buildChipArray,
	"cqfp":          buildCQFP,
	"crystal":       buildCrystal,
	"dfn":           buildDFN,
	"dip":           buildDIP,
	"lga":           buildLGA,
	"melf":          buildMelf,
	"molded":        buildMolded,
	"mounting-hole": buildMountingHole,
	"oscillator":    buildOscillator,
	"pak":           buildPak,
	"pqfn":          buildPQFN,
	"pson":          buildPSON,
	"qfn":           buildQFN,
	"qfp":           buildQFP,
	"sod":           buildSOD,
	"sodfl":         buildSODFL,
	"soic":          buildSOIC,
	"soj":           buildSOJ,
	"son":           buildSON,
	"sop":           buildSOP,
	"sopfl":         buildSOPFL,
	"sot143":        buildSOT143,
	"sot223":        buildSOT223,
	"sot23":         buildSOTFL,
	"sot89-5":       buildSOT895,
	"sotfl":         buildSOTFL,
}

// Kinds returns the registered package kinds, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build generates the land pattern of the given kind from an element
// description. The element's housing is normalized in place; callers
// reusing an element across builds should pass a copy.
func Build(kind string, e *element.Element, settings config.Settings, logger *log.Logger) (*pattern.Pattern, error) {
	fn, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !settings.DensityLevel.Valid() {
		return nil, fmt.Errorf("invalid density level %q", settings.DensityLevel)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &ctx{
		p:   pattern.New("", settings),
		e:   e,
		h:   &e.Housing,
		s:   settings,
		log: logger,
	}
	if err := fn(b); err != nil {
		return nil, fmt.Errorf("build %s: %w", kind, err)
	}
	logger.Debug("pattern built",
		"kind", kind, "name", b.p.Name, "pads", len(b.p.Pads()))
	return b.p, nil
}

// need unwraps a required dimension.
func need(name string, d *element.Dim) (element.Dim, error) {
	if d == nil {
		return element.Dim{}, fmt.Errorf("%w: %s", ErrMissingDimension, name)
	}
	return *d, nil
}

// countPins returns the number of leads actually present: elements with
// an explicit pin list may omit leads, which still occupy a position but
// get no pad.
func countPins(e *element.Element, max int) int {
	if len(e.Pins) == 0 {
		return max
	}
	count := 0
	for n := 1; n <= max; n++ {
		if e.HasPin(fmt.Sprintf("%d", n)) {
			count++
		}
	}
	return count
}
