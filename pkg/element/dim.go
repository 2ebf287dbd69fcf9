// Package element models a physical component description: its housing
// dimensions with tolerances, pin names and package flags, loaded from a
// YAML file.
package element

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"gopkg.in/yaml.v3"
)

// ErrBadDimension reports a dimension that could not be parsed or
// reconciled.
var ErrBadDimension = errors.New("bad dimension")

// Dim is a toleranced dimension in millimeters. After normalization
// Min <= Nom <= Max always holds.
type Dim struct {
	Min float64
	Nom float64
	Max float64
}

// Exact returns a dimension with zero tolerance.
func Exact(v float64) Dim {
	return Dim{Min: v, Nom: v, Max: v}
}

// Span returns a dimension from its extremes with the nominal centered.
func Span(min, max float64) Dim {
	return Dim{Min: min, Nom: (min + max) / 2, Max: max}
}

// Tol returns the total tolerance band.
func (d Dim) Tol() float64 {
	return d.Max - d.Min
}

// dimExpr is the grammar for dimension scalars written as strings:
//
//	"1.2"            exact
//	"1.1..1.3"       min..max
//	"1.1..1.2..1.3"  min..nom..max
//	"1.2 +-0.1"      nom with symmetric tolerance
type dimExpr struct {
	First float64   `parser:"@Number"`
	Tol   *float64  `parser:"( PlusMinus @Number"`
	Rest  []float64 `parser:"| ( Range @Number )+ )?"`
}

var dimLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Range", Pattern: `\.\.`},
	{Name: "PlusMinus", Pattern: `±|\+/-|\+-`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var dimParser = participle.MustBuild[dimExpr](
	participle.Lexer(dimLexer),
	participle.Elide("Whitespace"),
)

// ParseDim parses the dimension string grammar.
func ParseDim(s string) (Dim, error) {
	expr, err := dimParser.ParseString("", s)
	if err != nil {
		return Dim{}, fmt.Errorf("%w: %q: %v", ErrBadDimension, s, err)
	}
	switch {
	case expr.Tol != nil:
		t := *expr.Tol
		if t < 0 {
			return Dim{}, fmt.Errorf("%w: %q: negative tolerance", ErrBadDimension, s)
		}
		return Dim{Min: expr.First - t/2, Nom: expr.First, Max: expr.First + t/2}, nil
	case len(expr.Rest) == 1:
		d := Span(expr.First, expr.Rest[0])
		if d.Min > d.Max {
			return Dim{}, fmt.Errorf("%w: %q: min exceeds max", ErrBadDimension, s)
		}
		return d, nil
	case len(expr.Rest) == 2:
		d := Dim{Min: expr.First, Nom: expr.Rest[0], Max: expr.Rest[1]}
		if d.Min > d.Nom || d.Nom > d.Max {
			return Dim{}, fmt.Errorf("%w: %q: not ordered", ErrBadDimension, s)
		}
		return d, nil
	case len(expr.Rest) > 2:
		return Dim{}, fmt.Errorf("%w: %q: too many range values", ErrBadDimension, s)
	default:
		return Exact(expr.First), nil
	}
}

// dimFields mirrors the mapping form of a dimension in YAML.
type dimFields struct {
	Min *float64 `yaml:"min"`
	Nom *float64 `yaml:"nom"`
	Max *float64 `yaml:"max"`
	Tol *float64 `yaml:"tol"`
}

// UnmarshalYAML accepts a bare number, the string grammar, or a mapping
// of min/nom/max/tol, and reconciles the missing fields.
func (d *Dim) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err == nil {
			*d = Exact(f)
			return nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("%w: %v", ErrBadDimension, err)
		}
		parsed, err := ParseDim(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var f dimFields
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDimension, err)
	}
	rec, err := Reconcile(f.Min, f.Nom, f.Max, f.Tol)
	if err != nil {
		return err
	}
	*d = rec
	return nil
}

// Reconcile fills the missing parts of a min/nom/max/tol quadruple.
// A tolerance splits symmetrically around the nominal. A lone bound
// collapses to an exact dimension.
func Reconcile(min, nom, max, tol *float64) (Dim, error) {
	var d Dim
	switch {
	case min != nil && max != nil:
		d.Min, d.Max = *min, *max
		if nom != nil {
			d.Nom = *nom
		} else {
			d.Nom = (d.Min + d.Max) / 2
		}
	case nom != nil && tol != nil:
		if *tol < 0 {
			return Dim{}, fmt.Errorf("%w: negative tolerance", ErrBadDimension)
		}
		d = Dim{Min: *nom - *tol/2, Nom: *nom, Max: *nom + *tol/2}
	case nom != nil:
		d = Exact(*nom)
		if min != nil {
			d.Min = *min
		}
		if max != nil {
			d.Max = *max
		}
	case min != nil:
		d = Exact(*min)
	case max != nil:
		d = Exact(*max)
	default:
		return Dim{}, fmt.Errorf("%w: empty dimension", ErrBadDimension)
	}
	if d.Min > d.Nom || d.Nom > d.Max {
		return Dim{}, fmt.Errorf("%w: not ordered (min %v, nom %v, max %v)", ErrBadDimension, d.Min, d.Nom, d.Max)
	}
	return d, nil
}
