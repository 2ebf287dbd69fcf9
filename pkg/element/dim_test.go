package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseDim(t *testing.T) {
	cases := []struct {
		in   string
		want Dim
	}{
		{"1.2", Dim{1.2, 1.2, 1.2}},
		{"1.1..1.3", Dim{1.1, 1.2, 1.3}},
		{"1.1 .. 1.3", Dim{1.1, 1.2, 1.3}},
		{"1.1..1.15..1.3", Dim{1.1, 1.15, 1.3}},
		{"1.2 +-0.2", Dim{1.1, 1.2, 1.3}},
		{"1.2 +/- 0.2", Dim{1.1, 1.2, 1.3}},
		{"0.635", Dim{0.635, 0.635, 0.635}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseDim(c.in)
			require.NoError(t, err)
			assert.InDelta(t, c.want.Min, got.Min, 1e-9)
			assert.InDelta(t, c.want.Nom, got.Nom, 1e-9)
			assert.InDelta(t, c.want.Max, got.Max, 1e-9)
		})
	}
}

func TestParseDimErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.3..1.1", "1..2..3..4", "1.0 +- -0.2"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDim(in)
			assert.ErrorIs(t, err, ErrBadDimension)
		})
	}
}

func TestReconcile(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	d, err := Reconcile(f(1.0), nil, f(2.0), nil)
	require.NoError(t, err)
	assert.Equal(t, Dim{1.0, 1.5, 2.0}, d)

	d, err = Reconcile(nil, f(1.5), nil, f(1.0))
	require.NoError(t, err)
	assert.Equal(t, Dim{1.0, 1.5, 2.0}, d)

	d, err = Reconcile(nil, f(1.5), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Exact(1.5), d)

	_, err = Reconcile(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrBadDimension)

	_, err = Reconcile(f(2.0), nil, f(1.0), nil)
	assert.ErrorIs(t, err, ErrBadDimension)
}

func TestDimUnmarshalYAML(t *testing.T) {
	var h Housing
	src := `
bodyLength: 2.0
bodyWidth: "1.15..1.25..1.35"
leadSpan: {min: 6.1, nom: 6.4, max: 6.7}
leadWidth: {nom: 0.635, tol: 0.41}
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &h))
	assert.Equal(t, Exact(2.0), *h.BodyLength)
	assert.Equal(t, Dim{1.15, 1.25, 1.35}, *h.BodyWidth)
	assert.Equal(t, Dim{6.1, 6.4, 6.7}, *h.LeadSpan)
	assert.InDelta(t, 0.43, h.LeadWidth.Min, 1e-9)
	assert.InDelta(t, 0.84, h.LeadWidth.Max, 1e-9)
}

func TestDimTol(t *testing.T) {
	assert.InDelta(t, 0.6, Dim{6.1, 6.4, 6.7}.Tol(), 1e-9)
	assert.Equal(t, 0.0, Exact(1.0).Tol())
}
