package element

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soic4.yaml")
	src := `
name: ""
componentType: ic
housing:
  leadCount: 4
  pitch: 2.5
  leadSpan: {min: 6.1, nom: 6.4, max: 6.7}
  leadLength: {min: 0.48, nom: 0.79, max: 1.1}
  leadWidth: {min: 0.43, nom: 0.635, max: 0.84}
  bodyWidth: {min: 3.6, nom: 3.9, max: 4.2}
  bodyLength: "4.8..5.0..5.2"
  height: {max: 2.9}
pins:
  "1": VCC
  "2": IN
  "3": OUT
  "4": GND
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	e, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Housing.LeadCount)
	assert.Equal(t, 2.5, e.Housing.Pitch)
	assert.Equal(t, Dim{6.1, 6.4, 6.7}, *e.Housing.LeadSpan)
	assert.Equal(t, Dim{4.8, 5.0, 5.2}, *e.Housing.BodyLength)
	assert.Equal(t, 2.9, e.Housing.Height.Max)
	assert.True(t, e.HasPin("3"))
	assert.False(t, e.HasPin("5"))
	assert.Equal(t, 4, e.PinCount())
}

func TestHasPinWithoutList(t *testing.T) {
	e := &Element{}
	assert.True(t, e.HasPin("1"))
	assert.True(t, e.HasPin("A7"))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestBodyOffset(t *testing.T) {
	h := Housing{}
	x, y := h.BodyOffset()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	h.BodyPosition = "1.5, -0.5"
	x, y = h.BodyOffset()
	assert.Equal(t, 1.5, x)
	assert.Equal(t, -0.5, y)
}
