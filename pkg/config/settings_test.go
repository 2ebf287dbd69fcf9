package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, ipc.Nominal, s.DensityLevel)
	assert.Equal(t, 0.1, s.Tolerance.Fabrication)
	assert.Equal(t, 0.2, s.Clearance.PadToPad)
	assert.Equal(t, 1.5, s.Ratio.PadToHole)
	assert.Equal(t, 0.2, s.Minimum.RingWidth)
	assert.Equal(t, 0.12, s.LineWidth.Silkscreen)
	assert.True(t, s.Ball.Collapsible)
	assert.True(t, s.PreferManufacturer)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "otfp.toml")
	content := `
densityLevel = "M"
preferManufacturer = false

[clearance]
padToPad = 0.15

[minimum]
spaceForIron = 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ipc.Most, s.DensityLevel)
	assert.False(t, s.PreferManufacturer)
	assert.Equal(t, 0.15, s.Clearance.PadToPad)
	assert.Equal(t, 0.3, s.Minimum.SpaceForIron)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.2, s.Clearance.PadToSilk)
	assert.Equal(t, 0.1, s.Tolerance.Placement)
}

func TestLoadRejectsBadDensity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "otfp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`densityLevel = "Q"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
