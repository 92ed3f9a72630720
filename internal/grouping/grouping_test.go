// internal/grouping/grouping_test.go
package grouping

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoGroups = `populations:
  north: [S1, S2]
  south: [S3]
`

func writeGroups(t *testing.T, name, data string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(data), 0644))
	return name
}

func TestLoad_Valid(t *testing.T) {
	fn := writeGroups(t, "groups_ok.yaml", demoGroups)
	defer os.Remove(fn)

	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.True(t, cfg.HasPopulation("north"))
	assert.False(t, cfg.HasPopulation("east"))
	assert.Equal(t, "south", cfg.PopulationOf("S3"))
	assert.Equal(t, []string{"north", "south"}, cfg.PopulationNames())
}

func TestLoad_DuplicateSampleRejected(t *testing.T) {
	fn := writeGroups(t, "groups_dup.yaml", "populations:\n  a: [S1]\n  b: [S1]\n")
	defer os.Remove(fn)

	_, err := Load(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S1"`)
}

func TestCheckPopulation_NamesOffender(t *testing.T) {
	fn := writeGroups(t, "groups_chk.yaml", demoGroups)
	defer os.Remove(fn)

	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.NoError(t, cfg.CheckPopulation("north"))
	assert.NoError(t, cfg.CheckPopulation("")) // single-pop rows have no pop2

	err = cfg.CheckPopulation("east")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `"east"`), "error must name the identifier: %v", err)
}

func TestCheckSamples_NamesOffender(t *testing.T) {
	fn := writeGroups(t, "groups_smp.yaml", demoGroups)
	defer os.Remove(fn)

	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.NoError(t, cfg.CheckSamples([]string{"S1", "S2", "S3"}))

	// Declared but absent from the input.
	err = cfg.CheckSamples([]string{"S1", "S3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S2"`)

	// Present but assigned to no population.
	err = cfg.CheckSamples([]string{"S1", "S2", "S3", "S4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"S4"`)
}
