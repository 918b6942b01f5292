package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOfKeepsOrderAndFirstDefinition(t *testing.T) {
	t.Parallel()

	reg := RegistryOf([]Definition{
		Light(),
		Dark(),
		{Name: "ocean", DisplayName: "Ocean"},
		{Name: "ocean", DisplayName: "Second"},
	})

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"light", "dark", "ocean"}, reg.Names())

	def, ok := reg.Lookup("ocean")
	require.True(t, ok)
	assert.Equal(t, "Ocean", def.DisplayName)
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()

	reg := RegistryOf([]Definition{Light()})
	_, err := reg.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrThemeNotFound)
	assert.Contains(t, err.Error(), `"missing"`)

	def, err := reg.Get("light")
	require.NoError(t, err)
	assert.Equal(t, "Light", def.Label())
}

func TestRegistryNamesIsACopy(t *testing.T) {
	t.Parallel()

	reg := RegistryOf([]Definition{Light(), Dark()})
	names := reg.Names()
	names[0] = "mutated"

	assert.True(t, reg.Has("light"))
	assert.Equal(t, "light", reg.Names()[0])
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var reg Registry
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Has("light"))
	assert.Empty(t, reg.Names())
}

func TestRegistryMarshalJSON(t *testing.T) {
	t.Parallel()

	reg := RegistryOf([]Definition{Light(), {Name: "mono"}})
	data, err := json.Marshal(reg)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "light", decoded[0]["name"])
	assert.Equal(t, "Light", decoded[0]["themeName"])
	assert.Equal(t, "mono", decoded[1]["name"])
	assert.NotContains(t, decoded[1], "themeName")
}
