package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAMLSortsAndDefaults(t *testing.T) {
	data := []byte(`name: test
levels:
  - level: 3
    moves: 10
    target_score: 900
    special_chance: 0.2
  - level: 1
    grid_size: 6
    moves: 20
    target_score: 100
    gem_kinds: 9
`)
	pack, err := ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, pack.Levels, 2)

	assert.Equal(t, 1, pack.Levels[0].Level)
	assert.Equal(t, 6, pack.Levels[0].GridSize)
	assert.Equal(t, 6, pack.Levels[0].GemKinds, "kinds clamp to the six available")
	assert.Equal(t, 3, pack.Levels[1].Level)
	assert.Equal(t, 8, pack.Levels[1].GridSize)
	assert.InDelta(t, 0.2, pack.Levels[1].SpecialChance, 1e-9)
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := map[string]string{
		"bad yaml":       "levels: [",
		"zero level":     "levels:\n  - level: 0\n    moves: 1\n    target_score: 1\n",
		"duplicate":      "levels:\n  - {level: 1, moves: 1, target_score: 1}\n  - {level: 1, moves: 2, target_score: 2}\n",
		"no moves":       "levels:\n  - {level: 1, target_score: 1}\n",
		"negative score": "levels:\n  - {level: 1, moves: 3, target_score: -1}\n",
	}

	for name, data := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(data))
			assert.Error(t, err)
		})
	}
}
