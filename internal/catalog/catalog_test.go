package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

const sampleCatalog = `{
  "skeleton": {
    "display_name": "Skeleton Head",
    "item_tag": "headsteal:skeleton",
    "texture": "tex/skeleton",
    "ability": {
      "type": "speed_burst",
      "activation": "right_click",
      "params": {"duration_seconds": 12}
    }
  },
  "wither": {
    "display_name": "Wither Head",
    "item_tag": "headsteal:wither",
    "boss": true,
    "boss_abilities": [
      {"type": "wither_storm", "name": "Wither Storm", "trigger": "right_click"},
      {"type": "sonic_boom", "name": "Sonic Boom", "trigger": "shift_left_click"}
    ]
  }
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	skeleton, ok := c.Head("skeleton")
	require.True(t, ok)
	assert.Equal(t, "Skeleton Head", skeleton.DisplayName)
	require.True(t, skeleton.HasAbility())
	assert.Equal(t, "speed_burst", skeleton.Ability.Type)
	assert.Equal(t, shared.TriggerRightClick, skeleton.Ability.Activation)
	assert.Equal(t, 12, skeleton.Ability.Params.Int("duration_seconds", 0))

	wither, ok := c.Head("wither")
	require.True(t, ok)
	require.True(t, wither.HasBossAbilities())
	storm, ok := wither.BossAbilityFor(shared.TriggerRightClick)
	require.True(t, ok)
	assert.Equal(t, "wither_storm", storm.Type)
	_, ok = wither.BossAbilityFor(shared.TriggerShiftRightClick)
	assert.False(t, ok)
}

func TestParse_ItemTagLookup(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	key, ok := c.HeadKeyForItem("headsteal:wither")
	require.True(t, ok)
	assert.Equal(t, "wither", key)

	_, ok = c.HeadKeyForItem("minecraft:dirt")
	assert.False(t, ok)
}

func TestParse_TextureResolution(t *testing.T) {
	c, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	texture, err := c.Resolve("skeleton")
	require.NoError(t, err)
	assert.Equal(t, "tex/skeleton", texture)

	_, err = c.Resolve("wither")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestParse_UnreadableDocument(t *testing.T) {
	_, err := Parse([]byte(`[`))
	assert.Error(t, err)
}

// A single bad entry must not take the rest of the catalog down with it
func TestParse_MalformedHeadsSkipped(t *testing.T) {
	cases := map[string]string{
		"bad trigger":   `{"bad": {"ability": {"type": "x", "activation": "double_click"}}}`,
		"missing type":  `{"bad": {"ability": {"activation": "right_click"}}}`,
		"passive boss":  `{"bad": {"boss": true, "boss_abilities": [{"type": "x", "trigger": "passive"}]}}`,
		"unmarked boss": `{"bad": {"boss_abilities": [{"type": "x", "trigger": "right_click"}]}}`,
	}
	for name, entry := range cases {
		raw := `{"skeleton": {"ability": {"type": "speed_burst", "activation": "right_click"}},` + entry[1:]
		c, err := Parse([]byte(raw))
		require.NoError(t, err, name)
		assert.Equal(t, 1, c.Len(), name)
		_, ok := c.Head("bad")
		assert.False(t, ok, name)
		_, ok = c.Head("skeleton")
		assert.True(t, ok, name)
	}
}

func TestParse_DuplicateItemTagKeepsFirstBinding(t *testing.T) {
	c, err := Parse([]byte(`{"a": {"item_tag": "t"}, "b": {"item_tag": "t"}}`))
	require.NoError(t, err)

	// Both heads load; exactly one of them owns the contested tag
	assert.Equal(t, 2, c.Len())
	key, ok := c.HeadKeyForItem("t")
	require.True(t, ok)
	assert.Contains(t, []string{"a", "b"}, key)
}
