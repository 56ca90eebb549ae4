package entities

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_EveryEditTypeBelongsToItsShootType(t *testing.T) {
	shootTypes := ShootTypes()
	assert.True(t, sort.StringsAreSorted(shootTypes))
	assert.Contains(t, shootTypes, "wedding")

	for _, shoot := range shootTypes {
		edits := EditTypesFor(shoot)
		assert.NotEmpty(t, edits, shoot)
		for _, edit := range edits {
			assert.True(t, IsValidEditType(shoot, edit), "%s/%s", shoot, edit)
		}
	}
}

func TestCatalog_Lookups(t *testing.T) {
	assert.False(t, IsKnownShootType("birthday"))
	assert.Nil(t, EditTypesFor("birthday"))
	assert.False(t, IsValidEditType("wedding", "music_video"))
	assert.False(t, IsValidEditType("", ""))

	edits := EditTypesFor("music")
	edits[0] = "mutated"
	assert.True(t, IsValidEditType("music", "music_video"))

	assert.True(t, IsKnownAddon("drone"))
	assert.False(t, IsKnownAddon("helicopter"))
	assert.Contains(t, Addons(), "lighting_kit")
}
