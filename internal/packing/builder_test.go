package packing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaketime/woodsmoke/internal/types"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tent", "tent"},
		{"Knife / multi-tool", "knife-multi-tool"},
		{"Hiking socks (x2)", "hiking-socks-x2"},
		{"Camp stove + fuel canister", "camp-stove-fuel-canister"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), tt.in)
	}
}

func TestBuilderAddMergesReasons(t *testing.T) {
	b := NewBuilder()

	b.Add("Binoculars", types.CategoryExtras, "Stargazing")
	b.Add("Binoculars", types.CategoryExtras, "Wildlife viewing")

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Stargazing + Wildlife viewing", items[0].Reason)
	assert.Equal(t, "extras:binoculars", items[0].ID)
}

func TestBuilderAddSkipsSubstringReasons(t *testing.T) {
	b := NewBuilder()

	b.Add("Gaiters", types.CategoryClothing, "Snow expected on 2 days")
	b.Add("Gaiters", types.CategoryClothing, "Snow expected")

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Snow expected on 2 days", items[0].Reason)
}

func TestBuilderAddFillsEmptyReason(t *testing.T) {
	b := NewBuilder()

	b.Add("Tarp", types.CategoryShelterSleep, "")
	b.Add("Tarp", types.CategoryShelterSleep, "Rain likely")
	b.Add("Tarp", types.CategoryShelterSleep, "")

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Rain likely", items[0].Reason)
}

func TestBuilderSameNameDifferentCategory(t *testing.T) {
	b := NewBuilder()

	b.Add("Extra fuel", types.CategoryCookingFood, "")
	b.Add("Extra fuel", types.CategoryExtras, "")

	assert.Len(t, b.Items(), 2)
}

func TestBuilderRemove(t *testing.T) {
	b := NewBuilder()

	b.Add("Fire starter", types.CategoryCookingFood, "Fire pits available")
	b.Remove("Fire starter", types.CategoryCookingFood)
	b.Remove("Never added", types.CategoryExtras)

	assert.Empty(t, b.Items())
}

func TestBuilderItemsOrdering(t *testing.T) {
	b := NewBuilder()

	b.Add("Zip ties", types.CategoryExtras, "Repairs")
	b.Add("Toilet paper", types.CategoryExtras, "")
	b.Add("Sun hat", types.CategoryClothing, "Highs up to 30°C")
	b.Add("Tent", types.CategoryShelterSleep, "")
	b.Add("First aid kit", types.CategorySafetyNavigation, "")

	items := b.Items()
	require.Len(t, items, 5)

	// Fixed category order first, then reason-less before reasoned.
	assert.Equal(t, "Tent", items[0].Name)
	assert.Equal(t, "Sun hat", items[1].Name)
	assert.Equal(t, "First aid kit", items[2].Name)
	assert.Equal(t, "Toilet paper", items[3].Name)
	assert.Equal(t, "Zip ties", items[4].Name)
}
