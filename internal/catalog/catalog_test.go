package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdies-cafe/internal/domain"
)

func TestLocationByID(t *testing.T) {
	loc, ok := LocationByID("difc")
	require.True(t, ok)
	assert.Equal(t, "DIFC", loc.Name)

	_, ok = LocationByID("abu-dhabi")
	assert.False(t, ok)
}

func TestItemByIDCoversFeatured(t *testing.T) {
	item, ok := ItemByID(3)
	require.True(t, ok)
	assert.Equal(t, "Flat White", item.Name)
	assert.True(t, item.Customizable)

	featured, ok := ItemByID(101)
	require.True(t, ok)
	assert.Equal(t, "Pistachio Latte", featured.Name)
	assert.Equal(t, "NEW", featured.Tag)

	_, ok = ItemByID(999)
	assert.False(t, ok)
}

func TestSearchFilters(t *testing.T) {
	all := Search("", "")
	assert.Len(t, all, len(Items()))

	coffee := Search(domain.CategoryCoffee, "")
	require.NotEmpty(t, coffee)
	for _, item := range coffee {
		assert.Equal(t, domain.CategoryCoffee, item.Category)
	}

	lattes := Search("all", "latte")
	require.Len(t, lattes, 3)
	assert.Equal(t, "Latte", lattes[0].Name)
	assert.Equal(t, "Iced Latte", lattes[1].Name)
	assert.Equal(t, "Matcha Latte", lattes[2].Name)

	assert.Empty(t, Search(domain.CategoryFood, "latte"))
}

func TestFoodAndPastriesAreNotCustomizable(t *testing.T) {
	for _, item := range Items() {
		switch item.Category {
		case domain.CategoryFood, domain.CategoryPastries:
			assert.False(t, item.Customizable, "item %s", item.Name)
		default:
			assert.True(t, item.Customizable, "item %s", item.Name)
		}
	}
}
