// Package catalog holds the static location, menu, featured and events data.
// Entries are fixed at build time; nothing here mutates at runtime.
package catalog

import (
	"strings"

	"birdies-cafe/internal/domain"
)

var locations = []domain.Location{
	{ID: "difc", Name: "DIFC", Address: "Gate Village 5, DIFC", Lat: 25.2138, Lng: 55.2794},
	{ID: "jbr", Name: "JBR", Address: "The Beach, JBR", Lat: 25.0772, Lng: 55.1358},
	{ID: "downtown", Name: "Downtown", Address: "Boulevard Plaza, Downtown", Lat: 25.1972, Lng: 55.2744},
}

var menuItems = []domain.MenuItem{
	{ID: 1, Name: "Espresso", Category: domain.CategoryCoffee, PriceCents: 1200, Description: "Rich, bold espresso", Glyph: "☕", Customizable: true},
	{ID: 2, Name: "Cappuccino", Category: domain.CategoryCoffee, PriceCents: 1800, Description: "Classic Italian coffee", Glyph: "☕", Customizable: true},
	{ID: 3, Name: "Flat White", Category: domain.CategoryCoffee, PriceCents: 2000, Description: "Smooth microfoam", Glyph: "☕", Customizable: true},
	{ID: 4, Name: "Latte", Category: domain.CategoryCoffee, PriceCents: 2000, Description: "Creamy and smooth", Glyph: "☕", Customizable: true},

	{ID: 5, Name: "Iced Latte", Category: domain.CategoryCold, PriceCents: 2200, Description: "Refreshing iced coffee", Glyph: "🥤", Customizable: true},
	{ID: 6, Name: "Cold Brew", Category: domain.CategoryCold, PriceCents: 2400, Description: "Smooth cold brew", Glyph: "🥤", Customizable: true},
	{ID: 7, Name: "Matcha Latte", Category: domain.CategoryCold, PriceCents: 2600, Description: "Japanese green tea", Glyph: "🍵", Customizable: true},

	{ID: 8, Name: "Avocado Toast", Category: domain.CategoryFood, PriceCents: 3500, Description: "Fresh avocado on sourdough", Glyph: "🥑"},
	{ID: 9, Name: "Shakshuka", Category: domain.CategoryFood, PriceCents: 4200, Description: "Middle Eastern eggs", Glyph: "🍳"},
	{ID: 10, Name: "Granola Bowl", Category: domain.CategoryFood, PriceCents: 3800, Description: "Yogurt and fresh fruit", Glyph: "🥣"},

	{ID: 11, Name: "Croissant", Category: domain.CategoryPastries, PriceCents: 1500, Description: "Buttery and flaky", Glyph: "🥐"},
	{ID: 12, Name: "Pain au Chocolat", Category: domain.CategoryPastries, PriceCents: 1800, Description: "Chocolate croissant", Glyph: "🥐"},
	{ID: 13, Name: "Cinnamon Roll", Category: domain.CategoryPastries, PriceCents: 2000, Description: "Sweet and sticky", Glyph: "🥨"},
}

var featuredItems = []domain.MenuItem{
	{ID: 101, Name: "Pistachio Latte", Category: domain.CategoryCoffee, PriceCents: 2800, Description: "Limited edition", Glyph: "🥤", Tag: "NEW", Customizable: true},
	{ID: 102, Name: "Cardamom Coffee", Category: domain.CategoryCoffee, PriceCents: 2500, Description: "Arabic inspired", Glyph: "☕", Tag: "SEASONAL", Customizable: true},
	{ID: 103, Name: "Rose Matcha", Category: domain.CategoryCold, PriceCents: 3000, Description: "Floral & earthy", Glyph: "🍵", Tag: "NEW", Customizable: true},
}

var events = []domain.Event{
	{ID: 1, Title: "Sunday Set", Description: "Live DJ every Sunday 2-6 PM", Glyph: "🎵", Date: "Every Sunday"},
	{ID: 2, Title: "Coffee Cupping", Description: "Learn about specialty coffee", Glyph: "☕", Date: "First Saturday of Month"},
}

// Category is a display grouping on the menu screen.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
}

var categories = []Category{
	{ID: "all", Name: "All", Glyph: "🍽️"},
	{ID: domain.CategoryCoffee, Name: "Coffee", Glyph: "☕"},
	{ID: domain.CategoryCold, Name: "Cold Drinks", Glyph: "🥤"},
	{ID: domain.CategoryFood, Name: "Food", Glyph: "🍳"},
	{ID: domain.CategoryPastries, Name: "Pastries", Glyph: "🥐"},
}

// Locations returns all pickup locations.
func Locations() []domain.Location {
	return locations
}

// LocationByID looks up a location.
func LocationByID(id string) (domain.Location, bool) {
	for _, loc := range locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return domain.Location{}, false
}

// Items returns the regular menu.
func Items() []domain.MenuItem {
	return menuItems
}

// Featured returns the "What's New" items. They are orderable like any
// other item.
func Featured() []domain.MenuItem {
	return featuredItems
}

// ItemByID looks up a menu or featured item.
func ItemByID(id int) (domain.MenuItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	for _, item := range featuredItems {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// Search filters the regular menu by category and a case-insensitive name
// substring. Category "all" or "" matches every category.
func Search(category, query string) []domain.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.MenuItem, 0, len(menuItems))
	for _, item := range menuItems {
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Categories returns the menu tab groupings.
func Categories() []Category {
	return categories
}

// Events returns the static events list. Registration is not in scope.
func Events() []domain.Event {
	return events
}

// Onboarding and customization option lists.
var (
	MilkOptions    = []string{"Oat", "Almond", "Soy", "Regular", "Coconut"}
	DietOptions    = []string{"None", "Vegan", "Vegetarian"}
	AllergyOptions = []string{"Dairy", "Nuts", "Gluten", "Soy", "Eggs"}
	SizeOptions    = []string{domain.SizeSmall, domain.SizeRegular, domain.SizeLarge}
)
