package domain

// Menu categories.
const (
	CategoryCoffee   = "coffee"
	CategoryCold     = "cold"
	CategoryFood     = "food"
	CategoryPastries = "pastries"
)

// Drink sizes for customizable items.
const (
	SizeSmall   = "Small"
	SizeRegular = "Regular"
	SizeLarge   = "Large"
)

// MenuItem is a static catalog entry. Prices are AED cents.
type MenuItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	PriceCents   int64  `json:"priceCents"`
	Description  string `json:"description"`
	Glyph        string `json:"glyph"`
	Tag          string `json:"tag,omitempty"`
	Customizable bool   `json:"customizable"`
}

// Location is a static pickup location.
type Location struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// Event is a static announcement shown on the events screen.
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Glyph       string `json:"glyph"`
	Date        string `json:"date"`
}
