package domain

// Customization captures the choices made on the item detail screen.
type Customization struct {
	Size                string `json:"size"`
	Milk                string `json:"milk,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// CartLine is one customized, priced, quantity-bearing entry in a cart.
// UnitPriceCents already includes the size delta.
type CartLine struct {
	ID                  string `json:"id"`
	ItemID              int    `json:"itemId"`
	Name                string `json:"name"`
	Size                string `json:"size,omitempty"`
	Milk                string `json:"milk,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
	Quantity            int    `json:"quantity"`
	UnitPriceCents      int64  `json:"unitPriceCents"`
	TotalCents          int64  `json:"totalCents"`
}

// CartSummary is the priced view of a cart at a point in time.
type CartSummary struct {
	Lines         []CartLine `json:"lineItems"`
	SubtotalCents int64      `json:"subtotalCents"`
	TaxCents      int64      `json:"taxCents"`
	TotalCents    int64      `json:"totalCents"`
}
