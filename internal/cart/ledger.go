// Package cart implements the in-memory cart ledger: an ordered sequence of
// customized line items with derived subtotal, tax and total. A ledger is
// owned by exactly one session; callers serialize access.
package cart

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"birdies-cafe/internal/domain"
)

// TaxRatePercent is the fixed tax applied to the subtotal.
const TaxRatePercent = 5

// Size price deltas in cents relative to the base price.
const sizeDeltaCents = 300

var (
	// ErrLineNotFound is returned when a line id is not in the ledger.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrInvalidQuantity is returned when adding a line with quantity < 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Ledger holds the lines of an in-progress order. Insertion order is kept
// for display; it does not affect pricing.
type Ledger struct {
	lines []domain.CartLine
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// UnitPriceCents applies the size delta to an item's base price. Small is
// cheaper by a fixed offset, Large costlier by the same offset. The catalog
// keeps base prices well above the delta, so this stays positive in practice.
func UnitPriceCents(item domain.MenuItem, size string) int64 {
	switch size {
	case domain.SizeSmall:
		return item.PriceCents - sizeDeltaCents
	case domain.SizeLarge:
		return item.PriceCents + sizeDeltaCents
	default:
		return item.PriceCents
	}
}

// AddLine appends a new line for the given item and customization. Items that
// are not customizable always price at Regular with no milk choice.
func (l *Ledger) AddLine(item domain.MenuItem, c domain.Customization, quantity int) (domain.CartLine, error) {
	if quantity < 1 {
		return domain.CartLine{}, ErrInvalidQuantity
	}
	size := c.Size
	milk := c.Milk
	if !item.Customizable {
		size = domain.SizeRegular
		milk = ""
	} else {
		if size == "" {
			size = domain.SizeRegular
		}
		if size != domain.SizeSmall && size != domain.SizeRegular && size != domain.SizeLarge {
			return domain.CartLine{}, fmt.Errorf("unknown size %q", c.Size)
		}
	}

	unit := UnitPriceCents(item, size)
	line := domain.CartLine{
		ID:                  uuid.NewString(),
		ItemID:              item.ID,
		Name:                item.Name,
		Size:                size,
		Milk:                milk,
		SpecialInstructions: c.SpecialInstructions,
		Quantity:            quantity,
		UnitPriceCents:      unit,
		TotalCents:          unit * int64(quantity),
	}
	l.lines = append(l.lines, line)
	return line, nil
}

// RemoveLine deletes a line by id.
func (l *Ledger) RemoveLine(lineID string) error {
	for i, line := range l.lines {
		if line.ID == lineID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// SetQuantity updates a line's quantity and recomputes its total. A quantity
// of zero or less removes the line.
func (l *Ledger) SetQuantity(lineID string, quantity int) error {
	if quantity <= 0 {
		return l.RemoveLine(lineID)
	}
	for i := range l.lines {
		if l.lines[i].ID == lineID {
			l.lines[i].Quantity = quantity
			l.lines[i].TotalCents = l.lines[i].UnitPriceCents * int64(quantity)
			return nil
		}
	}
	return ErrLineNotFound
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len reports the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// SubtotalCents sums the line totals.
func (l *Ledger) SubtotalCents() int64 {
	var sum int64
	for _, line := range l.lines {
		sum += line.TotalCents
	}
	return sum
}

// TaxCents is the fixed-rate tax on the subtotal.
func (l *Ledger) TaxCents() int64 {
	return l.SubtotalCents() * TaxRatePercent / 100
}

// TotalCents is subtotal plus tax.
func (l *Ledger) TotalCents() int64 {
	return l.SubtotalCents() + l.TaxCents()
}

// Summary snapshots the priced cart.
func (l *Ledger) Summary() domain.CartSummary {
	return domain.CartSummary{
		Lines:         l.Lines(),
		SubtotalCents: l.SubtotalCents(),
		TaxCents:      l.TaxCents(),
		TotalCents:    l.TotalCents(),
	}
}

// Clear empties the ledger. Called after an order is placed.
func (l *Ledger) Clear() {
	l.lines = nil
}
