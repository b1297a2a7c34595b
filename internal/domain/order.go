package domain

import "time"

// Order statuses. Anything past StatusConfirmed is display-only: no backend
// event drives those transitions in this product phase.
const (
	StatusPlaced    = "placed"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
)

// Payment methods accepted at checkout.
const (
	PaymentCard     = "card"
	PaymentApplePay = "applePay"
	PaymentCash     = "cash"
)

// PickupASAP is the pickup-time value for immediate orders; otherwise the
// value is a scheduled "HH:MM" string.
const PickupASAP = "ASAP"

// ContactInfo is the name/phone pair required at checkout.
type ContactInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order is a frozen snapshot of a cart at checkout time. Immutable after
// creation except for its display status.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	UserID        string      `json:"userId"`
	UserEmail     string      `json:"userEmail"`
	Items         []CartLine  `json:"items"`
	Location      Location    `json:"location"`
	PickupTime    string      `json:"pickupTime"`
	ContactInfo   ContactInfo `json:"contactInfo"`
	PaymentMethod string      `json:"paymentMethod"`
	TotalCents    int64       `json:"totalCents"`
	StarsEarned   int64       `json:"starsEarned"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
