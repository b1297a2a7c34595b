// Package session owns the per-user order session: the cart ledger, the
// selected pickup location, the profile snapshot and the checkout flow.
// Profile writes are best-effort; local state stays authoritative for the
// rest of the session when a save fails.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"birdies-cafe/internal/cart"
	"birdies-cafe/internal/catalog"
	"birdies-cafe/internal/domain"
	profilerepo "birdies-cafe/internal/repository/profile"
)

var (
	// ErrEmptyCart rejects checkout before any I/O is attempted.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrContactRequired rejects checkout without a name and phone.
	ErrContactRequired = errors.New("name and phone are required")
	// ErrNoLocation rejects checkout without a selected pickup location.
	ErrNoLocation = errors.New("no pickup location selected")
	// ErrItemNotFound is returned for unknown menu item ids.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrUnknownPayment is returned for an unrecognized payment method.
	ErrUnknownPayment = errors.New("unknown payment method")
)

type profileStore interface {
	Save(ctx context.Context, userID string, u profilerepo.Update) error
}

type orderStore interface {
	Create(ctx context.Context, o domain.Order) error
}

// Session is the in-memory state of one signed-in user. All methods are
// safe for concurrent use; the product expects a single UI event stream,
// but nothing stops two requests racing on the same account.
type Session struct {
	mu sync.Mutex

	user     domain.User
	profile  domain.Profile
	ledger   *cart.Ledger
	location *domain.Location

	currentOrder *domain.Order
	history      []domain.Order

	profiles profileStore
	orders   orderStore
	logger   *log.Logger
}

// newSession builds a session around an already-loaded (or fallback) profile.
func newSession(user domain.User, profile domain.Profile, profiles profileStore, orders orderStore, logger *log.Logger) *Session {
	return &Session{
		user:     user,
		profile:  profile,
		ledger:   cart.New(),
		profiles: profiles,
		orders:   orders,
		logger:   logger,
	}
}

// Snapshot is the profile-derived display state plus routing inputs.
type Snapshot struct {
	User             domain.User        `json:"user"`
	Profile          domain.Profile     `json:"profile"`
	SelectedLocation *domain.Location   `json:"selectedLocation,omitempty"`
	CartSize         int                `json:"cartSize"`
	CurrentOrder     *domain.Order      `json:"currentOrder,omitempty"`
	Screen           Screen             `json:"screen"`
}

// Snapshot returns a consistent copy of the session's display state. The
// screen is routed for the given explicit request.
func (s *Session) Snapshot(requested Screen) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		User:     s.user,
		Profile:  s.profile,
		CartSize: s.ledger.Len(),
		Screen:   Route(true, s.profile.HasCompletedOnboarding, s.location != nil, requested),
	}
	if s.location != nil {
		loc := *s.location
		snap.SelectedLocation = &loc
	}
	if s.currentOrder != nil {
		o := *s.currentOrder
		snap.CurrentOrder = &o
	}
	return snap
}

// CompleteOnboarding records the captured preferences and permanently flips
// the onboarding flag.
func (s *Session) CompleteOnboarding(ctx context.Context, prefs domain.Preferences) {
	s.mu.Lock()
	if prefs.Allergies == nil {
		prefs.Allergies = []string{}
	}
	s.profile.Preferences = prefs
	s.profile.HasCompletedOnboarding = true
	s.mu.Unlock()

	done := true
	s.saveProfile(ctx, profilerepo.Update{
		HasCompletedOnboarding: &done,
		Preferences:            &prefs,
	})
}

// UpdatePreferences edits preferences after onboarding (account screen).
func (s *Session) UpdatePreferences(ctx context.Context, prefs domain.Preferences) {
	s.mu.Lock()
	if prefs.Allergies == nil {
		prefs.Allergies = []string{}
	}
	s.profile.Preferences = prefs
	s.mu.Unlock()

	s.saveProfile(ctx, profilerepo.Update{Preferences: &prefs})
}

// SelectLocation sets the session's pickup location. The first-ever selection
// is remembered as the preferred location; later selections leave the stored
// preference alone.
func (s *Session) SelectLocation(ctx context.Context, loc domain.Location) {
	s.mu.Lock()
	l := loc
	s.location = &l
	first := s.profile.PreferredLocationID == ""
	if first {
		s.profile.PreferredLocationID = loc.ID
	}
	s.mu.Unlock()

	if first {
		s.saveProfile(ctx, profilerepo.Update{PreferredLocationID: &loc.ID})
	}
}

// SetPreferredLocation is the explicit override of the remembered location.
func (s *Session) SetPreferredLocation(ctx context.Context, loc domain.Location) {
	s.mu.Lock()
	s.profile.PreferredLocationID = loc.ID
	s.mu.Unlock()

	s.saveProfile(ctx, profilerepo.Update{PreferredLocationID: &loc.ID})
}

// ToggleFavorite adds or removes an item from the favorites set. Toggling
// twice restores the original set.
func (s *Session) ToggleFavorite(ctx context.Context, itemID int) ([]int, error) {
	if _, ok := catalog.ItemByID(itemID); !ok {
		return nil, ErrItemNotFound
	}

	s.mu.Lock()
	favorites := make([]int, 0, len(s.profile.Favorites)+1)
	removed := false
	for _, id := range s.profile.Favorites {
		if id == itemID {
			removed = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !removed {
		favorites = append(favorites, itemID)
	}
	s.profile.Favorites = favorites
	s.mu.Unlock()

	s.saveProfile(ctx, profilerepo.Update{Favorites: &favorites})
	return favorites, nil
}

// AddToCart customizes an item and appends it to the ledger.
func (s *Session) AddToCart(itemID int, c domain.Customization, quantity int) (domain.CartLine, error) {
	item, ok := catalog.ItemByID(itemID)
	if !ok {
		return domain.CartLine{}, ErrItemNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.AddLine(item, c, quantity)
}

// RemoveFromCart deletes a line.
func (s *Session) RemoveFromCart(lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.RemoveLine(lineID)
}

// SetCartQuantity updates a line's quantity; zero or negative removes it.
func (s *Session) SetCartQuantity(lineID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.SetQuantity(lineID, quantity)
}

// CartSummary returns the priced cart.
func (s *Session) CartSummary() domain.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Summary()
}

// CheckoutInput is what the checkout screen submits.
type CheckoutInput struct {
	PickupTime    string             `json:"pickupTime"`
	ContactInfo   domain.ContactInfo `json:"contactInfo"`
	PaymentMethod string             `json:"paymentMethod"`
}

// StarsEarned is the loyalty accrual for an order total: 1 star per 10 AED.
func StarsEarned(totalCents int64) int64 {
	if totalCents < 0 {
		return 0
	}
	return totalCents / 1000
}

// PlaceOrder turns the cart into a confirmed order. Validation happens before
// any I/O; the order record is written before any local mutation, so a failed
// write leaves the session untouched. The trailing profile save (stars, and
// the preferred location on a first order) is best-effort.
func (s *Session) PlaceOrder(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	contact := domain.ContactInfo{
		Name:  strings.TrimSpace(in.ContactInfo.Name),
		Phone: strings.TrimSpace(in.ContactInfo.Phone),
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCard
	}
	if payment != domain.PaymentCard && payment != domain.PaymentApplePay && payment != domain.PaymentCash {
		return nil, ErrUnknownPayment
	}
	pickup := strings.TrimSpace(in.PickupTime)
	if pickup == "" {
		pickup = domain.PickupASAP
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if contact.Name == "" || contact.Phone == "" {
		return nil, ErrContactRequired
	}
	if s.location == nil {
		return nil, ErrNoLocation
	}

	total := s.ledger.TotalCents()
	id := uuid.NewString()
	order := domain.Order{
		ID:            id,
		OrderNumber:   orderNumber(id),
		UserID:        s.user.ID,
		UserEmail:     s.user.Email,
		Items:         s.ledger.Lines(),
		Location:      *s.location,
		PickupTime:    pickup,
		ContactInfo:   contact,
		PaymentMethod: payment,
		TotalCents:    total,
		StarsEarned:   StarsEarned(total),
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.currentOrder = &order
	s.history = append(s.history, order)
	s.profile.Stars += order.StarsEarned
	s.ledger.Clear()

	update := profilerepo.Update{Stars: &s.profile.Stars}
	if s.profile.PreferredLocationID == "" {
		s.profile.PreferredLocationID = order.Location.ID
		update.PreferredLocationID = &order.Location.ID
	}
	s.saveProfile(ctx, update)

	return &order, nil
}

// CurrentOrder returns the active order, if any.
func (s *Session) CurrentOrder() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentOrder == nil {
		return nil
	}
	o := *s.currentOrder
	return &o
}

// History returns the orders placed in this session, oldest first.
func (s *Session) History() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.history))
	copy(out, s.history)
	return out
}

// saveProfile writes a partial update and tolerates failure: the write is
// logged and local state remains the source of truth for the session.
// Save reads no session state, so calling it with the mutex held is fine.
func (s *Session) saveProfile(ctx context.Context, u profilerepo.Update) {
	if err := s.profiles.Save(ctx, s.user.ID, u); err != nil {
		s.logger.Printf("profile save failed for user %s: %v", s.user.ID, err)
	}
}

func orderNumber(id string) string {
	hex := strings.ReplaceAll(id, "-", "")
	if len(hex) > 6 {
		hex = hex[:6]
	}
	return "BC" + strings.ToUpper(hex)
}
