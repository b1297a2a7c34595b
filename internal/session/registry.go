package session

import (
	"context"
	"log"
	"sync"

	"birdies-cafe/internal/domain"
	orderrepo "birdies-cafe/internal/repository/order"
	profilerepo "birdies-cafe/internal/repository/profile"
)

// Registry hands out one Session per signed-in user and drops it on sign-out.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	profiles profilerepo.Repository
	orders   orderrepo.Repository
	logger   *log.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(profiles profilerepo.Repository, orders orderrepo.Repository, logger *log.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		profiles: profiles,
		orders:   orders,
		logger:   logger,
	}
}

// Get returns the user's session, creating it on first use. Session creation
// loads the stored profile; on any load failure the session starts from the
// documented defaults (onboarding incomplete, empty preferences, empty
// favorites, zero stars) so sign-in never blocks on the profile store.
func (r *Registry) Get(ctx context.Context, user domain.User) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[user.ID]; ok {
		return s
	}

	profile := domain.DefaultProfile(user.ID, user.Email)
	profile.Name = user.Name
	if loaded, err := r.profiles.Load(ctx, user.ID); err != nil {
		r.logger.Printf("profile load failed for user %s, using defaults: %v", user.ID, err)
	} else {
		profile = *loaded
	}

	s := newSession(user, profile, r.profiles, r.orders, r.logger)
	r.sessions[user.ID] = s
	return s
}

// Drop discards the user's session and all its local state.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}
