// Package account implements sign-up, sign-in and token-based identity
// resolution for the cafe app.
package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"birdies-cafe/internal/domain"
	profilerepo "birdies-cafe/internal/repository/profile"
	tokenrepo "birdies-cafe/internal/repository/token"
	userrepo "birdies-cafe/internal/repository/user"
)

// Identity errors, mapped to friendly messages at the HTTP layer. Each one
// blocks only the in-progress auth action.
var (
	ErrEmailInUse    = errors.New("an account with this email already exists")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrWeakPassword  = errors.New("password is too weak")
	ErrWrongPassword = errors.New("incorrect password")
	ErrUserNotFound  = errors.New("no account found with this email")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles account signup/login flows.
type Service struct {
	users       userrepo.Repository
	profiles    profilerepo.Repository
	tokens      *tokenManager
	tokenTTL    time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(users userrepo.Repository, profiles profilerepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		users:       users,
		profiles:    profiles,
		tokens:      newTokenManager(tokens),
		tokenTTL:    48 * time.Hour,
		passwordMin: 6,
	}
}

// SignupInput captures the fields of the signup form.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup registers a new account and its empty profile document, then signs
// the user in. The profile starts with onboarding incomplete, no preferences,
// no favorites and zero stars.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if !validEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", ErrWeakPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u, err := s.users.Create(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         strings.TrimSpace(in.Name),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", err
	}

	p := domain.DefaultProfile(u.ID, u.Email)
	p.Name = u.Name
	if err := s.profiles.Create(ctx, p); err != nil {
		// The session layer falls back to defaults on load, so a missing
		// profile row does not block the new account.
		return nil, "", err
	}

	tok, err := s.tokens.Issue(ctx, u.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Login validates credentials and returns the user plus an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return nil, "", ErrInvalidEmail
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrWrongPassword
	}
	tok, err := s.tokens.Issue(ctx, u.ID, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Logout revokes the token. Revoking an unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// Authenticate resolves a valid, unexpired token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// TokenTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) TokenTTLSeconds() int {
	return int(s.tokenTTL.Seconds())
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	rest := email[at+1:]
	if strings.Contains(rest, "@") {
		return false
	}
	dot := strings.LastIndex(rest, ".")
	return dot > 0 && dot < len(rest)-1
}
