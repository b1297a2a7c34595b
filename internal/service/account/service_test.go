package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"birdies-cafe/internal/domain"
	profilerepo "birdies-cafe/internal/repository/profile"
	tokenrepo "birdies-cafe/internal/repository/token"
)

type stubUserRepo struct {
	createUser  *domain.User
	createErr   error
	byEmail     *domain.User
	byEmailErr  error
	byID        *domain.User
	byIDErr     error
	lastCreated domain.User
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreated = u
	return s.createUser, s.createErr
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

type stubProfileRepo struct {
	createErr   error
	lastCreated domain.Profile
}

func (s *stubProfileRepo) Create(_ context.Context, p domain.Profile) error {
	s.lastCreated = p
	return s.createErr
}

func (s *stubProfileRepo) Load(_ context.Context, _ string) (*domain.Profile, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProfileRepo) Save(_ context.Context, _ string, _ profilerepo.Update) error {
	return nil
}

type memTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (m *memTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memTokenRepo) Get(_ context.Context, token string) (tokenrepo.Token, error) {
	t, ok := m.tokens[token]
	if !ok {
		return tokenrepo.Token{}, domain.ErrNotFound
	}
	return t, nil
}

func (m *memTokenRepo) Delete(_ context.Context, token string) error {
	delete(m.tokens, token)
	return nil
}

func TestSignupValidation(t *testing.T) {
	svc := New(&stubUserRepo{}, &stubProfileRepo{}, newMemTokenRepo())

	if _, _, err := svc.Signup(context.Background(), SignupInput{Email: "not-an-email", Password: "secret1"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "short"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestSignupEmailInUse(t *testing.T) {
	users := &stubUserRepo{createErr: domain.ErrAlreadyExists}
	svc := New(users, &stubProfileRepo{}, newMemTokenRepo())
	if _, _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "secret1"}); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestSignupCreatesDefaultProfile(t *testing.T) {
	created := &domain.User{ID: "u1", Email: "a@b.com", Name: "Aisha"}
	users := &stubUserRepo{createUser: created}
	profiles := &stubProfileRepo{}
	svc := New(users, profiles, newMemTokenRepo())

	u, tok, err := svc.Signup(context.Background(), SignupInput{Email: "A@B.com", Password: "secret1", Name: "Aisha"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.ID != "u1" || tok == "" {
		t.Fatalf("unexpected signup result: %+v token=%q", u, tok)
	}
	if users.lastCreated.Email != "a@b.com" {
		t.Fatalf("email not normalized: %q", users.lastCreated.Email)
	}

	p := profiles.lastCreated
	if p.UserID != "u1" || p.HasCompletedOnboarding || p.Stars != 0 || len(p.Favorites) != 0 {
		t.Fatalf("profile not at documented defaults: %+v", p)
	}
}

func TestLoginErrors(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}

	svc := New(&stubUserRepo{byEmailErr: domain.ErrNotFound}, &stubProfileRepo{}, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "a@b.com", "secret1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	svc = New(&stubUserRepo{byEmail: user}, &stubProfileRepo{}, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "a@b.com", "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "nope", "secret1"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	user := &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}
	svc := New(&stubUserRepo{byEmail: user, byID: user}, &stubProfileRepo{}, newMemTokenRepo())

	_, tok, err := svc.Login(context.Background(), "a@b.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := svc.Authenticate(context.Background(), tok)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("authenticated user = %+v", got)
	}

	if err := svc.Logout(context.Background(), tok); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tokens := newMemTokenRepo()
	tokens.tokens["old"] = tokenrepo.Token{Token: "old", UserID: "u1", ExpiresAt: time.Now().Add(-time.Hour)}
	svc := New(&stubUserRepo{byID: &domain.User{ID: "u1"}}, &stubProfileRepo{}, tokens)

	if _, err := svc.Authenticate(context.Background(), "old"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, ok := tokens.tokens["old"]; ok {
		t.Fatalf("expired token not removed")
	}
}

func TestValidEmail(t *testing.T) {
	good := []string{"a@b.com", "user.name@sub.example.org"}
	bad := []string{"", "nope", "@b.com", "a@b", "a@b.", "a@@b.com"}
	for _, e := range good {
		if !validEmail(e) {
			t.Fatalf("validEmail(%q) = false", e)
		}
	}
	for _, e := range bad {
		if validEmail(e) {
			t.Fatalf("validEmail(%q) = true", e)
		}
	}
}
