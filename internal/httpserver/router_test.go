package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/domain"
	profilerepo "birdies-cafe/internal/repository/profile"
	accountsvc "birdies-cafe/internal/service/account"
	"birdies-cafe/internal/session"
)

type stubAccountSvc struct {
	user      *domain.User
	token     string
	signupErr error
	loginErr  error
	authErr   error
}

func (s *stubAccountSvc) Signup(_ context.Context, _ accountsvc.SignupInput) (*domain.User, string, error) {
	return s.user, s.token, s.signupErr
}

func (s *stubAccountSvc) Login(_ context.Context, _ string, _ string) (*domain.User, string, error) {
	return s.user, s.token, s.loginErr
}

func (s *stubAccountSvc) Logout(_ context.Context, _ string) error {
	return nil
}

func (s *stubAccountSvc) Authenticate(_ context.Context, _ string) (*domain.User, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.user, nil
}

func (s *stubAccountSvc) TokenTTLSeconds() int {
	return 3600
}

type stubProfiles struct{}

func (stubProfiles) Create(_ context.Context, _ domain.Profile) error { return nil }

func (stubProfiles) Load(_ context.Context, _ string) (*domain.Profile, error) {
	return nil, domain.ErrNotFound
}

func (stubProfiles) Save(_ context.Context, _ string, _ profilerepo.Update) error { return nil }

type stubOrders struct {
	orders []domain.Order
}

func (s *stubOrders) Create(_ context.Context, o domain.Order) error {
	s.orders = append(s.orders, o)
	return nil
}

func (s *stubOrders) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, nil
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testDeps(svc accountService) (Deps, *stubOrders) {
	orders := &stubOrders{}
	return Deps{
		AccountSvc: svc,
		Sessions:   session.NewRegistry(stubProfiles{}, orders, logDiscard()),
		Orders:     orders,
	}, orders
}

func testRouter(t *testing.T, svc accountService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	deps, _ := testDeps(svc)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{})
	rec := doJSON(router, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMenuIsPublic(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{})

	rec := doJSON(router, http.MethodGet, "/menu", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Flat White"`) {
		t.Fatalf("menu missing items: %s", rec.Body.String())
	}

	rec = doJSON(router, http.MethodGet, "/menu?category=coffee&q=latte", "", "")
	if rec.Code != http.StatusOK || strings.Contains(rec.Body.String(), `"Croissant"`) {
		t.Fatalf("filtered menu leaked other categories: %d %s", rec.Code, rec.Body.String())
	}
}

func TestSignupHandler_Created(t *testing.T) {
	svc := &stubAccountSvc{
		user:  &domain.User{ID: "u1", Email: "user@example.com"},
		token: "tok",
	}
	router := testRouter(t, svc)

	body := `{"email":"user@example.com","password":"secret1","name":"Aisha"}`
	rec := doJSON(router, http.MethodPost, "/signup", body, "")

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"accessToken":"tok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSignupHandler_EmailInUse(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{signupErr: accountsvc.ErrEmailInUse})

	body := `{"email":"user@example.com","password":"secret1"}`
	rec := doJSON(router, http.MethodPost, "/signup", body, "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{loginErr: accountsvc.ErrWrongPassword})

	body := `{"email":"user@example.com","password":"bad"}`
	rec := doJSON(router, http.MethodPost, "/login", body, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_UnauthorizedWithoutToken(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{})
	rec := doJSON(router, http.MethodGet, "/me", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_InvalidToken(t *testing.T) {
	router := testRouter(t, &stubAccountSvc{authErr: accountsvc.ErrInvalidToken})
	rec := doJSON(router, http.MethodGet, "/me", "", "stale")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMeHandler_RoutesFreshUserToOnboarding(t *testing.T) {
	svc := &stubAccountSvc{user: &domain.User{ID: "u1", Email: "user@example.com"}}
	router := testRouter(t, svc)

	rec := doJSON(router, http.MethodGet, "/me?screen=menu", "", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"screen":"onboarding"`) {
		t.Fatalf("fresh user not routed to onboarding: %s", rec.Body.String())
	}
}

func TestOrderFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubAccountSvc{user: &domain.User{ID: "u1", Email: "user@example.com"}}
	deps, orders := testDeps(svc)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	rec := doJSON(router, http.MethodPost, "/me/onboarding", `{"milk":"Oat"}`, "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("onboarding: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodPut, "/me/location", `{"locationId":"difc"}`, "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("select location: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodPost, "/cart/lines", `{"itemId":3,"size":"Large","quantity":2}`, "tok")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add line: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	// Checkout without contact details is rejected before any write.
	rec = doJSON(router, http.MethodPost, "/checkout", `{"paymentMethod":"card"}`, "tok")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("contactless checkout: expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(orders.orders) != 0 {
		t.Fatalf("rejected checkout reached the order store")
	}

	body := `{"paymentMethod":"card","contactInfo":{"name":"Aisha","phone":"+971501234567"}}`
	rec = doJSON(router, http.MethodPost, "/checkout", body, "tok")
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(orders.orders) != 1 {
		t.Fatalf("order store writes = %d, want 1", len(orders.orders))
	}

	rec = doJSON(router, http.MethodGet, "/orders/current", "", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("current order: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(router, http.MethodGet, "/cart", "", "tok")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"totalCents":0`) {
		t.Fatalf("cart not cleared after checkout: %d %s", rec.Code, rec.Body.String())
	}
}

func TestAddCartLine_UnknownItem(t *testing.T) {
	svc := &stubAccountSvc{user: &domain.User{ID: "u1", Email: "user@example.com"}}
	router := testRouter(t, svc)

	rec := doJSON(router, http.MethodPost, "/cart/lines", `{"itemId":999}`, "tok")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestToggleFavorite_UnknownItem(t *testing.T) {
	svc := &stubAccountSvc{user: &domain.User{ID: "u1", Email: "user@example.com"}}
	router := testRouter(t, svc)

	rec := doJSON(router, http.MethodPost, "/me/favorites/999/toggle", "", "tok")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}
