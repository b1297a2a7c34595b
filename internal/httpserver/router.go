package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"birdies-cafe/internal/domain"
	orderrepo "birdies-cafe/internal/repository/order"
	accountsvc "birdies-cafe/internal/service/account"
	"birdies-cafe/internal/session"
)

// accountService is the slice of the account service the handlers need.
type accountService interface {
	Signup(ctx context.Context, in accountsvc.SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	TokenTTLSeconds() int
}

// Deps carries everything the router needs.
type Deps struct {
	AccountSvc accountService
	Sessions   *session.Registry
	Orders     orderrepo.Repository
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.AccountSvc == nil {
		return nil, errors.New("account service is required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session registry is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/signup", signupHandler(deps.AccountSvc))
	router.POST("/login", loginHandler(deps.AccountSvc))

	router.GET("/locations", locationsHandler)
	router.GET("/menu", menuHandler)
	router.GET("/menu/featured", featuredHandler)
	router.GET("/events", eventsHandler)

	authed := router.Group("/", authMiddleware(deps.AccountSvc, deps.Sessions))
	authed.POST("/logout", logoutHandler(deps.AccountSvc, deps.Sessions))
	authed.GET("/me", meHandler)
	authed.POST("/me/onboarding", onboardingHandler)
	authed.PUT("/me/preferences", preferencesHandler)
	authed.POST("/me/favorites/:itemID/toggle", toggleFavoriteHandler)
	authed.PUT("/me/location", selectLocationHandler)
	authed.PUT("/me/preferred-location", preferredLocationHandler)

	authed.GET("/cart", cartHandler)
	authed.POST("/cart/lines", addCartLineHandler)
	authed.PATCH("/cart/lines/:lineID", setCartQuantityHandler)
	authed.DELETE("/cart/lines/:lineID", removeCartLineHandler)

	authed.POST("/checkout", checkoutHandler(logger))
	authed.GET("/orders", ordersHandler(deps.Orders))
	authed.GET("/orders/current", currentOrderHandler)

	return router, nil
}
