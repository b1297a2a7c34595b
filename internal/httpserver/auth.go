package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/domain"
	accountsvc "birdies-cafe/internal/service/account"
	"birdies-cafe/internal/session"
)

const (
	ctxUserKey    = "authUser"
	ctxSessionKey = "authSession"
	ctxTokenKey   = "authToken"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	User        domain.User `json:"user"`
	AccessToken string      `json:"accessToken"`
	ExpiresIn   int         `json:"expiresIn"`
}

func signupHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		u, tok, err := svc.Signup(c.Request.Context(), accountsvc.SignupInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		if err != nil {
			status, msg := identityError(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, authResponse{User: *u, AccessToken: tok, ExpiresIn: svc.TokenTTLSeconds()})
	}
}

func loginHandler(svc accountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		u, tok, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			status, msg := identityError(err)
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, authResponse{User: *u, AccessToken: tok, ExpiresIn: svc.TokenTTLSeconds()})
	}
}

func logoutHandler(svc accountService, sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if err := svc.Logout(c.Request.Context(), c.GetString(ctxTokenKey)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
		sessions.Drop(u.ID)
		c.Status(http.StatusNoContent)
	}
}

// authMiddleware resolves the bearer token to a user and their session.
// Every request re-resolves the identity, which stands in for the original
// app's auth-state subscription.
func authMiddleware(svc accountService, sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tok) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tok = strings.TrimSpace(tok)

		u, err := svc.Authenticate(c.Request.Context(), tok)
		if err != nil {
			if errors.Is(err, accountsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
			return
		}

		c.Set(ctxUserKey, u)
		c.Set(ctxSessionKey, sessions.Get(c.Request.Context(), *u))
		c.Set(ctxTokenKey, tok)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	return c.MustGet(ctxUserKey).(*domain.User)
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(ctxSessionKey).(*session.Session)
}

// identityError maps the account service taxonomy to status codes and
// user-facing messages.
func identityError(err error) (int, string) {
	switch {
	case errors.Is(err, accountsvc.ErrEmailInUse):
		return http.StatusConflict, err.Error()
	case errors.Is(err, accountsvc.ErrInvalidEmail):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, accountsvc.ErrWeakPassword):
		return http.StatusBadRequest, "password must be at least 6 characters"
	case errors.Is(err, accountsvc.ErrUserNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, accountsvc.ErrWrongPassword):
		return http.StatusUnauthorized, err.Error()
	default:
		return http.StatusInternalServerError, "something went wrong, please try again"
	}
}
