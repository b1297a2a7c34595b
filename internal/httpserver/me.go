package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"birdies-cafe/internal/catalog"
	"birdies-cafe/internal/domain"
	"birdies-cafe/internal/session"
)

type preferencesRequest struct {
	Milk      string   `json:"milk"`
	Diet      string   `json:"diet"`
	Allergies []string `json:"allergies"`
}

type locationRequest struct {
	LocationID string `json:"locationId" binding:"required"`
}

// meHandler returns the session snapshot plus the routed screen for an
// optional explicit request (?screen=menu etc.).
func meHandler(c *gin.Context) {
	requested := session.Screen(c.Query("screen"))
	if requested == "" {
		requested = session.ScreenHome
	}
	c.JSON(http.StatusOK, currentSession(c).Snapshot(requested))
}

func onboardingHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}
	s := currentSession(c)
	s.CompleteOnboarding(c.Request.Context(), domain.Preferences{
		Milk:      req.Milk,
		Diet:      req.Diet,
		Allergies: req.Allergies,
	})
	c.JSON(http.StatusOK, s.Snapshot(session.ScreenHome))
}

func preferencesHandler(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferences payload"})
		return
	}
	s := currentSession(c)
	s.UpdatePreferences(c.Request.Context(), domain.Preferences{
		Milk:      req.Milk,
		Diet:      req.Diet,
		Allergies: req.Allergies,
	})
	c.JSON(http.StatusOK, s.Snapshot(session.ScreenAccount))
}

func toggleFavoriteHandler(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item id must be a number"})
		return
	}
	favorites, err := currentSession(c).ToggleFavorite(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func selectLocationHandler(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationId is required"})
		return
	}
	loc, ok := catalog.LocationByID(req.LocationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	s := currentSession(c)
	s.SelectLocation(c.Request.Context(), loc)
	c.JSON(http.StatusOK, s.Snapshot(session.ScreenMenu))
}

func preferredLocationHandler(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationId is required"})
		return
	}
	loc, ok := catalog.LocationByID(req.LocationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		return
	}
	s := currentSession(c)
	s.SetPreferredLocation(c.Request.Context(), loc)
	c.JSON(http.StatusOK, s.Snapshot(session.ScreenAccount))
}
