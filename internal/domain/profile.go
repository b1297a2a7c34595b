package domain

import "time"

// Preferences captured during onboarding and editable from the account screen.
type Preferences struct {
	Milk      string   `json:"milk"`
	Diet      string   `json:"diet"`
	Allergies []string `json:"allergies"`
}

// Profile is the per-user document persisted to the profile store.
// Stars accrue at 1 per 10 AED spent and never go negative.
type Profile struct {
	UserID                 string      `json:"userId"`
	Email                  string      `json:"email"`
	Name                   string      `json:"name,omitempty"`
	HasCompletedOnboarding bool        `json:"hasCompletedOnboarding"`
	Preferences            Preferences `json:"preferences"`
	PreferredLocationID    string      `json:"preferredLocationId,omitempty"`
	Favorites              []int       `json:"favorites"`
	Stars                  int64       `json:"stars"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}

// DefaultProfile is the fallback used when the profile store cannot be read:
// sign-in must not block on a failed load.
func DefaultProfile(userID, email string) Profile {
	return Profile{
		UserID:      userID,
		Email:       email,
		Preferences: Preferences{Allergies: []string{}},
		Favorites:   []int{},
	}
}
