package session

// Screen enumerates what the client should render.
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenOnboarding Screen = "onboarding"
	ScreenLocation   Screen = "location"
	ScreenHome       Screen = "home"
	ScreenMenu       Screen = "menu"
	ScreenTracking   Screen = "tracking"
	ScreenStars      Screen = "stars"
	ScreenEvents     Screen = "events"
	ScreenAccount    Screen = "account"
)

// Route maps auth/onboarding/location state plus an explicit request to a
// single screen. Guard precedence is fixed: the auth gate wins over the
// onboarding gate, which wins over the request. The location gate only
// applies when the menu is requested; every other screen is reachable
// without a selected location.
func Route(signedIn, onboarded, hasLocation bool, requested Screen) Screen {
	if !signedIn {
		return ScreenLogin
	}
	if !onboarded {
		return ScreenOnboarding
	}
	switch requested {
	case ScreenMenu:
		if !hasLocation {
			return ScreenLocation
		}
		return ScreenMenu
	case ScreenHome, ScreenLocation, ScreenTracking, ScreenStars, ScreenEvents, ScreenAccount:
		return requested
	default:
		return ScreenHome
	}
}
