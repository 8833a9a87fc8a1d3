package models

// Flag keys persisted by the flag repository
const (
	FlagHasSeenOnboarding = "hasSeenOnboarding"
	FlagAuthToken         = "authToken"
)

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a response carrying the issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthStatus represents the onboarding and authentication state of the app
type AuthStatus struct {
	HasSeenOnboarding bool `json:"hasSeenOnboarding"`
	Authenticated     bool `json:"authenticated"`
}

// OnboardingRequest represents a request to update the onboarding flag
type OnboardingRequest struct {
	HasSeenOnboarding bool `json:"hasSeenOnboarding"`
}
