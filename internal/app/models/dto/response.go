package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued access token
type TokenResponse struct {
	Token string `json:"token"`
}

// RoleResponse carries a user's role, looked up by email
type RoleResponse struct {
	Role string `json:"role"`
}

// IntentResponse carries the gateway client secret the client uses to
// complete a charge
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
