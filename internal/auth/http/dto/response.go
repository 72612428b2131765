package dto

// LoginResponse is returned after a successful login.
//
// The access token travels in the auth cookie; the token field is only
// populated when the server runs with DEV_SHOW_TOKEN enabled, so that
// cookie-less API clients can grab the token during development.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
