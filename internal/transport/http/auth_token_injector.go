package http

import (
	"net/http"
)

// AuthTokenInjector is a custom http.RoundTripper that injects an OAuth Authorization
// header into HTTP requests. Yandex.Disk expects service credentials in the form
// "Authorization: OAuth <token>" on every API call.
type AuthTokenInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// token is the OAuth token to inject.
	token string
}

// authorizationHeader is the HTTP header name for request credentials.
const authorizationHeader = "Authorization"

// NewAuthTokenInjector creates and returns a new instance of AuthTokenInjector.
// An empty token disables injection, leaving requests unauthenticated.
func NewAuthTokenInjector(next http.RoundTripper, token string) http.RoundTripper {
	return &AuthTokenInjector{
		next:  next,
		token: token,
	}
}

// RoundTrip executes a single HTTP transaction and injects the Authorization header
// if it is missing. It implements the http.RoundTripper interface.
func (t *AuthTokenInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" && req.Header.Get(authorizationHeader) == "" {
		req.Header.Set(authorizationHeader, "OAuth "+t.token)
	}

	return t.next.RoundTrip(req)
}
