package auth

import "context"

// AuthService issues the single-user access token.
type AuthService interface {
	// IssueToken verifies the PIN against the configured hash and returns a
	// bearer token. Returns ErrAuthDisabled when no PIN is configured.
	IssueToken(ctx context.Context, req TokenRequest) (TokenResponse, error)
}
