package auth

import (
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// TokenRequest exchanges the device PIN for an access token.
type TokenRequest struct {
	PIN string `json:"pin"`
}

func (r TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{Field: "pin", Message: "pin is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}
