package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/auth"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	pinHash    string
	jwtService jwt.Service
}

func NewAuthService(pinHash string, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		pinHash:    pinHash,
		jwtService: jwtService,
	}
}

// IssueToken implements auth.AuthService.
func (s *AuthServiceImpl) IssueToken(_ context.Context, req auth.TokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if s.pinHash == "" {
		return auth.TokenResponse{}, auth.ErrAuthDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(req.PIN)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidPIN
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken()
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
