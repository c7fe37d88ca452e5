package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/techted89/redtedcasino/internal/apperr"
	"github.com/techted89/redtedcasino/internal/model"
	"github.com/techted89/redtedcasino/pkg/pass"
	"github.com/techted89/redtedcasino/pkg/token"
)

// Login verifies the credentials and issues an access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *serv) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrValidation)
		}
		return "", nil, err
	}

	if !pass.VerifyPassword(user.Password, password) {
		return "", nil, fmt.Errorf("%w: invalid credentials", apperr.ErrValidation)
	}

	accessToken, err := token.GenerateAccessToken(user, s.jwtCfg.AccessTokenSecretKey(), s.jwtCfg.AccessTokenDuration())
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, user, nil
}
