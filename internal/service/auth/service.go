package auth

import (
	"github.com/techted89/redtedcasino/internal/config"
	"github.com/techted89/redtedcasino/internal/repository"
	"github.com/techted89/redtedcasino/internal/service"
)

type serv struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

func NewAuthService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) service.AuthService {
	return &serv{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}
