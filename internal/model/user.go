package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int64
	Username string
	Password string
	IsAdmin  bool
	Wallet   string
	Balance  int64
}

type UserClaims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}
