package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/launchpad/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken checks signature over the account nonce and issues a token for address
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
