package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind tells which kind of subject a signed token was issued for.
type TokenKind string

const (
	TokenKindAdmin             TokenKind = "admin"
	TokenKindUser              TokenKind = "user"
	TokenKindEmailConfirmation TokenKind = "email_confirmation"
)

// TokenClaims is the claim set of every token issued by the server. The
// subject is the id of the admin or user.
type TokenClaims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind"`
}

// Token is an issued credential.
type Token struct {
	// SignedString is the compact JWS form sent to clients.
	SignedString string      `json:"token"`
	Claims       TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// Credentials is the body of both login operations.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
