package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ksalau/learnflow-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the adaptive work factor applied to every password hash.
const bcryptCost = 12

// DefaultSessionLifetime disables session expiry in practice. It is a
// deliberate configuration value (SESSION_LIFETIME), not an accident; early
// invalidation is handled by the per-user token version instead.
const DefaultSessionLifetime = 365 * 24 * time.Hour

// ErrInvalidToken is returned for every verification failure: malformed,
// expired, bad signature or unexpected signing method. Callers never learn
// which.
var ErrInvalidToken = errors.New("invalid token")

// HashPassword derives a salted bcrypt hash from a plaintext password.
// The salt is randomized per call, so equal inputs produce distinct hashes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// A mismatch is an ordinary false, never an error. An empty stored hash
// (federated accounts) never matches anything.
func CheckPassword(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Claims is the identity claim set embedded in every issued token.
type Claims struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies signed bearer tokens.
type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenIssuer(secret string, lifetime time.Duration) TokenIssuer {
	if lifetime <= 0 {
		lifetime = DefaultSessionLifetime
	}
	return TokenIssuer{secret: []byte(secret), lifetime: lifetime}
}

// Issue produces a signed HS256 token embedding the user's id, username,
// role and current token version.
func (i TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       user.ID.String(),
		Username:     user.Username,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify validates the token's signature and expiration and returns the
// decoded claims. Every failure collapses to ErrInvalidToken.
func (i TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
