package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// TokenTTL is the fixed lifetime of a session token. There is no refresh or
// revocation mechanism; a token stays valid until it expires.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the identity payload embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// TokenService issues and verifies HS256-signed session tokens with a
// process-wide secret. The secret is read-only after startup.
type TokenService struct {
	secret []byte
	// now is overridable for expiry tests
	now func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue signs a claim set for the given subject. Expiry is fixed at TokenTTL
// from the moment of issuance.
func (s *TokenService) Issue(userID int64, role, email string) (string, error) {
	if role != RolePatient && role != RoleDoctor {
		return "", fmt.Errorf("unknown role: %s", role)
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID,
		Role:   role,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims. It fails
// on a bad signature, a malformed token, or a passed expiry.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
