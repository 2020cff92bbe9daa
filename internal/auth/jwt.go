package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nordrens-as/planning-api/internal/config"
)

var (
	// ErrInvalidToken is returned when a token fails signature or claim validation
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned for tokens past their expiry
	ErrTokenExpired = errors.New("token expired")
)

// JWTValidator validates HS256 service tokens issued with the shared secret.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator from the auth configuration.
func NewJWTValidator(cfg *config.AuthConfig) *JWTValidator {
	return &JWTValidator{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
	}
}

// ServiceClaims are the claims carried by service tokens.
type ServiceClaims struct {
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ValidateToken parses and validates a bearer token and returns the caller identity.
func (v *JWTValidator) ValidateToken(tokenString string) (*CallerContext, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: no JWT secret configured", ErrInvalidToken)
	}

	claims := &ServiceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	name := claims.DisplayName
	if name == "" {
		name = claims.Subject
	}

	return &CallerContext{
		Subject:     claims.Subject,
		DisplayName: name,
	}, nil
}

// IssueToken signs a service token for the given subject. Used by tests and
// by operators issuing credentials to internal callers.
func (v *JWTValidator) IssueToken(subject, displayName string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ServiceClaims{
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
