package scope

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// TokenExpirationDuration is the default expiration time for issued tokens.
	TokenExpirationDuration = 24 * time.Hour
)

// Payload represents the JWT token claims.
type Payload struct {
	jwt.StandardClaims
	UserID   string `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager defines the interface for JWT token management.
type Manager interface {
	// Verify verifies a JWT token and returns the payload if valid.
	Verify(token string) (Payload, error)
	// CreateToken creates a new JWT token with the provided payload.
	CreateToken(payload Payload) (string, error)
}

type implManager struct {
	secretKey string
}

// Context key types for payload and scope.
type (
	payloadCtxKey struct{}
	scopeCtxKey   struct{}
)
