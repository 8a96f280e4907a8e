package scope

import (
	"context"
	"fmt"
	"time"

	"notification-admin/internal/model"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// New creates a new JWT manager with the provided secret key.
func New(secretKey string) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &implManager{secretKey: secretKey}, nil
}

// Verify verifies the JWT token and returns the payload if valid.
func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !jwtToken.Valid {
		return Payload{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return Payload{}, fmt.Errorf("%w: failed to parse claims", ErrInvalidToken)
	}

	return *payload, nil
}

// CreateToken creates a new JWT token with the given payload.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.StandardClaims = jwt.StandardClaims{
		ExpiresAt: now.Add(TokenExpirationDuration).Unix(),
		Id:        uuid.New().String(),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
		Subject:   payload.UserID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(m.secretKey))
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
		JTI:      payload.Id,
	}
}

// SetPayloadToContext attaches Payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

// GetPayloadFromContext returns Payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return payload, ok
}

// SetScopeToContext attaches model.Scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns model.Scope from context, or the zero scope.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
