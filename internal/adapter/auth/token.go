package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

type Claims struct {
	OrgID       string `json:"orgId"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	SessionID   string `json:"sid"`
	TenantDocID string `json:"tenantDocId,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 tokens whose subject is the user id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*TokenIssuer)(nil)

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(actor entities.Actor) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		OrgID:       actor.OrgID,
		Email:       actor.Email,
		Role:        string(actor.Role),
		SessionID:   actor.SessionID,
		TenantDocID: actor.TenantDocID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID,
			Issuer:    "gestorpro",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (t *TokenIssuer) Parse(token string) (entities.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer("gestorpro"),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return entities.Actor{}, errors.Join(interfaces.ErrInvalidToken, err)
	}
	actor := entities.Actor{
		UserID:      claims.Subject,
		Email:       claims.Email,
		OrgID:       claims.OrgID,
		Role:        entities.Role(claims.Role),
		SessionID:   claims.SessionID,
		TenantDocID: claims.TenantDocID,
	}
	if !actor.Valid() || actor.SessionID == "" {
		return entities.Actor{}, interfaces.ErrInvalidToken
	}
	return actor, nil
}
