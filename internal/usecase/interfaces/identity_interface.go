package interfaces

import (
	"context"
	"errors"
	"time"

	"gestorpro/internal/domain/entities"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// IIdentityProvider owns login credentials. Creating an identity never affects the
// session of the caller that provisions it.
type IIdentityProvider interface {
	CreateIdentity(ctx context.Context, email, password string) (uid string, err error)
	Authenticate(ctx context.Context, email, password string) (uid string, err error)
}

type ITokenIssuer interface {
	Issue(actor entities.Actor) (token string, expiresAt time.Time, err error)
	Parse(token string) (entities.Actor, error)
}

// ISessionManager opens the per-login view state and tears it down on logout.
type ISessionManager interface {
	Open(ctx context.Context, actor entities.Actor) error
	Close(sessionID string)
}
