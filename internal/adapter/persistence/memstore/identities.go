package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gestorpro/internal/adapter/auth"
	"gestorpro/internal/usecase/interfaces"
)

type identity struct {
	uid  string
	hash string
}

// Identities is an in-memory identity provider keyed by lowercased email.
type Identities struct {
	mu   sync.RWMutex
	byID map[string]identity
}

var _ interfaces.IIdentityProvider = (*Identities)(nil)

func NewIdentities() *Identities {
	return &Identities{byID: map[string]identity{}}
}

func (r *Identities) CreateIdentity(_ context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[email]; exists {
		return "", interfaces.ErrEmailAlreadyInUse
	}
	uid := uuid.NewString()
	r.byID[email] = identity{uid: uid, hash: hash}
	return uid, nil
}

func (r *Identities) Authenticate(_ context.Context, email, password string) (string, error) {
	r.mu.RLock()
	id, ok := r.byID[strings.ToLower(strings.TrimSpace(email))]
	r.mu.RUnlock()
	if !ok {
		return "", interfaces.ErrInvalidCredentials
	}
	if err := auth.CheckPassword(id.hash, password); err != nil {
		return "", err
	}
	return id.uid, nil
}
