package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

type Organizations struct {
	mu   sync.RWMutex
	orgs map[string]entities.Organization
}

var _ interfaces.IOrganizationRepository = (*Organizations)(nil)

func NewOrganizations() *Organizations {
	return &Organizations{orgs: map[string]entities.Organization{}}
}

func (r *Organizations) Create(_ context.Context, org entities.Organization) (entities.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	if _, exists := r.orgs[org.ID]; exists {
		return entities.Organization{}, ErrDuplicateID
	}
	r.orgs[org.ID] = org
	return org, nil
}

func (r *Organizations) GetByID(_ context.Context, id string) (entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.orgs[id], nil
}

func (r *Organizations) List(_ context.Context) ([]entities.Organization, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Organization, 0, len(r.orgs))
	for _, o := range r.orgs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Organizations) UpdateSettings(_ context.Context, id string, settings entities.OrganizationSettings) (entities.Organization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	org, ok := r.orgs[id]
	if !ok {
		return entities.Organization{}, nil
	}
	org.Settings = settings
	r.orgs[id] = org
	return org, nil
}

type Users struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*Users)(nil)

func NewUsers() *Users {
	return &Users{users: map[string]entities.User{}}
}

func (r *Users) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[u.UID]; exists {
		return entities.User{}, ErrDuplicateID
	}
	r.users[u.UID] = u
	return u, nil
}

func (r *Users) GetByID(_ context.Context, uid string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[uid], nil
}

func (r *Users) ListByOrg(_ context.Context, orgID string) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.User
	for _, u := range r.users {
		if u.OrgID == orgID {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *Users) UpdateRole(_ context.Context, uid string, role entities.Role) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[uid]
	if !ok {
		return entities.User{}, nil
	}
	u.Role = role
	r.users[uid] = u
	return u, nil
}

func (r *Users) Delete(_ context.Context, uid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, uid)
	return nil
}
