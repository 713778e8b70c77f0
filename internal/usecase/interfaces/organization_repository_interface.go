package interfaces

import (
	"context"

	"gestorpro/internal/domain/entities"
)

// IOrganizationRepository returns a zero Organization when the id is unknown.
type IOrganizationRepository interface {
	Create(ctx context.Context, org entities.Organization) (entities.Organization, error)
	GetByID(ctx context.Context, id string) (entities.Organization, error)
	List(ctx context.Context) ([]entities.Organization, error)
	UpdateSettings(ctx context.Context, id string, settings entities.OrganizationSettings) (entities.Organization, error)
}

// IUserRepository stores user profiles. A zero User means not found.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, uid string) (entities.User, error)
	ListByOrg(ctx context.Context, orgID string) ([]entities.User, error)
	UpdateRole(ctx context.Context, uid string, role entities.Role) (entities.User, error)
	Delete(ctx context.Context, uid string) error
}
