package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrSettingsForbidden    = errors.New("role cannot edit settings")
	ErrOrganizationNotFound = errors.New("organization not found")
)

type ISettings interface {
	Get(ctx context.Context, actor entities.Actor) (entities.OrganizationSettings, error)
	Update(ctx context.Context, actor entities.Actor, settings entities.OrganizationSettings) (entities.OrganizationSettings, error)
}

type Settings struct {
	orgs      interfaces.IOrganizationRepository
	publisher interfaces.IChangePublisher
	logger    *zap.Logger
}

var _ ISettings = (*Settings)(nil)

// NewSettings accepts a nil publisher; open sessions then only see the change on
// their next organization read.
func NewSettings(orgs interfaces.IOrganizationRepository, publisher interfaces.IChangePublisher, logger *zap.Logger) *Settings {
	return &Settings{orgs: orgs, publisher: publisher, logger: logging.OrNop(logger).Named("settings")}
}

func (u *Settings) Get(ctx context.Context, actor entities.Actor) (entities.OrganizationSettings, error) {
	if !rbac.Can(actor.Role, rbac.ActionSettings) {
		return entities.OrganizationSettings{}, ErrSettingsForbidden
	}
	org, err := u.orgs.GetByID(ctx, actor.OrgID)
	if err != nil {
		return entities.OrganizationSettings{}, err
	}
	if org.ID == "" {
		return entities.OrganizationSettings{}, ErrOrganizationNotFound
	}
	return org.Settings, nil
}

func (u *Settings) Update(ctx context.Context, actor entities.Actor, settings entities.OrganizationSettings) (entities.OrganizationSettings, error) {
	if !rbac.Can(actor.Role, rbac.ActionSettings) {
		return entities.OrganizationSettings{}, ErrSettingsForbidden
	}
	settings.GeminiAPIKey = strings.TrimSpace(settings.GeminiAPIKey)
	settings.ManagerPhoneNumber = strings.TrimSpace(settings.ManagerPhoneNumber)

	org, err := u.orgs.UpdateSettings(ctx, actor.OrgID, settings)
	if err != nil {
		u.logger.Error("update settings failed", zap.String("org_id", actor.OrgID), zap.Error(err))
		return entities.OrganizationSettings{}, err
	}
	if org.ID == "" {
		return entities.OrganizationSettings{}, ErrOrganizationNotFound
	}
	if u.publisher != nil {
		if err := u.publisher.PublishOrganization(ctx, actor.OrgID); err != nil {
			u.logger.Warn("publish settings change failed", zap.String("org_id", actor.OrgID), zap.Error(err))
		}
	}
	return org.Settings, nil
}
