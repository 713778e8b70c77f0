package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrAdminOnly          = errors.New("only administrators can manage the team")
	ErrTeamFieldsRequired = errors.New("email, dni and role are required")
	ErrInvalidTeamRole    = errors.New("role cannot be assigned to a team member")
	ErrMemberNotFound     = errors.New("team member not found")
	ErrCannotModifySelf   = errors.New("administrators cannot modify their own profile")
)

const teamSection = "Equipo"

type ITeam interface {
	List(ctx context.Context, actor entities.Actor) ([]entities.User, error)
	Create(ctx context.Context, actor entities.Actor, email, dni string, role entities.Role) (entities.User, error)
	UpdateRole(ctx context.Context, actor entities.Actor, uid string, role entities.Role) (entities.User, error)
	Delete(ctx context.Context, actor entities.Actor, uid string, confirmer interfaces.IConfirmer) (bool, error)
}

// Team manages the staff profiles of an organization. Deleting a member removes
// the profile only; the login identity is left in place.
type Team struct {
	identity interfaces.IIdentityProvider
	users    interfaces.IUserRepository
	audit    IAuditLogger
	logger   *zap.Logger
}

var _ ITeam = (*Team)(nil)

func NewTeam(identity interfaces.IIdentityProvider, users interfaces.IUserRepository, audit IAuditLogger, logger *zap.Logger) *Team {
	return &Team{identity: identity, users: users, audit: audit, logger: logging.OrNop(logger).Named("team")}
}

func (u *Team) List(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if !rbac.Can(actor.Role, rbac.ActionTeam) {
		return nil, ErrAdminOnly
	}
	return u.users.ListByOrg(ctx, actor.OrgID)
}

func (u *Team) Create(ctx context.Context, actor entities.Actor, email, dni string, role entities.Role) (entities.User, error) {
	if !rbac.Can(actor.Role, rbac.ActionTeam) {
		return entities.User{}, ErrAdminOnly
	}
	email, dni = strings.TrimSpace(email), strings.TrimSpace(dni)
	if email == "" || dni == "" || role == "" {
		return entities.User{}, ErrTeamFieldsRequired
	}
	if !assignable(role) {
		return entities.User{}, ErrInvalidTeamRole
	}

	uid, err := u.identity.CreateIdentity(ctx, email, dni)
	if err != nil {
		u.logger.Warn("create identity failed", zap.String("org_id", actor.OrgID), zap.Error(err))
		return entities.User{}, err
	}
	user, err := u.users.Create(ctx, entities.User{UID: uid, Email: email, Role: role, DNI: dni, OrgID: actor.OrgID})
	if err != nil {
		return entities.User{}, fmt.Errorf("create profile: %w", err)
	}
	u.audit.Log(ctx, actor, "CREATE_TEAM_MEMBER", teamSection, map[string]any{
		"newUserEmail": email,
		"role":         string(role),
	})
	u.logger.Info("team member created", zap.String("org_id", actor.OrgID), zap.String("uid", uid))
	return user, nil
}

func (u *Team) UpdateRole(ctx context.Context, actor entities.Actor, uid string, role entities.Role) (entities.User, error) {
	member, err := u.member(ctx, actor, uid)
	if err != nil {
		return entities.User{}, err
	}
	if !assignable(role) {
		return entities.User{}, ErrInvalidTeamRole
	}
	updated, err := u.users.UpdateRole(ctx, member.UID, role)
	if err != nil {
		return entities.User{}, err
	}
	u.audit.Log(ctx, actor, "UPDATE_TEAM_MEMBER_ROLE", teamSection, map[string]any{
		"targetUser": member.Email,
		"newRole":    string(role),
	})
	return updated, nil
}

func (u *Team) Delete(ctx context.Context, actor entities.Actor, uid string, confirmer interfaces.IConfirmer) (bool, error) {
	member, err := u.member(ctx, actor, uid)
	if err != nil {
		return false, err
	}
	confirmed, err := confirmer.Confirm(ctx, entities.ConfirmationPrompt{
		Title:       "Confirmar Eliminación",
		Message:     fmt.Sprintf("¿Seguro que quieres eliminar a %s del equipo? Esta acción eliminará su perfil de la organización pero no su cuenta de autenticación.", member.Email),
		ConfirmText: "Sí, eliminar",
		Collection:  "users",
		RecordID:    member.UID,
	})
	if err != nil || !confirmed {
		return false, err
	}
	if err := u.users.Delete(ctx, member.UID); err != nil {
		return false, err
	}
	u.audit.Log(ctx, actor, "DELETE_TEAM_MEMBER", teamSection, map[string]any{"deletedUserEmail": member.Email})
	return true, nil
}

// member loads another user of the actor's organization.
func (u *Team) member(ctx context.Context, actor entities.Actor, uid string) (entities.User, error) {
	if !rbac.Can(actor.Role, rbac.ActionTeam) {
		return entities.User{}, ErrAdminOnly
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return entities.User{}, ErrMemberNotFound
	}
	if uid == actor.UserID {
		return entities.User{}, ErrCannotModifySelf
	}
	user, err := u.users.GetByID(ctx, uid)
	if err != nil {
		return entities.User{}, err
	}
	if user.UID == "" || user.OrgID != actor.OrgID || user.Role == entities.RoleTenant {
		return entities.User{}, ErrMemberNotFound
	}
	return user, nil
}

func assignable(role entities.Role) bool {
	switch role {
	case entities.RoleGestor, entities.RoleVerificador, entities.RoleContador:
		return true
	}
	return false
}
