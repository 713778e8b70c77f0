package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrRegistrationIncomplete = errors.New("organization name, email and password are required")
	ErrProfileNotFound        = errors.New("authenticated user has no profile")
)

// LoginResult is handed back to the client after register or login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
	SessionID string
}

type IAuth interface {
	Register(ctx context.Context, orgName, email, password string) (LoginResult, error)
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context, actor entities.Actor)
}

type Auth struct {
	orgs     interfaces.IOrganizationRepository
	users    interfaces.IUserRepository
	identity interfaces.IIdentityProvider
	tokens   interfaces.ITokenIssuer
	sessions interfaces.ISessionManager
	logger   *zap.Logger
	now      func() time.Time
}

var _ IAuth = (*Auth)(nil)

func NewAuth(orgs interfaces.IOrganizationRepository, users interfaces.IUserRepository, identity interfaces.IIdentityProvider, tokens interfaces.ITokenIssuer, sessions interfaces.ISessionManager, logger *zap.Logger) *Auth {
	return &Auth{
		orgs:     orgs,
		users:    users,
		identity: identity,
		tokens:   tokens,
		sessions: sessions,
		logger:   logging.OrNop(logger).Named("auth"),
		now:      time.Now,
	}
}

// Register creates an organization with its first Admin and logs them in.
func (u *Auth) Register(ctx context.Context, orgName, email, password string) (LoginResult, error) {
	orgName, email = strings.TrimSpace(orgName), strings.TrimSpace(email)
	if orgName == "" || email == "" || password == "" {
		return LoginResult{}, ErrRegistrationIncomplete
	}
	uid, err := u.identity.CreateIdentity(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	org, err := u.orgs.Create(ctx, entities.Organization{
		ID:        uuid.NewString(),
		Name:      orgName,
		CreatedAt: dates.Stamp(u.now()),
	})
	if err != nil {
		return LoginResult{}, fmt.Errorf("create organization: %w", err)
	}
	user, err := u.users.Create(ctx, entities.User{UID: uid, Email: email, Role: entities.RoleAdmin, OrgID: org.ID})
	if err != nil {
		return LoginResult{}, fmt.Errorf("create profile: %w", err)
	}
	u.logger.Info("organization registered", zap.String("org_id", org.ID), zap.String("uid", uid))
	return u.open(ctx, user)
}

func (u *Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	uid, err := u.identity.Authenticate(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return LoginResult{}, err
	}
	user, err := u.users.GetByID(ctx, uid)
	if err != nil {
		return LoginResult{}, err
	}
	if user.UID == "" || user.OrgID == "" {
		u.logger.Warn("login without profile", zap.String("uid", uid))
		return LoginResult{}, ErrProfileNotFound
	}
	return u.open(ctx, user)
}

func (u *Auth) Logout(_ context.Context, actor entities.Actor) {
	if actor.SessionID == "" {
		return
	}
	u.sessions.Close(actor.SessionID)
	u.logger.Info("logout", zap.String("org_id", actor.OrgID), zap.String("session_id", actor.SessionID))
}

func (u *Auth) open(ctx context.Context, user entities.User) (LoginResult, error) {
	actor := entities.Actor{
		UserID:      user.UID,
		Email:       user.Email,
		OrgID:       user.OrgID,
		Role:        user.Role,
		SessionID:   uuid.NewString(),
		TenantDocID: user.TenantDocID,
	}
	if err := u.sessions.Open(ctx, actor); err != nil {
		return LoginResult{}, fmt.Errorf("open session: %w", err)
	}
	token, expiresAt, err := u.tokens.Issue(actor)
	if err != nil {
		u.sessions.Close(actor.SessionID)
		return LoginResult{}, err
	}
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user, SessionID: actor.SessionID}, nil
}
