package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
)

func newTeamFixture(t *testing.T) (*Team, *memstore.Users, *recordingAudit) {
	t.Helper()
	users := memstore.NewUsers()
	for _, u := range []entities.User{
		{UID: "u1", Email: "admin@acme.pe", Role: entities.RoleAdmin, OrgID: "org1"},
		{UID: "u2", Email: "gestor@acme.pe", Role: entities.RoleGestor, OrgID: "org1"},
		{UID: "x1", Email: "otro@other.pe", Role: entities.RoleGestor, OrgID: "org2"},
	} {
		if _, err := users.Create(context.Background(), u); err != nil {
			t.Fatal(err)
		}
	}
	audit := &recordingAudit{}
	return NewTeam(memstore.NewIdentities(), users, audit, nil), users, audit
}

func TestTeam_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates identity, profile and audit entry", func(t *testing.T) {
		uc, users, audit := newTeamFixture(t)
		created, err := uc.Create(ctx, testActor, " conta@acme.pe ", "44556677", entities.RoleContador)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := users.GetByID(ctx, created.UID)
		if stored.Email != "conta@acme.pe" || stored.Role != entities.RoleContador || stored.OrgID != "org1" || stored.DNI != "44556677" {
			t.Fatalf("unexpected profile %+v", stored)
		}
		entries := audit.Entries()
		if len(entries) != 1 || entries[0].Action != "CREATE_TEAM_MEMBER" || entries[0].Section != "Equipo" {
			t.Fatalf("unexpected audit %+v", entries)
		}
		if entries[0].Details["newUserEmail"] != "conta@acme.pe" || entries[0].Details["role"] != "Contador" {
			t.Fatalf("unexpected audit details %v", entries[0].Details)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _, audit := newTeamFixture(t)
		tests := []struct {
			name  string
			actor entities.Actor
			email string
			dni   string
			role  entities.Role
			want  error
		}{
			{"not admin", entities.Actor{UserID: "u2", OrgID: "org1", Role: entities.RoleGestor}, "a@b.pe", "12345678", entities.RoleGestor, ErrAdminOnly},
			{"missing dni", testActor, "a@b.pe", " ", entities.RoleGestor, ErrTeamFieldsRequired},
			{"admin role", testActor, "a@b.pe", "12345678", entities.RoleAdmin, ErrInvalidTeamRole},
			{"tenant role", testActor, "a@b.pe", "12345678", entities.RoleTenant, ErrInvalidTeamRole},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := uc.Create(ctx, tt.actor, tt.email, tt.dni, tt.role); !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
			})
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("no audit expected")
		}
	})

	t.Run("email in use is reported and nothing is created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		identity.EXPECT().CreateIdentity(gomock.Any(), "a@b.pe", "12345678").Return("", interfaces.ErrEmailAlreadyInUse)

		uc := NewTeam(identity, users, &recordingAudit{}, nil)
		if _, err := uc.Create(ctx, testActor, "a@b.pe", "12345678", entities.RoleGestor); !errors.Is(err, interfaces.ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
	})
}

func TestTeam_UpdateRole(t *testing.T) {
	ctx := context.Background()
	uc, users, audit := newTeamFixture(t)

	if _, err := uc.UpdateRole(ctx, testActor, "u2", entities.RoleVerificador); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := users.GetByID(ctx, "u2")
	if stored.Role != entities.RoleVerificador {
		t.Fatalf("role not updated: %+v", stored)
	}
	last := audit.Entries()[0]
	if last.Action != "UPDATE_TEAM_MEMBER_ROLE" || last.Details["targetUser"] != "gestor@acme.pe" || last.Details["newRole"] != "Verificador" {
		t.Fatalf("unexpected audit %+v", last)
	}

	for name, tc := range map[string]struct {
		uid  string
		want error
	}{
		"self":           {"u1", ErrCannotModifySelf},
		"other org":      {"x1", ErrMemberNotFound},
		"unknown member": {"zz", ErrMemberNotFound},
		"empty id":       {"  ", ErrMemberNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := uc.UpdateRole(ctx, testActor, tc.uid, entities.RoleContador); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestTeam_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("declined", func(t *testing.T) {
		uc, users, audit := newTeamFixture(t)
		var prompt entities.ConfirmationPrompt
		ok, err := uc.Delete(ctx, testActor, "u2", confirmFunc(func(_ context.Context, p entities.ConfirmationPrompt) (bool, error) {
			prompt = p
			return false, nil
		}))
		if err != nil || ok {
			t.Fatalf("expected no deletion, got %v %v", ok, err)
		}
		if !strings.Contains(prompt.Message, "gestor@acme.pe") || prompt.ConfirmText != "Sí, eliminar" {
			t.Fatalf("unexpected prompt %+v", prompt)
		}
		if u, _ := users.GetByID(ctx, "u2"); u.UID == "" {
			t.Fatalf("member removed without confirmation")
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("no audit expected")
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		uc, users, audit := newTeamFixture(t)
		ok, err := uc.Delete(ctx, testActor, "u2", answer(true))
		if err != nil || !ok {
			t.Fatalf("expected deletion, got %v %v", ok, err)
		}
		if u, _ := users.GetByID(ctx, "u2"); u.UID != "" {
			t.Fatalf("member still present")
		}
		last := audit.Entries()[0]
		if last.Action != "DELETE_TEAM_MEMBER" || last.Details["deletedUserEmail"] != "gestor@acme.pe" {
			t.Fatalf("unexpected audit %+v", last)
		}
	})
}

func TestTeam_ListIsAdminOnly(t *testing.T) {
	uc, _, _ := newTeamFixture(t)
	members, err := uc.List(context.Background(), testActor)
	if err != nil || len(members) != 2 {
		t.Fatalf("expected two members of org1, got %v %v", members, err)
	}
	if _, err := uc.List(context.Background(), entities.Actor{UserID: "u9", OrgID: "org1", Role: entities.RoleContador}); !errors.Is(err, ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}
