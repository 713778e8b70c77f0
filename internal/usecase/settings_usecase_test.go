package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
)

func TestSettings_UpdatePublishesChange(t *testing.T) {
	ctx := context.Background()
	orgs := memstore.NewOrganizations()
	_, err := orgs.Create(ctx, entities.Organization{ID: "org1", Name: "Acme"})
	require.NoError(t, err)

	publisher := mock_interfaces.NewMockIChangePublisher(gomock.NewController(t))
	publisher.EXPECT().PublishOrganization(gomock.Any(), "org1").Return(nil)

	uc := NewSettings(orgs, publisher, nil)
	contador := entities.Actor{UserID: "u3", OrgID: "org1", Role: entities.RoleContador}
	saved, err := uc.Update(ctx, contador, entities.OrganizationSettings{GeminiAPIKey: " key ", ManagerPhoneNumber: "51987654321"})
	require.NoError(t, err)
	assert.Equal(t, entities.OrganizationSettings{GeminiAPIKey: "key", ManagerPhoneNumber: "51987654321"}, saved)

	got, err := uc.Get(ctx, contador)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSettings_Errors(t *testing.T) {
	ctx := context.Background()
	uc := NewSettings(memstore.NewOrganizations(), nil, nil)

	_, err := uc.Get(ctx, tenantActor)
	assert.ErrorIs(t, err, ErrSettingsForbidden)
	_, err = uc.Update(ctx, tenantActor, entities.OrganizationSettings{})
	assert.ErrorIs(t, err, ErrSettingsForbidden)

	_, err = uc.Update(ctx, testActor, entities.OrganizationSettings{GeminiAPIKey: "k"})
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestSettings_PublishFailureKeepsUpdate(t *testing.T) {
	ctx := context.Background()
	orgs := memstore.NewOrganizations()
	_, err := orgs.Create(ctx, entities.Organization{ID: "org1"})
	require.NoError(t, err)
	publisher := mock_interfaces.NewMockIChangePublisher(gomock.NewController(t))
	publisher.EXPECT().PublishOrganization(gomock.Any(), "org1").Return(errors.New("nats down"))

	saved, err := NewSettings(orgs, publisher, nil).Update(ctx, testActor, entities.OrganizationSettings{GeminiAPIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", saved.GeminiAPIKey)
}
