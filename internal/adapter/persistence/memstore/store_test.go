package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	created, err := s.Create(ctx, "org1", "payments", entities.Document{"amount": 1500.0, "status": "Pendiente"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID())

	created["amount"] = 1.0
	got, err := s.Get(ctx, "org1", "payments", created.ID())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got["amount"], "returned documents must be copies")

	other, err := s.Get(ctx, "org2", "payments", created.ID())
	require.NoError(t, err)
	assert.Nil(t, other, "organizations are isolated")

	updated, err := s.Update(ctx, "org1", "payments", created.ID(), entities.Document{"status": "Pagado"})
	require.NoError(t, err)
	assert.Equal(t, "Pagado", updated["status"])
	assert.Equal(t, 1500.0, updated["amount"])

	missing, err := s.Update(ctx, "org1", "payments", "nope", entities.Document{"status": "Pagado"})
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = s.Create(ctx, "org1", "payments", entities.Document{"id": created.ID()})
	assert.True(t, errors.Is(err, ErrDuplicateID))

	require.NoError(t, s.Delete(ctx, "org1", "payments", created.ID()))
	got, err = s.Get(ctx, "org1", "payments", created.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListQuery(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	for _, d := range []entities.Document{
		{"id": "a", "status": "Pendiente", "paymentDate": "2025-06-01"},
		{"id": "b", "status": "Pendiente", "paymentDate": "2025-06-05"},
		{"id": "c", "status": "Pagado", "paymentDate": "2025-06-02"},
		{"id": "d", "status": "Pendiente", "paymentDate": "2025-06-03"},
	} {
		_, err := s.Create(ctx, "org1", "payments", d)
		require.NoError(t, err)
	}

	got, err := s.List(ctx, "org1", "payments", entities.Query{
		Filters: []entities.Filter{
			entities.Where("status", entities.OpEq, "Pendiente"),
			entities.Where("paymentDate", entities.OpLt, "2025-06-05"),
		},
		OrderBy:    "paymentDate",
		Descending: true,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].ID())
	assert.Equal(t, "a", got[1].ID())
}

func TestIdentities(t *testing.T) {
	ctx := context.Background()
	ids := NewIdentities()

	uid, err := ids.CreateIdentity(ctx, "Ana@Acme.pe", "12345678")
	require.NoError(t, err)

	_, err = ids.CreateIdentity(ctx, "ana@acme.pe", "87654321")
	assert.ErrorIs(t, err, interfaces.ErrEmailAlreadyInUse)

	got, err := ids.Authenticate(ctx, "ana@acme.pe", "12345678")
	require.NoError(t, err)
	assert.Equal(t, uid, got)

	_, err = ids.Authenticate(ctx, "ana@acme.pe", "wrong-pass")
	assert.ErrorIs(t, err, interfaces.ErrInvalidCredentials)
}
