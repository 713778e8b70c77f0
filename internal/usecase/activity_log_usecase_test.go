package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
)

func TestChanges(t *testing.T) {
	tests := []struct {
		name  string
		entry entities.AuditEntry
		want  []FieldChange
	}{
		{
			name: "changed, added and removed keys",
			entry: entities.AuditEntry{Action: "UPDATE_RENTAL", Details: map[string]any{
				"before": map[string]any{"rentAmount": 1200.0, "status": "Activo", "note": "x"},
				"after":  entities.Document{"rentAmount": 1300.0, "status": "Activo", "endDate": "2026-01-01"},
			}},
			want: []FieldChange{
				{Field: "endDate", Before: nil, After: "2026-01-01"},
				{Field: "note", Before: "x", After: nil},
				{Field: "rentAmount", Before: 1200.0, After: 1300.0},
			},
		},
		{
			name: "no visible changes",
			entry: entities.AuditEntry{Action: "UPDATE_PAYMENT_STATUS", Details: map[string]any{
				"before": map[string]any{"status": "Pagado"},
				"after":  map[string]any{"status": "Pagado"},
			}},
			want: []FieldChange{},
		},
		{
			name:  "not an update",
			entry: entities.AuditEntry{Action: "DELETE_TENANT", Details: map[string]any{"before": map[string]any{}, "after": map[string]any{"a": 1}}},
		},
		{
			name:  "update without objects",
			entry: entities.AuditEntry{Action: "UPDATE_TEAM_MEMBER_ROLE", Details: map[string]any{"targetUser": "a@b.pe"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Changes(tt.entry))
		})
	}
}

func TestActivityLog_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	for _, d := range []entities.Document{
		{"id": "l1", "timestamp": "2025-06-05T10:00:00.000Z", "action": "CREATE_TENANT", "section": "Inquilinos", "details": map[string]any{"docId": "t1"}},
		{"id": "l2", "timestamp": "2025-06-05T12:00:00.000Z", "action": "UPDATE_TENANT", "details": map[string]any{
			"before": map[string]any{"phone": "1"}, "after": map[string]any{"phone": "2"},
		}},
	} {
		_, err := store.Create(ctx, "org1", entities.CollectionLogs, d)
		require.NoError(t, err)
	}

	entries, err := NewActivityLog(store).List(ctx, testActor)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "UPDATE_TENANT", entries[0].Action)
	assert.Equal(t, "General", entries[0].Section)
	assert.Equal(t, []FieldChange{{Field: "phone", Before: "1", After: "2"}}, entries[0].Changes)
	assert.Nil(t, entries[1].Changes)

	_, err = NewActivityLog(store).List(ctx, entities.Actor{UserID: "g", OrgID: "org1", Role: entities.RoleGestor})
	assert.ErrorIs(t, err, ErrActivityLogForbidden)
}
