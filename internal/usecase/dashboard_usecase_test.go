package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
)

func seedPortfolio(t *testing.T) *memstore.Store {
	t.Helper()
	ctx := context.Background()
	store := memstore.NewStore()
	seed := map[string][]entities.Document{
		entities.CollectionProperties: {
			{"id": "p1", "name": "Casa Sol", "status": "Alquilado"},
			{"id": "p2", "name": "Local Luna", "status": "Disponible"},
			{"id": "p3", "name": "Chacra", "status": "Disponible"},
		},
		entities.CollectionTenants: {{"id": "t1", "name": "Ana"}, {"id": "t2", "name": "Luis"}},
		entities.CollectionRentals: {
			{"id": "r1", "propertyId": "p1", "tenantId": "t1", "status": "Activo", "endDate": "2025-07-05"},
			{"id": "r2", "propertyId": "p2", "tenantId": "t2", "status": "Activo", "endDate": "2026-03-01"},
			{"id": "r3", "propertyId": "p3", "tenantId": "t2", "status": "Finalizado", "endDate": "2025-06-10"},
		},
		entities.CollectionPayments: {
			{"id": "pay1", "rentalId": "r1", "amount": 1000.0, "paymentDate": "2025-06-01", "concept": "Junio", "status": "Pagado"},
			{"id": "pay2", "rentalId": "r2", "amount": 800.0, "paymentDate": "2025-05-20", "concept": "Mayo", "status": "Verificado"},
			{"id": "pay3", "rentalId": "r2", "amount": 800.0, "paymentDate": "2025-06-04", "concept": "Junio", "status": "Pendiente"},
			{"id": "pay4", "rentalId": "r1", "amount": 1000.0, "paymentDate": "2025-06-05", "concept": "Julio", "status": "Pendiente"},
		},
		entities.CollectionExpenses: {
			{"id": "e1", "propertyId": "p1", "amount": 200.0, "date": "2025-06-02", "category": "Reparación", "description": "Caño"},
			{"id": "e2", "propertyId": "p2", "amount": 50.5, "date": "2025-04-30", "category": "Servicios", "description": "Agua"},
		},
	}
	for coll, docs := range seed {
		for _, d := range docs {
			_, err := store.Create(ctx, "org1", coll, d)
			require.NoError(t, err)
		}
	}
	return store
}

func TestDashboard_Overview(t *testing.T) {
	uc := NewDashboard(seedPortfolio(t), nil, nil)
	uc.now = fixedNow

	view, err := uc.Overview(context.Background(), testActor)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-05", view.Today)
	assert.Equal(t, 1800.0, view.Income)
	assert.Equal(t, 250.5, view.Expenses)
	assert.Equal(t, 3, view.Properties)
	assert.Equal(t, 2, view.ActiveRentals)
	assert.Equal(t, 67, view.OccupancyPercent)
	assert.Equal(t, map[string]int{"Alquilado": 1, "Disponible": 2}, view.PropertyStatus)

	assert.Equal(t, []Alert{
		{Kind: AlertExpiringLease, RecordID: "r1", Message: "El contrato de Ana en Casa Sol vence pronto (5 de julio de 2025)."},
		{Kind: AlertOverduePayment, RecordID: "pay3", Message: `Pago de Luis por el concepto "Junio" está vencido.`},
	}, view.Alerts)
}

func TestDashboard_EmptyOrganization(t *testing.T) {
	uc := NewDashboard(memstore.NewStore(), nil, nil)
	view, err := uc.Overview(context.Background(), testActor)
	require.NoError(t, err)
	assert.Zero(t, view.OccupancyPercent)
	assert.Empty(t, view.Alerts)
}
