package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/usecase/interfaces"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
)

func seedLease(t *testing.T, store *memstore.Store) {
	t.Helper()
	ctx := context.Background()
	for coll, doc := range map[string]entities.Document{
		entities.CollectionProperties: {"id": "p1", "name": "Casa Sol"},
		entities.CollectionTenants:    {"id": "t1", "name": "Ana", "phone": "987654321"},
		entities.CollectionRentals:    {"id": "r1", "propertyId": "p1", "tenantId": "t1", "status": "Activo", "endDate": "2025-12-31"},
	} {
		if _, err := store.Create(ctx, "org1", coll, doc); err != nil {
			t.Fatalf("seed %s: %v", coll, err)
		}
	}
}

func TestRecordManager_CreateUpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	seedLease(t, store)
	audit := &recordingAudit{}
	uc := NewRecordManager(store, nil, nil, nil, audit, nil)
	uc.now = fixedNow

	input := map[string]any{
		"propertyId":        "p1",
		"tenantId":          "t1",
		"startDate":         "2025-01-01",
		"endDate":           "2025-12-31",
		"rentAmount":        "1200",
		"departmentDetails": "Piso 3",
	}
	created, err := uc.Create(ctx, testActor, entities.CollectionRentals, input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	read, err := uc.Get(ctx, testActor, entities.CollectionRentals, created.ID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for k, want := range map[string]any{
		"propertyId": "p1", "tenantId": "t1", "startDate": "2025-01-01", "endDate": "2025-12-31",
		"rentAmount": 1200.0, "departmentDetails": "Piso 3", "status": "Activo",
		"orgId": "org1", "createdAt": "2025-06-05T14:03:22.000Z", "createdBy": "admin@acme.pe",
	} {
		if read[k] != want {
			t.Fatalf("field %s: expected %#v, got %#v", k, want, read[k])
		}
	}

	uc.now = func() time.Time { return fixedNow().Add(time.Hour) }
	input["rentAmount"] = 1300.0
	updated, err := uc.Update(ctx, testActor, entities.CollectionRentals, created.ID(), input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated["rentAmount"] != 1300.0 || updated["updatedAt"] != "2025-06-05T15:03:22.000Z" || updated["updatedBy"] != "admin@acme.pe" {
		t.Fatalf("unexpected update %v", updated)
	}
	if updated["createdAt"] != read["createdAt"] || updated["createdBy"] != read["createdBy"] {
		t.Fatalf("creation metadata changed: %v", updated)
	}

	entries := audit.Entries()
	if len(entries) != 2 || entries[0].Action != "CREATE_RENTAL" || entries[1].Action != "UPDATE_RENTAL" {
		t.Fatalf("unexpected audit %+v", entries)
	}
	if entries[1].Section != "Contratos" || entries[1].Details["docId"] != created.ID() {
		t.Fatalf("unexpected update entry %+v", entries[1])
	}
	before := entries[1].Details["before"].(entities.Document)
	after := entries[1].Details["after"].(entities.Document)
	if before["rentAmount"] != 1200.0 || after["rentAmount"] != 1300.0 {
		t.Fatalf("unexpected before/after %v %v", before, after)
	}
}

func TestRecordManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown collection", func(t *testing.T) {
		uc := NewRecordManager(memstore.NewStore(), nil, nil, nil, &recordingAudit{}, nil)
		_, err := uc.Create(ctx, testActor, "cars", map[string]any{}, nil)
		if !errors.Is(err, ErrUnknownCollection) {
			t.Fatalf("expected ErrUnknownCollection, got %v", err)
		}
	})

	t.Run("validation error writes nothing", func(t *testing.T) {
		audit := &recordingAudit{}
		uc := NewRecordManager(memstore.NewStore(), nil, nil, nil, audit, nil)
		_, err := uc.Create(ctx, testActor, entities.CollectionProperties, map[string]any{"name": "Casa"}, nil)
		if !errors.Is(err, schema.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("expected no audit entries")
		}
	})

	t.Run("lease must reference an existing tenant", func(t *testing.T) {
		store := memstore.NewStore()
		seedLease(t, store)
		uc := NewRecordManager(store, nil, nil, nil, &recordingAudit{}, nil)
		_, err := uc.Create(ctx, testActor, entities.CollectionRentals, map[string]any{
			"propertyId": "p1", "tenantId": "ghost", "startDate": "2025-01-01", "endDate": "2025-02-01", "rentAmount": 10,
		}, nil)
		if !errors.Is(err, ErrReferenceNotFound) {
			t.Fatalf("expected ErrReferenceNotFound, got %v", err)
		}
	})

	t.Run("payment copies tenant and property from its lease", func(t *testing.T) {
		store := memstore.NewStore()
		seedLease(t, store)
		uc := NewRecordManager(store, nil, nil, nil, &recordingAudit{}, nil)
		created, err := uc.Create(ctx, testActor, entities.CollectionPayments, map[string]any{
			"rentalId": "r1", "amount": 1500, "paymentDate": "2025-06-05", "concept": "Alquiler Junio",
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created["tenantId"] != "t1" || created["propertyId"] != "p1" || created["status"] != "Pendiente" {
			t.Fatalf("unexpected payment %v", created)
		}
	})

	t.Run("expense uploads receipts and is forced pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memstore.NewStore()
		seedLease(t, store)
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		audit := &recordingAudit{}
		uc := NewRecordManager(store, storage, nil, nil, audit, nil)
		uc.now = fixedNow

		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(_ context.Context, path string, up entities.Upload) (string, error) {
				if !strings.HasPrefix(path, "expense_receipts/1749132202000/") || !strings.HasSuffix(path, up.Name) {
					t.Errorf("unexpected path %s", path)
				}
				return "https://files/" + path, nil
			})

		created, err := uc.Create(ctx, testActor, entities.CollectionExpenses, map[string]any{
			"propertyId": "p1", "amount": 80, "date": "2025-06-01", "category": "Servicios", "status": "Verificado",
		}, []entities.Upload{{Name: "a.jpg", Body: strings.NewReader("a")}, {Name: "b.jpg", Body: strings.NewReader("b")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created["status"] != "Pendiente" {
			t.Fatalf("expected forced Pendiente, got %v", created["status"])
		}
		urls := created.Strings("photoURLs")
		if len(urls) != 2 || urls[0] != "https://files/expense_receipts/1749132202000/a.jpg" {
			t.Fatalf("unexpected urls %v", urls)
		}
		if audit.Entries()[0].Action != "CREATE_EXPENSE" || audit.Entries()[0].Section != "Gastos" {
			t.Fatalf("unexpected audit %+v", audit.Entries())
		}
	})

	t.Run("attachments rejected where the schema has no photos", func(t *testing.T) {
		uc := NewRecordManager(memstore.NewStore(), nil, nil, nil, &recordingAudit{}, nil)
		_, err := uc.Create(ctx, testActor, entities.CollectionTenants, map[string]any{"name": "Ana", "dni": "12345678"},
			[]entities.Upload{{Name: "x.pdf"}})
		if !errors.Is(err, ErrAttachmentsNotSupported) {
			t.Fatalf("expected ErrAttachmentsNotSupported, got %v", err)
		}
	})
}

func TestRecordManager_UpdateAppendsPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	store := memstore.NewStore()
	seedLease(t, store)
	_, _ = store.Create(ctx, "org1", entities.CollectionExpenses, entities.Document{
		"id": "e1", "propertyId": "p1", "amount": 80.0, "date": "2025-06-01", "category": "Servicios",
		"status": "Pendiente", "photoURLs": []any{"https://files/old.jpg"},
	})
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	uc := NewRecordManager(store, storage, nil, nil, &recordingAudit{}, nil)

	storage.EXPECT().Put(gomock.Any(), "expense_receipts/e1/new.jpg", gomock.Any()).Return("https://files/new.jpg", nil)

	updated, err := uc.Update(ctx, testActor, entities.CollectionExpenses, "e1", map[string]any{
		"propertyId": "p1", "amount": 90, "date": "2025-06-01", "category": "Servicios",
	}, []entities.Upload{{Name: "new.jpg", Body: strings.NewReader("n")}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	urls := updated.Strings("photoURLs")
	if len(urls) != 2 || urls[0] != "https://files/old.jpg" || urls[1] != "https://files/new.jpg" {
		t.Fatalf("expected appended urls, got %v", urls)
	}
}

func TestRecordManager_UpdateKeepsStoredStatus(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore()
	seedLease(t, store)
	audit := &recordingAudit{}
	records := NewRecordManager(store, nil, nil, nil, audit, nil)
	transitions := NewStatusTransitions(store, nil, audit, nil)

	created, err := records.Create(ctx, testActor, entities.CollectionPayments, map[string]any{
		"rentalId": "r1", "amount": "1500", "paymentDate": "2025-06-05", "concept": "Junio",
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created["status"] != "Pendiente" {
		t.Fatalf("expected a new payment to start Pendiente, got %v", created["status"])
	}
	if _, err := transitions.AdvancePayment(ctx, testActor, created.ID(), entities.PaymentStatusPagado); err != nil {
		t.Fatalf("advance: %v", err)
	}

	updated, err := records.Update(ctx, testActor, entities.CollectionPayments, created.ID(), map[string]any{
		"rentalId": "r1", "amount": "1600", "paymentDate": "2025-06-05", "concept": "Junio",
	}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated["status"] != "Pagado" || updated["amount"] != 1600.0 {
		t.Fatalf("expected status Pagado and the new amount, got %v", updated)
	}
}

func TestRecordManager_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("unconfirmed leaves store unchanged and writes no audit", func(t *testing.T) {
		store := memstore.NewStore()
		seedLease(t, store)
		audit := &recordingAudit{}
		uc := NewRecordManager(store, nil, nil, nil, audit, nil)

		var seen entities.ConfirmationPrompt
		deleted, err := uc.Delete(ctx, testActor, entities.CollectionTenants, "t1", confirmFunc(func(_ context.Context, p entities.ConfirmationPrompt) (bool, error) {
			seen = p
			return false, nil
		}))
		if err != nil || deleted {
			t.Fatalf("expected no delete, got %v %v", deleted, err)
		}
		if seen.RecordID != "t1" || seen.Collection != entities.CollectionTenants {
			t.Fatalf("unexpected prompt %+v", seen)
		}
		if doc, _ := store.Get(ctx, "org1", entities.CollectionTenants, "t1"); doc == nil {
			t.Fatalf("tenant must still exist")
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("expected no audit entries, got %+v", audit.Entries())
		}
	})

	t.Run("confirmed delete audits the pre-image", func(t *testing.T) {
		store := memstore.NewStore()
		seedLease(t, store)
		audit := &recordingAudit{}
		uc := NewRecordManager(store, nil, nil, nil, audit, nil)

		deleted, err := uc.Delete(ctx, testActor, entities.CollectionTenants, "t1", answer(true))
		if err != nil || !deleted {
			t.Fatalf("expected delete, got %v %v", deleted, err)
		}
		entries := audit.Entries()
		if len(entries) != 1 || entries[0].Action != "DELETE_TENANT" {
			t.Fatalf("unexpected audit %+v", entries)
		}
		if entries[0].Details["deletedData"].(entities.Document)["name"] != "Ana" {
			t.Fatalf("missing pre-image %+v", entries[0].Details)
		}
	})

	t.Run("pre-image failure does not block the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIRecordStore(ctrl)
		audit := &recordingAudit{}
		uc := NewRecordManager(store, nil, nil, nil, audit, nil)

		store.EXPECT().Get(gomock.Any(), "org1", entities.CollectionTenants, "t1").Return(nil, errors.New("timeout"))
		store.EXPECT().Delete(gomock.Any(), "org1", entities.CollectionTenants, "t1").Return(nil)

		deleted, err := uc.Delete(ctx, testActor, entities.CollectionTenants, "t1", answer(true))
		if err != nil || !deleted {
			t.Fatalf("expected delete, got %v %v", deleted, err)
		}
		if len(audit.Entries()) != 1 {
			t.Fatalf("expected one audit entry")
		}
	})

	t.Run("confirmer error", func(t *testing.T) {
		uc := NewRecordManager(memstore.NewStore(), nil, nil, nil, &recordingAudit{}, nil)
		_, err := uc.Delete(ctx, testActor, entities.CollectionTenants, "t1", confirmFunc(func(context.Context, entities.ConfirmationPrompt) (bool, error) {
			return false, context.Canceled
		}))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestRecordManager_CreateTenantAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions identity and links the tenant", func(t *testing.T) {
		store := memstore.NewStore()
		_, _ = store.Create(ctx, "org1", entities.CollectionTenants, entities.Document{"id": "t1", "name": "Ana", "email": "ana@acme.pe", "dni": "12345678"})
		users := memstore.NewUsers()
		audit := &recordingAudit{}
		uc := NewRecordManager(store, nil, memstore.NewIdentities(), users, audit, nil)

		updated, err := uc.CreateTenantAccess(ctx, testActor, "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated["hasAccess"] != true || updated["password"] != "12345678" || updated.String("uid") == "" {
			t.Fatalf("unexpected tenant %v", updated)
		}
		profile, _ := users.GetByID(ctx, updated.String("uid"))
		if profile.Role != entities.RoleTenant || profile.TenantDocID != "t1" || profile.OrgID != "org1" {
			t.Fatalf("unexpected profile %+v", profile)
		}
		e := audit.Entries()
		if len(e) != 1 || e[0].Action != "CREATE_TENANT_ACCESS" || e[0].Details["tenantEmail"] != "ana@acme.pe" {
			t.Fatalf("unexpected audit %+v", e)
		}
	})

	t.Run("email already in use keeps the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := memstore.NewStore()
		_, _ = store.Create(ctx, "org1", entities.CollectionTenants, entities.Document{"id": "t1", "name": "Ana", "email": "ana@acme.pe", "dni": "12345678"})
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		audit := &recordingAudit{}
		uc := NewRecordManager(store, nil, identity, users, audit, nil)

		identity.EXPECT().CreateIdentity(gomock.Any(), "ana@acme.pe", "12345678").Return("", interfaces.ErrEmailAlreadyInUse)

		_, err := uc.CreateTenantAccess(ctx, testActor, "t1")
		if !errors.Is(err, interfaces.ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
		tenant, _ := store.Get(ctx, "org1", entities.CollectionTenants, "t1")
		if tenant["name"] != "Ana" || tenant["hasAccess"] != nil {
			t.Fatalf("tenant should be unchanged: %v", tenant)
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("expected no audit entries")
		}
	})

	t.Run("missing dni", func(t *testing.T) {
		store := memstore.NewStore()
		_, _ = store.Create(ctx, "org1", entities.CollectionTenants, entities.Document{"id": "t1", "email": "ana@acme.pe"})
		uc := NewRecordManager(store, nil, memstore.NewIdentities(), memstore.NewUsers(), &recordingAudit{}, nil)
		if _, err := uc.CreateTenantAccess(ctx, testActor, "t1"); !errors.Is(err, ErrTenantAccessIncomplete) {
			t.Fatalf("expected ErrTenantAccessIncomplete, got %v", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		uc := NewRecordManager(memstore.NewStore(), nil, nil, nil, &recordingAudit{}, nil)
		if _, err := uc.CreateTenantAccess(ctx, testActor, "ghost"); !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})
}
