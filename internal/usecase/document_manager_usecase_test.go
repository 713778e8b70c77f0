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

func TestDocumentManager_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	store := memstore.NewStore()
	seedLease(t, store)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	audit := &recordingAudit{}
	uc := NewDocumentManager(store, storage, audit, nil)
	uc.now = fixedNow

	storage.EXPECT().Put(gomock.Any(), "documents/properties/p1/1749132202000_plano.pdf", gomock.Any()).Return("https://files/plano.pdf", nil)

	created, err := uc.UploadDocument(ctx, testActor, entities.CollectionProperties, "p1",
		entities.Upload{Name: "../plano.pdf", Body: strings.NewReader("pdf")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created["url"] != "https://files/plano.pdf" || created["name"] != "../plano.pdf" {
		t.Fatalf("unexpected metadata %v", created)
	}

	listed, err := uc.ListDocuments(ctx, testActor, entities.CollectionProperties, "p1")
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one document, got %v %v", listed, err)
	}

	e := audit.Entries()
	if len(e) != 1 || e[0].Action != "UPLOAD_DOCUMENT" || e[0].Section != "properties" || e[0].Details["parentId"] != "p1" {
		t.Fatalf("unexpected audit %+v", e)
	}
}

func TestDocumentManager_UploadUnknownParent(t *testing.T) {
	uc := NewDocumentManager(memstore.NewStore(), nil, &recordingAudit{}, nil)
	_, err := uc.UploadDocument(context.Background(), testActor, entities.CollectionProperties, "ghost", entities.Upload{Name: "a.pdf", Body: strings.NewReader("a")})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDocumentManager_Delete(t *testing.T) {
	ctx := context.Background()
	docsPath := entities.ChildCollection(entities.CollectionProperties, "p1", entities.SubcollectionDocuments)
	setup := func(t *testing.T) (*memstore.Store, *mock_interfaces.MockIObjectStorage, *recordingAudit, *DocumentManager) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		store := memstore.NewStore()
		seedLease(t, store)
		_, _ = store.Create(ctx, "org1", docsPath, entities.Document{"id": "d1", "name": "plano.pdf", "path": "documents/properties/p1/1_plano.pdf"})
		storage := mock_interfaces.NewMockIObjectStorage(ctrl)
		audit := &recordingAudit{}
		return store, storage, audit, NewDocumentManager(store, storage, audit, nil)
	}

	t.Run("unconfirmed keeps blob and metadata", func(t *testing.T) {
		store, _, audit, uc := setup(t)
		var prompt entities.ConfirmationPrompt
		ok, err := uc.DeleteDocument(ctx, testActor, entities.CollectionProperties, "p1", "d1", confirmFunc(func(_ context.Context, p entities.ConfirmationPrompt) (bool, error) {
			prompt = p
			return false, nil
		}))
		if err != nil || ok {
			t.Fatalf("expected no delete, got %v %v", ok, err)
		}
		if prompt.Message != `¿Seguro que quieres eliminar "plano.pdf"?` {
			t.Fatalf("unexpected prompt %q", prompt.Message)
		}
		if doc, _ := store.Get(ctx, "org1", docsPath, "d1"); doc == nil {
			t.Fatalf("metadata must survive")
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("expected no audit entries")
		}
	})

	t.Run("confirmed removes blob then metadata", func(t *testing.T) {
		store, storage, audit, uc := setup(t)
		storage.EXPECT().Delete(gomock.Any(), "documents/properties/p1/1_plano.pdf").Return(nil)
		ok, err := uc.DeleteDocument(ctx, testActor, entities.CollectionProperties, "p1", "d1", answer(true))
		if err != nil || !ok {
			t.Fatalf("expected delete, got %v %v", ok, err)
		}
		if doc, _ := store.Get(ctx, "org1", docsPath, "d1"); doc != nil {
			t.Fatalf("metadata must be removed")
		}
		e := audit.Entries()
		if len(e) != 1 || e[0].Action != "DELETE_DOCUMENT" || e[0].Details["documentName"] != "plano.pdf" {
			t.Fatalf("unexpected audit %+v", e)
		}
	})

	t.Run("missing blob still removes metadata", func(t *testing.T) {
		store, storage, audit, uc := setup(t)
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(interfaces.ErrObjectNotFound)
		ok, err := uc.DeleteDocument(ctx, testActor, entities.CollectionProperties, "p1", "d1", answer(true))
		if err != nil || !ok {
			t.Fatalf("expected delete, got %v %v", ok, err)
		}
		if doc, _ := store.Get(ctx, "org1", docsPath, "d1"); doc != nil {
			t.Fatalf("metadata must be removed")
		}
		e := audit.Entries()
		if len(e) != 1 || e[0].Action != "DELETE_DOCUMENT_RECORD" || e[0].Details["reason"] != "Archivo no encontrado en Storage." {
			t.Fatalf("unexpected audit %+v", e)
		}
	})

	t.Run("storage failure keeps metadata", func(t *testing.T) {
		store, storage, audit, uc := setup(t)
		storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("minio down"))
		if _, err := uc.DeleteDocument(ctx, testActor, entities.CollectionProperties, "p1", "d1", answer(true)); err == nil {
			t.Fatalf("expected error")
		}
		if doc, _ := store.Get(ctx, "org1", docsPath, "d1"); doc == nil {
			t.Fatalf("metadata must survive")
		}
		if len(audit.Entries()) != 0 {
			t.Fatalf("expected no audit entries")
		}
	})
}

func TestDocumentManager_ServiceReceipts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	store := memstore.NewStore()
	seedLease(t, store)
	storage := mock_interfaces.NewMockIObjectStorage(ctrl)
	audit := &recordingAudit{}
	uc := NewDocumentManager(store, storage, audit, nil)
	uc.now = fixedNow

	storage.EXPECT().Put(gomock.Any(), "serviceReceipts/t1/1749132202000_luz.jpg", gomock.Any()).Return("https://files/luz.jpg", nil)

	created, err := uc.UploadServiceReceipt(ctx, tenantActor, "t1", entities.Upload{Name: "luz.jpg", Body: strings.NewReader("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created["uploadedBy"] != "ana@acme.pe" {
		t.Fatalf("unexpected receipt %v", created)
	}
	receipts, err := uc.ListServiceReceipts(ctx, tenantActor, "t1")
	if err != nil || len(receipts) != 1 {
		t.Fatalf("expected one receipt, got %v %v", receipts, err)
	}
	e := audit.Entries()
	if len(e) != 1 || e[0].Action != "UPLOAD_SERVICE_RECEIPT" || e[0].Section != "Inquilinos" || e[0].Details["documentName"] != "luz.jpg" {
		t.Fatalf("unexpected audit %+v", e)
	}

	if _, err := uc.ListServiceReceipts(ctx, tenantActor, "ghost"); !errors.Is(err, ErrTenantNotFound) {
		t.Fatalf("expected ErrTenantNotFound, got %v", err)
	}
}
