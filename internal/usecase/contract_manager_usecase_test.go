package usecase

import (
	"context"
	"errors"
	"testing"

	"gestorpro/internal/adapter/persistence/memstore"
	"gestorpro/internal/domain/entities"
)

func newContractFixture(t *testing.T) (*ContractManager, *memstore.Store, *recordingAudit) {
	t.Helper()
	store := memstore.NewStore()
	seedLease(t, store)
	if _, err := store.Create(context.Background(), "org1", entities.CollectionContractTemplates,
		entities.Document{"id": "tpl1", "name": "Estándar", "content": "..."}); err != nil {
		t.Fatalf("seed template: %v", err)
	}
	audit := &recordingAudit{}
	uc := NewContractManager(store, audit, nil)
	uc.now = fixedNow
	return uc, store, audit
}

func TestContractManager_SaveAndList(t *testing.T) {
	ctx := context.Background()
	uc, _, audit := newContractFixture(t)

	saved, err := uc.Save(ctx, testActor, "tpl1", "r1", "Contrato de Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved["templateName"] != "Estándar" || saved["rentalId"] != "r1" || saved["createdAt"] != "2025-06-05T14:03:22.000Z" {
		t.Fatalf("unexpected contract %v", saved)
	}

	list, err := uc.List(ctx, testActor, "r1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].ID() != saved.ID() {
		t.Fatalf("expected the saved contract, got %v", list)
	}

	entries := audit.Entries()
	if len(entries) != 1 || entries[0].Action != "GENERATE_CONTRACT_FROM_TEMPLATE" || entries[0].Section != "Plantillas" {
		t.Fatalf("unexpected audit %+v", entries)
	}
	if entries[0].Details["rentalId"] != "r1" || entries[0].Details["templateId"] != "tpl1" {
		t.Fatalf("unexpected audit details %v", entries[0].Details)
	}
}

func TestContractManager_SaveErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		template string
		rental   string
		content  string
		prepare  func(t *testing.T, store *memstore.Store)
		want     error
	}{
		{name: "empty content", template: "tpl1", rental: "r1", content: "  ", want: ErrEmptyContract},
		{name: "unknown rental", template: "tpl1", rental: "r9", content: "x", want: ErrRentalNotFound},
		{name: "unknown template", template: "tpl9", rental: "r1", content: "x", want: ErrTemplateNotFound},
		{
			name: "finished lease", template: "tpl1", rental: "r1", content: "x", want: ErrRentalNotActive,
			prepare: func(t *testing.T, store *memstore.Store) {
				if _, err := store.Update(context.Background(), "org1", entities.CollectionRentals, "r1", entities.Document{"status": "Finalizado"}); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, audit := newContractFixture(t)
			if tt.prepare != nil {
				tt.prepare(t, store)
			}
			_, err := uc.Save(ctx, testActor, tt.template, tt.rental, tt.content)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(audit.Entries()) != 0 {
				t.Fatalf("no audit expected on failure")
			}
		})
	}
}

func TestContractManager_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("declined keeps the contract", func(t *testing.T) {
		uc, _, audit := newContractFixture(t)
		saved, _ := uc.Save(ctx, testActor, "tpl1", "r1", "texto")

		var prompt entities.ConfirmationPrompt
		ok, err := uc.Delete(ctx, testActor, "r1", saved.ID(), confirmFunc(func(_ context.Context, p entities.ConfirmationPrompt) (bool, error) {
			prompt = p
			return false, nil
		}))
		if err != nil || ok {
			t.Fatalf("expected no deletion, got %v %v", ok, err)
		}
		if prompt.Message != "¿Estás seguro de que quieres eliminar este contrato generado?" || prompt.ConfirmText != "Eliminar" {
			t.Fatalf("unexpected prompt %+v", prompt)
		}
		list, _ := uc.List(ctx, testActor, "r1")
		if len(list) != 1 || len(audit.Entries()) != 1 {
			t.Fatalf("contract must survive a declined prompt")
		}
	})

	t.Run("confirmed removes and audits", func(t *testing.T) {
		uc, _, audit := newContractFixture(t)
		saved, _ := uc.Save(ctx, testActor, "tpl1", "r1", "texto")

		ok, err := uc.Delete(ctx, testActor, "r1", saved.ID(), answer(true))
		if err != nil || !ok {
			t.Fatalf("expected deletion, got %v %v", ok, err)
		}
		list, _ := uc.List(ctx, testActor, "r1")
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %v", list)
		}
		last := audit.Entries()[1]
		if last.Action != "DELETE_GENERATED_CONTRACT" || last.Section != "Contratos" || last.Details["generatedContractId"] != saved.ID() {
			t.Fatalf("unexpected audit %+v", last)
		}
	})

	t.Run("unknown contract", func(t *testing.T) {
		uc, _, _ := newContractFixture(t)
		_, err := uc.Delete(ctx, testActor, "r1", "missing", answer(true))
		if !errors.Is(err, ErrGeneratedContractMissing) {
			t.Fatalf("expected ErrGeneratedContractMissing, got %v", err)
		}
	})
}
