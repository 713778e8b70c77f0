package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/http/handlers/mocks"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
)

func uploadRequest(t *testing.T, path, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("files", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestDocumentHandler_UploadDocument(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), mocks.NewMockIContractManager(ctrl), openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.POST("/v1/records/:collection/:id/documents", h.UploadDocument)

		w := doJSON(r, http.MethodPost, "/v1/records/properties/p1/documents", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stores the file under the parent record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockIDocumentManager(ctrl)
		h := NewDocumentHandler(docs, mocks.NewMockIContractManager(ctrl), openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.POST("/v1/records/:collection/:id/documents", h.UploadDocument)

		docs.EXPECT().UploadDocument(gomock.Any(), admin, "properties", "p1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, _, _ string, up entities.Upload) (entities.Document, error) {
				body, _ := io.ReadAll(up.Body)
				if up.Name != "titulo.pdf" || string(body) != "%PDF" {
					t.Fatalf("unexpected upload %s %q", up.Name, body)
				}
				return entities.Document{"id": "d1", "name": "titulo.pdf"}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "/v1/records/properties/p1/documents", "titulo.pdf", "%PDF"))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("collection without documents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		docs := mocks.NewMockIDocumentManager(ctrl)
		h := NewDocumentHandler(docs, mocks.NewMockIContractManager(ctrl), openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.POST("/v1/records/:collection/:id/documents", h.UploadDocument)

		docs.EXPECT().UploadDocument(gomock.Any(), admin, "payments", "p1", gomock.Any()).
			Return(nil, usecase.ErrAttachmentsNotSupported)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, uploadRequest(t, "/v1/records/payments/p1/documents", "x.pdf", "x"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "ATTACHMENTS_NOT_SUPPORTED" {
			t.Fatalf("expected ATTACHMENTS_NOT_SUPPORTED, got %s", body.Code)
		}
	})
}

func TestDocumentHandler_UploadOwnReceipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	docs := mocks.NewMockIDocumentManager(ctrl)
	h := NewDocumentHandler(docs, mocks.NewMockIContractManager(ctrl), openRegistry(t, renter), nil)

	r := newRouter(renter)
	r.POST("/v1/portal/receipts", h.UploadOwnReceipt)

	docs.EXPECT().UploadServiceReceipt(gomock.Any(), renter, renter.TenantDocID, gomock.Any()).
		Return(entities.Document{"id": "sr1", "tenantId": "t1"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "/v1/portal/receipts", "luz.jpg", "jpeg"))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestDocumentHandler_Contracts(t *testing.T) {
	t.Run("save requires content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), mocks.NewMockIContractManager(ctrl), openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.POST("/v1/rentals/:id/contracts", h.SaveContract)

		w := doJSON(r, http.MethodPost, "/v1/rentals/r1/contracts", `{"templateId":"tpl1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save for an unknown template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockIContractManager(ctrl)
		h := NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), contracts, openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.POST("/v1/rentals/:id/contracts", h.SaveContract)

		contracts.EXPECT().Save(gomock.Any(), admin, "tpl1", "r1", "Contrato...").Return(nil, usecase.ErrTemplateNotFound)

		w := doJSON(r, http.MethodPost, "/v1/rentals/r1/contracts", `{"templateId":"tpl1","content":"Contrato..."}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockIContractManager(ctrl)
		h := NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), contracts, openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.GET("/v1/rentals/:id/contracts", h.ListContracts)

		contracts.EXPECT().List(gomock.Any(), admin, "r1").Return([]entities.Document{{"id": "c1"}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/rentals/r1/contracts", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete of a missing contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockIContractManager(ctrl)
		h := NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), contracts, openRegistry(t, admin), nil)

		r := newRouter(admin)
		r.DELETE("/v1/rentals/:id/contracts/:contractId", h.DeleteContract)

		contracts.EXPECT().Delete(gomock.Any(), admin, "r1", "c9", gomock.Any()).Return(false, usecase.ErrGeneratedContractMissing)

		w := doJSON(r, http.MethodDelete, "/v1/rentals/r1/contracts/c9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
