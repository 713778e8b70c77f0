package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/adapter/http/handlers/mocks"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
)

func TestStatusHandler_AdvancePayment(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "missing status", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_REQUEST"},
		{name: "not found", body: `{"status":"Pagado"}`, err: usecase.ErrPaymentNotFound, wantStatus: http.StatusNotFound, wantCode: "PAYMENT_NOT_FOUND"},
		{name: "backwards", body: `{"status":"Pagado"}`, err: usecase.ErrInvalidTransition, wantStatus: http.StatusConflict, wantCode: "INVALID_TRANSITION"},
		{name: "forbidden", body: `{"status":"Pagado"}`, err: usecase.ErrTransitionForbidden, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "store failure", body: `{"status":"Pagado"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIStatusTransitions(ctrl)
			h := NewStatusHandler(uc)

			r := newRouter(admin)
			r.PATCH("/v1/payments/:id/status", h.AdvancePayment)

			if tt.err != nil {
				uc.EXPECT().AdvancePayment(gomock.Any(), admin, "p1", entities.PaymentStatusPagado).Return(usecase.TransitionResult{}, tt.err)
			}

			w := doJSON(r, http.MethodPatch, "/v1/payments/p1/status", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if body := decodeError(t, w); body.Code != tt.wantCode {
				t.Fatalf("expected %s, got %s", tt.wantCode, body.Code)
			}
		})
	}

	t.Run("notification failure does not fail the transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIStatusTransitions(ctrl)
		h := NewStatusHandler(uc)

		r := newRouter(admin)
		r.PATCH("/v1/payments/:id/status", h.AdvancePayment)

		uc.EXPECT().AdvancePayment(gomock.Any(), admin, "p1", entities.PaymentStatusVerificado).Return(usecase.TransitionResult{
			Record:    entities.Document{"id": "p1", "status": "Verificado"},
			NotifyErr: errors.New("twilio down"),
		}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/payments/p1/status", `{"status":"Verificado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp response.TransitionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Notified || resp.NotifyError != "twilio down" || resp.Record["status"] != "Verificado" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})
}

func TestStatusHandler_AdvanceExpense(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIStatusTransitions(ctrl)
	h := NewStatusHandler(uc)

	r := newRouter(admin)
	r.PATCH("/v1/expenses/:id/status", h.AdvanceExpense)

	uc.EXPECT().AdvanceExpense(gomock.Any(), admin, "missing", entities.ExpenseStatusVerificado).Return(usecase.TransitionResult{}, usecase.ErrExpenseNotFound)

	w := doJSON(r, http.MethodPatch, "/v1/expenses/missing/status", `{"status":"Verificado"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
