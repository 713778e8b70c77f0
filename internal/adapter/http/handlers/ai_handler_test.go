package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/adapter/http/handlers/mocks"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
)

func TestAIHandler_Insights(t *testing.T) {
	t.Run("missing key is reported in the body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIAssistant(ctrl)
		h := NewAIHandler(uc)

		r := newRouter(admin)
		r.GET("/v1/ai/insights", h.Insights)

		uc.EXPECT().Insights(gomock.Any(), admin).
			Return(entities.AIFailed(entities.AIFailureMissingKey, "Configure la clave de Gemini en Ajustes."), nil)

		w := doJSON(r, http.MethodGet, "/v1/ai/insights", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var result entities.AIResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if result.OK || result.Failure != entities.AIFailureMissingKey {
			t.Fatalf("unexpected result %+v", result)
		}
	})
}

func TestAIHandler_TriageMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAIAssistant(ctrl)
	h := NewAIHandler(uc)

	r := newRouter(admin)
	r.POST("/v1/ai/triage", h.TriageMaintenance)

	uc.EXPECT().TriageMaintenance(gomock.Any(), admin, "Fuga de agua").Return(
		usecase.TriageSuggestion{Priority: entities.MaintenancePriorityAlta, EstimatedCost: "S/ 200", SuggestedMaterials: "Llave, cinta"},
		entities.AIResult{OK: true},
		nil,
	)

	w := doJSON(r, http.MethodPost, "/v1/ai/triage", `{"description":"Fuga de agua"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.TriageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Suggestion.EstimatedCost != "S/ 200" || !resp.Result.OK {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestAIHandler_Copilot(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unknown task", err: usecase.ErrUnknownCopilotTask, wantStatus: http.StatusBadRequest},
		{name: "empty text", err: usecase.ErrEmptyPrompt, wantStatus: http.StatusBadRequest},
		{name: "no organization", err: usecase.ErrOrganizationNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAIAssistant(ctrl)
			h := NewAIHandler(uc)

			r := newRouter(admin)
			r.POST("/v1/ai/copilot", h.Copilot)

			uc.EXPECT().Copilot(gomock.Any(), admin, "summarize", "texto").Return(entities.AIResult{}, tt.err)

			w := doJSON(r, http.MethodPost, "/v1/ai/copilot", `{"task":"summarize","text":"texto"}`)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestAIHandler_DraftContract(t *testing.T) {
	t.Run("rental not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIAssistant(ctrl)
		h := NewAIHandler(uc)

		r := newRouter(admin)
		r.POST("/v1/templates/:id/draft", h.DraftContract)

		uc.EXPECT().DraftContract(gomock.Any(), admin, "tpl1", "r1").Return(entities.AIResult{}, usecase.ErrRentalNotActive)

		w := doJSON(r, http.MethodPost, "/v1/templates/tpl1/draft", `{"rentalId":"r1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("rental id is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewAIHandler(mocks.NewMockIAIAssistant(ctrl))

		r := newRouter(admin)
		r.POST("/v1/templates/:id/draft", h.DraftContract)

		w := doJSON(r, http.MethodPost, "/v1/templates/tpl1/draft", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAIHandler_TenantChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAIAssistant(ctrl)
	h := NewAIHandler(uc)

	r := newRouter(renter)
	r.POST("/v1/portal/chat", h.TenantChat)

	uc.EXPECT().TenantChat(gomock.Any(), renter, "¿Cuándo vence mi pago?").Return(entities.AIText("El día 5 de cada mes."), nil)

	w := doJSON(r, http.MethodPost, "/v1/portal/chat", `{"question":"¿Cuándo vence mi pago?"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result entities.AIResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil || result.Text != "El día 5 de cada mes." {
		t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
	}
}
