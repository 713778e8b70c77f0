package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/http/dto/response"
	"gestorpro/internal/adapter/http/handlers/mocks"
	"gestorpro/internal/usecase"
	"gestorpro/internal/usecase/interfaces"
)

func TestIntegrationHandler_LookupDNI(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "malformed", err: usecase.ErrInvalidDNI, wantStatus: http.StatusBadRequest},
		{name: "not found", err: interfaces.ErrNationalIDNotFound, wantStatus: http.StatusNotFound},
		{name: "no token", err: interfaces.ErrNationalIDNotConfigured, wantStatus: http.StatusServiceUnavailable},
		{name: "provider down", err: errors.New("dial tcp: refused"), wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIIntegrations(ctrl)
			h := NewIntegrationHandler(uc)

			r := newRouter(admin)
			r.POST("/v1/integrations/dni", h.LookupDNI)

			uc.EXPECT().LookupDNI(gomock.Any(), "12345678").Return("", tt.err)

			w := doJSON(r, http.MethodPost, "/v1/integrations/dni", `{"dni":"12345678"}`)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntegrations(ctrl)
		h := NewIntegrationHandler(uc)

		r := newRouter(admin)
		r.POST("/v1/integrations/dni", h.LookupDNI)

		uc.EXPECT().LookupDNI(gomock.Any(), "12345678").Return("ANA PEREZ ROJAS", nil)

		w := doJSON(r, http.MethodPost, "/v1/integrations/dni", `{"dni":"12345678"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp response.NameResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.FullName != "ANA PEREZ ROJAS" {
			t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
		}
	})
}

func TestIntegrationHandler_SendWhatsApp(t *testing.T) {
	t.Run("messaging not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntegrations(ctrl)
		h := NewIntegrationHandler(uc)

		r := newRouter(admin)
		r.POST("/v1/integrations/whatsapp", h.SendWhatsApp)

		uc.EXPECT().SendWhatsApp(gomock.Any(), admin, "+51999888777", "Hola").Return(interfaces.ErrMessagingNotConfigured)

		w := doJSON(r, http.MethodPost, "/v1/integrations/whatsapp", `{"phoneNumber":"+51999888777","message":"Hola"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIIntegrations(ctrl)
		h := NewIntegrationHandler(uc)

		r := newRouter(admin)
		r.POST("/v1/integrations/whatsapp", h.SendWhatsApp)

		uc.EXPECT().SendWhatsApp(gomock.Any(), admin, "+51999888777", "Hola").Return(nil)

		w := doJSON(r, http.MethodPost, "/v1/integrations/whatsapp", `{"phoneNumber":"+51999888777","message":"Hola"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
