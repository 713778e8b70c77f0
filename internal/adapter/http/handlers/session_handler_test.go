package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/session"
)

func TestSessionHandler_View(t *testing.T) {
	reg := openRegistry(t, admin)
	h := NewSessionHandler(reg, nil)

	r := newRouter(admin)
	r.GET("/v1/session/view", h.View)

	w := doJSON(r, http.MethodGet, "/v1/session/view", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view session.View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if view.OrgID != "org1" {
		t.Fatalf("expected org1, got %q", view.OrgID)
	}
}

func TestSessionHandler_Toasts(t *testing.T) {
	reg := openRegistry(t, admin)
	reg.Toast(admin.SessionID, "Nuevo", "Nueva solicitud para: Casa")
	h := NewSessionHandler(reg, nil)

	r := newRouter(admin)
	r.GET("/v1/session/toasts", h.Toasts)

	w := doJSON(r, http.MethodGet, "/v1/session/toasts", "")
	var toasts []session.Toast
	if err := json.Unmarshal(w.Body.Bytes(), &toasts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(toasts) != 1 || toasts[0].Message != "Nueva solicitud para: Casa" {
		t.Fatalf("unexpected toasts %+v", toasts)
	}
}

func TestSessionHandler_Answer(t *testing.T) {
	t.Run("missing confirmed flag", func(t *testing.T) {
		h := NewSessionHandler(openRegistry(t, admin), nil)
		r := newRouter(admin)
		r.POST("/v1/confirmations/:id", h.Answer)

		w := doJSON(r, http.MethodPost, "/v1/confirmations/abc", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown confirmation", func(t *testing.T) {
		h := NewSessionHandler(openRegistry(t, admin), nil)
		r := newRouter(admin)
		r.POST("/v1/confirmations/:id", h.Answer)

		w := doJSON(r, http.MethodPost, "/v1/confirmations/abc", `{"confirmed":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("declining resolves the prompt", func(t *testing.T) {
		reg := openRegistry(t, admin)
		h := NewSessionHandler(reg, nil)
		r := newRouter(admin)
		r.POST("/v1/confirmations/:id", h.Answer)

		pending, err := reg.Confirmer(admin.SessionID)
		if err != nil {
			t.Fatalf("confirmer: %v", err)
		}
		result := make(chan bool, 1)
		go func() {
			ok, _ := pending.Confirm(context.Background(), entities.ConfirmationPrompt{Title: "Eliminar"})
			result <- ok
		}()
		<-pending.Asked()

		w := doJSON(r, http.MethodPost, "/v1/confirmations/"+pending.ID(), `{"confirmed":false}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		select {
		case ok := <-result:
			if ok {
				t.Fatal("expected the prompt to be declined")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("prompt was not resolved")
		}
	})
}

func TestSessionHandler_EventsEndsWithSession(t *testing.T) {
	reg := openRegistry(t, admin)
	reg.Toast(admin.SessionID, "Hola", "Bienvenido")
	h := NewSessionHandler(reg, nil)

	r := newRouter(admin)
	r.GET("/v1/session/events", h.Events)

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/session/events", nil))
		done <- w
	}()

	time.Sleep(50 * time.Millisecond)
	reg.Close(admin.SessionID)

	select {
	case w := <-done:
		if !strings.Contains(w.Body.String(), "event:toast") || !strings.Contains(w.Body.String(), "Bienvenido") {
			t.Fatalf("expected the active toast in the stream, got %q", w.Body.String())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event stream did not end after the session closed")
	}
}
