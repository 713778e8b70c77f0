package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/metrics"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
)

type sessionSet map[string]bool

func (s sessionSet) Active(id string) bool { return s[id] }

var gestor = entities.Actor{UserID: "u1", Email: "g@acme.pe", OrgID: "org1", Role: entities.RoleGestor, SessionID: "s1"}

func whoami(c *gin.Context) {
	actor, ok := ActorFrom(c)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.String(http.StatusOK, actor.UserID)
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		r := gin.New()
		r.GET("/me", Authenticate(tokens, sessionSet{"s1": true}), whoami)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		tokens.EXPECT().Parse("bad").Return(entities.Actor{}, errors.New("expired"))
		r := gin.New()
		r.GET("/me", Authenticate(tokens, sessionSet{"s1": true}), whoami)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("closed session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		tokens.EXPECT().Parse("tok").Return(gestor, nil)
		r := gin.New()
		r.GET("/me", Authenticate(tokens, sessionSet{}), whoami)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("query token for event streams", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		tokens.EXPECT().Parse("tok").Return(gestor, nil)
		r := gin.New()
		r.GET("/me", Authenticate(tokens, sessionSet{"s1": true}), whoami)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me?access_token=tok", nil))
		if w.Code != http.StatusOK || w.Body.String() != "u1" {
			t.Fatalf("expected 200 u1, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		role   entities.Role
		action rbac.Action
		want   int
	}{
		{"gestor writes", entities.RoleGestor, rbac.ActionWrite, http.StatusOK},
		{"gestor cannot manage team", entities.RoleGestor, rbac.ActionTeam, http.StatusForbidden},
		{"tenant cannot read records", entities.RoleTenant, rbac.ActionRead, http.StatusForbidden},
		{"tenant uses portal", entities.RoleTenant, rbac.ActionPortal, http.StatusOK},
		{"admin has no portal", entities.RoleAdmin, rbac.ActionPortal, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actor := gestor
			actor.Role = tc.role
			r := gin.New()
			r.GET("/x", SetActor(actor), Require(tc.action), whoami)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("any listed action is enough", func(t *testing.T) {
		actor := gestor
		actor.Role = entities.RoleVerificador
		r := gin.New()
		r.GET("/x", SetActor(actor), Require(rbac.ActionWrite, rbac.ActionVerify), whoami)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRecoveryAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery(nil))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := w.Header().Get(RequestIDHeader); got != "req-1" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	r := gin.New()
	r.Use(Metrics(m), Logging(nil))
	r.GET("/records/:collection", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/records/payments", "/records/expenses"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	n, err := testutil.GatherAndCount(reg, "gestor_http_requests_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one series for the route template, got %d", n)
	}
}
