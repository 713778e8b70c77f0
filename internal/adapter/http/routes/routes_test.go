package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/auth"
	"gestorpro/internal/adapter/http/handlers"
	"gestorpro/internal/adapter/http/handlers/mocks"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase"
)

type openSessions map[string]bool

func (s openSessions) Active(id string) bool { return s[id] }

type fixture struct {
	router   *gin.Engine
	tokens   *auth.TokenIssuer
	portal   *mocks.MockIPortal
	status   *mocks.MockIStatusTransitions
	records  *mocks.MockIRecordManager
	sessions openSessions
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &fixture{
		tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
		portal:   mocks.NewMockIPortal(ctrl),
		status:   mocks.NewMockIStatusTransitions(ctrl),
		records:  mocks.NewMockIRecordManager(ctrl),
		sessions: openSessions{},
	}
	reg := prometheus.NewRegistry()
	f.router = New(Dependencies{
		Handlers: Handlers{
			Auth:         handlers.NewAuthHandler(mocks.NewMockIAuth(ctrl), nil),
			Session:      handlers.NewSessionHandler(nil, nil),
			Records:      handlers.NewRecordHandler(f.records, nil, nil),
			Documents:    handlers.NewDocumentHandler(mocks.NewMockIDocumentManager(ctrl), mocks.NewMockIContractManager(ctrl), nil, nil),
			Status:       handlers.NewStatusHandler(f.status),
			AI:           handlers.NewAIHandler(mocks.NewMockIAIAssistant(ctrl)),
			Reports:      handlers.NewReportHandler(mocks.NewMockIDashboard(ctrl), mocks.NewMockIFinancialReports(ctrl), mocks.NewMockIActivityLog(ctrl)),
			Team:         handlers.NewTeamHandler(mocks.NewMockITeam(ctrl), nil, nil),
			Settings:     handlers.NewSettingsHandler(mocks.NewMockISettings(ctrl)),
			Integrations: handlers.NewIntegrationHandler(mocks.NewMockIIntegrations(ctrl)),
			Portal:       handlers.NewPortalHandler(f.portal, mocks.NewMockIRentCheckout(ctrl), false, nil),
		},
		Tokens:   f.tokens,
		Sessions: f.sessions,
		Metrics:  metrics.NewMetrics(reg),
		Gatherer: reg,
	})
	return f
}

func (f *fixture) token(t *testing.T, role entities.Role) string {
	t.Helper()
	actor := entities.Actor{UserID: "u-" + string(role), OrgID: "org1", Role: role, SessionID: "s-" + string(role)}
	if role == entities.RoleTenant {
		actor.TenantDocID = "t1"
	}
	f.sessions[actor.SessionID] = true
	tok, _, err := f.tokens.Issue(actor)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func (f *fixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_Public(t *testing.T) {
	f := newFixture(t)

	if w := f.do(http.MethodGet, "/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}
	if w := f.do(http.MethodGet, "/v1/records/properties", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("records without token: expected 401, got %d", w.Code)
	}

	w := f.do(http.MethodGet, "/metrics", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gestor_http_requests_total") {
		t.Fatal("expected the request counter to be exported")
	}
}

func TestRouter_RoleGates(t *testing.T) {
	cases := []struct {
		name   string
		role   entities.Role
		method string
		path   string
		want   int
	}{
		{"tenant cannot list records", entities.RoleTenant, http.MethodGet, "/v1/records/properties", http.StatusForbidden},
		{"admin has no portal", entities.RoleAdmin, http.MethodGet, "/v1/portal", http.StatusForbidden},
		{"gestor cannot manage the team", entities.RoleGestor, http.MethodGet, "/v1/team", http.StatusForbidden},
		{"gestor cannot read the activity log", entities.RoleGestor, http.MethodGet, "/v1/logs", http.StatusForbidden},
		{"contador cannot use the assistant", entities.RoleContador, http.MethodPost, "/v1/ai/copilot", http.StatusForbidden},
		{"contador cannot create records", entities.RoleContador, http.MethodPost, "/v1/records/properties", http.StatusForbidden},
		{"verificador cannot send whatsapp", entities.RoleVerificador, http.MethodPost, "/v1/integrations/whatsapp", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			w := f.do(tc.method, tc.path, f.token(t, tc.role), "")
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestRouter_ReachesHandlers(t *testing.T) {
	t.Run("tenant portal", func(t *testing.T) {
		f := newFixture(t)
		f.portal.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(usecase.PortalView{}, nil)

		w := f.do(http.MethodGet, "/v1/portal", f.token(t, entities.RoleTenant), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("verificador advances a payment", func(t *testing.T) {
		f := newFixture(t)
		f.status.EXPECT().AdvancePayment(gomock.Any(), gomock.Any(), "p1", entities.PaymentStatusVerificado).
			Return(usecase.TransitionResult{Record: entities.Document{"id": "p1"}}, nil)

		w := f.do(http.MethodPatch, "/v1/payments/p1/status", f.token(t, entities.RoleVerificador), `{"status":"Verificado"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("static form route wins over the record id", func(t *testing.T) {
		f := newFixture(t)
		w := f.do(http.MethodGet, "/v1/records/widgets/form", f.token(t, entities.RoleGestor), "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for an unknown collection form, got %d", w.Code)
		}
	})

	t.Run("closed session", func(t *testing.T) {
		f := newFixture(t)
		tok := f.token(t, entities.RoleAdmin)
		f.sessions["s-Admin"] = false

		w := f.do(http.MethodGet, "/v1/records/properties", tok, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
