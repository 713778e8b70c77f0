package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"gestorpro/internal/adapter/http/middleware"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/session"
	mock_interfaces "gestorpro/internal/usecase/interfaces/mocks"
	"gestorpro/pkg"
)

var (
	admin  = entities.Actor{UserID: "u1", Email: "admin@acme.pe", OrgID: "org1", Role: entities.RoleAdmin, SessionID: "s1"}
	renter = entities.Actor{UserID: "u9", Email: "ana@mail.pe", OrgID: "org1", Role: entities.RoleTenant, SessionID: "s9", TenantDocID: "t1"}
)

// openRegistry returns a registry with a live session for actor over a feed
// that never delivers snapshots.
func openRegistry(t *testing.T, actor entities.Actor) *session.Registry {
	t.Helper()
	ctrl := gomock.NewController(t)
	feed := mock_interfaces.NewMockISnapshotFeed(ctrl)
	feed.EXPECT().WatchOrganization(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(func() {}, nil).AnyTimes()
	feed.EXPECT().Watch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(func() {}, nil).AnyTimes()

	reg := session.NewRegistry(feed, session.NewBroker(5*time.Second, nil), 0, nil, nil)
	if err := reg.Open(context.Background(), actor); err != nil {
		t.Fatalf("open session: %v", err)
	}
	t.Cleanup(reg.CloseAll)
	return reg
}

func newRouter(actor entities.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SetActor(actor))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return body
}
