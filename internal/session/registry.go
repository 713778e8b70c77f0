package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state of one login.
type Session struct {
	Actor    entities.Actor
	View     *ViewStore
	Events   *Feed
	OpenedAt time.Time

	cancel context.CancelFunc
}

// Registry opens a Session per login and tears it down on logout.
type Registry struct {
	feed     interfaces.ISnapshotFeed
	broker   *Broker
	toastTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

var _ interfaces.ISessionManager = (*Registry)(nil)

func NewRegistry(feed interfaces.ISnapshotFeed, broker *Broker, toastTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *Registry {
	return &Registry{
		feed:     feed,
		broker:   broker,
		toastTTL: toastTTL,
		metrics:  m,
		logger:   logging.OrNop(logger).Named("sessions"),
		sessions: map[string]*Session{},
	}
}

// Open attaches a new view for the actor's organization. The subscriptions
// outlive ctx; they end with Close.
func (r *Registry) Open(ctx context.Context, actor entities.Actor) error {
	if actor.SessionID == "" || actor.OrgID == "" {
		return ErrSessionNotFound
	}
	sctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	events := NewFeed(r.toastTTL)
	view := NewViewStore(r.feed, events, r.metrics, r.logger)
	if err := view.Attach(sctx, actor.OrgID, actor.Role != entities.RoleTenant); err != nil {
		view.Detach()
		cancel()
		return err
	}

	s := &Session{Actor: actor, View: view, Events: events, OpenedAt: time.Now(), cancel: cancel}
	r.mu.Lock()
	previous := r.sessions[actor.SessionID]
	r.sessions[actor.SessionID] = s
	r.mu.Unlock()
	if previous != nil {
		r.teardown(previous)
	} else {
		r.metrics.SessionOpened()
	}
	r.logger.Info("session opened", zap.String("org_id", actor.OrgID), zap.String("session_id", actor.SessionID), zap.String("role", string(actor.Role)))
	return nil
}

func (r *Registry) Close(sessionID string) {
	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()
	if !ok {
		return
	}
	r.teardown(s)
	r.metrics.SessionClosed()
	r.logger.Info("session closed", zap.String("org_id", s.Actor.OrgID), zap.String("session_id", sessionID))
}

// CloseAll ends every session, used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	for _, id := range ids {
		r.Close(id)
	}
}

func (r *Registry) Get(sessionID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	return s, ok
}

func (r *Registry) Active(sessionID string) bool {
	_, ok := r.Get(sessionID)
	return ok
}

// Confirmer reserves a confirmation id whose prompt is streamed to the session.
func (r *Registry) Confirmer(sessionID string) (*Pending, error) {
	s, ok := r.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return r.broker.Reserve(sessionID, s.Events.Publish), nil
}

func (r *Registry) Answer(sessionID, requestID string, confirmed bool) error {
	return r.broker.Answer(sessionID, requestID, confirmed)
}

// Toast queues a message on a live session; unknown sessions are ignored.
func (r *Registry) Toast(sessionID, title, message string) {
	if s, ok := r.Get(sessionID); ok {
		s.Events.Toast(title, message)
	}
}

func (r *Registry) teardown(s *Session) {
	s.View.Detach()
	r.broker.CancelSession(s.Actor.SessionID)
	s.Events.Close()
	s.cancel()
}
