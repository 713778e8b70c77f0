package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrUnknownRequest = errors.New("unknown or expired confirmation request")
	ErrForeignRequest = errors.New("confirmation request belongs to another session")
)

const DefaultConfirmTimeout = 2 * time.Minute

// Broker correlates confirmation prompts with the answers posted back by the
// session that owns them. An unanswered prompt resolves to false after the timeout.
type Broker struct {
	timeout time.Duration
	metrics *metrics.Metrics
	now     func() time.Time

	mu      sync.Mutex
	pending map[string]*Pending
}

func NewBroker(timeout time.Duration, m *metrics.Metrics) *Broker {
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}
	return &Broker{timeout: timeout, metrics: m, now: time.Now, pending: map[string]*Pending{}}
}

// Pending is a reserved confirmation id. It is handed to a use case as its
// IConfirmer so the caller can return the id before the prompt is answered.
type Pending struct {
	id        string
	sessionID string
	broker    *Broker
	publish   func(Event)
	answer    chan bool
	asked     chan struct{}
	askOnce   sync.Once

	mu      sync.Mutex
	request entities.ConfirmationRequest
}

var _ interfaces.IConfirmer = (*Pending)(nil)

// Reserve registers a new correlation id for sessionID. publish receives the
// confirmation event once the prompt is known; it may be nil.
func (b *Broker) Reserve(sessionID string, publish func(Event)) *Pending {
	p := &Pending{
		id:        uuid.NewString(),
		sessionID: sessionID,
		broker:    b,
		publish:   publish,
		answer:    make(chan bool, 1),
		asked:     make(chan struct{}),
	}
	b.mu.Lock()
	b.pending[p.id] = p
	n := len(b.pending)
	b.mu.Unlock()
	b.metrics.SetPendingConfirmations(n)
	return p
}

// Answer resolves a pending prompt. Each prompt accepts one answer.
func (b *Broker) Answer(sessionID, id string, confirmed bool) error {
	b.mu.Lock()
	p, ok := b.pending[id]
	if !ok {
		b.mu.Unlock()
		return ErrUnknownRequest
	}
	if p.sessionID != sessionID {
		b.mu.Unlock()
		return ErrForeignRequest
	}
	delete(b.pending, id)
	n := len(b.pending)
	b.mu.Unlock()

	b.metrics.SetPendingConfirmations(n)
	p.answer <- confirmed
	return nil
}

// CancelSession answers false to every prompt of a closing session.
func (b *Broker) CancelSession(sessionID string) {
	b.mu.Lock()
	var owned []*Pending
	for id, p := range b.pending {
		if p.sessionID == sessionID {
			owned = append(owned, p)
			delete(b.pending, id)
		}
	}
	n := len(b.pending)
	b.mu.Unlock()

	b.metrics.SetPendingConfirmations(n)
	for _, p := range owned {
		p.answer <- false
	}
}

func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) forget(id string) {
	b.mu.Lock()
	delete(b.pending, id)
	n := len(b.pending)
	b.mu.Unlock()
	b.metrics.SetPendingConfirmations(n)
}

func (p *Pending) ID() string { return p.id }

// Asked is closed once the use case has shown its prompt.
func (p *Pending) Asked() <-chan struct{} { return p.asked }

func (p *Pending) Request() entities.ConfirmationRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.request
}

// Release drops a reservation whose prompt was never shown.
func (p *Pending) Release() {
	select {
	case <-p.asked:
	default:
		p.broker.forget(p.id)
	}
}

func (p *Pending) Confirm(ctx context.Context, prompt entities.ConfirmationPrompt) (bool, error) {
	first := false
	p.askOnce.Do(func() { first = true })
	if !first {
		return false, ErrUnknownRequest
	}

	deadline := p.broker.now().Add(p.broker.timeout)
	p.mu.Lock()
	p.request = entities.ConfirmationRequest{
		ID:        p.id,
		SessionID: p.sessionID,
		Prompt:    prompt,
		ExpiresAt: dates.Stamp(deadline),
	}
	req := p.request
	p.mu.Unlock()
	if p.publish != nil {
		p.publish(Event{Type: EventConfirmation, Data: req})
	}
	close(p.asked)

	timer := time.NewTimer(p.broker.timeout)
	defer timer.Stop()
	select {
	case confirmed := <-p.answer:
		return confirmed, nil
	case <-timer.C:
		p.broker.forget(p.id)
		return false, nil
	case <-ctx.Done():
		p.broker.forget(p.id)
		return false, ctx.Err()
	}
}
