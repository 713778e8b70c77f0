package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gestorpro/internal/domain/dates"
)

const DefaultToastTTL = 5 * time.Second

// Event types streamed to a session.
const (
	EventToast        = "toast"
	EventConfirmation = "confirmation"
	EventSnapshot     = "snapshot"
)

type Toast struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	ExpiresAt string `json:"expiresAt"`

	expires time.Time
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Feed is a session's toast queue plus its event fan-out. Slow subscribers lose
// events rather than block the publisher.
type Feed struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	toasts []Toast
	subs   map[int]chan Event
	nextID int
	closed bool
}

func NewFeed(ttl time.Duration) *Feed {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &Feed{ttl: ttl, now: time.Now, subs: map[int]chan Event{}}
}

// Toast queues a message that disappears after the feed's TTL.
func (f *Feed) Toast(title, message string) Toast {
	now := f.now()
	t := Toast{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: dates.Stamp(now),
		ExpiresAt: dates.Stamp(now.Add(f.ttl)),
		expires:   now.Add(f.ttl),
	}
	f.mu.Lock()
	f.toasts = append(f.prune(now), t)
	f.mu.Unlock()
	f.Publish(Event{Type: EventToast, Data: t})
	return t
}

// Active returns the toasts that have not expired yet, oldest first.
func (f *Feed) Active() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toasts = f.prune(f.now())
	return append([]Toast{}, f.toasts...)
}

func (f *Feed) prune(now time.Time) []Toast {
	kept := f.toasts[:0]
	for _, t := range f.toasts {
		if now.Before(t.expires) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (f *Feed) Publish(e Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe returns a buffered event channel and its cancel function. The
// channel is closed by cancel or when the feed closes.
func (f *Feed) Subscribe(buffer int) (<-chan Event, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan Event, buffer)
	if f.closed {
		close(ch)
		return ch, func() {}
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		})
	}
}

func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
	f.toasts = nil
}
