package usecase

import (
	"context"
	"sync"

	"gestorpro/internal/domain/entities"
)

type loggedEntry struct {
	Actor   entities.Actor
	Action  string
	Section string
	Details map[string]any
}

// recordingAudit keeps audit calls in memory.
type recordingAudit struct {
	mu      sync.Mutex
	entries []loggedEntry
}

func (r *recordingAudit) Log(_ context.Context, actor entities.Actor, action, section string, details map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, loggedEntry{Actor: actor, Action: action, Section: section, Details: details})
}

func (r *recordingAudit) Replay(context.Context) (int, error) { return 0, nil }

func (r *recordingAudit) Entries() []loggedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]loggedEntry(nil), r.entries...)
}

type confirmFunc func(ctx context.Context, prompt entities.ConfirmationPrompt) (bool, error)

func (f confirmFunc) Confirm(ctx context.Context, prompt entities.ConfirmationPrompt) (bool, error) {
	return f(ctx, prompt)
}

func answer(v bool) confirmFunc {
	return func(context.Context, entities.ConfirmationPrompt) (bool, error) { return v, nil }
}
