package usecase

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/usecase/interfaces"
)

var ErrActivityLogForbidden = errors.New("only administrators can read the activity log")

type FieldChange struct {
	Field  string `json:"field"`
	Before any    `json:"before"`
	After  any    `json:"after"`
}

// ActivityEntry is an audit entry ready for the activity page. Changes is only
// set for UPDATE_ entries whose details carry before and after objects.
type ActivityEntry struct {
	entities.AuditEntry
	Changes []FieldChange `json:"changes,omitempty"`
}

type IActivityLog interface {
	List(ctx context.Context, actor entities.Actor) ([]ActivityEntry, error)
}

type ActivityLog struct {
	store interfaces.IRecordStore
}

var _ IActivityLog = (*ActivityLog)(nil)

func NewActivityLog(store interfaces.IRecordStore) *ActivityLog {
	return &ActivityLog{store: store}
}

func (u *ActivityLog) List(ctx context.Context, actor entities.Actor) ([]ActivityEntry, error) {
	if !rbac.Can(actor.Role, rbac.ActionAudit) {
		return nil, ErrActivityLogForbidden
	}
	docs, err := u.store.List(ctx, actor.OrgID, entities.CollectionLogs, entities.Query{OrderBy: "timestamp", Descending: true})
	if err != nil {
		return nil, err
	}
	out := make([]ActivityEntry, 0, len(docs))
	for _, d := range docs {
		var entry entities.AuditEntry
		if err := entities.Decode(d, &entry); err != nil {
			return nil, err
		}
		if entry.Section == "" {
			entry.Section = "General"
		}
		out = append(out, ActivityEntry{AuditEntry: entry, Changes: Changes(entry)})
	}
	return out, nil
}

// Changes lists the keys whose value differs between details.before and
// details.after, sorted by key.
func Changes(entry entities.AuditEntry) []FieldChange {
	if !strings.HasPrefix(entry.Action, "UPDATE_") {
		return nil
	}
	before, ok := asObject(entry.Details["before"])
	if !ok {
		return nil
	}
	after, ok := asObject(entry.Details["after"])
	if !ok {
		return nil
	}
	keys := map[string]struct{}{}
	for k := range before {
		keys[k] = struct{}{}
	}
	for k := range after {
		keys[k] = struct{}{}
	}
	changes := []FieldChange{}
	for k := range keys {
		if !reflect.DeepEqual(before[k], after[k]) {
			changes = append(changes, FieldChange{Field: k, Before: before[k], After: after[k]})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Field < changes[j].Field })
	return changes
}

func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case entities.Document:
		return m, m != nil
	}
	return nil, false
}
