// Package session owns the per-login state of the API: the live view of an
// organization's records, the toast queue, and pending confirmations.
package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

// WatchedCollections are subscribed for every staff session.
var WatchedCollections = []string{
	entities.CollectionProperties,
	entities.CollectionTenants,
	entities.CollectionRentals,
	entities.CollectionPayments,
	entities.CollectionMaintenance,
	entities.CollectionExpenses,
	entities.CollectionLogs,
	entities.CollectionContractTemplates,
}

const (
	DefaultSuppressWindow = 3 * time.Second

	NewMaintenanceTitle   = "Nuevo Mantenimiento"
	unknownPropertyName   = "Propiedad Desconocida"
	newMaintenanceMessage = "Nueva solicitud para: %s"
)

// View is a render-ready copy of the watched collections.
type View struct {
	OrgID             string                 `json:"orgId"`
	Organization      *entities.Organization `json:"organization"`
	Properties        []entities.Document    `json:"properties"`
	Tenants           []entities.Document    `json:"tenants"`
	Rentals           []entities.Document    `json:"rentals"`
	Payments          []entities.Document    `json:"payments"`
	Maintenance       []entities.Document    `json:"maintenance"`
	Expenses          []entities.Document    `json:"expenses"`
	Logs              []entities.Document    `json:"logs"`
	ContractTemplates []entities.Document    `json:"contractTemplates"`
}

// ViewStore keeps one organization's collections current from snapshot callbacks.
// Each snapshot replaces its slice wholesale. Attach and Detach bump a generation
// counter so callbacks of a torn-down subscription set are dropped.
type ViewStore struct {
	feed     interfaces.ISnapshotFeed
	sink     Sink
	suppress time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time

	mu             sync.Mutex
	generation     uint64
	orgID          string
	attachedAt     time.Time
	collections    map[string][]entities.Document
	failed         map[string]bool
	org            *entities.Organization
	maintenanceIDs map[string]struct{}
	cancels        []func()
}

// Sink receives the toasts and change events a ViewStore produces.
type Sink interface {
	Toast(title, message string) Toast
	Publish(e Event)
}

func NewViewStore(feed interfaces.ISnapshotFeed, sink Sink, m *metrics.Metrics, logger *zap.Logger) *ViewStore {
	s := &ViewStore{
		feed:     feed,
		sink:     sink,
		suppress: DefaultSuppressWindow,
		metrics:  m,
		logger:   logging.OrNop(logger).Named("reconciler"),
		now:      time.Now,
	}
	s.reset()
	return s
}

// Attach tears down any previous subscriptions and subscribes to orgID. Tenant
// sessions only follow the organization settings. A collection that fails to
// subscribe is logged and left empty; the rest still attach.
func (s *ViewStore) Attach(ctx context.Context, orgID string, staff bool) error {
	s.Detach()

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.orgID = orgID
	s.attachedAt = s.now()
	s.mu.Unlock()

	cancel, err := s.feed.WatchOrganization(ctx, orgID,
		func(org entities.Organization) { s.applyOrganization(gen, org) },
		func(err error) { s.fail(gen, "organization", err) })
	if err != nil {
		return fmt.Errorf("watch organization: %w", err)
	}
	s.keep(gen, cancel)

	if !staff {
		return nil
	}
	for _, collection := range WatchedCollections {
		collection := collection
		cancel, err := s.feed.Watch(ctx, orgID, collection,
			func(docs []entities.Document) { s.apply(gen, collection, docs) },
			func(err error) { s.fail(gen, collection, err) })
		if err != nil {
			s.fail(gen, collection, err)
			continue
		}
		s.keep(gen, cancel)
	}
	return nil
}

// Detach cancels every subscription and empties the view before returning.
func (s *ViewStore) Detach() {
	s.mu.Lock()
	s.generation++
	cancels := s.cancels
	s.reset()
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (s *ViewStore) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		OrgID:             s.orgID,
		Properties:        cloneAll(s.collections[entities.CollectionProperties]),
		Tenants:           cloneAll(s.collections[entities.CollectionTenants]),
		Rentals:           cloneAll(s.collections[entities.CollectionRentals]),
		Payments:          cloneAll(s.collections[entities.CollectionPayments]),
		Maintenance:       cloneAll(s.collections[entities.CollectionMaintenance]),
		Expenses:          cloneAll(s.collections[entities.CollectionExpenses]),
		Logs:              cloneAll(s.collections[entities.CollectionLogs]),
		ContractTemplates: cloneAll(s.collections[entities.CollectionContractTemplates]),
	}
	if s.org != nil {
		org := *s.org
		v.Organization = &org
	}
	return v
}

// Collection returns the current slice of one watched collection.
func (s *ViewStore) Collection(name string) []entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.collections[name])
}

func (s *ViewStore) Find(collection, id string) (entities.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.collections[collection] {
		if d.ID() == id {
			return d.Clone(), true
		}
	}
	return nil, false
}

func (s *ViewStore) apply(gen uint64, collection string, docs []entities.Document) {
	s.mu.Lock()
	if gen != s.generation || s.failed[collection] {
		s.mu.Unlock()
		return
	}
	next := make([]entities.Document, 0, len(docs))
	for _, d := range docs {
		if d.ID() == "" {
			continue
		}
		next = append(next, d.Clone())
	}
	if collection == entities.CollectionLogs {
		sort.SliceStable(next, func(i, j int) bool { return next[i].String("timestamp") > next[j].String("timestamp") })
	}

	var toasts []string
	if collection == entities.CollectionMaintenance {
		announce := s.now().Sub(s.attachedAt) >= s.suppress
		ids := make(map[string]struct{}, len(next))
		for _, d := range next {
			ids[d.ID()] = struct{}{}
			if _, seen := s.maintenanceIDs[d.ID()]; seen || !announce {
				continue
			}
			toasts = append(toasts, fmt.Sprintf(newMaintenanceMessage, s.propertyName(d.String("propertyId"))))
		}
		s.maintenanceIDs = ids
	}
	s.collections[collection] = next
	s.mu.Unlock()

	s.metrics.SnapshotDelivered(collection, true)
	s.sink.Publish(Event{Type: EventSnapshot, Data: map[string]any{"collection": collection, "count": len(next)}})
	for _, msg := range toasts {
		s.sink.Toast(NewMaintenanceTitle, msg)
	}
}

func (s *ViewStore) applyOrganization(gen uint64, org entities.Organization) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.org = &org
}

func (s *ViewStore) fail(gen uint64, collection string, err error) {
	s.mu.Lock()
	current := gen == s.generation
	if current {
		s.failed[collection] = true
	}
	orgID := s.orgID
	s.mu.Unlock()
	if !current {
		return
	}
	s.metrics.SnapshotDelivered(collection, false)
	s.logger.Error("subscription failed", zap.String("org_id", orgID), zap.String("collection", collection), zap.Error(err))
}

// keep stores cancel for the current generation, or runs it when a newer
// Attach/Detach already happened.
func (s *ViewStore) keep(gen uint64, cancel func()) {
	s.mu.Lock()
	if gen == s.generation {
		s.cancels = append(s.cancels, cancel)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	cancel()
}

// propertyName must be called with mu held.
func (s *ViewStore) propertyName(id string) string {
	for _, p := range s.collections[entities.CollectionProperties] {
		if p.ID() == id && p.String("name") != "" {
			return p.String("name")
		}
	}
	return unknownPropertyName
}

func (s *ViewStore) reset() {
	s.orgID = ""
	s.collections = map[string][]entities.Document{}
	s.failed = map[string]bool{}
	s.org = nil
	s.maintenanceIDs = map[string]struct{}{}
	s.cancels = nil
}

func cloneAll(docs []entities.Document) []entities.Document {
	out := make([]entities.Document, len(docs))
	for i, d := range docs {
		out[i] = d.Clone()
	}
	return out
}
