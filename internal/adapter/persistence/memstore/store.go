// Package memstore keeps records, organizations and users in process memory with the
// same semantics as the DynamoDB repositories. It backs tests and store.driver=memory.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("record id already exists")

type Store struct {
	mu   sync.RWMutex
	data map[string]map[string]entities.Document
}

var _ interfaces.IRecordStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: map[string]map[string]entities.Document{}}
}

func key(orgID, collection string) string {
	return orgID + "#" + collection
}

func (s *Store) Create(_ context.Context, orgID, collection string, doc entities.Document) (entities.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := doc.Clone()
	if item == nil {
		item = entities.Document{}
	}
	if item.ID() == "" {
		item[entities.FieldID] = uuid.NewString()
	}
	bucket := s.data[key(orgID, collection)]
	if bucket == nil {
		bucket = map[string]entities.Document{}
		s.data[key(orgID, collection)] = bucket
	}
	if _, exists := bucket[item.ID()]; exists {
		return nil, ErrDuplicateID
	}
	bucket[item.ID()] = item
	return item.Clone(), nil
}

func (s *Store) Get(_ context.Context, orgID, collection, id string) (entities.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key(orgID, collection)][id].Clone(), nil
}

func (s *Store) Update(_ context.Context, orgID, collection, id string, patch entities.Document) (entities.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.data[key(orgID, collection)]
	current, ok := bucket[id]
	if !ok {
		return nil, nil
	}
	next := current.Merge(patch)
	next[entities.FieldID] = id
	bucket[id] = next
	return next.Clone(), nil
}

func (s *Store) Delete(_ context.Context, orgID, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[key(orgID, collection)], id)
	return nil
}

func (s *Store) List(_ context.Context, orgID, collection string, q entities.Query) ([]entities.Document, error) {
	s.mu.RLock()
	bucket := s.data[key(orgID, collection)]
	out := make([]entities.Document, 0, len(bucket))
	for _, d := range bucket {
		if q.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	s.mu.RUnlock()

	// Map iteration order is random; fall back to id order so listings are stable.
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	q.Sort(out)
	return out, nil
}
