package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/query"
	"github.com/presently-app/presently/internal/storage"
)

// persistedPeople is the durable snapshot shape. Sort options survive a
// restart; filters are transient and never persisted.
type persistedPeople struct {
	People      []models.Person         `json:"people"`
	SortOptions query.PeopleSortOptions `json:"sort_options"`
}

// PeopleStore owns the people collection. All mutations are serialized
// behind the store mutex; persistence is fire-and-forget.
type PeopleStore struct {
	mu      sync.Mutex
	people  []models.Person
	loading bool
	err     error
	filters query.PeopleFilters
	sort    query.PeopleSortOptions

	persist *persister
	hub     *Hub
	now     func() time.Time
}

// NewPeopleStore loads the persisted collection (falling back to empty state
// if the payload is missing or malformed) and starts the background writer.
func NewPeopleStore(ctx context.Context, kv storage.KV) *PeopleStore {
	s := &PeopleStore{
		sort: query.DefaultPeopleSort(),
		hub:  NewHub(),
		now:  time.Now,
	}
	s.load(ctx, kv)
	s.persist = newPersister(kv, constants.PeopleStorageKey, s.setError)
	return s
}

func (s *PeopleStore) load(ctx context.Context, kv storage.KV) {
	s.loading = true
	defer func() { s.loading = false }()

	payload, ok, err := kv.Get(ctx, constants.PeopleStorageKey)
	if err != nil {
		logger.Error("Failed to read persisted people", "error", err)
		s.err = err
		return
	}
	if !ok {
		return
	}

	var persisted persistedPeople
	if err := json.Unmarshal([]byte(payload), &persisted); err != nil {
		logger.Warn("Persisted people state is malformed, starting empty", "error", err)
		return
	}
	s.people = persisted.People
	if persisted.SortOptions.Field != "" {
		s.sort = persisted.SortOptions
	}
}

func (s *PeopleStore) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *PeopleStore) snapshotLocked() string {
	payload, err := json.Marshal(persistedPeople{People: s.people, SortOptions: s.sort})
	if err != nil {
		logger.Error("Failed to serialize people", "error", err)
		return ""
	}
	return string(payload)
}

func (s *PeopleStore) persistAndNotify(payload string) {
	if payload != "" {
		s.persist.enqueue(payload)
	}
	s.hub.Broadcast()
}

// Add creates a person from form data, assigning id and timestamps. The new
// person is in the collection before Add returns.
func (s *PeopleStore) Add(data models.PersonFormData) models.Person {
	s.mu.Lock()
	now := nowRFC3339(s.now)
	person := models.Person{
		ID:                 newID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Name:               data.Name,
		PhotoURI:           data.PhotoURI,
		Relationship:       data.Relationship,
		CustomRelationship: data.CustomRelationship,
		Dates:              data.Dates,
		Notes:              data.Notes,
		Sizes:              data.Sizes,
		Interests:          data.Interests,
		Allergies:          data.Allergies,
		BudgetAmount:       data.BudgetAmount,
		BudgetCurrency:     data.BudgetCurrency,
	}
	if person.BudgetCurrency == "" {
		person.BudgetCurrency = models.CurrencyUSD
	}
	s.people = append(s.people, person)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
	return person
}

// Update merges the patch into the person with the given id and bumps
// updated_at. A missing id is a silent no-op.
func (s *PeopleStore) Update(id string, patch models.PersonPatch) {
	s.mu.Lock()
	updated := false
	for i := range s.people {
		if s.people[i].ID == id {
			patch.Apply(&s.people[i])
			s.people[i].UpdatedAt = nowRFC3339(s.now)
			updated = true
			break
		}
	}
	if !updated {
		s.mu.Unlock()
		return
	}
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// Delete removes the person with the given id. A missing id is a silent
// no-op. Callers are responsible for cascading to the person's gifts and
// occasions via the sibling stores.
func (s *PeopleStore) Delete(id string) {
	s.mu.Lock()
	kept := s.people[:0]
	removed := false
	for _, p := range s.people {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.people = kept
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// Get returns the person with the given id, reporting ok=false when absent.
func (s *PeopleStore) Get(id string) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.people {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

// List returns a copy of the collection in insertion order.
func (s *PeopleStore) List() []models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Person(nil), s.people...)
}

// Import appends already-formed people (bulk restore). Ids and timestamps
// are taken as-is.
func (s *PeopleStore) Import(people []models.Person) {
	s.mu.Lock()
	s.people = append(s.people, people...)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// SetFilters replaces the transient filter config.
func (s *PeopleStore) SetFilters(filters query.PeopleFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
	s.hub.Broadcast()
}

// ClearFilters resets the transient filter config.
func (s *PeopleStore) ClearFilters() {
	s.SetFilters(query.PeopleFilters{})
}

// SetSortOptions replaces the sort config. Sort options are part of the
// persisted snapshot.
func (s *PeopleStore) SetSortOptions(opts query.PeopleSortOptions) {
	s.mu.Lock()
	s.sort = opts
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// Filtered projects the collection through the current filter and sort
// config.
func (s *PeopleStore) Filtered() []models.Person {
	s.mu.Lock()
	people := append([]models.Person(nil), s.people...)
	filters := s.filters
	sortOpts := s.sort
	s.mu.Unlock()
	return query.ProjectPeople(people, filters, sortOpts)
}

// ByRelationship returns people in the given relationship category, in
// insertion order.
func (s *PeopleStore) ByRelationship(rel models.RelationshipCategory) []models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Person
	for _, p := range s.people {
		if p.Relationship == rel {
			out = append(out, p)
		}
	}
	return out
}

// Err returns the store's error slot, set by background persistence
// failures. It never blocks mutations.
func (s *PeopleStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Loading reports whether the initial load is still in progress.
func (s *PeopleStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Subscribe registers a change subscriber; see Hub.Subscribe.
func (s *PeopleStore) Subscribe(selector func() any, handler func(any)) (cancel func()) {
	return s.hub.Subscribe(selector, handler)
}

// Reset restores the initial empty state and clears this store's persisted
// key. The clear goes through the persister so it lands after any snapshot
// write already in flight.
func (s *PeopleStore) Reset() {
	s.mu.Lock()
	s.people = nil
	s.filters = query.PeopleFilters{}
	s.sort = query.DefaultPeopleSort()
	s.err = nil
	s.loading = false
	s.mu.Unlock()

	s.persist.enqueueRemove()
	s.hub.Broadcast()
}

// Close flushes the pending persistence write and reports the last
// background persistence failure, if any.
func (s *PeopleStore) Close() error {
	s.persist.close()
	return s.Err()
}
