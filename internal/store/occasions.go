package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

type persistedOccasions struct {
	Occasions []models.Occasion `json:"occasions"`
}

// OccasionStore owns the occasion collection. Occasions carry no transient
// filter/sort config; consumers use the aggregate queries instead.
type OccasionStore struct {
	mu        sync.Mutex
	occasions []models.Occasion
	loading   bool
	err       error

	persist *persister
	hub     *Hub
	now     func() time.Time
}

func NewOccasionStore(ctx context.Context, kv storage.KV) *OccasionStore {
	s := &OccasionStore{
		hub: NewHub(),
		now: time.Now,
	}
	s.load(ctx, kv)
	s.persist = newPersister(kv, constants.OccasionsStorageKey, s.setError)
	return s
}

func (s *OccasionStore) load(ctx context.Context, kv storage.KV) {
	s.loading = true
	defer func() { s.loading = false }()

	payload, ok, err := kv.Get(ctx, constants.OccasionsStorageKey)
	if err != nil {
		logger.Error("Failed to read persisted occasions", "error", err)
		s.err = err
		return
	}
	if !ok {
		return
	}

	var persisted persistedOccasions
	if err := json.Unmarshal([]byte(payload), &persisted); err != nil {
		logger.Warn("Persisted occasion state is malformed, starting empty", "error", err)
		return
	}
	s.occasions = persisted.Occasions
}

func (s *OccasionStore) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *OccasionStore) snapshotLocked() string {
	payload, err := json.Marshal(persistedOccasions{Occasions: s.occasions})
	if err != nil {
		logger.Error("Failed to serialize occasions", "error", err)
		return ""
	}
	return string(payload)
}

func (s *OccasionStore) persistAndNotify(payload string) {
	if payload != "" {
		s.persist.enqueue(payload)
	}
	s.hub.Broadcast()
}

// Add creates an occasion from form data, assigning id and timestamps.
func (s *OccasionStore) Add(data models.OccasionFormData) models.Occasion {
	s.mu.Lock()
	now := nowRFC3339(s.now)
	occasion := models.Occasion{
		ID:             newID(),
		CreatedAt:      now,
		UpdatedAt:      now,
		PersonID:       data.PersonID,
		Name:           data.Name,
		Type:           data.Type,
		Date:           data.Date,
		IsRecurring:    data.IsRecurring,
		ReminderDays:   data.ReminderDays,
		BudgetAmount:   data.BudgetAmount,
		BudgetCurrency: data.BudgetCurrency,
		Notes:          data.Notes,
	}
	if occasion.BudgetCurrency == "" {
		occasion.BudgetCurrency = models.CurrencyUSD
	}
	s.occasions = append(s.occasions, occasion)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
	return occasion
}

// Update merges the patch into the occasion with the given id. A missing id
// is a silent no-op.
func (s *OccasionStore) Update(id string, patch models.OccasionPatch) {
	s.mu.Lock()
	updated := false
	for i := range s.occasions {
		if s.occasions[i].ID == id {
			patch.Apply(&s.occasions[i])
			s.occasions[i].UpdatedAt = nowRFC3339(s.now)
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

// Delete removes the occasion with the given id. A missing id is a silent
// no-op.
func (s *OccasionStore) Delete(id string) {
	s.mu.Lock()
	kept := s.occasions[:0]
	removed := false
	for _, o := range s.occasions {
		if o.ID == id {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.occasions = kept
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// DeleteForPerson removes every occasion tied to the person. Invoked by the
// caller alongside PeopleStore.Delete as part of the explicit cascade.
func (s *OccasionStore) DeleteForPerson(personID string) {
	s.mu.Lock()
	kept := s.occasions[:0]
	removed := false
	for _, o := range s.occasions {
		if o.PersonID == personID {
			removed = true
			continue
		}
		kept = append(kept, o)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.occasions = kept
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

func (s *OccasionStore) Get(id string) (models.Occasion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.occasions {
		if o.ID == id {
			return o, true
		}
	}
	return models.Occasion{}, false
}

// List returns a copy of the collection in insertion order.
func (s *OccasionStore) List() []models.Occasion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Occasion(nil), s.occasions...)
}

// Import appends already-formed occasions (bulk restore).
func (s *OccasionStore) Import(occasions []models.Occasion) {
	s.mu.Lock()
	s.occasions = append(s.occasions, occasions...)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// ByPerson returns the person's occasions sorted soonest first.
func (s *OccasionStore) ByPerson(personID string) []models.Occasion {
	return aggregate.OccasionsForPerson(s.List(), personID, s.now())
}

// ByType returns occasions of the given type, in insertion order.
func (s *OccasionStore) ByType(t models.OccasionType) []models.Occasion {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Occasion
	for _, o := range s.occasions {
		if o.Type == t {
			out = append(out, o)
		}
	}
	return out
}

// Upcoming returns occasions occurring within the given number of days,
// soonest first.
func (s *OccasionStore) Upcoming(withinDays int) []models.Occasion {
	return aggregate.UpcomingOccasions(s.List(), withinDays, s.now())
}

// Past returns non-recurring occasions whose date has passed, most recent
// first.
func (s *OccasionStore) Past() []models.Occasion {
	return aggregate.PastOccasions(s.List(), s.now())
}

// NextForPerson returns the person's soonest upcoming occasion.
func (s *OccasionStore) NextForPerson(personID string) (models.Occasion, bool) {
	return aggregate.NextOccasionForPerson(s.List(), personID, s.now())
}

func (s *OccasionStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *OccasionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *OccasionStore) Subscribe(selector func() any, handler func(any)) (cancel func()) {
	return s.hub.Subscribe(selector, handler)
}

// Reset restores the initial empty state and clears this store's persisted
// key. The clear goes through the persister so it lands after any snapshot
// write already in flight.
func (s *OccasionStore) Reset() {
	s.mu.Lock()
	s.occasions = nil
	s.err = nil
	s.loading = false
	s.mu.Unlock()

	s.persist.enqueueRemove()
	s.hub.Broadcast()
}

// Close flushes the pending persistence write and reports the last
// background persistence failure, if any.
func (s *OccasionStore) Close() error {
	s.persist.close()
	return s.Err()
}
