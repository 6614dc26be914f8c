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

type persistedGifts struct {
	Gifts       []models.Gift         `json:"gifts"`
	SortOptions query.GiftSortOptions `json:"sort_options"`
}

// GiftStore owns the gift collection. Beyond generic CRUD it carries the
// status-transition operations, because a status change appends to the
// append-only history and has cross-field side effects a generic patch
// cannot express.
type GiftStore struct {
	mu      sync.Mutex
	gifts   []models.Gift
	loading bool
	err     error
	filters query.GiftFilters
	sort    query.GiftSortOptions

	persist *persister
	hub     *Hub
	now     func() time.Time
}

func NewGiftStore(ctx context.Context, kv storage.KV) *GiftStore {
	s := &GiftStore{
		sort: query.DefaultGiftSort(),
		hub:  NewHub(),
		now:  time.Now,
	}
	s.load(ctx, kv)
	s.persist = newPersister(kv, constants.GiftsStorageKey, s.setError)
	return s
}

func (s *GiftStore) load(ctx context.Context, kv storage.KV) {
	s.loading = true
	defer func() { s.loading = false }()

	payload, ok, err := kv.Get(ctx, constants.GiftsStorageKey)
	if err != nil {
		logger.Error("Failed to read persisted gifts", "error", err)
		s.err = err
		return
	}
	if !ok {
		return
	}

	var persisted persistedGifts
	if err := json.Unmarshal([]byte(payload), &persisted); err != nil {
		logger.Warn("Persisted gift state is malformed, starting empty", "error", err)
		return
	}
	s.gifts = persisted.Gifts
	if persisted.SortOptions.Field != "" {
		s.sort = persisted.SortOptions
	}
}

func (s *GiftStore) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *GiftStore) snapshotLocked() string {
	payload, err := json.Marshal(persistedGifts{Gifts: s.gifts, SortOptions: s.sort})
	if err != nil {
		logger.Error("Failed to serialize gifts", "error", err)
		return ""
	}
	return string(payload)
}

func (s *GiftStore) persistAndNotify(payload string) {
	if payload != "" {
		s.persist.enqueue(payload)
	}
	s.hub.Broadcast()
}

// Add creates a gift from form data. The status history is seeded with one
// entry matching the initial status, so it is never empty.
func (s *GiftStore) Add(data models.GiftFormData) models.Gift {
	s.mu.Lock()
	now := nowRFC3339(s.now)
	gift := models.Gift{
		ID:             newID(),
		CreatedAt:      now,
		UpdatedAt:      now,
		PersonID:       data.PersonID,
		Name:           data.Name,
		Description:    data.Description,
		URL:            data.URL,
		Price:          data.Price,
		Currency:       data.Currency,
		Priority:       data.Priority,
		Category:       data.Category,
		Status:         data.Status,
		StatusHistory:  []models.StatusEntry{{Status: data.Status, Date: now}},
		OccasionID:     data.OccasionID,
		Photos:         data.Photos,
		VoiceNotes:     data.VoiceNotes,
		Notes:          data.Notes,
		Source:         data.Source,
		HidingSpot:     data.HidingSpot,
		ReceiptURI:     data.ReceiptURI,
		ReturnDeadline: data.ReturnDeadline,
		IsRegift:       data.IsRegift,
	}
	if gift.Currency == "" {
		gift.Currency = models.CurrencyUSD
	}
	s.gifts = append(s.gifts, gift)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
	return gift
}

// Update merges the patch into the gift with the given id. A missing id is a
// silent no-op. Setting Status through a patch does not touch the status
// history; that permissive path exists for bulk import and restore.
func (s *GiftStore) Update(id string, patch models.GiftPatch) {
	s.mu.Lock()
	updated := false
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			patch.Apply(&s.gifts[i])
			s.gifts[i].UpdatedAt = nowRFC3339(s.now)
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

// Delete removes the gift with the given id. A missing id is a silent no-op.
func (s *GiftStore) Delete(id string) {
	s.mu.Lock()
	kept := s.gifts[:0]
	removed := false
	for _, g := range s.gifts {
		if g.ID == id {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.gifts = kept
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// DeleteForPerson removes every gift belonging to the person. Invoked by the
// caller alongside PeopleStore.Delete as part of the explicit cascade.
func (s *GiftStore) DeleteForPerson(personID string) {
	s.mu.Lock()
	kept := s.gifts[:0]
	removed := false
	for _, g := range s.gifts {
		if g.PersonID == personID {
			removed = true
			continue
		}
		kept = append(kept, g)
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.gifts = kept
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

func (s *GiftStore) Get(id string) (models.Gift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.gifts {
		if g.ID == id {
			return g, true
		}
	}
	return models.Gift{}, false
}

// List returns a copy of the collection in insertion order.
func (s *GiftStore) List() []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Gift(nil), s.gifts...)
}

// Import appends already-formed gifts (bulk restore).
func (s *GiftStore) Import(gifts []models.Gift) {
	s.mu.Lock()
	s.gifts = append(s.gifts, gifts...)
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// UpdateStatus appends a history entry with the current timestamp and sets
// the new status. Leaving the hidden status clears the hiding spot. The
// store does not judge whether the transition is legal; the UI layer guards
// that.
func (s *GiftStore) UpdateStatus(id string, status models.GiftStatus, notes string) {
	s.mu.Lock()
	updated := false
	for i := range s.gifts {
		if s.gifts[i].ID != id {
			continue
		}
		now := nowRFC3339(s.now)
		g := &s.gifts[i]
		g.Status = status
		g.StatusHistory = append(g.StatusHistory, models.StatusEntry{Status: status, Date: now, Notes: notes})
		if status != models.StatusHidden {
			g.HidingSpot = ""
		}
		g.UpdatedAt = now
		updated = true
		break
	}
	if !updated {
		s.mu.Unlock()
		return
	}
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// SetHidingSpot records where a hidden gift is stashed without changing the
// status.
func (s *GiftStore) SetHidingSpot(id, spot string) {
	s.mu.Lock()
	updated := false
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			s.gifts[i].HidingSpot = spot
			s.gifts[i].UpdatedAt = nowRFC3339(s.now)
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

// MarkAsGiven transitions the gift to given, appends the history entry, and
// records the given date (defaulting to now) and optional reaction.
func (s *GiftStore) MarkAsGiven(id, dateGiven string, reaction models.GiftReaction) {
	s.mu.Lock()
	updated := false
	for i := range s.gifts {
		if s.gifts[i].ID != id {
			continue
		}
		now := nowRFC3339(s.now)
		g := &s.gifts[i]
		g.Status = models.StatusGiven
		g.StatusHistory = append(g.StatusHistory, models.StatusEntry{Status: models.StatusGiven, Date: now})
		g.HidingSpot = ""
		if dateGiven == "" {
			dateGiven = now
		}
		g.DateGiven = dateGiven
		if reaction != "" {
			g.Reaction = reaction
		}
		g.UpdatedAt = now
		updated = true
		break
	}
	if !updated {
		s.mu.Unlock()
		return
	}
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// SetReaction records the recipient's reaction independent of status.
func (s *GiftStore) SetReaction(id string, reaction models.GiftReaction) {
	s.mu.Lock()
	updated := false
	for i := range s.gifts {
		if s.gifts[i].ID == id {
			s.gifts[i].Reaction = reaction
			s.gifts[i].UpdatedAt = nowRFC3339(s.now)
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

func (s *GiftStore) SetFilters(filters query.GiftFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
	s.hub.Broadcast()
}

func (s *GiftStore) ClearFilters() {
	s.SetFilters(query.GiftFilters{})
}

func (s *GiftStore) SetSortOptions(opts query.GiftSortOptions) {
	s.mu.Lock()
	s.sort = opts
	payload := s.snapshotLocked()
	s.mu.Unlock()

	s.persistAndNotify(payload)
}

// Filtered projects the collection through the current filter and sort
// config.
func (s *GiftStore) Filtered() []models.Gift {
	s.mu.Lock()
	gifts := append([]models.Gift(nil), s.gifts...)
	filters := s.filters
	sortOpts := s.sort
	s.mu.Unlock()
	return query.ProjectGifts(gifts, filters, sortOpts)
}

// ByPerson returns gifts recorded for the person, in insertion order.
func (s *GiftStore) ByPerson(personID string) []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Gift
	for _, g := range s.gifts {
		if g.PersonID == personID {
			out = append(out, g)
		}
	}
	return out
}

// ByOccasion returns gifts attached to the occasion, in insertion order.
func (s *GiftStore) ByOccasion(occasionID string) []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Gift
	for _, g := range s.gifts {
		if g.OccasionID == occasionID {
			out = append(out, g)
		}
	}
	return out
}

// ByStatus returns gifts in the given status, in insertion order.
func (s *GiftStore) ByStatus(status models.GiftStatus) []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Gift
	for _, g := range s.gifts {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}

func (s *GiftStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *GiftStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *GiftStore) Subscribe(selector func() any, handler func(any)) (cancel func()) {
	return s.hub.Subscribe(selector, handler)
}

// Reset restores the initial empty state and clears this store's persisted
// key. The clear goes through the persister so it lands after any snapshot
// write already in flight.
func (s *GiftStore) Reset() {
	s.mu.Lock()
	s.gifts = nil
	s.filters = query.GiftFilters{}
	s.sort = query.DefaultGiftSort()
	s.err = nil
	s.loading = false
	s.mu.Unlock()

	s.persist.enqueueRemove()
	s.hub.Broadcast()
}

// Close flushes the pending persistence write and reports the last
// background persistence failure, if any.
func (s *GiftStore) Close() error {
	s.persist.close()
	return s.Err()
}
