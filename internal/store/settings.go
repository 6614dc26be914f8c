package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

// SettingsStore owns user preferences. Forms read DefaultCurrency from here
// when creating people, gifts, and occasions; the entity stores themselves
// never reach into it.
type SettingsStore struct {
	mu       sync.Mutex
	settings models.Settings
	err      error

	persist *persister
	hub     *Hub
	now     func() time.Time
}

func NewSettingsStore(ctx context.Context, kv storage.KV) *SettingsStore {
	s := &SettingsStore{
		settings: models.DefaultSettings(),
		hub:      NewHub(),
		now:      time.Now,
	}
	s.load(ctx, kv)
	s.persist = newPersister(kv, constants.SettingsStorageKey, s.setError)
	return s
}

func (s *SettingsStore) load(ctx context.Context, kv storage.KV) {
	payload, ok, err := kv.Get(ctx, constants.SettingsStorageKey)
	if err != nil {
		logger.Error("Failed to read persisted settings", "error", err)
		s.err = err
		return
	}
	if !ok {
		return
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		logger.Warn("Persisted settings are malformed, using defaults", "error", err)
		return
	}
	s.settings = settings
}

func (s *SettingsStore) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Get returns the current settings.
func (s *SettingsStore) Get() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// update applies fn to the settings under the lock, then persists and
// notifies.
func (s *SettingsStore) update(fn func(*models.Settings)) {
	s.mu.Lock()
	fn(&s.settings)
	payload, err := json.Marshal(s.settings)
	s.mu.Unlock()

	if err != nil {
		logger.Error("Failed to serialize settings", "error", err)
	} else {
		s.persist.enqueue(string(payload))
	}
	s.hub.Broadcast()
}

func (s *SettingsStore) SetTheme(theme models.Theme) {
	s.update(func(st *models.Settings) { st.Theme = theme })
}

func (s *SettingsStore) SetNotificationsEnabled(enabled bool) {
	s.update(func(st *models.Settings) { st.NotificationsEnabled = enabled })
}

func (s *SettingsStore) SetDefaultReminderDays(days int) {
	s.update(func(st *models.Settings) { st.DefaultReminderDays = days })
}

func (s *SettingsStore) SetDefaultCurrency(currency models.Currency) {
	s.update(func(st *models.Settings) { st.DefaultCurrency = currency })
}

func (s *SettingsStore) SetHasSeenOnboarding(seen bool) {
	s.update(func(st *models.Settings) { st.HasSeenOnboarding = seen })
}

// SetAdsConsent records the consent decision and its timestamp. Resetting to
// unknown clears the timestamp.
func (s *SettingsStore) SetAdsConsent(status models.ConsentStatus) {
	now := nowRFC3339(s.now)
	s.update(func(st *models.Settings) {
		st.AdsConsent = status
		if status == models.ConsentUnknown {
			st.AdsConsentDate = ""
		} else {
			st.AdsConsentDate = now
		}
	})
}

func (s *SettingsStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *SettingsStore) Subscribe(selector func() any, handler func(any)) (cancel func()) {
	return s.hub.Subscribe(selector, handler)
}

// Reset restores default settings and clears the persisted key.
func (s *SettingsStore) Reset() {
	s.mu.Lock()
	s.settings = models.DefaultSettings()
	s.err = nil
	s.mu.Unlock()

	s.persist.enqueueRemove()
	s.hub.Broadcast()
}

// Close flushes the pending persistence write and reports the last
// background persistence failure, if any.
func (s *SettingsStore) Close() error {
	s.persist.close()
	return s.Err()
}
