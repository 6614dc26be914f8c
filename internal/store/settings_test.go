package store

import (
	"context"
	"testing"

	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettingsStore(context.Background(), storage.NewMemoryKV())
	defer s.Close()

	got := s.Get()
	if got.Theme != models.ThemeSystem {
		t.Errorf("Theme = %s, want system", got.Theme)
	}
	if !got.NotificationsEnabled {
		t.Error("NotificationsEnabled = false, want true")
	}
	if got.DefaultReminderDays != 14 {
		t.Errorf("DefaultReminderDays = %d, want 14", got.DefaultReminderDays)
	}
	if got.AdsConsent != models.ConsentUnknown {
		t.Errorf("AdsConsent = %s, want unknown", got.AdsConsent)
	}
}

func TestSettingsConsentTimestamps(t *testing.T) {
	s := NewSettingsStore(context.Background(), storage.NewMemoryKV())
	defer s.Close()

	s.SetAdsConsent(models.ConsentGranted)
	got := s.Get()
	if got.AdsConsent != models.ConsentGranted {
		t.Errorf("AdsConsent = %s, want granted", got.AdsConsent)
	}
	if got.AdsConsentDate == "" {
		t.Error("AdsConsentDate not recorded")
	}

	s.SetAdsConsent(models.ConsentUnknown)
	got = s.Get()
	if got.AdsConsentDate != "" {
		t.Errorf("AdsConsentDate = %q after reverting to unknown, want empty", got.AdsConsentDate)
	}
}

func TestSettingsPersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	s := NewSettingsStore(ctx, kv)
	s.SetTheme(models.ThemeDark)
	s.SetDefaultCurrency(models.CurrencyGBP)
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reloaded := NewSettingsStore(ctx, kv)
	defer reloaded.Close()

	got := reloaded.Get()
	if got.Theme != models.ThemeDark {
		t.Errorf("Theme = %s, want dark", got.Theme)
	}
	if got.DefaultCurrency != models.CurrencyGBP {
		t.Errorf("DefaultCurrency = %s, want GBP", got.DefaultCurrency)
	}
	if got.DefaultReminderDays != 14 {
		t.Errorf("DefaultReminderDays = %d, untouched default lost", got.DefaultReminderDays)
	}
}
