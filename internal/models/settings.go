package models

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ConsentStatus tracks where the user is in the ads-consent flow.
type ConsentStatus string

const (
	ConsentUnknown ConsentStatus = "unknown"
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
)

// Settings are the user-facing application preferences. Forms read
// DefaultCurrency when creating new people, gifts, and occasions.
type Settings struct {
	Theme                Theme         `json:"theme"`
	NotificationsEnabled bool          `json:"notifications_enabled"`
	DefaultReminderDays  int           `json:"default_reminder_days"`
	DefaultCurrency      Currency      `json:"default_currency"`
	HasSeenOnboarding    bool          `json:"has_seen_onboarding"`
	AdsConsent           ConsentStatus `json:"ads_consent"`
	AdsConsentDate       string        `json:"ads_consent_date,omitempty"` // RFC3339
}

// DefaultSettings returns the initial settings for a fresh install.
func DefaultSettings() Settings {
	return Settings{
		Theme:                ThemeSystem,
		NotificationsEnabled: true,
		DefaultReminderDays:  14,
		DefaultCurrency:      CurrencyUSD,
		AdsConsent:           ConsentUnknown,
	}
}
