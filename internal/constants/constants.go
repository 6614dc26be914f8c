package constants

const (
	AppName = "presently"
	Version = "v0.3.0"

	// DateFormat is the standard date-only format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Storage keys. One key per store; each value is the full serialized collection.
	PeopleStorageKey    = "presently-people"
	GiftsStorageKey     = "presently-gifts"
	OccasionsStorageKey = "presently-occasions"
	SettingsStorageKey  = "presently-settings"

	// Ad-gating state keys
	AdsLastInterstitialKey   = "@ads/lastInterstitial"
	AdsAdFreeUntilKey        = "@ads/adFreeUntil"
	AdsTriggerTimestampsKey  = "@ads/triggerTimestamps"

	// Defaults
	DefaultReminderDays     = 14
	DefaultUpcomingWindow   = 30
	DefaultStorageBackend   = "file"
	LogFileName             = "presently.log"
)
