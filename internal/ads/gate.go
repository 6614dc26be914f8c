// Package ads implements the ad-gating collaborator: frequency-capped
// banner and interstitial eligibility checks. It reads and writes its own
// state through the KV substrate and never touches the entity stores.
package ads

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

// Trigger names an app moment that may show an interstitial.
type Trigger string

const (
	TriggerPersonAdded   Trigger = "personAdded"
	TriggerGiftGiven     Trigger = "giftGiven"
	TriggerSessionReturn Trigger = "sessionReturn"
)

type TriggerConfig struct {
	Enabled      bool
	FrequencyCap time.Duration
}

// Config carries the gating policy.
type Config struct {
	BannerScreens    []string
	Triggers         map[Trigger]TriggerConfig
	MinInterval      time.Duration // absolute floor between interstitials
	StartGracePeriod time.Duration // no interstitials right after launch
	MaxPerSession    int
}

// DefaultConfig mirrors the shipped gating policy.
func DefaultConfig() Config {
	return Config{
		BannerScreens: []string{"home", "personList", "giftHistory", "reports"},
		Triggers: map[Trigger]TriggerConfig{
			TriggerPersonAdded:   {Enabled: true, FrequencyCap: 5 * time.Minute},
			TriggerGiftGiven:     {Enabled: true, FrequencyCap: 3 * time.Minute},
			TriggerSessionReturn: {Enabled: true, FrequencyCap: 10 * time.Minute},
		},
		MinInterval:      time.Minute,
		StartGracePeriod: 30 * time.Second,
		MaxPerSession:    5,
	}
}

// Gate answers banner and interstitial eligibility. Session state lives in
// memory; the last-shown timestamps and ad-free window persist across runs.
type Gate struct {
	mu                sync.Mutex
	cfg               Config
	kv                storage.KV
	consent           models.ConsentStatus
	startedAt         time.Time
	lastInterstitial  time.Time
	adFreeUntil       time.Time
	sessionCount      int
	triggerTimestamps map[Trigger]time.Time
	now               func() time.Time
}

// NewGate loads persisted gating state. consent comes from the settings
// store; a denied consent disables everything.
func NewGate(ctx context.Context, kv storage.KV, cfg Config, consent models.ConsentStatus) *Gate {
	g := &Gate{
		cfg:               cfg,
		kv:                kv,
		consent:           consent,
		triggerTimestamps: make(map[Trigger]time.Time),
		now:               time.Now,
	}
	g.startedAt = g.now()
	g.load(ctx)
	return g
}

func (g *Gate) load(ctx context.Context) {
	if raw, ok, err := g.kv.Get(ctx, constants.AdsLastInterstitialKey); err == nil && ok {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			g.lastInterstitial = time.UnixMilli(ms)
		}
	}
	if raw, ok, err := g.kv.Get(ctx, constants.AdsAdFreeUntilKey); err == nil && ok {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			g.adFreeUntil = time.UnixMilli(ms)
		}
	}
	if raw, ok, err := g.kv.Get(ctx, constants.AdsTriggerTimestampsKey); err == nil && ok {
		var stamps map[Trigger]int64
		if err := json.Unmarshal([]byte(raw), &stamps); err == nil {
			for t, ms := range stamps {
				g.triggerTimestamps[t] = time.UnixMilli(ms)
			}
		}
	}
}

func (g *Gate) adFree(now time.Time) bool {
	return now.Before(g.adFreeUntil)
}

// ShouldShowBanner reports whether the named screen shows a banner.
func (g *Gate) ShouldShowBanner(screen string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adFree(g.now()) || g.consent == models.ConsentDenied {
		return false
	}
	for _, s := range g.cfg.BannerScreens {
		if s == screen {
			return true
		}
	}
	return false
}

// CanShowInterstitial checks every cap in order: ad-free window, consent,
// launch grace period, session limit, absolute minimum interval, then the
// trigger's own frequency cap.
func (g *Gate) CanShowInterstitial(trigger Trigger) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.adFree(now) || g.consent == models.ConsentDenied {
		return false
	}
	if now.Sub(g.startedAt) < g.cfg.StartGracePeriod {
		return false
	}
	if g.sessionCount >= g.cfg.MaxPerSession {
		return false
	}
	if !g.lastInterstitial.IsZero() && now.Sub(g.lastInterstitial) < g.cfg.MinInterval {
		return false
	}

	tc, ok := g.cfg.Triggers[trigger]
	if !ok || !tc.Enabled {
		return false
	}
	if last, ok := g.triggerTimestamps[trigger]; ok && now.Sub(last) < tc.FrequencyCap {
		return false
	}
	return true
}

// RecordInterstitialShown updates the in-memory counters and persists the
// timestamps. Persistence failures are logged and otherwise ignored.
func (g *Gate) RecordInterstitialShown(ctx context.Context, trigger Trigger) {
	g.mu.Lock()
	now := g.now()
	g.lastInterstitial = now
	g.sessionCount++
	g.triggerTimestamps[trigger] = now

	stamps := make(map[Trigger]int64, len(g.triggerTimestamps))
	for t, ts := range g.triggerTimestamps {
		stamps[t] = ts.UnixMilli()
	}
	g.mu.Unlock()

	if err := g.kv.Set(ctx, constants.AdsLastInterstitialKey, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		logger.Warn("Failed to persist interstitial timestamp", "error", err)
	}
	payload, err := json.Marshal(stamps)
	if err == nil {
		err = g.kv.Set(ctx, constants.AdsTriggerTimestampsKey, string(payload))
	}
	if err != nil {
		logger.Warn("Failed to persist trigger timestamps", "error", err)
	}
}

// GrantAdFree opens an ad-free window, e.g. after a rewarded ad.
func (g *Gate) GrantAdFree(ctx context.Context, d time.Duration) {
	g.mu.Lock()
	g.adFreeUntil = g.now().Add(d)
	until := g.adFreeUntil
	g.mu.Unlock()

	if err := g.kv.Set(ctx, constants.AdsAdFreeUntilKey, strconv.FormatInt(until.UnixMilli(), 10)); err != nil {
		logger.Warn("Failed to persist ad-free window", "error", err)
	}
}
