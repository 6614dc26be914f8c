// Package app wires the entity stores over one KV substrate and owns the
// orchestration the stores deliberately do not do themselves: cascading
// deletes across stores and orderly shutdown.
package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/presently-app/presently/internal/config"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/storage"
	"github.com/presently-app/presently/internal/store"
)

// App holds the store instances. It is created once at startup and passed
// by reference to every consumer; stores are never global.
type App struct {
	KV        storage.KV
	People    *store.PeopleStore
	Gifts     *store.GiftStore
	Occasions *store.OccasionStore
	Settings  *store.SettingsStore
}

// OpenKV builds the configured KV backend.
func OpenKV(cfg config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case "file", "":
		return storage.NewFileKV(cfg.DataDir)
	case "sqlite":
		return storage.NewSQLiteKV(cfg.DataDir + "/" + constants.AppName + ".db")
	case "postgres":
		return storage.NewPostgresKV(cfg.ConnStr)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// New loads every store from the KV substrate.
func New(ctx context.Context, kv storage.KV) *App {
	return &App{
		KV:        kv,
		People:    store.NewPeopleStore(ctx, kv),
		Gifts:     store.NewGiftStore(ctx, kv),
		Occasions: store.NewOccasionStore(ctx, kv),
		Settings:  store.NewSettingsStore(ctx, kv),
	}
}

// DeletePerson removes a person and explicitly cascades to their gifts and
// occasions. The stores stay independent of each other; this is the one
// place that knows a person has dependents.
func (a *App) DeletePerson(id string) {
	a.People.Delete(id)
	a.Gifts.DeleteForPerson(id)
	a.Occasions.DeleteForPerson(id)
}

// Reset wipes every store and its persisted state.
func (a *App) Reset() {
	a.People.Reset()
	a.Gifts.Reset()
	a.Occasions.Reset()
	a.Settings.Reset()
}

// Close flushes the stores' pending persistence writes, then closes the
// substrate. Every failure is reported, not just the first.
func (a *App) Close() error {
	var result *multierror.Error
	if err := a.People.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("people store: %w", err))
	}
	if err := a.Gifts.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("gift store: %w", err))
	}
	if err := a.Occasions.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("occasion store: %w", err))
	}
	if err := a.Settings.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("settings store: %w", err))
	}
	if err := a.KV.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("closing storage: %w", err))
	}
	return result.ErrorOrNil()
}
