// Package store implements the in-memory entity stores for people, gifts,
// and occasions. Each store owns its collection exclusively behind a
// single-writer mutex, persists a full serialized snapshot on every mutation
// through a background writer, and notifies subscribers synchronously in
// mutation order. Missing-id updates and deletes are silent no-ops; the
// in-memory collection is the source of truth for the session and
// persistence is best-effort durability.
package store

import (
	"time"

	"github.com/google/uuid"
)

func newID() string {
	return uuid.New().String()
}

func nowRFC3339(now func() time.Time) string {
	return now().UTC().Format(time.RFC3339)
}
