package store

import (
	"context"
	"testing"
	"time"

	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

func newOccasionStore(t *testing.T) *OccasionStore {
	t.Helper()
	s := NewOccasionStore(context.Background(), storage.NewMemoryKV())
	s.now = func() time.Time { return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOccasionAdd(t *testing.T) {
	s := newOccasionStore(t)

	o := s.Add(models.OccasionFormData{Name: "Birthday", PersonID: "p1", Date: "1990-07-01", IsRecurring: true})

	if o.ID == "" || o.CreatedAt == "" {
		t.Fatal("identity not assigned")
	}
	if got, ok := s.Get(o.ID); !ok || got.Name != "Birthday" {
		t.Errorf("Get() = %+v, %t", got, ok)
	}
}

func TestOccasionUpcomingAndPast(t *testing.T) {
	s := newOccasionStore(t)
	s.Add(models.OccasionFormData{Name: "Soon", Date: "2026-06-20"})
	s.Add(models.OccasionFormData{Name: "Far", Date: "2026-12-01"})
	s.Add(models.OccasionFormData{Name: "Gone", Date: "2026-06-01"})
	s.Add(models.OccasionFormData{Name: "Anniversary", Date: "1990-06-20", IsRecurring: true})

	upcoming := s.Upcoming(30)
	if len(upcoming) != 2 {
		t.Fatalf("Upcoming(30) = %d occasions, want 2", len(upcoming))
	}
	for _, o := range upcoming {
		if o.Name != "Soon" && o.Name != "Anniversary" {
			t.Errorf("unexpected upcoming occasion %s", o.Name)
		}
	}

	past := s.Past()
	if len(past) != 1 || past[0].Name != "Gone" {
		t.Fatalf("Past() = %d occasions, want just Gone", len(past))
	}
}

func TestOccasionNextForPerson(t *testing.T) {
	s := newOccasionStore(t)
	s.Add(models.OccasionFormData{Name: "Christmas", PersonID: "p1", Date: "2026-12-25"})
	s.Add(models.OccasionFormData{Name: "Birthday", PersonID: "p1", Date: "2026-07-01"})
	s.Add(models.OccasionFormData{Name: "Other", PersonID: "p2", Date: "2026-06-16"})

	next, ok := s.NextForPerson("p1")
	if !ok || next.Name != "Birthday" {
		t.Fatalf("NextForPerson() = %s, %t; want Birthday", next.Name, ok)
	}

	if _, ok := s.NextForPerson("nobody"); ok {
		t.Error("expected no occasion for an unknown person")
	}
}

func TestOccasionDeleteForPerson(t *testing.T) {
	s := newOccasionStore(t)
	s.Add(models.OccasionFormData{Name: "A", PersonID: "p1", Date: "2026-07-01"})
	s.Add(models.OccasionFormData{Name: "B", PersonID: "p1", Date: "2026-08-01"})
	keep := s.Add(models.OccasionFormData{Name: "C", PersonID: "p2", Date: "2026-09-01"})

	s.DeleteForPerson("p1")

	occasions := s.List()
	if len(occasions) != 1 || occasions[0].ID != keep.ID {
		t.Fatalf("got %d occasions, want only %s", len(occasions), keep.ID)
	}
}

func TestOccasionUpdate(t *testing.T) {
	s := newOccasionStore(t)
	o := s.Add(models.OccasionFormData{Name: "Birthday", Date: "2026-07-01"})

	date := "2026-07-02"
	s.Update(o.ID, models.OccasionPatch{Date: &date})

	got, _ := s.Get(o.ID)
	if got.Date != "2026-07-02" {
		t.Errorf("Date = %s, want 2026-07-02", got.Date)
	}

	s.Update("no-such-id", models.OccasionPatch{Date: &date})
	if len(s.List()) != 1 {
		t.Error("missing id mutated the collection")
	}
}
