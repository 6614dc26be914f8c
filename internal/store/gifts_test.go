package store

import (
	"context"
	"testing"

	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/storage"
)

func newGiftStore(t *testing.T) *GiftStore {
	t.Helper()
	s := NewGiftStore(context.Background(), storage.NewMemoryKV())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGiftAddSeedsStatusHistory(t *testing.T) {
	s := newGiftStore(t)

	g := s.Add(models.GiftFormData{Name: "Chess set", PersonID: "p1", Status: models.StatusIdea})

	if len(g.StatusHistory) != 1 {
		t.Fatalf("history has %d entries, want 1", len(g.StatusHistory))
	}
	if g.StatusHistory[0].Status != models.StatusIdea {
		t.Errorf("seed entry = %s, want idea", g.StatusHistory[0].Status)
	}
	if g.StatusHistory[0].Date == "" {
		t.Error("seed entry has no date")
	}
}

func TestUpdateStatusAppendsHistory(t *testing.T) {
	s := newGiftStore(t)
	g := s.Add(models.GiftFormData{Name: "Chess set", PersonID: "p1", Status: models.StatusIdea})

	s.UpdateStatus(g.ID, models.StatusPurchased, "on sale")
	s.UpdateStatus(g.ID, models.StatusWrapped, "")

	got, _ := s.Get(g.ID)
	if got.Status != models.StatusWrapped {
		t.Errorf("Status = %s, want wrapped", got.Status)
	}
	if len(got.StatusHistory) != 3 {
		t.Fatalf("history has %d entries, want 3", len(got.StatusHistory))
	}
	want := []models.GiftStatus{models.StatusIdea, models.StatusPurchased, models.StatusWrapped}
	for i, status := range want {
		if got.StatusHistory[i].Status != status {
			t.Errorf("history[%d] = %s, want %s", i, got.StatusHistory[i].Status, status)
		}
	}
	if got.StatusHistory[1].Notes != "on sale" {
		t.Errorf("history[1].Notes = %q, want %q", got.StatusHistory[1].Notes, "on sale")
	}
}

func TestUpdateStatusMissingIDIsNoOp(t *testing.T) {
	s := newGiftStore(t)
	s.Add(models.GiftFormData{Name: "Chess set", PersonID: "p1", Status: models.StatusIdea})

	s.UpdateStatus("no-such-id", models.StatusGiven, "")

	if len(s.ByStatus(models.StatusGiven)) != 0 {
		t.Error("phantom gift appeared")
	}
}

func TestHidingSpotClearsWhenStatusLeavesHidden(t *testing.T) {
	s := newGiftStore(t)
	g := s.Add(models.GiftFormData{Name: "Bike", PersonID: "p1", Status: models.StatusPurchased})

	s.UpdateStatus(g.ID, models.StatusHidden, "")
	s.SetHidingSpot(g.ID, "garage loft")

	got, _ := s.Get(g.ID)
	if got.HidingSpot != "garage loft" {
		t.Fatalf("HidingSpot = %q, want garage loft", got.HidingSpot)
	}

	s.UpdateStatus(g.ID, models.StatusGiven, "")
	got, _ = s.Get(g.ID)
	if got.HidingSpot != "" {
		t.Errorf("HidingSpot = %q after leaving hidden, want empty", got.HidingSpot)
	}
}

func TestMarkAsGiven(t *testing.T) {
	s := newGiftStore(t)
	g := s.Add(models.GiftFormData{Name: "Bike", PersonID: "p1", Status: models.StatusHidden, HidingSpot: "attic"})

	s.MarkAsGiven(g.ID, "", models.ReactionLovedIt)

	got, _ := s.Get(g.ID)
	if got.Status != models.StatusGiven {
		t.Errorf("Status = %s, want given", got.Status)
	}
	if got.DateGiven == "" {
		t.Error("DateGiven not defaulted")
	}
	if got.Reaction != models.ReactionLovedIt {
		t.Errorf("Reaction = %s, want loved_it", got.Reaction)
	}
	if got.HidingSpot != "" {
		t.Errorf("HidingSpot = %q, want empty after giving", got.HidingSpot)
	}
	last := got.StatusHistory[len(got.StatusHistory)-1]
	if last.Status != models.StatusGiven {
		t.Errorf("last history entry = %s, want given", last.Status)
	}
}

func TestGiftLifecycle(t *testing.T) {
	s := newGiftStore(t)
	g := s.Add(models.GiftFormData{Name: "Watch", PersonID: "p1", Status: models.StatusIdea, Price: price(120)})

	s.UpdateStatus(g.ID, models.StatusPurchased, "")
	s.UpdateStatus(g.ID, models.StatusWrapped, "")
	s.UpdateStatus(g.ID, models.StatusHidden, "")
	s.SetHidingSpot(g.ID, "closet")
	s.UpdateStatus(g.ID, models.StatusGiven, "birthday morning")

	got, _ := s.Get(g.ID)
	if got.Status != models.StatusGiven {
		t.Fatalf("Status = %s, want given", got.Status)
	}
	if len(got.StatusHistory) != 5 {
		t.Errorf("history has %d entries, want 5", len(got.StatusHistory))
	}
	if got.HidingSpot != "" {
		t.Errorf("HidingSpot = %q, want empty", got.HidingSpot)
	}
}

func TestDeleteForPerson(t *testing.T) {
	s := newGiftStore(t)
	s.Add(models.GiftFormData{Name: "A", PersonID: "p1"})
	s.Add(models.GiftFormData{Name: "B", PersonID: "p1"})
	keep := s.Add(models.GiftFormData{Name: "C", PersonID: "p2"})

	s.DeleteForPerson("p1")

	gifts := s.List()
	if len(gifts) != 1 || gifts[0].ID != keep.ID {
		t.Fatalf("got %d gifts, want only %s", len(gifts), keep.ID)
	}

	// No gifts for the person is a no-op.
	s.DeleteForPerson("p1")
	if len(s.List()) != 1 {
		t.Error("second cascade changed the collection")
	}
}

func TestGiftPatchBypassesHistory(t *testing.T) {
	s := newGiftStore(t)
	g := s.Add(models.GiftFormData{Name: "Watch", PersonID: "p1", Status: models.StatusIdea})

	status := models.StatusGiven
	s.Update(g.ID, models.GiftPatch{Status: &status})

	got, _ := s.Get(g.ID)
	if got.Status != models.StatusGiven {
		t.Fatalf("Status = %s, want given", got.Status)
	}
	if len(got.StatusHistory) != 1 {
		t.Errorf("history has %d entries, want 1 (patches do not record transitions)", len(got.StatusHistory))
	}
}

func TestGiftByOccasion(t *testing.T) {
	s := newGiftStore(t)
	a := s.Add(models.GiftFormData{Name: "A", PersonID: "p1", OccasionID: "o1"})
	s.Add(models.GiftFormData{Name: "B", PersonID: "p1", OccasionID: "o2"})

	got := s.ByOccasion("o1")
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("ByOccasion() = %d gifts, want only %s", len(got), a.ID)
	}
}

func TestGiftByPerson(t *testing.T) {
	s := newGiftStore(t)
	a := s.Add(models.GiftFormData{Name: "A", PersonID: "p1"})
	b := s.Add(models.GiftFormData{Name: "B", PersonID: "p1"})
	s.Add(models.GiftFormData{Name: "C", PersonID: "p2"})

	got := s.ByPerson("p1")
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("ByPerson() = %d gifts, want %s then %s", len(got), a.ID, b.ID)
	}
	if got := s.ByPerson("nobody"); len(got) != 0 {
		t.Fatalf("ByPerson(unknown) = %d gifts, want 0", len(got))
	}
}
