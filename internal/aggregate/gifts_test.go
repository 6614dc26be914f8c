package aggregate

import (
	"testing"

	"github.com/presently-app/presently/internal/models"
)

func price(v float64) *float64 { return &v }

func TestTotalSpentForPerson(t *testing.T) {
	gifts := []models.Gift{
		{PersonID: "p1", Status: models.StatusPurchased, Price: price(100)},
		{PersonID: "p1", Status: models.StatusIdea, Price: price(999)},
		{PersonID: "p1", Status: models.StatusGiven, Price: price(50)},
		{PersonID: "p1", Status: models.StatusReturned, Price: price(75)},
		{PersonID: "p1", Status: models.StatusWrapped, Price: nil},
		{PersonID: "p2", Status: models.StatusPurchased, Price: price(40)},
	}

	if got := TotalSpentForPerson(gifts, "p1"); got != 150 {
		t.Errorf("TotalSpentForPerson() = %v, want 150", got)
	}
	if got := TotalSpentForPerson(gifts, "p2"); got != 40 {
		t.Errorf("TotalSpentForPerson() = %v, want 40", got)
	}
	if got := TotalSpentForPerson(gifts, "nobody"); got != 0 {
		t.Errorf("TotalSpentForPerson() = %v, want 0", got)
	}
}

func TestGiftsForPersonPartition(t *testing.T) {
	gifts := []models.Gift{
		{ID: "g1", PersonID: "p1", Status: models.StatusIdea},
		{ID: "g2", PersonID: "p1", Status: models.StatusGiven},
		{ID: "g3", PersonID: "p1", Status: models.StatusHidden},
		{ID: "g4", PersonID: "p2", Status: models.StatusIdea},
	}

	active := GiftsForPerson(gifts, "p1")
	history := GiftHistoryForPerson(gifts, "p1")

	if len(active) != 2 {
		t.Fatalf("active = %d gifts, want 2", len(active))
	}
	if len(history) != 1 {
		t.Fatalf("history = %d gifts, want 1", len(history))
	}
	if history[0].ID != "g2" {
		t.Errorf("history gift = %s, want g2", history[0].ID)
	}

	// Every gift of the person lands in exactly one of the two views.
	seen := map[string]int{}
	for _, g := range active {
		seen[g.ID]++
	}
	for _, g := range history {
		seen[g.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("gift %s appeared %d times across views", id, n)
		}
	}
	if len(seen) != 3 {
		t.Errorf("views cover %d gifts, want 3", len(seen))
	}
}

func TestGiftsForOccasion(t *testing.T) {
	gifts := []models.Gift{
		{ID: "g1", OccasionID: "o1"},
		{ID: "g2", OccasionID: "o2"},
		{ID: "g3", OccasionID: "o1"},
		{ID: "g4"},
	}

	got := GiftsForOccasion(gifts, "o1")
	if len(got) != 2 || got[0].ID != "g1" || got[1].ID != "g3" {
		t.Errorf("GiftsForOccasion() = %v gifts, want g1, g3", len(got))
	}
}
