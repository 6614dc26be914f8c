package query

import (
	"testing"

	"github.com/presently-app/presently/internal/models"
)

func price(v float64) *float64 { return &v }

func sampleGifts() []models.Gift {
	return []models.Gift{
		{ID: "g1", Name: "Chess set", Status: models.StatusIdea, Priority: models.PriorityHigh, Category: models.CategoryToysGames, Price: price(40), CreatedAt: "2026-01-01T00:00:00Z"},
		{ID: "g2", Name: "apple watch", Status: models.StatusPurchased, Priority: models.PriorityMustHave, Category: models.CategoryElectronics, Price: price(400), CreatedAt: "2026-01-02T00:00:00Z"},
		{ID: "g3", Name: "Book of poems", Status: models.StatusIdea, Priority: models.PriorityLow, Category: models.CategoryBooks, Price: nil, CreatedAt: "2026-01-03T00:00:00Z"},
		{ID: "g4", Name: "Zen garden", Status: models.StatusGiven, Priority: models.PriorityMedium, Category: models.CategoryHomeDecor, Price: price(25), CreatedAt: "2026-01-04T00:00:00Z"},
	}
}

func TestGiftFiltersAreConjunctive(t *testing.T) {
	gifts := sampleGifts()

	tests := []struct {
		name    string
		filters GiftFilters
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			filters: GiftFilters{},
			wantIDs: []string{"g1", "g2", "g3", "g4"},
		},
		{
			name:    "single status",
			filters: GiftFilters{Status: []models.GiftStatus{models.StatusIdea}},
			wantIDs: []string{"g1", "g3"},
		},
		{
			name: "status or status within one dimension",
			filters: GiftFilters{
				Status: []models.GiftStatus{models.StatusIdea, models.StatusGiven},
			},
			wantIDs: []string{"g1", "g3", "g4"},
		},
		{
			name: "dimensions combine with and",
			filters: GiftFilters{
				Status:   []models.GiftStatus{models.StatusIdea, models.StatusGiven},
				Priority: []models.GiftPriority{models.PriorityHigh},
			},
			wantIDs: []string{"g1"},
		},
		{
			name:    "search is case-insensitive substring",
			filters: GiftFilters{SearchQuery: "APPLE"},
			wantIDs: []string{"g2"},
		},
		{
			name:    "price bounds are inclusive",
			filters: GiftFilters{PriceMin: price(25), PriceMax: price(40)},
			wantIDs: []string{"g1", "g4"},
		},
		{
			name:    "price bound excludes gifts without a price",
			filters: GiftFilters{PriceMin: price(0)},
			wantIDs: []string{"g1", "g2", "g4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectGifts(gifts, tt.filters, DefaultGiftSort())
			ids := make(map[string]bool, len(got))
			for _, g := range got {
				ids[g.ID] = true
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d gifts, want %d", len(got), len(tt.wantIDs))
			}
			for _, id := range tt.wantIDs {
				if !ids[id] {
					t.Errorf("missing gift %s", id)
				}
			}
		})
	}
}

func TestGiftSortDirections(t *testing.T) {
	gifts := sampleGifts()

	asc := ProjectGifts(gifts, GiftFilters{}, GiftSortOptions{Field: GiftSortByPrice, Direction: Asc})
	wantAsc := []string{"g3", "g4", "g1", "g2"} // nil price sorts as zero
	for i, id := range wantAsc {
		if asc[i].ID != id {
			t.Fatalf("asc[%d] = %s, want %s", i, asc[i].ID, id)
		}
	}

	desc := ProjectGifts(gifts, GiftFilters{}, GiftSortOptions{Field: GiftSortByPrice, Direction: Desc})
	for i, id := range []string{"g2", "g1", "g4", "g3"} {
		if desc[i].ID != id {
			t.Fatalf("desc[%d] = %s, want %s", i, desc[i].ID, id)
		}
	}
}

func TestGiftSortByNameIgnoresCase(t *testing.T) {
	got := ProjectGifts(sampleGifts(), GiftFilters{}, GiftSortOptions{Field: GiftSortByName, Direction: Asc})
	want := []string{"g2", "g3", "g1", "g4"} // apple, Book, Chess, Zen
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestGiftSortByStatusFollowsLifecycle(t *testing.T) {
	got := ProjectGifts(sampleGifts(), GiftFilters{}, GiftSortOptions{Field: GiftSortByStatus, Direction: Asc})
	want := []string{"g1", "g3", "g2", "g4"} // idea, idea, purchased, given; ties keep input order
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestProjectGiftsDoesNotMutateInput(t *testing.T) {
	gifts := sampleGifts()
	ProjectGifts(gifts, GiftFilters{}, GiftSortOptions{Field: GiftSortByPrice, Direction: Desc})
	for i, want := range []string{"g1", "g2", "g3", "g4"} {
		if gifts[i].ID != want {
			t.Fatalf("input reordered: gifts[%d] = %s, want %s", i, gifts[i].ID, want)
		}
	}
}
