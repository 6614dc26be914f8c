package aggregate

import (
	"testing"
	"time"

	"github.com/presently-app/presently/internal/models"
)

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      string
		recurring bool
		want      time.Time
	}{
		{
			name:      "non-recurring future stays put",
			date:      "2026-09-01",
			recurring: false,
			want:      time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "non-recurring past stays in the past",
			date:      "2026-01-10",
			recurring: false,
			want:      time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "recurring later this year",
			date:      "1990-12-25",
			recurring: true,
			want:      time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "recurring already passed wraps to next year",
			date:      "1990-03-01",
			recurring: true,
			want:      time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "invalid date resolves to zero",
			date:      "not-a-date",
			recurring: true,
			want:      time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.date, tt.recurring, now)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysUntilOccasion(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		occasion models.Occasion
		want     int
	}{
		{
			name:     "upcoming non-recurring",
			occasion: models.Occasion{Date: "2026-06-20", IsRecurring: false},
			want:     5,
		},
		{
			name:     "past non-recurring is negative",
			occasion: models.Occasion{Date: "2026-06-10", IsRecurring: false},
			want:     -5,
		},
		{
			name:     "recurring never negative",
			occasion: models.Occasion{Date: "1990-06-10", IsRecurring: true},
			want:     360,
		},
		{
			name:     "tomorrow midnight rounds up to one",
			occasion: models.Occasion{Date: "2026-06-16", IsRecurring: false},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntilOccasion(tt.occasion, now); got != tt.want {
				t.Errorf("DaysUntilOccasion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextOccasionForPerson(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	occasions := []models.Occasion{
		{ID: "o1", PersonID: "p1", Name: "Graduation", Date: "2026-01-10", IsRecurring: false},
		{ID: "o2", PersonID: "p1", Name: "Birthday", Date: "1990-07-01", IsRecurring: true},
		{ID: "o3", PersonID: "p1", Name: "Christmas", Date: "2026-12-25", IsRecurring: true},
		{ID: "o4", PersonID: "p2", Name: "Wedding", Date: "2026-06-16", IsRecurring: false},
	}

	next, ok := NextOccasionForPerson(occasions, "p1", now)
	if !ok {
		t.Fatal("expected an upcoming occasion")
	}
	if next.ID != "o2" {
		t.Errorf("next occasion = %s, want o2", next.ID)
	}

	// The past graduation alone yields nothing.
	_, ok = NextOccasionForPerson(occasions[:1], "p1", now)
	if ok {
		t.Error("expected no upcoming occasion for a person with only past occasions")
	}

	_, ok = NextOccasionForPerson(occasions, "nobody", now)
	if ok {
		t.Error("expected no occasion for an unknown person")
	}
}

func TestUpcomingOccasions(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	occasions := []models.Occasion{
		{ID: "soon", Date: "2026-06-20", IsRecurring: false},
		{ID: "later", Date: "2026-08-01", IsRecurring: false},
		{ID: "past", Date: "2026-06-01", IsRecurring: false},
		{ID: "edge", Date: "2026-07-15", IsRecurring: false},
	}

	got := UpcomingOccasions(occasions, 30, now)
	if len(got) != 2 {
		t.Fatalf("got %d occasions, want 2", len(got))
	}
	if got[0].ID != "soon" || got[1].ID != "edge" {
		t.Errorf("got order %s, %s; want soon, edge", got[0].ID, got[1].ID)
	}
}

func TestPastOccasions(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	occasions := []models.Occasion{
		{ID: "old", Date: "2025-12-01", IsRecurring: false},
		{ID: "recent", Date: "2026-06-01", IsRecurring: false},
		{ID: "future", Date: "2026-09-01", IsRecurring: false},
		{ID: "recurring", Date: "1990-01-01", IsRecurring: true},
	}

	got := PastOccasions(occasions, now)
	if len(got) != 2 {
		t.Fatalf("got %d occasions, want 2", len(got))
	}
	if got[0].ID != "recent" || got[1].ID != "old" {
		t.Errorf("got order %s, %s; want recent, old", got[0].ID, got[1].ID)
	}
}
