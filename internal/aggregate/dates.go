// Package aggregate holds the read-only query functions that join data
// across store snapshots: per-person gift views, spend totals, budget
// summaries, and the occasion date math. Nothing here mutates a store;
// callers pass in the snapshots they already hold.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/models"
)

// NextOccurrence resolves an occasion date to its next relevant instant.
// Non-recurring occasions resolve to their absolute date, past or future.
// Recurring occasions resolve to this year's (month, day) unless that has
// already passed, in which case next year's occurrence is used.
func NextOccurrence(dateStr string, isRecurring bool, now time.Time) time.Time {
	parsed, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}
	}
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())

	if !isRecurring {
		return date
	}

	next := time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(now) {
		next = time.Date(now.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	}
	return next
}

// DaysUntilOccasion returns the whole-day (ceiling) distance from now to the
// occasion's next occurrence. Negative only for non-recurring occasions in
// the past; recurring occasions wrap around to next year instead.
func DaysUntilOccasion(occasion models.Occasion, now time.Time) int {
	next := NextOccurrence(occasion.Date, occasion.IsRecurring, now)
	return int(math.Ceil(next.Sub(now).Hours() / 24))
}

// OccasionsForPerson returns the person's occasions sorted soonest first.
// Ties keep collection order.
func OccasionsForPerson(occasions []models.Occasion, personID string, now time.Time) []models.Occasion {
	var out []models.Occasion
	for _, o := range occasions {
		if o.PersonID == personID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return DaysUntilOccasion(out[i], now) < DaysUntilOccasion(out[j], now)
	})
	return out
}

// NextOccasionForPerson returns the person's occasion with the smallest
// non-negative days-until, ties broken by collection order. ok is false when
// the person has no upcoming occasion.
func NextOccasionForPerson(occasions []models.Occasion, personID string, now time.Time) (models.Occasion, bool) {
	best := models.Occasion{}
	bestDays := -1
	for _, o := range occasions {
		if o.PersonID != personID {
			continue
		}
		days := DaysUntilOccasion(o, now)
		if days < 0 {
			continue
		}
		if bestDays < 0 || days < bestDays {
			best = o
			bestDays = days
		}
	}
	return best, bestDays >= 0
}

// UpcomingOccasions returns occasions whose days-until falls in
// [0, withinDays], soonest first.
func UpcomingOccasions(occasions []models.Occasion, withinDays int, now time.Time) []models.Occasion {
	var out []models.Occasion
	for _, o := range occasions {
		days := DaysUntilOccasion(o, now)
		if days >= 0 && days <= withinDays {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return DaysUntilOccasion(out[i], now) < DaysUntilOccasion(out[j], now)
	})
	return out
}

// PastOccasions returns non-recurring occasions whose date has passed, most
// recent first.
func PastOccasions(occasions []models.Occasion, now time.Time) []models.Occasion {
	var out []models.Occasion
	for _, o := range occasions {
		if o.IsRecurring {
			continue
		}
		if DaysUntilOccasion(o, now) < 0 {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
