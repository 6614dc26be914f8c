// Package notifier plans occasion reminders. Planning is pure: it consumes
// occasion snapshots and settings and produces the schedule; actual delivery
// belongs to the platform layer.
package notifier

import (
	"fmt"
	"sort"
	"time"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/models"
)

// Reminder is one planned notification for an occasion.
type Reminder struct {
	OccasionID string    `json:"occasion_id"`
	PersonID   string    `json:"person_id,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	FireAt     time.Time `json:"fire_at"`
}

type Planner struct{}

func New() *Planner {
	return &Planner{}
}

// PlanReminders computes the reminder for each occasion: reminderDays before
// the next occurrence (falling back to the settings default when the
// occasion has none). Occasions whose reminder instant has already passed
// are skipped. Results are ordered by fire time.
func (p *Planner) PlanReminders(occasions []models.Occasion, settings models.Settings, now time.Time) []Reminder {
	if !settings.NotificationsEnabled {
		return nil
	}

	var reminders []Reminder
	for _, o := range occasions {
		days := o.ReminderDays
		if days <= 0 {
			days = settings.DefaultReminderDays
		}

		next := aggregate.NextOccurrence(o.Date, o.IsRecurring, now)
		if next.IsZero() {
			continue
		}
		fireAt := next.AddDate(0, 0, -days)
		if fireAt.Before(now) {
			continue
		}

		reminders = append(reminders, Reminder{
			OccasionID: o.ID,
			PersonID:   o.PersonID,
			Title:      fmt.Sprintf("%s is coming up", o.Name),
			Body:       fmt.Sprintf("%s is in %d days", o.Name, aggregate.DaysUntilOccasion(o, now)),
			FireAt:     fireAt,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].FireAt.Before(reminders[j].FireAt)
	})
	return reminders
}
