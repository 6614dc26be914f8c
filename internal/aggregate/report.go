package aggregate

import (
	"time"

	"github.com/presently-app/presently/internal/models"
)

// BudgetSummary compares a person's annual budget against committed spend.
type BudgetSummary struct {
	PersonID        string          `json:"person_id"`
	BudgetAmount    float64         `json:"budget_amount"`
	SpentAmount     float64         `json:"spent_amount"`
	RemainingAmount float64         `json:"remaining_amount"`
	Currency        models.Currency `json:"currency"`
	IsOverBudget    bool            `json:"is_over_budget"`
	PercentUsed     float64         `json:"percent_used"`
}

// BudgetSummaryForPerson computes budget usage from the person's budget and
// their gifts. ok is false when the person has no budget set.
func BudgetSummaryForPerson(person models.Person, gifts []models.Gift) (BudgetSummary, bool) {
	if person.BudgetAmount == nil {
		return BudgetSummary{}, false
	}

	budget := *person.BudgetAmount
	spent := TotalSpentForPerson(gifts, person.ID)

	summary := BudgetSummary{
		PersonID:        person.ID,
		BudgetAmount:    budget,
		SpentAmount:     spent,
		RemainingAmount: budget - spent,
		Currency:        person.BudgetCurrency,
		IsOverBudget:    spent > budget,
	}
	if budget > 0 {
		summary.PercentUsed = spent / budget * 100
	}
	return summary, true
}

// PersonSpend is one row of a spending report.
type PersonSpend struct {
	PersonID   string  `json:"person_id"`
	PersonName string  `json:"person_name"`
	Amount     float64 `json:"amount"`
}

type CategorySpend struct {
	Category models.GiftCategory `json:"category"`
	Amount   float64             `json:"amount"`
}

type OccasionSpend struct {
	OccasionID   string  `json:"occasion_id"`
	OccasionName string  `json:"occasion_name"`
	Amount       float64 `json:"amount"`
}

// SpendingReport aggregates committed spend across every person, category,
// and occasion.
type SpendingReport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	TotalSpent  float64         `json:"total_spent"`
	ByPerson    []PersonSpend   `json:"by_person"`
	ByCategory  []CategorySpend `json:"by_category"`
	ByOccasion  []OccasionSpend `json:"by_occasion"`
}

// BuildSpendingReport joins the three store snapshots into a report. Only
// committed statuses count, the same rule TotalSpentForPerson applies.
// Rows follow the snapshot order of people and occasions; categories appear
// in first-seen order.
func BuildSpendingReport(people []models.Person, gifts []models.Gift, occasions []models.Occasion, now time.Time) SpendingReport {
	report := SpendingReport{GeneratedAt: now}

	for _, p := range people {
		amount := TotalSpentForPerson(gifts, p.ID)
		if amount == 0 {
			continue
		}
		report.ByPerson = append(report.ByPerson, PersonSpend{
			PersonID:   p.ID,
			PersonName: p.Name,
			Amount:     amount,
		})
		report.TotalSpent += amount
	}

	byCategory := make(map[models.GiftCategory]float64)
	var categoryOrder []models.GiftCategory
	byOccasion := make(map[string]float64)
	for _, g := range gifts {
		if !g.Status.Committed() || g.Price == nil {
			continue
		}
		if _, seen := byCategory[g.Category]; !seen {
			categoryOrder = append(categoryOrder, g.Category)
		}
		byCategory[g.Category] += *g.Price
		if g.OccasionID != "" {
			byOccasion[g.OccasionID] += *g.Price
		}
	}

	for _, c := range categoryOrder {
		report.ByCategory = append(report.ByCategory, CategorySpend{Category: c, Amount: byCategory[c]})
	}

	for _, o := range occasions {
		amount, ok := byOccasion[o.ID]
		if !ok {
			continue
		}
		report.ByOccasion = append(report.ByOccasion, OccasionSpend{
			OccasionID:   o.ID,
			OccasionName: o.Name,
			Amount:       amount,
		})
	}

	return report
}
