package aggregate

import (
	"testing"
	"time"

	"github.com/presently-app/presently/internal/models"
)

func TestBudgetSummaryForPerson(t *testing.T) {
	person := models.Person{ID: "p1", BudgetAmount: price(200), BudgetCurrency: models.CurrencyEUR}
	gifts := []models.Gift{
		{PersonID: "p1", Status: models.StatusPurchased, Price: price(100)},
		{PersonID: "p1", Status: models.StatusGiven, Price: price(50)},
	}

	summary, ok := BudgetSummaryForPerson(person, gifts)
	if !ok {
		t.Fatal("expected a summary for a person with a budget")
	}
	if summary.SpentAmount != 150 {
		t.Errorf("SpentAmount = %v, want 150", summary.SpentAmount)
	}
	if summary.RemainingAmount != 50 {
		t.Errorf("RemainingAmount = %v, want 50", summary.RemainingAmount)
	}
	if summary.PercentUsed != 75 {
		t.Errorf("PercentUsed = %v, want 75", summary.PercentUsed)
	}
	if summary.IsOverBudget {
		t.Error("IsOverBudget = true, want false")
	}
	if summary.Currency != models.CurrencyEUR {
		t.Errorf("Currency = %s, want EUR", summary.Currency)
	}

	over, _ := BudgetSummaryForPerson(models.Person{ID: "p1", BudgetAmount: price(100)}, gifts)
	if !over.IsOverBudget {
		t.Error("IsOverBudget = false, want true")
	}

	if _, ok := BudgetSummaryForPerson(models.Person{ID: "p1"}, gifts); ok {
		t.Error("expected no summary for a person without a budget")
	}
}

func TestBuildSpendingReport(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	people := []models.Person{
		{ID: "p1", Name: "Ada"},
		{ID: "p2", Name: "Grace"},
	}
	occasions := []models.Occasion{
		{ID: "o1", Name: "Birthday"},
	}
	gifts := []models.Gift{
		{PersonID: "p1", OccasionID: "o1", Status: models.StatusGiven, Price: price(30), Category: models.CategoryBooks},
		{PersonID: "p1", Status: models.StatusPurchased, Price: price(20), Category: models.CategoryBooks},
		{PersonID: "p2", Status: models.StatusIdea, Price: price(500), Category: models.CategoryJewelry},
	}

	report := BuildSpendingReport(people, gifts, occasions, now)

	if report.TotalSpent != 50 {
		t.Errorf("TotalSpent = %v, want 50", report.TotalSpent)
	}
	if len(report.ByPerson) != 1 {
		t.Fatalf("ByPerson has %d rows, want 1 (ideas do not count)", len(report.ByPerson))
	}
	if report.ByPerson[0].PersonName != "Ada" || report.ByPerson[0].Amount != 50 {
		t.Errorf("ByPerson[0] = %+v, want Ada with 50", report.ByPerson[0])
	}
	if len(report.ByCategory) != 1 || report.ByCategory[0].Category != models.CategoryBooks {
		t.Errorf("ByCategory = %+v, want a single books row", report.ByCategory)
	}
	if len(report.ByOccasion) != 1 || report.ByOccasion[0].Amount != 30 {
		t.Errorf("ByOccasion = %+v, want Birthday with 30", report.ByOccasion)
	}
}
