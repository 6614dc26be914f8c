package reports

import (
	"fmt"
	"time"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/cli"
)

type ReportCmd struct {
	ByCategory bool `help:"Break the report down by category."`
	ByOccasion bool `help:"Break the report down by occasion."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	report := aggregate.BuildSpendingReport(
		ctx.App.People.List(),
		ctx.App.Gifts.List(),
		ctx.App.Occasions.List(),
		time.Now(),
	)

	fmt.Println(cli.TitleStyle.Render("Spending report"))
	fmt.Printf("Total spent: %.2f\n", report.TotalSpent)

	if len(report.ByPerson) > 0 {
		fmt.Println("\nBy person:")
		for _, row := range report.ByPerson {
			fmt.Printf("  %-24s %10.2f\n", row.PersonName, row.Amount)
		}
	}

	if c.ByCategory && len(report.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, row := range report.ByCategory {
			fmt.Printf("  %-24s %10.2f\n", row.Category, row.Amount)
		}
	}

	if c.ByOccasion && len(report.ByOccasion) > 0 {
		fmt.Println("\nBy occasion:")
		for _, row := range report.ByOccasion {
			fmt.Printf("  %-24s %10.2f\n", row.OccasionName, row.Amount)
		}
	}

	return nil
}

type BudgetCmd struct {
	Person string `short:"p" help:"Only this person ID."`
}

func (c *BudgetCmd) Run(ctx *cli.Context) error {
	people := ctx.App.People.List()
	if c.Person != "" {
		p, ok := ctx.App.People.Get(c.Person)
		if !ok {
			return fmt.Errorf("no person with ID %s", c.Person)
		}
		people = append(people[:0], p)
	}

	gifts := ctx.App.Gifts.List()
	printed := false
	for _, p := range people {
		summary, ok := aggregate.BudgetSummaryForPerson(p, gifts)
		if !ok {
			continue
		}
		printed = true

		fmt.Printf("  %-24s %.2f of %.2f %s (%.0f%%)\n",
			p.Name, summary.SpentAmount, summary.BudgetAmount, summary.Currency, summary.PercentUsed)
		if summary.IsOverBudget {
			fmt.Printf("      %s\n", cli.WarnStyle.Render(fmt.Sprintf("over budget by %.2f", -summary.RemainingAmount)))
		}
	}
	if !printed {
		fmt.Println("No budgets set")
	}
	return nil
}
