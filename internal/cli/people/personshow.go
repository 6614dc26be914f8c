package people

import (
	"fmt"
	"time"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type PersonShowCmd struct {
	ID string `arg:"" help:"Person ID."`
}

func (c *PersonShowCmd) Run(ctx *cli.Context) error {
	person, ok := ctx.App.People.Get(c.ID)
	if !ok {
		return fmt.Errorf("no person with ID %s", c.ID)
	}

	rel := string(person.Relationship)
	if person.Relationship == models.RelationshipOther && person.CustomRelationship != "" {
		rel = person.CustomRelationship
	}
	fmt.Println(cli.TitleStyle.Render(person.Name) + " - " + rel)
	if person.Notes != "" {
		fmt.Printf("  Notes: %s\n", person.Notes)
	}
	for _, d := range person.Dates {
		fmt.Printf("  %s: %s\n", d.Label, d.Date)
	}

	gifts := ctx.App.Gifts.List()
	if summary, ok := aggregate.BudgetSummaryForPerson(person, gifts); ok {
		line := fmt.Sprintf("  Budget: %s, spent %.2f (%.0f%%)",
			cli.FormatMoney(person.BudgetAmount, person.BudgetCurrency), summary.SpentAmount, summary.PercentUsed)
		if summary.IsOverBudget {
			line = cli.WarnStyle.Render(line)
		}
		fmt.Println(line)
	}

	if next, ok := ctx.App.Occasions.NextForPerson(c.ID); ok {
		days := aggregate.DaysUntilOccasion(next, time.Now())
		fmt.Printf("  Next occasion: %s in %d days\n", next.Name, days)
	}

	active := aggregate.GiftsForPerson(gifts, c.ID)
	if len(active) > 0 {
		fmt.Println(cli.TitleStyle.Render("Gifts:"))
		for _, g := range active {
			fmt.Printf("  %s [%s] %s\n", g.Name, g.Status, cli.FormatMoney(g.Price, g.Currency))
		}
	}

	history := aggregate.GiftHistoryForPerson(gifts, c.ID)
	if len(history) > 0 {
		fmt.Println(cli.TitleStyle.Render("Given:"))
		for _, g := range history {
			line := fmt.Sprintf("  %s %s", g.Name, cli.FormatMoney(g.Price, g.Currency))
			if g.Reaction != "" {
				line += fmt.Sprintf(" (%s)", g.Reaction)
			}
			fmt.Println(line)
		}
	}

	return nil
}
