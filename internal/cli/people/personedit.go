package people

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type PersonEditCmd struct {
	ID           string   `arg:"" help:"Person ID."`
	Name         *string  `help:"New name."`
	Relationship *string  `short:"r" help:"New relationship."`
	Custom       *string  `help:"New custom relationship label."`
	Notes        *string  `short:"n" help:"New notes."`
	Budget       *float64 `short:"b" help:"New annual budget."`
	Currency     *string  `short:"c" help:"New budget currency."`
}

func (c *PersonEditCmd) Run(ctx *cli.Context) error {
	person, ok := ctx.App.People.Get(c.ID)
	if !ok {
		return fmt.Errorf("no person with ID %s", c.ID)
	}

	patch := models.PersonPatch{
		Name:               c.Name,
		CustomRelationship: c.Custom,
		Notes:              c.Notes,
		BudgetAmount:       c.Budget,
	}
	if c.Relationship != nil {
		rel, err := cli.ParseRelationship(*c.Relationship)
		if err != nil {
			return err
		}
		patch.Relationship = &rel
	}
	if c.Currency != nil {
		cur := models.Currency(*c.Currency)
		patch.BudgetCurrency = &cur
	}

	ctx.App.People.Update(c.ID, patch)
	fmt.Printf("Updated person: %s\n", person.Name)
	return nil
}
