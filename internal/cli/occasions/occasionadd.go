package occasions

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type OccasionAddCmd struct {
	Name      string   `arg:"" help:"Occasion name."`
	Date      string   `short:"d" help:"Date (YYYY-MM-DD)." required:""`
	Person    string   `short:"p" help:"Person ID the occasion belongs to."`
	Type      string   `short:"t" help:"Occasion type." default:"custom"`
	Recurring bool     `short:"r" help:"Repeats annually."`
	Reminder  int      `help:"Reminder lead time in days (0 uses the settings default)."`
	Budget    *float64 `short:"b" help:"Budget for this occasion."`
	Currency  string   `short:"c" help:"Budget currency (defaults to the settings currency)."`
	Notes     string   `short:"n" help:"Free-form notes."`
}

func (c *OccasionAddCmd) Validate() error {
	return cli.ValidateDate(c.Date)
}

func (c *OccasionAddCmd) Run(ctx *cli.Context) error {
	if c.Person != "" {
		if _, ok := ctx.App.People.Get(c.Person); !ok {
			return fmt.Errorf("no person with ID %s", c.Person)
		}
	}

	data := models.OccasionFormData{
		PersonID:     c.Person,
		Name:         c.Name,
		Type:         models.OccasionType(c.Type),
		Date:         c.Date,
		IsRecurring:  c.Recurring,
		ReminderDays: c.Reminder,
		BudgetAmount: c.Budget,
		Notes:        c.Notes,
	}
	if c.Currency != "" {
		data.BudgetCurrency = models.Currency(c.Currency)
	} else {
		data.BudgetCurrency = ctx.App.Settings.Get().DefaultCurrency
	}

	occasion := ctx.App.Occasions.Add(data)
	fmt.Printf("Added occasion: %s on %s (ID: %s)\n", occasion.Name, occasion.Date, occasion.ID)
	return nil
}
