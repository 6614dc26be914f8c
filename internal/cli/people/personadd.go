package people

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/presently-app/presently/internal/ads"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type PersonAddCmd struct {
	Name         string   `arg:"" optional:"" help:"Person's name."`
	Relationship string   `short:"r" help:"Relationship (family|friend|coworker|partner|other)." default:"other"`
	Custom       string   `help:"Custom relationship label (used with -r other)."`
	Notes        string   `short:"n" help:"Free-form notes."`
	Budget       *float64 `short:"b" help:"Annual gift budget."`
	Currency     string   `short:"c" help:"Budget currency (defaults to the settings currency)."`
	Interests    []string `short:"i" help:"Interests, repeatable."`
	Allergies    []string `help:"Allergies or things to avoid, repeatable."`
	Birthday     string   `help:"Birthday (YYYY-MM-DD), stored as a recurring date."`
}

func (c *PersonAddCmd) Validate() error {
	if c.Name != "" {
		if _, err := cli.ParseRelationship(c.Relationship); err != nil {
			return err
		}
	}
	if c.Birthday != "" {
		if err := cli.ValidateDate(c.Birthday); err != nil {
			return err
		}
	}
	return nil
}

func (c *PersonAddCmd) Run(ctx *cli.Context) error {
	// No name on the command line means interactive entry.
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	rel, err := cli.ParseRelationship(c.Relationship)
	if err != nil {
		return err
	}

	data := models.PersonFormData{
		Name:               c.Name,
		Relationship:       rel,
		CustomRelationship: c.Custom,
		Notes:              c.Notes,
		Interests:          c.Interests,
		Allergies:          c.Allergies,
		BudgetAmount:       c.Budget,
	}
	if c.Currency != "" {
		data.BudgetCurrency = models.Currency(c.Currency)
	} else {
		data.BudgetCurrency = ctx.App.Settings.Get().DefaultCurrency
	}
	if c.Birthday != "" {
		data.Dates = []models.PersonDate{{Label: "Birthday", Date: c.Birthday, IsRecurring: true}}
	}

	person := ctx.App.People.Add(data)
	fmt.Printf("Added person: %s (ID: %s)\n", person.Name, person.ID)

	ctx.MaybeShowInterstitial(ads.TriggerPersonAdded)
	return nil
}

func (c *PersonAddCmd) promptForm() error {
	var budget string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Relationship").
				Options(
					huh.NewOption("Family", "family"),
					huh.NewOption("Friend", "friend"),
					huh.NewOption("Coworker", "coworker"),
					huh.NewOption("Partner", "partner"),
					huh.NewOption("Other", "other"),
				).
				Value(&c.Relationship),
			huh.NewInput().
				Title("Budget (optional)").
				Value(&budget).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := strconv.ParseFloat(s, 64)
					return err
				}),
			huh.NewText().
				Title("Notes").
				Value(&c.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if budget != "" {
		v, err := strconv.ParseFloat(budget, 64)
		if err != nil {
			return err
		}
		c.Budget = &v
	}
	return nil
}
