package gifts

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type GiftAddCmd struct {
	Name     string   `arg:"" help:"Gift name."`
	Person   string   `short:"p" help:"Person ID the gift is for." required:""`
	Price    *float64 `help:"Price."`
	Currency string   `short:"c" help:"Currency (defaults to the settings currency)."`
	Priority string   `help:"Priority (low|medium|high|must_have)." default:"medium"`
	Category string   `help:"Category." default:"other"`
	Status   string   `short:"s" help:"Initial status (idea|purchased)." default:"idea"`
	Occasion string   `short:"o" help:"Occasion ID the gift is tied to."`
	URL      string   `short:"u" help:"Product URL."`
	Notes    string   `short:"n" help:"Free-form notes."`
	Source   string   `help:"Where the idea came from (mentioned|wishlist|online|recommendation|store|other)." default:"other"`
	Regift   bool     `help:"Mark as a regift."`
}

func (c *GiftAddCmd) Validate() error {
	if _, err := cli.ParsePriority(c.Priority); err != nil {
		return err
	}
	status, err := cli.ParseStatus(c.Status)
	if err != nil {
		return err
	}
	// New gifts start at the top of the lifecycle.
	if status != models.StatusIdea && status != models.StatusPurchased {
		return fmt.Errorf("a new gift starts as idea or purchased, not %s", status)
	}
	return nil
}

func (c *GiftAddCmd) Run(ctx *cli.Context) error {
	if _, ok := ctx.App.People.Get(c.Person); !ok {
		return fmt.Errorf("no person with ID %s", c.Person)
	}
	if c.Occasion != "" {
		if _, ok := ctx.App.Occasions.Get(c.Occasion); !ok {
			return fmt.Errorf("no occasion with ID %s", c.Occasion)
		}
	}

	priority, _ := cli.ParsePriority(c.Priority)
	status, _ := cli.ParseStatus(c.Status)

	data := models.GiftFormData{
		PersonID:   c.Person,
		Name:       c.Name,
		Price:      c.Price,
		Priority:   priority,
		Category:   models.GiftCategory(c.Category),
		Status:     status,
		OccasionID: c.Occasion,
		URL:        c.URL,
		Notes:      c.Notes,
		Source:     models.GiftSource(c.Source),
		IsRegift:   c.Regift,
	}
	if c.Currency != "" {
		data.Currency = models.Currency(c.Currency)
	} else {
		data.Currency = ctx.App.Settings.Get().DefaultCurrency
	}

	gift := ctx.App.Gifts.Add(data)
	fmt.Printf("Added gift: %s (ID: %s)\n", gift.Name, gift.ID)
	return nil
}
