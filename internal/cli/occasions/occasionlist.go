package occasions

import (
	"fmt"
	"time"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/models"
)

type OccasionListCmd struct {
	Person  string `short:"p" help:"Only occasions for this person ID."`
	Type    string `short:"t" help:"Filter by occasion type."`
	ShowIDs bool   `help:"Show occasion IDs." name:"show-ids"`
}

func (c *OccasionListCmd) Run(ctx *cli.Context) error {
	var occasions []models.Occasion
	switch {
	case c.Person != "":
		occasions = ctx.App.Occasions.ByPerson(c.Person)
	case c.Type != "":
		occasions = ctx.App.Occasions.ByType(models.OccasionType(c.Type))
	default:
		occasions = ctx.App.Occasions.List()
	}
	if c.Person != "" && c.Type != "" {
		kept := occasions[:0]
		for _, o := range occasions {
			if o.Type == models.OccasionType(c.Type) {
				kept = append(kept, o)
			}
		}
		occasions = kept
	}
	if len(occasions) == 0 {
		fmt.Println("No occasions found")
		return nil
	}

	printOccasions(ctx, occasions, c.ShowIDs, time.Now())
	return nil
}

type OccasionUpcomingCmd struct {
	Within  int  `short:"w" help:"Window in days." default:"30"`
	ShowIDs bool `help:"Show occasion IDs." name:"show-ids"`
}

func (c *OccasionUpcomingCmd) Run(ctx *cli.Context) error {
	occasions := ctx.App.Occasions.Upcoming(c.Within)
	if len(occasions) == 0 {
		fmt.Printf("Nothing in the next %d days\n", c.Within)
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Next %d days:", c.Within)))
	printOccasions(ctx, occasions, c.ShowIDs, time.Now())
	return nil
}

type OccasionPastCmd struct {
	ShowIDs bool `help:"Show occasion IDs." name:"show-ids"`
}

func (c *OccasionPastCmd) Run(ctx *cli.Context) error {
	occasions := ctx.App.Occasions.Past()
	if len(occasions) == 0 {
		fmt.Println("No past occasions")
		return nil
	}

	for _, o := range occasions {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", o.ID)
		}
		fmt.Printf("  %s  %s%s\n", o.Date, o.Name, idStr)
	}
	return nil
}

type OccasionDeleteCmd struct {
	ID string `arg:"" help:"Occasion ID."`
}

func (c *OccasionDeleteCmd) Run(ctx *cli.Context) error {
	occasion, ok := ctx.App.Occasions.Get(c.ID)
	if !ok {
		return fmt.Errorf("no occasion with ID %s", c.ID)
	}

	ctx.App.Occasions.Delete(c.ID)
	fmt.Printf("Deleted occasion: %s\n", occasion.Name)
	return nil
}

func printOccasions(ctx *cli.Context, occasions []models.Occasion, showIDs bool, now time.Time) {
	for _, o := range occasions {
		idStr := ""
		if showIDs {
			idStr = fmt.Sprintf(" (ID: %s)", o.ID)
		}

		owner := ""
		if o.PersonID != "" {
			if p, ok := ctx.App.People.Get(o.PersonID); ok {
				owner = " for " + p.Name
			}
		}

		days := aggregate.DaysUntilOccasion(o, now)
		when := fmt.Sprintf("in %d days", days)
		switch {
		case days == 0:
			when = "today"
		case days == 1:
			when = "tomorrow"
		case days < 0:
			when = fmt.Sprintf("%d days ago", -days)
		}

		next := aggregate.NextOccurrence(o.Date, o.IsRecurring, now)
		fmt.Printf("  %s  %s%s%s (%s)\n", next.Format(constants.DateFormat), o.Name, owner, idStr, when)
	}
}
