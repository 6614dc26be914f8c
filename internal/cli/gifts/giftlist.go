package gifts

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/query"
)

type GiftListCmd struct {
	Person   string   `short:"p" help:"Only gifts for this person ID."`
	Occasion string   `short:"o" help:"Only gifts for this occasion ID."`
	Status   []string `short:"s" help:"Filter by status, repeatable."`
	Priority []string `help:"Filter by priority, repeatable."`
	Category []string `help:"Filter by category, repeatable."`
	PriceMin *float64 `help:"Minimum price, inclusive."`
	PriceMax *float64 `help:"Maximum price, inclusive."`
	Search   string   `help:"Search names, descriptions, and notes."`
	Sort     string   `help:"Sort field (name|price|priority|createdAt|status)." default:"createdAt"`
	Asc      bool     `help:"Sort ascending."`
	ShowIDs  bool     `help:"Show gift IDs." name:"show-ids"`
}

func (c *GiftListCmd) Run(ctx *cli.Context) error {
	var filters query.GiftFilters
	for _, s := range c.Status {
		status, err := cli.ParseStatus(s)
		if err != nil {
			return err
		}
		filters.Status = append(filters.Status, status)
	}
	for _, p := range c.Priority {
		priority, err := cli.ParsePriority(p)
		if err != nil {
			return err
		}
		filters.Priority = append(filters.Priority, priority)
	}
	for _, cat := range c.Category {
		filters.Category = append(filters.Category, models.GiftCategory(cat))
	}
	filters.PriceMin = c.PriceMin
	filters.PriceMax = c.PriceMax
	filters.SearchQuery = c.Search
	ctx.App.Gifts.SetFilters(filters)

	sortOpts := query.GiftSortOptions{Field: query.GiftSortField(c.Sort), Direction: query.Desc}
	if c.Asc {
		sortOpts.Direction = query.Asc
	}
	switch sortOpts.Field {
	case query.GiftSortByName, query.GiftSortByPrice, query.GiftSortByPriority,
		query.GiftSortByCreatedAt, query.GiftSortByStatus:
	default:
		return fmt.Errorf("invalid sort field: %s (name|price|priority|createdAt|status)", c.Sort)
	}
	ctx.App.Gifts.SetSortOptions(sortOpts)

	gifts := ctx.App.Gifts.Filtered()
	if c.Person != "" || c.Occasion != "" {
		kept := gifts[:0]
		for _, g := range gifts {
			if c.Person != "" && g.PersonID != c.Person {
				continue
			}
			if c.Occasion != "" && g.OccasionID != c.Occasion {
				continue
			}
			kept = append(kept, g)
		}
		gifts = kept
	}
	if len(gifts) == 0 {
		fmt.Println("No gifts found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Gifts:"))
	for _, g := range gifts {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", g.ID)
		}

		recipient := g.PersonID
		if p, ok := ctx.App.People.Get(g.PersonID); ok {
			recipient = p.Name
		}

		fmt.Printf("  [%s] %s%s - %s, for %s (%s)\n",
			g.Status, g.Name, idStr, cli.FormatMoney(g.Price, g.Currency), recipient, g.Priority)

		if g.Status == models.StatusHidden && g.HidingSpot != "" {
			fmt.Printf("      %s\n", cli.DimStyle.Render("Hidden: "+g.HidingSpot))
		}
		if g.Status == models.StatusGiven && g.Reaction != "" && g.Reaction != models.ReactionUnknown {
			fmt.Printf("      Reaction: %s\n", g.Reaction)
		}
	}

	return nil
}
