package people

import (
	"fmt"

	"github.com/presently-app/presently/internal/aggregate"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
	"github.com/presently-app/presently/internal/query"
)

type PersonListCmd struct {
	Relationship []string `short:"r" help:"Filter by relationship, repeatable."`
	Search       string   `short:"s" help:"Search names and notes."`
	Sort         string   `help:"Sort field (name|createdAt)." default:"name"`
	Desc         bool     `help:"Sort descending."`
	ShowIDs      bool     `help:"Show person IDs." name:"show-ids"`
}

func (c *PersonListCmd) Run(ctx *cli.Context) error {
	var filters query.PeopleFilters
	for _, r := range c.Relationship {
		rel, err := cli.ParseRelationship(r)
		if err != nil {
			return err
		}
		filters.Relationship = append(filters.Relationship, rel)
	}
	filters.SearchQuery = c.Search
	ctx.App.People.SetFilters(filters)

	sortOpts := query.PeopleSortOptions{Field: query.PeopleSortField(c.Sort), Direction: query.Asc}
	if c.Desc {
		sortOpts.Direction = query.Desc
	}
	switch sortOpts.Field {
	case query.PeopleSortByName, query.PeopleSortByCreatedAt:
	default:
		return fmt.Errorf("invalid sort field: %s (name|createdAt)", c.Sort)
	}
	ctx.App.People.SetSortOptions(sortOpts)

	people := ctx.App.People.Filtered()
	if len(people) == 0 {
		fmt.Println("No people found")
		return nil
	}

	gifts := ctx.App.Gifts.List()
	fmt.Println(cli.TitleStyle.Render("People:"))
	for _, p := range people {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", p.ID)
		}

		rel := string(p.Relationship)
		if p.Relationship == models.RelationshipOther && p.CustomRelationship != "" {
			rel = p.CustomRelationship
		}
		fmt.Printf("  %s%s - %s\n", p.Name, idStr, rel)

		if p.BudgetAmount != nil {
			spent := aggregate.TotalSpentForPerson(gifts, p.ID)
			fmt.Printf("      Budget: %s, spent %.2f\n", cli.FormatMoney(p.BudgetAmount, p.BudgetCurrency), spent)
		}
		if next, ok := ctx.App.Occasions.NextForPerson(p.ID); ok {
			fmt.Printf("      Next: %s (%s)\n", next.Name, next.Date)
		}
	}

	return nil
}
