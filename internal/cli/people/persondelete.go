package people

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/presently-app/presently/internal/cli"
)

type PersonDeleteCmd struct {
	ID  string `arg:"" help:"Person ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PersonDeleteCmd) Run(ctx *cli.Context) error {
	person, ok := ctx.App.People.Get(c.ID)
	if !ok {
		return fmt.Errorf("no person with ID %s", c.ID)
	}

	gifts := ctx.App.Gifts.ByPerson(c.ID)
	occasions := ctx.App.Occasions.ByPerson(c.ID)

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %s?", person.Name)).
			Description(fmt.Sprintf("This also removes %d gifts and %d occasions.",
				len(gifts), len(occasions))).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	ctx.App.DeletePerson(c.ID)
	fmt.Printf("Deleted person: %s\n", person.Name)
	return nil
}
