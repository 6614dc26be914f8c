package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/presently-app/presently/internal/cli"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (cmd *ResetCmd) Run(ctx *cli.Context) error {
	if !cmd.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title("Erase all data?").
			Description("Every person, gift, occasion, and setting will be removed.").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	ctx.App.Reset()
	fmt.Println("All data erased")
	return nil
}
