package gifts

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
)

type GiftHistoryCmd struct {
	ID string `arg:"" help:"Gift ID."`
}

func (c *GiftHistoryCmd) Run(ctx *cli.Context) error {
	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}

	fmt.Println(cli.TitleStyle.Render(gift.Name + ":"))
	for _, entry := range gift.StatusHistory {
		line := fmt.Sprintf("  %s  %s", entry.Date, entry.Status)
		if entry.Notes != "" {
			line += " - " + entry.Notes
		}
		fmt.Println(line)
	}
	return nil
}
