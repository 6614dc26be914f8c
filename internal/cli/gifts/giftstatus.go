package gifts

import (
	"fmt"

	"github.com/presently-app/presently/internal/ads"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type GiftStatusCmd struct {
	ID     string `arg:"" help:"Gift ID."`
	Status string `arg:"" help:"New status (purchased|wrapped|hidden|given|returned)."`
	Notes  string `short:"n" help:"Notes recorded with the change."`
}

func (c *GiftStatusCmd) Run(ctx *cli.Context) error {
	status, err := cli.ParseStatus(c.Status)
	if err != nil {
		return err
	}

	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}
	if !cli.CanTransition(gift.Status, status) {
		return cli.TransitionError(gift.Status, status)
	}

	ctx.App.Gifts.UpdateStatus(c.ID, status, c.Notes)
	fmt.Printf("%s: %s -> %s\n", gift.Name, gift.Status, status)

	if status == models.StatusGiven {
		ctx.MaybeShowInterstitial(ads.TriggerGiftGiven)
	}
	return nil
}

type GiftHideCmd struct {
	ID   string `arg:"" help:"Gift ID."`
	Spot string `arg:"" help:"Where the gift is hidden."`
}

func (c *GiftHideCmd) Run(ctx *cli.Context) error {
	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}

	if gift.Status != models.StatusHidden {
		if !cli.CanTransition(gift.Status, models.StatusHidden) {
			return cli.TransitionError(gift.Status, models.StatusHidden)
		}
		ctx.App.Gifts.UpdateStatus(c.ID, models.StatusHidden, "")
	}
	ctx.App.Gifts.SetHidingSpot(c.ID, c.Spot)

	fmt.Printf("%s hidden: %s\n", gift.Name, c.Spot)
	return nil
}
