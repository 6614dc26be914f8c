package gifts

import (
	"fmt"
	"time"

	"github.com/presently-app/presently/internal/ads"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/models"
)

type GiftGivenCmd struct {
	ID       string `arg:"" help:"Gift ID."`
	Date     string `short:"d" help:"Date given (YYYY-MM-DD), defaults to today."`
	Reaction string `short:"r" help:"Recipient's reaction (loved_it|liked_it|meh|didnt_like)."`
}

func (c *GiftGivenCmd) Validate() error {
	if c.Date != "" {
		return cli.ValidateDate(c.Date)
	}
	return nil
}

func (c *GiftGivenCmd) Run(ctx *cli.Context) error {
	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}
	if !cli.CanTransition(gift.Status, models.StatusGiven) {
		return cli.TransitionError(gift.Status, models.StatusGiven)
	}

	dateGiven := ""
	if c.Date != "" {
		d, _ := time.Parse(constants.DateFormat, c.Date)
		dateGiven = d.Format(time.RFC3339)
	}

	reaction := models.ReactionUnknown
	if c.Reaction != "" {
		reaction = models.GiftReaction(c.Reaction)
	}

	ctx.App.Gifts.MarkAsGiven(c.ID, dateGiven, reaction)
	fmt.Printf("Marked as given: %s\n", gift.Name)

	ctx.MaybeShowInterstitial(ads.TriggerGiftGiven)
	return nil
}

type GiftReactionCmd struct {
	ID       string `arg:"" help:"Gift ID."`
	Reaction string `arg:"" help:"Reaction (loved_it|liked_it|meh|didnt_like|unknown)."`
}

func (c *GiftReactionCmd) Run(ctx *cli.Context) error {
	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}
	if gift.Status != models.StatusGiven {
		return fmt.Errorf("reactions are only recorded for given gifts (current status: %s)", gift.Status)
	}

	ctx.App.Gifts.SetReaction(c.ID, models.GiftReaction(c.Reaction))
	fmt.Printf("Recorded reaction for %s: %s\n", gift.Name, c.Reaction)
	return nil
}

type GiftDeleteCmd struct {
	ID string `arg:"" help:"Gift ID."`
}

func (c *GiftDeleteCmd) Run(ctx *cli.Context) error {
	gift, ok := ctx.App.Gifts.Get(c.ID)
	if !ok {
		return fmt.Errorf("no gift with ID %s", c.ID)
	}

	ctx.App.Gifts.Delete(c.ID)
	fmt.Printf("Deleted gift: %s\n", gift.Name)
	return nil
}
