package reports

import (
	"fmt"
	"time"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/notifier"
)

type RemindersCmd struct{}

func (c *RemindersCmd) Run(ctx *cli.Context) error {
	settings := ctx.App.Settings.Get()
	reminders := notifier.New().PlanReminders(ctx.App.Occasions.List(), settings, time.Now())

	if !settings.NotificationsEnabled {
		fmt.Println("Notifications are disabled")
		return nil
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders planned")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Planned reminders:"))
	for _, r := range reminders {
		fmt.Printf("  %s  %s\n", r.FireAt.Format("2006-01-02 15:04"), r.Title)
		fmt.Printf("      %s\n", cli.DimStyle.Render(r.Body))
	}
	return nil
}
