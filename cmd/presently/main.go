package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/presently-app/presently/internal/ads"
	"github.com/presently-app/presently/internal/app"
	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/cli/gifts"
	"github.com/presently-app/presently/internal/cli/occasions"
	"github.com/presently-app/presently/internal/cli/people"
	"github.com/presently-app/presently/internal/cli/reports"
	"github.com/presently-app/presently/internal/cli/settings"
	"github.com/presently-app/presently/internal/cli/system"
	"github.com/presently-app/presently/internal/config"
	"github.com/presently-app/presently/internal/constants"
	errs "github.com/presently-app/presently/internal/errors"
	"github.com/presently-app/presently/internal/logger"
	"github.com/presently-app/presently/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging to stderr."`

	Person struct {
		Add    people.PersonAddCmd    `cmd:"" help:"Add a person."`
		List   people.PersonListCmd   `cmd:"" help:"List people."`
		Show   people.PersonShowCmd   `cmd:"" help:"Show a person with their gifts and budget."`
		Edit   people.PersonEditCmd   `cmd:"" help:"Edit a person."`
		Delete people.PersonDeleteCmd `cmd:"" help:"Delete a person and their gifts and occasions."`
	} `cmd:"" help:"Manage people."`
	Gift struct {
		Add      gifts.GiftAddCmd      `cmd:"" help:"Add a gift."`
		List     gifts.GiftListCmd     `cmd:"" help:"List gifts."`
		Status   gifts.GiftStatusCmd   `cmd:"" help:"Change a gift's status."`
		Hide     gifts.GiftHideCmd     `cmd:"" help:"Hide a gift and record the spot."`
		Given    gifts.GiftGivenCmd    `cmd:"" help:"Mark a gift as given."`
		Reaction gifts.GiftReactionCmd `cmd:"" help:"Record the recipient's reaction."`
		History  gifts.GiftHistoryCmd  `cmd:"" help:"Show a gift's status history."`
		Delete   gifts.GiftDeleteCmd   `cmd:"" help:"Delete a gift."`
	} `cmd:"" help:"Manage gifts."`
	Occasion struct {
		Add      occasions.OccasionAddCmd      `cmd:"" help:"Add an occasion."`
		List     occasions.OccasionListCmd     `cmd:"" help:"List occasions."`
		Upcoming occasions.OccasionUpcomingCmd `cmd:"" help:"Show occasions coming up."`
		Past     occasions.OccasionPastCmd     `cmd:"" help:"Show past occasions."`
		Delete   occasions.OccasionDeleteCmd   `cmd:"" help:"Delete an occasion."`
	} `cmd:"" help:"Manage occasions."`
	Report    reports.ReportCmd    `cmd:"" help:"Show the spending report."`
	Budget    reports.BudgetCmd    `cmd:"" help:"Show budget usage per person."`
	Reminders reports.RemindersCmd `cmd:"" help:"Show planned occasion reminders."`
	Settings  settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Doctor    system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Export    system.ExportCmd     `cmd:"" help:"Export all data as JSON."`
	Import    system.ImportCmd     `cmd:"" help:"Import data from an export file."`
	Reset     system.ResetCmd      `cmd:"" help:"Erase all data."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gift tracking companion: people, gift ideas, occasions, and budgets"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errs.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		errs.Fatal(err)
	}

	if cfg.Backend == "postgres" && storage.HasEmbeddedCredentials(cfg.ConnStr) {
		fmt.Fprintln(os.Stderr, "Error: connection strings with embedded credentials are not allowed.")
		fmt.Fprintln(os.Stderr, "       Use PGPASSWORD, a .pgpass file, or a passwordless connection string.")
		os.Exit(1)
	}

	kv, err := app.OpenKV(cfg)
	if err != nil {
		errs.Fatal(err)
	}

	ctx := context.Background()
	application := app.New(ctx, kv)
	gate := ads.NewGate(ctx, kv, ads.DefaultConfig(), application.Settings.Get().AdsConsent)

	runErr := kctx.Run(&cli.Context{App: application, Gate: gate})

	if err := application.Close(); err != nil {
		logger.Warn("shutdown", "error", err)
	}
	errs.Fatal(runErr)
}
