package settings

import (
	"fmt"

	"github.com/presently-app/presently/internal/cli"
	"github.com/presently-app/presently/internal/models"
)

type SettingsCmd struct {
	Show ShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SetCmd  `cmd:"" help:"Change a setting."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	s := ctx.App.Settings.Get()

	fmt.Println(cli.TitleStyle.Render("Settings:"))
	fmt.Printf("  theme:          %s\n", s.Theme)
	fmt.Printf("  notifications:  %t\n", s.NotificationsEnabled)
	fmt.Printf("  reminder-days:  %d\n", s.DefaultReminderDays)
	fmt.Printf("  currency:       %s\n", s.DefaultCurrency)
	fmt.Printf("  ads-consent:    %s\n", s.AdsConsent)
	if s.AdsConsentDate != "" {
		fmt.Printf("                  %s\n", cli.DimStyle.Render("recorded "+s.AdsConsentDate))
	}
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Setting key (theme|notifications|reminder-days|currency|ads-consent)."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	s := ctx.App.Settings

	switch c.Key {
	case "theme":
		switch models.Theme(c.Value) {
		case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
			s.SetTheme(models.Theme(c.Value))
		default:
			return fmt.Errorf("invalid theme: %s (light|dark|system)", c.Value)
		}
	case "notifications":
		switch c.Value {
		case "on", "true":
			s.SetNotificationsEnabled(true)
		case "off", "false":
			s.SetNotificationsEnabled(false)
		default:
			return fmt.Errorf("invalid value: %s (on|off)", c.Value)
		}
	case "reminder-days":
		var days int
		if _, err := fmt.Sscanf(c.Value, "%d", &days); err != nil || days < 0 {
			return fmt.Errorf("invalid reminder-days: %s", c.Value)
		}
		s.SetDefaultReminderDays(days)
	case "currency":
		s.SetDefaultCurrency(models.Currency(c.Value))
	case "ads-consent":
		switch models.ConsentStatus(c.Value) {
		case models.ConsentGranted, models.ConsentDenied, models.ConsentUnknown:
			s.SetAdsConsent(models.ConsentStatus(c.Value))
		default:
			return fmt.Errorf("invalid consent status: %s (granted|denied|unknown)", c.Value)
		}
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
