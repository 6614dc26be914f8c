package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/presently-app/presently/internal/ads"
	"github.com/presently-app/presently/internal/app"
	"github.com/presently-app/presently/internal/constants"
	"github.com/presently-app/presently/internal/models"
)

type Context struct {
	App  *app.App
	Gate *ads.Gate
}

var (
	TitleStyle = lipgloss.NewStyle().Bold(true)
	DimStyle   = lipgloss.NewStyle().Faint(true)
	WarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	AdStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
)

// MaybeShowInterstitial prints a sponsor line when the ad gate allows it and
// records the impression. Commands call this after their real output.
func (c *Context) MaybeShowInterstitial(trigger ads.Trigger) {
	if c.Gate == nil || !c.Gate.CanShowInterstitial(trigger) {
		return
	}
	fmt.Println(AdStyle.Render("presently is free. Sponsor messages keep it that way."))
	c.Gate.RecordInterstitialShown(context.Background(), trigger)
}

// ValidateDate checks a YYYY-MM-DD string.
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}

// FormatMoney renders an optional price for display.
func FormatMoney(amount *float64, currency models.Currency) string {
	if amount == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f %s", *amount, currency)
}

// ShortID truncates an id for list output.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// ParseRelationship maps a flag value to a relationship category.
func ParseRelationship(s string) (models.RelationshipCategory, error) {
	switch models.RelationshipCategory(strings.ToLower(s)) {
	case models.RelationshipFamily, models.RelationshipFriend, models.RelationshipCoworker,
		models.RelationshipPartner, models.RelationshipOther:
		return models.RelationshipCategory(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid relationship: %s (family|friend|coworker|partner|other)", s)
	}
}

// ParseStatus maps a flag value to a gift status.
func ParseStatus(s string) (models.GiftStatus, error) {
	switch models.GiftStatus(strings.ToLower(s)) {
	case models.StatusIdea, models.StatusPurchased, models.StatusWrapped,
		models.StatusHidden, models.StatusGiven, models.StatusReturned:
		return models.GiftStatus(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid status: %s (idea|purchased|wrapped|hidden|given|returned)", s)
	}
}

// ParsePriority maps a flag value to a gift priority.
func ParsePriority(s string) (models.GiftPriority, error) {
	switch models.GiftPriority(strings.ToLower(s)) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityMustHave:
		return models.GiftPriority(strings.ToLower(s)), nil
	default:
		return "", fmt.Errorf("invalid priority: %s (low|medium|high|must_have)", s)
	}
}
