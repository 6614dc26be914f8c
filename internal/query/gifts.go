package query

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/presently-app/presently/internal/models"
)

type GiftSortField string

const (
	GiftSortByName      GiftSortField = "name"
	GiftSortByPrice     GiftSortField = "price"
	GiftSortByPriority  GiftSortField = "priority"
	GiftSortByCreatedAt GiftSortField = "createdAt"
	GiftSortByStatus    GiftSortField = "status"
)

type GiftSortOptions struct {
	Field     GiftSortField `json:"field"`
	Direction Direction     `json:"direction"`
}

// DefaultGiftSort is the sort applied before the user picks one.
func DefaultGiftSort() GiftSortOptions {
	return GiftSortOptions{Field: GiftSortByCreatedAt, Direction: Desc}
}

// GiftFilters are conjunctive: a gift must satisfy every active dimension.
// Within one dimension the listed values are alternatives.
type GiftFilters struct {
	Status      []models.GiftStatus
	Priority    []models.GiftPriority
	Category    []models.GiftCategory
	PriceMin    *float64
	PriceMax    *float64
	SearchQuery string
}

// ProjectGifts returns a new, filtered, sorted slice. The input collection
// is never modified.
func ProjectGifts(gifts []models.Gift, filters GiftFilters, sortOpts GiftSortOptions) []models.Gift {
	filtered := make([]models.Gift, 0, len(gifts))
	for _, g := range gifts {
		if giftMatches(g, filters) {
			filtered = append(filtered, g)
		}
	}
	sortGifts(filtered, sortOpts)
	return filtered
}

func giftMatches(g models.Gift, f GiftFilters) bool {
	if !matchAny(f.Status, g.Status) {
		return false
	}
	if !matchAny(f.Priority, g.Priority) {
		return false
	}
	if !matchAny(f.Category, g.Category) {
		return false
	}
	// Range bounds are inclusive; a gift without a price is excluded as soon
	// as either bound is set.
	if f.PriceMin != nil && (g.Price == nil || *g.Price < *f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && (g.Price == nil || *g.Price > *f.PriceMax) {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(g.Name), q) &&
			!strings.Contains(strings.ToLower(g.Description), q) &&
			!strings.Contains(strings.ToLower(g.Notes), q) {
			return false
		}
	}
	return true
}

func sortGifts(gifts []models.Gift, opts GiftSortOptions) {
	var collator *collate.Collator
	if opts.Field == GiftSortByName {
		collator = collate.New(language.English, collate.IgnoreCase)
	}

	sort.SliceStable(gifts, func(i, j int) bool {
		a, b := gifts[i], gifts[j]
		var cmp int
		switch opts.Field {
		case GiftSortByName:
			cmp = collator.CompareString(a.Name, b.Name)
		case GiftSortByPrice:
			cmp = compareFloats(priceOrZero(a.Price), priceOrZero(b.Price))
		case GiftSortByPriority:
			cmp = a.Priority.Rank() - b.Priority.Rank()
		case GiftSortByStatus:
			cmp = a.Status.Rank() - b.Status.Rank()
		case GiftSortByCreatedAt:
			cmp = compareInstants(a.CreatedAt, b.CreatedAt)
		}
		return opts.Direction.apply(cmp) < 0
	})
}

func priceOrZero(price *float64) float64 {
	if price == nil {
		return 0
	}
	return *price
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareInstants compares two RFC3339 timestamps as instants. Unparseable
// values sort as the zero time.
func compareInstants(a, b string) int {
	ta, _ := time.Parse(time.RFC3339, a)
	tb, _ := time.Parse(time.RFC3339, b)
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}
