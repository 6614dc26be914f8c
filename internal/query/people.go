package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/presently-app/presently/internal/models"
)

type PeopleSortField string

const (
	PeopleSortByName      PeopleSortField = "name"
	PeopleSortByCreatedAt PeopleSortField = "createdAt"
)

type PeopleSortOptions struct {
	Field     PeopleSortField `json:"field"`
	Direction Direction       `json:"direction"`
}

func DefaultPeopleSort() PeopleSortOptions {
	return PeopleSortOptions{Field: PeopleSortByName, Direction: Asc}
}

type PeopleFilters struct {
	Relationship []models.RelationshipCategory
	SearchQuery  string
}

// ProjectPeople returns a new, filtered, sorted slice. The input collection
// is never modified.
func ProjectPeople(people []models.Person, filters PeopleFilters, sortOpts PeopleSortOptions) []models.Person {
	filtered := make([]models.Person, 0, len(people))
	for _, p := range people {
		if personMatches(p, filters) {
			filtered = append(filtered, p)
		}
	}
	sortPeople(filtered, sortOpts)
	return filtered
}

func personMatches(p models.Person, f PeopleFilters) bool {
	if !matchAny(f.Relationship, p.Relationship) {
		return false
	}
	if f.SearchQuery != "" {
		q := strings.ToLower(f.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Notes), q) {
			return false
		}
	}
	return true
}

func sortPeople(people []models.Person, opts PeopleSortOptions) {
	var collator *collate.Collator
	if opts.Field == PeopleSortByName {
		collator = collate.New(language.English, collate.IgnoreCase)
	}

	sort.SliceStable(people, func(i, j int) bool {
		a, b := people[i], people[j]
		var cmp int
		switch opts.Field {
		case PeopleSortByName:
			cmp = collator.CompareString(a.Name, b.Name)
		case PeopleSortByCreatedAt:
			cmp = compareInstants(a.CreatedAt, b.CreatedAt)
		}
		return opts.Direction.apply(cmp) < 0
	})
}
