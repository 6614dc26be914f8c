package aggregate

import "github.com/presently-app/presently/internal/models"

// GiftsForPerson returns the person's active gifts: everything except those
// already given, which belong to the history view.
func GiftsForPerson(gifts []models.Gift, personID string) []models.Gift {
	var out []models.Gift
	for _, g := range gifts {
		if g.PersonID == personID && g.Status != models.StatusGiven {
			out = append(out, g)
		}
	}
	return out
}

// GiftHistoryForPerson returns the gifts already given to the person.
func GiftHistoryForPerson(gifts []models.Gift, personID string) []models.Gift {
	var out []models.Gift
	for _, g := range gifts {
		if g.PersonID == personID && g.Status == models.StatusGiven {
			out = append(out, g)
		}
	}
	return out
}

// GiftsForOccasion returns the gifts attached to an occasion.
func GiftsForOccasion(gifts []models.Gift, occasionID string) []models.Gift {
	var out []models.Gift
	for _, g := range gifts {
		if g.OccasionID == occasionID {
			out = append(out, g)
		}
	}
	return out
}

// TotalSpentForPerson sums the prices of gifts whose status represents
// committed money: ideas cost nothing yet and returns got the money back.
// Gifts without a price count as zero.
func TotalSpentForPerson(gifts []models.Gift, personID string) float64 {
	var total float64
	for _, g := range gifts {
		if g.PersonID != personID || !g.Status.Committed() {
			continue
		}
		if g.Price != nil {
			total += *g.Price
		}
	}
	return total
}
