package cli

import (
	"fmt"
	"strings"

	"github.com/presently-app/presently/internal/models"
)

// allowedTransitions is the gift lifecycle as the commands enforce it. The
// store itself accepts any status so that import and restore can rebuild
// arbitrary state; legality is a presentation concern.
var allowedTransitions = map[models.GiftStatus][]models.GiftStatus{
	models.StatusIdea:      {models.StatusPurchased},
	models.StatusPurchased: {models.StatusWrapped, models.StatusHidden, models.StatusReturned},
	models.StatusWrapped:   {models.StatusHidden, models.StatusGiven},
	models.StatusHidden:    {models.StatusGiven},
	models.StatusGiven:     {},
	models.StatusReturned:  {},
}

// CanTransition reports whether a status change is legal.
func CanTransition(from, to models.GiftStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionError explains an illegal status change, listing the legal
// targets when there are any.
func TransitionError(from, to models.GiftStatus) error {
	next := allowedTransitions[from]
	if len(next) == 0 {
		return fmt.Errorf("cannot change status from %s: it is terminal", from)
	}
	targets := make([]string, len(next))
	for i, s := range next {
		targets[i] = string(s)
	}
	return fmt.Errorf("cannot change status from %s to %s (allowed: %s)", from, to, strings.Join(targets, ", "))
}
