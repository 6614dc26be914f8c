package models

type GiftStatus string

const (
	StatusIdea      GiftStatus = "idea"
	StatusPurchased GiftStatus = "purchased"
	StatusWrapped   GiftStatus = "wrapped"
	StatusHidden    GiftStatus = "hidden"
	StatusGiven     GiftStatus = "given"
	StatusReturned  GiftStatus = "returned"
)

// Rank orders statuses along the gift lifecycle. Sorting by status uses this
// rank, not string order. Unknown statuses rank last.
func (s GiftStatus) Rank() int {
	switch s {
	case StatusIdea:
		return 1
	case StatusPurchased:
		return 2
	case StatusWrapped:
		return 3
	case StatusHidden:
		return 4
	case StatusGiven:
		return 5
	case StatusReturned:
		return 6
	default:
		return 7
	}
}

// Committed reports whether the status represents money actually spent:
// everything except an unbought idea or a returned purchase.
func (s GiftStatus) Committed() bool {
	return s != StatusIdea && s != StatusReturned
}

type GiftPriority string

const (
	PriorityLow      GiftPriority = "low"
	PriorityMedium   GiftPriority = "medium"
	PriorityHigh     GiftPriority = "high"
	PriorityMustHave GiftPriority = "must_have"
)

// Rank orders priorities from least to most important.
func (p GiftPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityMustHave:
		return 4
	default:
		return 0
	}
}

type GiftCategory string

const (
	CategoryClothing       GiftCategory = "clothing"
	CategoryElectronics    GiftCategory = "electronics"
	CategoryBooks          GiftCategory = "books"
	CategoryExperiences    GiftCategory = "experiences"
	CategoryHomemade       GiftCategory = "homemade"
	CategoryHomeDecor      GiftCategory = "home_decor"
	CategoryJewelry        GiftCategory = "jewelry"
	CategoryToysGames      GiftCategory = "toys_games"
	CategorySportsOutdoors GiftCategory = "sports_outdoors"
	CategoryBeauty         GiftCategory = "beauty"
	CategoryFoodDrink      GiftCategory = "food_drink"
	CategoryGiftCard       GiftCategory = "gift_card"
	CategoryOther          GiftCategory = "other"
)

type GiftSource string

const (
	SourceMentioned      GiftSource = "mentioned"
	SourceWishlist       GiftSource = "wishlist"
	SourceOnline         GiftSource = "online"
	SourceRecommendation GiftSource = "recommendation"
	SourceStore          GiftSource = "store"
	SourceOther          GiftSource = "other"
)

type GiftReaction string

const (
	ReactionLovedIt   GiftReaction = "loved_it"
	ReactionLikedIt   GiftReaction = "liked_it"
	ReactionMeh       GiftReaction = "meh"
	ReactionDidntLike GiftReaction = "didnt_like"
	ReactionUnknown   GiftReaction = "unknown"
)

type GiftPhoto struct {
	ID           string `json:"id"`
	URI          string `json:"uri"`
	ThumbnailURI string `json:"thumbnail_uri,omitempty"`
	CreatedAt    string `json:"created_at"`
}

type VoiceNote struct {
	ID        string  `json:"id"`
	URI       string  `json:"uri"`
	Duration  float64 `json:"duration"` // seconds
	CreatedAt string  `json:"created_at"`
}

// StatusEntry is one event in a gift's status history. The history is
// append-only: entries are never removed or reordered.
type StatusEntry struct {
	Status GiftStatus `json:"status"`
	Date   string     `json:"date"` // RFC3339
	Notes  string     `json:"notes,omitempty"`
}

type Gift struct {
	ID             string        `json:"id"`
	CreatedAt      string        `json:"created_at"` // RFC3339
	UpdatedAt      string        `json:"updated_at"` // RFC3339
	PersonID       string        `json:"person_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	URL            string        `json:"url,omitempty"`
	Price          *float64      `json:"price,omitempty"`
	Currency       Currency      `json:"currency"`
	Priority       GiftPriority  `json:"priority"`
	Category       GiftCategory  `json:"category"`
	Status         GiftStatus    `json:"status"`
	StatusHistory  []StatusEntry `json:"status_history"`
	OccasionID     string        `json:"occasion_id,omitempty"`
	Photos         []GiftPhoto   `json:"photos,omitempty"`
	VoiceNotes     []VoiceNote   `json:"voice_notes,omitempty"`
	Notes          string        `json:"notes"`
	Source         GiftSource    `json:"source"`
	HidingSpot     string        `json:"hiding_spot,omitempty"` // meaningful only while Status is hidden
	ReceiptURI     string        `json:"receipt_uri,omitempty"`
	ReturnDeadline string        `json:"return_deadline,omitempty"` // YYYY-MM-DD
	Reaction       GiftReaction  `json:"reaction,omitempty"`
	DateGiven      string        `json:"date_given,omitempty"` // RFC3339
	IsRegift       bool          `json:"is_regift"`
}

type GiftFormData struct {
	PersonID       string
	Name           string
	Description    string
	URL            string
	Price          *float64
	Currency       Currency
	Priority       GiftPriority
	Category       GiftCategory
	Status         GiftStatus
	OccasionID     string
	Photos         []GiftPhoto
	VoiceNotes     []VoiceNote
	Notes          string
	Source         GiftSource
	HidingSpot     string
	ReceiptURI     string
	ReturnDeadline string
	IsRegift       bool
}

// GiftPatch is a partial update. Nil fields are left untouched. Status set
// through a patch bypasses the status-history bookkeeping on purpose: it is
// the escape hatch for bulk import and restore. Use GiftStore.UpdateStatus
// for normal transitions.
type GiftPatch struct {
	PersonID       *string
	Name           *string
	Description    *string
	URL            *string
	Price          *float64
	Currency       *Currency
	Priority       *GiftPriority
	Category       *GiftCategory
	Status         *GiftStatus
	OccasionID     *string
	Photos         *[]GiftPhoto
	VoiceNotes     *[]VoiceNote
	Notes          *string
	Source         *GiftSource
	HidingSpot     *string
	ReceiptURI     *string
	ReturnDeadline *string
	IsRegift       *bool
}

func (p GiftPatch) Apply(gift *Gift) {
	if p.PersonID != nil {
		gift.PersonID = *p.PersonID
	}
	if p.Name != nil {
		gift.Name = *p.Name
	}
	if p.Description != nil {
		gift.Description = *p.Description
	}
	if p.URL != nil {
		gift.URL = *p.URL
	}
	if p.Price != nil {
		gift.Price = p.Price
	}
	if p.Currency != nil {
		gift.Currency = *p.Currency
	}
	if p.Priority != nil {
		gift.Priority = *p.Priority
	}
	if p.Category != nil {
		gift.Category = *p.Category
	}
	if p.Status != nil {
		gift.Status = *p.Status
	}
	if p.OccasionID != nil {
		gift.OccasionID = *p.OccasionID
	}
	if p.Photos != nil {
		gift.Photos = *p.Photos
	}
	if p.VoiceNotes != nil {
		gift.VoiceNotes = *p.VoiceNotes
	}
	if p.Notes != nil {
		gift.Notes = *p.Notes
	}
	if p.Source != nil {
		gift.Source = *p.Source
	}
	if p.HidingSpot != nil {
		gift.HidingSpot = *p.HidingSpot
	}
	if p.ReceiptURI != nil {
		gift.ReceiptURI = *p.ReceiptURI
	}
	if p.ReturnDeadline != nil {
		gift.ReturnDeadline = *p.ReturnDeadline
	}
	if p.IsRegift != nil {
		gift.IsRegift = *p.IsRegift
	}
}
