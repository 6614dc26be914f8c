package models

type OccasionType string

const (
	OccasionBirthday      OccasionType = "birthday"
	OccasionChristmas     OccasionType = "christmas"
	OccasionHanukkah      OccasionType = "hanukkah"
	OccasionAnniversary   OccasionType = "anniversary"
	OccasionValentinesDay OccasionType = "valentines_day"
	OccasionMothersDay    OccasionType = "mothers_day"
	OccasionFathersDay    OccasionType = "fathers_day"
	OccasionGraduation    OccasionType = "graduation"
	OccasionWedding       OccasionType = "wedding"
	OccasionBabyShower    OccasionType = "baby_shower"
	OccasionHousewarming  OccasionType = "housewarming"
	OccasionCustom        OccasionType = "custom"
)

type Occasion struct {
	ID             string       `json:"id"`
	CreatedAt      string       `json:"created_at"` // RFC3339
	UpdatedAt      string       `json:"updated_at"` // RFC3339
	PersonID       string       `json:"person_id,omitempty"`
	Name           string       `json:"name"`
	Type           OccasionType `json:"type"`
	Date           string       `json:"date"` // YYYY-MM-DD
	IsRecurring    bool         `json:"is_recurring"`
	ReminderDays   int          `json:"reminder_days"`
	BudgetAmount   *float64     `json:"budget_amount,omitempty"`
	BudgetCurrency Currency     `json:"budget_currency"`
	Notes          string       `json:"notes,omitempty"`
}

type OccasionFormData struct {
	PersonID       string
	Name           string
	Type           OccasionType
	Date           string
	IsRecurring    bool
	ReminderDays   int
	BudgetAmount   *float64
	BudgetCurrency Currency
	Notes          string
}

// OccasionPatch is a partial update. Nil fields are left untouched.
type OccasionPatch struct {
	PersonID       *string
	Name           *string
	Type           *OccasionType
	Date           *string
	IsRecurring    *bool
	ReminderDays   *int
	BudgetAmount   *float64
	BudgetCurrency *Currency
	Notes          *string
}

func (p OccasionPatch) Apply(occasion *Occasion) {
	if p.PersonID != nil {
		occasion.PersonID = *p.PersonID
	}
	if p.Name != nil {
		occasion.Name = *p.Name
	}
	if p.Type != nil {
		occasion.Type = *p.Type
	}
	if p.Date != nil {
		occasion.Date = *p.Date
	}
	if p.IsRecurring != nil {
		occasion.IsRecurring = *p.IsRecurring
	}
	if p.ReminderDays != nil {
		occasion.ReminderDays = *p.ReminderDays
	}
	if p.BudgetAmount != nil {
		occasion.BudgetAmount = p.BudgetAmount
	}
	if p.BudgetCurrency != nil {
		occasion.BudgetCurrency = *p.BudgetCurrency
	}
	if p.Notes != nil {
		occasion.Notes = *p.Notes
	}
}
