package models

// Currency is an ISO 4217 code for the small set of currencies the app supports.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyJPY Currency = "JPY"
)

type RelationshipCategory string

const (
	RelationshipFamily   RelationshipCategory = "family"
	RelationshipFriend   RelationshipCategory = "friend"
	RelationshipCoworker RelationshipCategory = "coworker"
	RelationshipPartner  RelationshipCategory = "partner"
	RelationshipOther    RelationshipCategory = "other"
)

// PersonSizes holds clothing and accessory sizes for gift shopping.
type PersonSizes struct {
	Shirt string `json:"shirt,omitempty"`
	Pants string `json:"pants,omitempty"`
	Shoe  string `json:"shoe,omitempty"`
	Ring  string `json:"ring,omitempty"`
}

// PersonDate is a labeled date attached to a person, e.g. a birthday or
// anniversary. Recurring dates repeat annually on the same month and day.
type PersonDate struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Date        string `json:"date"` // YYYY-MM-DD
	IsRecurring bool   `json:"is_recurring"`
}

type Person struct {
	ID                 string               `json:"id"`
	CreatedAt          string               `json:"created_at"` // RFC3339
	UpdatedAt          string               `json:"updated_at"` // RFC3339
	Name               string               `json:"name"`
	PhotoURI           string               `json:"photo_uri,omitempty"`
	Relationship       RelationshipCategory `json:"relationship"`
	CustomRelationship string               `json:"custom_relationship,omitempty"`
	Dates              []PersonDate         `json:"dates,omitempty"`
	Notes              string               `json:"notes"`
	Sizes              PersonSizes          `json:"sizes"`
	Interests          []string             `json:"interests,omitempty"`
	Allergies          []string             `json:"allergies,omitempty"`
	BudgetAmount       *float64             `json:"budget_amount,omitempty"`
	BudgetCurrency     Currency             `json:"budget_currency"`
}

// PersonFormData is the shape a person is created from. The store assigns
// the id and timestamps.
type PersonFormData struct {
	Name               string
	PhotoURI           string
	Relationship       RelationshipCategory
	CustomRelationship string
	Dates              []PersonDate
	Notes              string
	Sizes              PersonSizes
	Interests          []string
	Allergies          []string
	BudgetAmount       *float64
	BudgetCurrency     Currency
}

// PersonPatch is a partial update. Nil fields are left untouched.
type PersonPatch struct {
	Name               *string
	PhotoURI           *string
	Relationship       *RelationshipCategory
	CustomRelationship *string
	Dates              *[]PersonDate
	Notes              *string
	Sizes              *PersonSizes
	Interests          *[]string
	Allergies          *[]string
	BudgetAmount       *float64
	BudgetCurrency     *Currency
}

// Apply merges the patch into the person, field by field.
func (p PersonPatch) Apply(person *Person) {
	if p.Name != nil {
		person.Name = *p.Name
	}
	if p.PhotoURI != nil {
		person.PhotoURI = *p.PhotoURI
	}
	if p.Relationship != nil {
		person.Relationship = *p.Relationship
	}
	if p.CustomRelationship != nil {
		person.CustomRelationship = *p.CustomRelationship
	}
	if p.Dates != nil {
		person.Dates = *p.Dates
	}
	if p.Notes != nil {
		person.Notes = *p.Notes
	}
	if p.Sizes != nil {
		person.Sizes = *p.Sizes
	}
	if p.Interests != nil {
		person.Interests = *p.Interests
	}
	if p.Allergies != nil {
		person.Allergies = *p.Allergies
	}
	if p.BudgetAmount != nil {
		person.BudgetAmount = p.BudgetAmount
	}
	if p.BudgetCurrency != nil {
		person.BudgetCurrency = *p.BudgetCurrency
	}
}
