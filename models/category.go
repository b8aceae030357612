package models

// Category labels the kind of secret a note carries. Stored encrypted at
// rest like the other metadata fields.
type Category string

const (
	CategoryPassword   Category = "password"
	CategoryCreditCard Category = "credit-card"
	CategoryDocument   Category = "document"
	CategoryMessage    Category = "message"
	CategoryAPIKey     Category = "api-key"
	CategoryOther      Category = "other"
)

// allowedCategories is the exhaustive set of Category values accepted at
// note creation.
var allowedCategories = map[Category]struct{}{
	CategoryPassword:   {},
	CategoryCreditCard: {},
	CategoryDocument:   {},
	CategoryMessage:    {},
	CategoryAPIKey:     {},
	CategoryOther:      {},
}

// Valid reports whether c is one of the known category values.
func (c Category) Valid() bool {
	_, ok := allowedCategories[c]
	return ok
}
