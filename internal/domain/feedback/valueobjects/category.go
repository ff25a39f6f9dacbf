package valueobjects

import "fmt"

type Category string

const (
	CategoryAcademic      Category = "academic"
	CategoryAccommodation Category = "accommodation"
	CategoryCatering      Category = "catering"
	CategoryFinancial     Category = "financial"
	CategorySafety        Category = "safety"
	CategoryOther         Category = "other"
)

var validCategories = map[Category]bool{
	CategoryAcademic:      true,
	CategoryAccommodation: true,
	CategoryCatering:      true,
	CategoryFinancial:     true,
	CategorySafety:        true,
	CategoryOther:         true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

// NewCategory parses and validates a category string
func NewCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", value)
	}
	return c, nil
}

// AllCategories returns every valid category in a stable order.
func AllCategories() []Category {
	return []Category{
		CategoryAcademic,
		CategoryAccommodation,
		CategoryCatering,
		CategoryFinancial,
		CategorySafety,
		CategoryOther,
	}
}
