package valueobjects

import "fmt"

type Category string

const (
	CategoryGettingStarted Category = "getting_started"
	CategoryAccount        Category = "account"
	CategoryBilling        Category = "billing"
	CategoryTechnical      Category = "technical"
	CategoryOther          Category = "other"
)

var validCategories = map[Category]bool{
	CategoryGettingStarted: true,
	CategoryAccount:        true,
	CategoryBilling:        true,
	CategoryTechnical:      true,
	CategoryOther:          true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
