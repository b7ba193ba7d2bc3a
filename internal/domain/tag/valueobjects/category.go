package valueobjects

import "fmt"

type Category string

const (
	CategoryFunctionalArea    Category = "functional_area"
	CategoryCustomerAttribute Category = "customer_attribute"
	CategoryImportance        Category = "importance"
	CategoryOther             Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryFunctionalArea:    "機能領域",
	CategoryCustomerAttribute: "顧客属性",
	CategoryImportance:        "重要度",
	CategoryOther:             "その他",
}

var categoryByLabel = func() map[string]Category {
	m := make(map[string]Category, len(categoryLabels))
	for c, l := range categoryLabels {
		m[l] = c
	}
	return m
}()

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory accepts a category code or its Japanese label.
func ParseCategory(s string) (Category, error) {
	if c := Category(s); c.IsValid() {
		return c, nil
	}
	if c, ok := categoryByLabel[s]; ok {
		return c, nil
	}
	return "", fmt.Errorf("invalid tag category: %s", s)
}
