package ingredient

import "strings"

// Category is the grocery bucket a canonical ingredient belongs to.
type Category string

const (
	CategoryGrains  Category = "grains"
	CategoryDairy   Category = "dairy"
	CategoryProtein Category = "protein"
	CategorySpices  Category = "spices"
	CategoryProduce Category = "produce"
)

// categoryRules are tested in order; first match wins.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryGrains, []string{"rice", "pasta", "bread", "flour"}},
	{CategoryDairy, []string{"milk", "cheese", "yogurt", "butter"}},
	{CategoryProtein, []string{"chicken", "beef", "egg", "fish"}},
	{CategorySpices, []string{"salt", "pepper", "paprika", "cumin"}},
}

// InferCategory buckets an ingredient by keyword rules applied to its
// canonical name. The default bucket is produce.
func InferCategory(raw string) Category {
	name := Canonical(raw)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.category
			}
		}
	}
	return CategoryProduce
}
