package engine

import "strings"

// Category is one entry of the ordered event category table. Keyword is
// matched as a substring of the normalized event title; Label and Color
// are what the dashboard renders for it.
type Category struct {
	Keyword string `json:"keyword"`
	Label   string `json:"label"`
	Color   string `json:"color"`
}

// DefaultCategories returns the shipyard milestone table. The order is a
// priority rule: a title containing several keywords resolves to the one
// listed first. The first entry is also the fallback for titles matching
// nothing, so it must stay first.
func DefaultCategories() []Category {
	return []Category{
		{Keyword: "회의", Label: "회의", Color: "blue"},
		{Keyword: "s/c", Label: "S/C(Steel Cutting)", Color: "violet"},
		{Keyword: "진수", Label: "L/C(LAUNCHING)", Color: "orange"},
		{Keyword: "시운전", Label: "시운전", Color: "green"},
		{Keyword: "가스시운전", Label: "가스시운전", Color: "cyan"},
		{Keyword: "인도", Label: "D/L(DELIVERY)", Color: "yellow"},
		{Keyword: "k/l", Label: "K/L(Keel Laying)", Color: "red"},
	}
}

// Classifier derives a display category from an event title.
type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given ordered table. The
// table must be non-empty; its first entry doubles as the default.
func NewClassifier(categories []Category) *Classifier {
	return &Classifier{categories: categories}
}

// Classify returns the first category whose keyword appears in the title,
// or the table's first entry when none matches. Total over any input,
// including the empty string.
func (c *Classifier) Classify(title string) Category {
	t := normalizeText(title)
	for _, cat := range c.categories {
		if cat.Keyword != "" && strings.Contains(t, normalizeText(cat.Keyword)) {
			return cat
		}
	}
	return c.categories[0]
}

// Categories returns the table in its fixed order, for UI enumeration.
func (c *Classifier) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}
