package game

import (
	"strings"
	"unicode"
)

type Choice struct {
	Label  string `yaml:"label" json:"label"`
	Effect Effect `yaml:"effect" json:"effect"`
}

type Event struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Choices     []Choice `yaml:"choices" json:"choices"`
}

func (e Event) ChoiceLabels() []string {
	labels := make([]string, 0, len(e.Choices))
	for _, choice := range e.Choices {
		labels = append(labels, choice.Label)
	}
	return labels
}

type Activity struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Requires    Condition `yaml:"requires,omitempty" json:"requires,omitempty"`
	Outcomes    []Outcome `yaml:"outcomes" json:"outcomes"`
}

func (a Activity) Available(s PlayerState) bool {
	return a.Requires.Holds(s)
}

type StoreItem struct {
	Name        string    `yaml:"name" json:"name"`
	Price       int       `yaml:"price" json:"price"`
	Description string    `yaml:"description" json:"description"`
	Outcomes    []Outcome `yaml:"outcomes" json:"outcomes"`
}

func (i StoreItem) Affordable(s PlayerState) bool {
	return s.Money >= i.Price
}

// Catalog is the static content of a session.
type Catalog struct {
	Events     []Event     `yaml:"events" json:"events"`
	Grounded   Event       `yaml:"grounded" json:"grounded"`
	Activities []Activity  `yaml:"activities" json:"activities"`
	Store      []StoreItem `yaml:"store" json:"store"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Events:     BuiltInEvents(),
		Grounded:   GroundedEvent(),
		Activities: BuiltInActivities(),
		Store:      BuiltInStoreItems(),
	}
}

func (c Catalog) Activity(name string) (Activity, bool) {
	key := normaliseName(name)
	for _, activity := range c.Activities {
		if normaliseName(activity.Name) == key {
			return activity, true
		}
	}
	return Activity{}, false
}

func (c Catalog) StoreItem(name string) (StoreItem, bool) {
	key := normaliseName(name)
	for _, item := range c.Store {
		if normaliseName(item.Name) == key {
			return item, true
		}
	}
	return StoreItem{}, false
}

func (c Catalog) ActivityNames() []string {
	names := make([]string, 0, len(c.Activities))
	for _, activity := range c.Activities {
		names = append(names, activity.Name)
	}
	return names
}

func (c Catalog) StoreItemNames() []string {
	names := make([]string, 0, len(c.Store))
	for _, item := range c.Store {
		names = append(names, item.Name)
	}
	return names
}

// normaliseName lowercases and collapses every run of non letters/digits
// into one space, so "Get a Part‑Time Job" and "get a part time job" match.
func normaliseName(raw string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
