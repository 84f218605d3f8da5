package game

import (
	"fmt"

	"go.uber.org/zap"
)

type SessionConfig struct {
	// Seed feeds the default random source. Zero picks a time-based seed.
	Seed int64
	// Random overrides the seeded source, mainly for tests.
	Random RandomSource
	// Catalog overrides the built-in content.
	Catalog *Catalog
	// Friends overrides the starting friends; nil keeps the defaults.
	Friends []Friend
	Logger  *zap.Logger
}

func (c SessionConfig) Validate() error {
	if c.Catalog != nil {
		if err := c.Catalog.Validate(); err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}
	}
	for _, friend := range c.Friends {
		if friend.Name == "" {
			return fmt.Errorf("friend name must not be empty")
		}
	}
	return nil
}

func (c Catalog) Validate() error {
	if len(c.Events) == 0 {
		return fmt.Errorf("catalog has no events")
	}
	for _, event := range append(append([]Event{}, c.Events...), c.Grounded) {
		if event.Title == "" {
			return fmt.Errorf("event %q has no title", event.ID)
		}
		if len(event.Choices) == 0 {
			return fmt.Errorf("event %q has no choices", event.ID)
		}
	}

	seen := make(map[string]bool, len(c.Activities)+len(c.Store))
	for _, activity := range c.Activities {
		key := "activity:" + normaliseName(activity.Name)
		if seen[key] {
			return fmt.Errorf("duplicate activity: %s", activity.Name)
		}
		seen[key] = true
		if len(activity.Outcomes) == 0 {
			return fmt.Errorf("activity %q has no outcomes", activity.Name)
		}
	}
	for _, item := range c.Store {
		key := "item:" + normaliseName(item.Name)
		if seen[key] {
			return fmt.Errorf("duplicate store item: %s", item.Name)
		}
		seen[key] = true
		if item.Price < 0 {
			return fmt.Errorf("store item %q has negative price %d", item.Name, item.Price)
		}
		if len(item.Outcomes) == 0 {
			return fmt.Errorf("store item %q has no outcomes", item.Name)
		}
	}
	return nil
}
