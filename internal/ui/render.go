package ui

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/teen-life/internal/game"
)

const statBarWidth = 20

// statBar draws value against limit as a fixed-width bar. Values beyond the
// range are drawn as an empty or full bar.
func statBar(value, limit int) string {
	if limit <= 0 {
		limit = 100
	}
	filled := clampInt(value*statBarWidth/limit, 0, statBarWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", statBarWidth-filled) + "]"
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func overlayTitle(payload game.OverlayPayload) string {
	switch p := payload.(type) {
	case game.StatsOverlay:
		return fmt.Sprintf("Your Stats (Day %d)", p.Day)
	case game.ActivitiesOverlay:
		return "Activities"
	case game.FriendsOverlay:
		return "Friends"
	case game.StoreOverlay:
		return fmt.Sprintf("Store (Money: $%d)", p.Money)
	default:
		return ""
	}
}

// overlayLines renders the body of an overlay as plain text. Activities and
// store items are numbered so the player can pick them with a digit key.
func overlayLines(payload game.OverlayPayload) []string {
	switch p := payload.(type) {
	case game.StatsOverlay:
		grounded := 0
		if p.Grounded {
			grounded = 100
		}
		inventory := "None"
		if len(p.Inventory) > 0 {
			inventory = strings.Join(p.Inventory, ", ")
		}
		return []string{
			fmt.Sprintf("Age:        %d", p.Age),
			fmt.Sprintf("Mood:       %s %d", statBar(p.Mood, 100), p.Mood),
			fmt.Sprintf("Popularity: %s %d", statBar(p.Popularity, 100), p.Popularity),
			fmt.Sprintf("Money:      %s $%d", statBar(p.Money, 100), p.Money),
			fmt.Sprintf("Grades:     %s %d", statBar(p.Grades, 100), p.Grades),
			fmt.Sprintf("Health:     %s %d", statBar(p.Health, 100), p.Health),
			fmt.Sprintf("Grounded:   %s", statBar(grounded, 100)),
			"Inventory:  " + inventory,
		}
	case game.ActivitiesOverlay:
		lines := make([]string, 0, len(p.Activities))
		for i, act := range p.Activities {
			line := fmt.Sprintf("%d. %s - %s", i+1, act.Name, act.Description)
			if !act.Available {
				line += " (unavailable)"
			}
			lines = append(lines, line)
		}
		return lines
	case game.FriendsOverlay:
		if len(p.Friends) == 0 {
			return []string{"You don't have any friends yet. Try going out and meeting people!"}
		}
		lines := make([]string, 0, len(p.Friends))
		for _, friend := range p.Friends {
			lines = append(lines, fmt.Sprintf("%s - Closeness: %d", friend.Name, friend.Closeness))
		}
		return lines
	case game.StoreOverlay:
		lines := make([]string, 0, len(p.Items))
		for i, item := range p.Items {
			line := fmt.Sprintf("%d. %s - $%d: %s", i+1, item.Name, item.Price, item.Description)
			if !item.Affordable {
				line += " (can't afford)"
			}
			lines = append(lines, line)
		}
		return lines
	default:
		return nil
	}
}

func eventLines(title, description string, labels []string) []string {
	lines := make([]string, 0, len(labels)+2)
	lines = append(lines, title, description)
	for i, label := range labels {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, label))
	}
	return lines
}
