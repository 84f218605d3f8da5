package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/appengine-ltd/teen-life/internal/game"
)

func TestStatBar(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{value: 50, want: "[##########----------]"},
		{value: -10, want: "[--------------------]"},
		{value: 250, want: "[####################]"},
	}
	for _, tc := range tests {
		if got := statBar(tc.value, 100); got != tc.want {
			t.Fatalf("statBar(%d)=%q want=%q", tc.value, got, tc.want)
		}
	}
}

func TestOverlayLinesEmptyFriendsAndInventory(t *testing.T) {
	friends := overlayLines(game.FriendsOverlay{})
	if len(friends) != 1 || !strings.Contains(friends[0], "don't have any friends yet") {
		t.Fatalf("expected no-friends hint, got %+v", friends)
	}

	stats := overlayLines(game.StatsOverlay{Day: 3, Age: 15})
	if got := stats[len(stats)-1]; got != "Inventory:  None" {
		t.Fatalf("expected empty inventory line, got %q", got)
	}
}

func TestOverlayLinesMarkUnavailableEntries(t *testing.T) {
	lines := overlayLines(game.ActivitiesOverlay{Activities: []game.ActivityEntry{
		{Name: "Study", Description: "Hit the books.", Available: true},
		{Name: "Hang Out", Description: "See friends.", Available: false},
	}})
	if lines[0] != "1. Study - Hit the books." {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(unavailable)") {
		t.Fatalf("expected unavailable marker, got %q", lines[1])
	}

	store := overlayLines(game.StoreOverlay{Money: 10, Items: []game.StoreEntry{
		{Name: "Video Game", Price: 30, Description: "Fun.", Affordable: false},
	}})
	if store[0] != "1. Video Game - $30: Fun. (can't afford)" {
		t.Fatalf("unexpected store line %q", store[0])
	}
}

func TestTextPresenterWritesNarrative(t *testing.T) {
	var out bytes.Buffer
	presenter := NewTextPresenter(&out)
	session, err := game.NewSession(game.SessionConfig{Seed: 5}, presenter)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := session.RequestOverlay(game.OverlayStats); err != nil {
		t.Fatalf("stats overlay: %v", err)
	}
	if err := session.RequestAdvance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := session.SelectChoice(0); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if presenter.Err() != nil {
		t.Fatalf("unexpected write error: %v", presenter.Err())
	}

	got := out.String()
	for _, want := range []string{"-- Your Stats (Day 1) --", "Inventory:  None", "  1) ", "> "} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, got)
		}
	}
}
