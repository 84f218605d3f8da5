package game

import (
	"strings"
	"testing"
)

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if len(catalog.Events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(catalog.Events))
	}
	for _, event := range catalog.Events {
		if len(event.Choices) != 3 {
			t.Fatalf("event %q has %d choices, expected 3", event.Title, len(event.Choices))
		}
	}
	if len(catalog.Grounded.Choices) != 3 {
		t.Fatalf("grounded event has %d choices", len(catalog.Grounded.Choices))
	}
	if len(catalog.Activities) != 5 {
		t.Fatalf("expected 5 activities, got %d", len(catalog.Activities))
	}
	if len(catalog.Store) != 4 {
		t.Fatalf("expected 4 store items, got %d", len(catalog.Store))
	}
}

func TestEventDeltasStayWithinObservedRange(t *testing.T) {
	for _, event := range BuiltInEvents() {
		for _, choice := range event.Choices {
			touched := 0
			for _, stat := range AllStats() {
				d := choice.Effect.Delta.Get(stat)
				if d == 0 {
					continue
				}
				touched++
				if d < -20 || d > 20 {
					t.Fatalf("%s / %s: delta %d for %s out of range", event.Title, choice.Label, d, stat)
				}
			}
			if touched < 1 || touched > 3 {
				t.Fatalf("%s / %s touches %d stats", event.Title, choice.Label, touched)
			}
			if choice.Effect.Message == "" {
				t.Fatalf("%s / %s has no message", event.Title, choice.Label)
			}
		}
	}
}

func TestFamilyChoreRefuseGroundsPlayer(t *testing.T) {
	var chore Event
	for _, event := range BuiltInEvents() {
		if event.ID == EventFamilyChoreID {
			chore = event
		}
	}
	refuse := chore.Choices[findChoice(t, chore, "Refuse and go hang out")]

	state := NewPlayerState(nil)
	next, msg := ApplyChoice(state, refuse, nil)

	if !next.Grounded {
		t.Fatalf("expected grounded after refusing")
	}
	if next.Popularity != state.Popularity+5 || next.Mood != state.Mood+10 {
		t.Fatalf("expected popularity +5 and mood +10, got %+v", next)
	}
	if !strings.Contains(msg, "ground you") {
		t.Fatalf("unexpected message: %q", msg)
	}

	state.Mood = 95
	state.Popularity = 98
	next, _ = ApplyChoice(state, refuse, nil)
	if next.Mood != 100 || next.Popularity != 100 {
		t.Fatalf("expected clamped mood/popularity, got mood=%d popularity=%d", next.Mood, next.Popularity)
	}
}

func TestGroundedEventChoices(t *testing.T) {
	event := GroundedEvent()
	grounded := NewPlayerState(nil)
	grounded.Grounded = true

	apologize, _ := ApplyChoice(grounded, event.Choices[0], nil)
	if apologize.Grounded || apologize.Popularity != grounded.Popularity-1 {
		t.Fatalf("apologize: %+v", apologize)
	}

	sneak, _ := ApplyChoice(grounded, event.Choices[1], nil)
	if !sneak.Grounded || sneak.Popularity != grounded.Popularity+5 || sneak.Mood != grounded.Mood+5 {
		t.Fatalf("sneak out: %+v", sneak)
	}

	chores, _ := ApplyChoice(grounded, event.Choices[2], nil)
	if chores.Grounded || chores.Money != grounded.Money+15 || chores.Mood != grounded.Mood-3 {
		t.Fatalf("chores: %+v", chores)
	}
}

func TestActivityAvailabilityGatedByGrounding(t *testing.T) {
	free := NewPlayerState(nil)
	grounded := NewPlayerState(nil)
	grounded.Grounded = true

	gated := map[string]bool{
		ActivityHangOut:     true,
		ActivityPartTimeJob: true,
		ActivityExercise:    true,
	}
	for _, activity := range BuiltInActivities() {
		if !activity.Available(free) {
			t.Fatalf("%s should be available when not grounded", activity.Name)
		}
		if activity.Available(grounded) == gated[activity.Name] {
			t.Fatalf("%s: available while grounded=%v, gated=%v", activity.Name, activity.Available(grounded), gated[activity.Name])
		}
	}
}

func TestMovieNightBranchesOnFriends(t *testing.T) {
	catalog := DefaultCatalog()
	movie, ok := catalog.StoreItem("movie night")
	if !ok {
		t.Fatalf("movie night missing")
	}

	social := NewPlayerState(nil)
	effect, _ := ResolveOutcome(social, movie.Outcomes)
	next, _ := ApplyEffect(social, effect, nil)
	if next.Mood != social.Mood+5 {
		t.Fatalf("expected mood +5 with friends, got %d", next.Mood)
	}
	for i, friend := range next.Friends {
		if friend.Closeness != social.Friends[i].Closeness+5 {
			t.Fatalf("expected %s closeness +5, got %d", friend.Name, friend.Closeness)
		}
	}

	lonely := NewPlayerState([]Friend{})
	effect, _ = ResolveOutcome(lonely, movie.Outcomes)
	next, msg := ApplyEffect(lonely, effect, nil)
	if next.Mood != lonely.Mood+2 {
		t.Fatalf("expected mood +2 alone, got %d", next.Mood)
	}
	if !strings.Contains(msg, "on your own") {
		t.Fatalf("unexpected solo message: %q", msg)
	}
}

func TestCatalogLookupNormalisesNames(t *testing.T) {
	catalog := DefaultCatalog()
	for _, name := range []string{"get a part time job", "GET A PART-TIME JOB", "Get a Part‑Time Job"} {
		if _, ok := catalog.Activity(name); !ok {
			t.Fatalf("expected %q to resolve", name)
		}
	}
	if _, ok := catalog.StoreItem("concert-ticket"); !ok {
		t.Fatalf("expected concert-ticket to resolve")
	}
	if _, ok := catalog.StoreItem("yacht"); ok {
		t.Fatalf("did not expect yacht to resolve")
	}
}

func TestCatalogValidateRejectsBrokenContent(t *testing.T) {
	empty := DefaultCatalog()
	empty.Events = nil
	if err := empty.Validate(); err == nil {
		t.Fatalf("expected error for catalog without events")
	}

	dup := DefaultCatalog()
	dup.Activities = append(dup.Activities, dup.Activities[0])
	if err := dup.Validate(); err == nil {
		t.Fatalf("expected error for duplicate activity")
	}

	negative := DefaultCatalog()
	negative.Store[0].Price = -1
	if err := negative.Validate(); err == nil {
		t.Fatalf("expected error for negative price")
	}
}
