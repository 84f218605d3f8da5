package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyEffectLeavesInputUntouched(t *testing.T) {
	state := NewPlayerState(nil)
	before := state.Clone()

	next, msg := ApplyEffect(state, Effect{
		Delta:           StatDelta{Mood: 5, Money: 7},
		FriendCloseness: 10,
		AddItem:         "Sticker",
		Grounded:        GroundingGround,
		Message:         "done",
	}, fixedRandom(0))

	if diff := cmp.Diff(before, state); diff != "" {
		t.Fatalf("input state mutated (-before +after):\n%s", diff)
	}
	if msg != "done" {
		t.Fatalf("unexpected message %q", msg)
	}
	if next.Mood != 55 || next.Money != 27 || !next.Grounded {
		t.Fatalf("unexpected next state: %+v", next)
	}
	if next.Friends[0].Closeness != 70 || next.Friends[1].Closeness != 50 {
		t.Fatalf("expected closeness +10, got %+v", next.Friends)
	}
	if len(next.Inventory) != 1 || next.Inventory[0].Name != "Sticker" {
		t.Fatalf("expected sticker in inventory, got %+v", next.Inventory)
	}
}

func TestApplyEffectClampsFriendCloseness(t *testing.T) {
	state := NewPlayerState([]Friend{{Name: "Sam", Closeness: 98}})

	next, _ := ApplyEffect(state, Effect{FriendCloseness: 5}, nil)
	if next.Friends[0].Closeness != 100 {
		t.Fatalf("expected closeness clamped to 100, got %d", next.Friends[0].Closeness)
	}
}

func TestApplyEffectPayoutUsesRandomSource(t *testing.T) {
	effect := Effect{Payout: []int{5, 10}, Message: "got $" + payoutToken}

	low, lowMsg := ApplyEffect(NewPlayerState(nil), effect, fixedRandom(0))
	high, highMsg := ApplyEffect(NewPlayerState(nil), effect, fixedRandom(1))

	if low.Money != startingMoney+5 || lowMsg != "got $5" {
		t.Fatalf("low branch: money=%d msg=%q", low.Money, lowMsg)
	}
	if high.Money != startingMoney+10 || highMsg != "got $10" {
		t.Fatalf("high branch: money=%d msg=%q", high.Money, highMsg)
	}
}

func TestResolveOutcomeFirstMatchWins(t *testing.T) {
	outcomes := []Outcome{
		{When: WhenGrounded, Effect: Effect{Message: "grounded"}},
		{Effect: Effect{Message: "default"}},
	}

	state := NewPlayerState(nil)
	effect, ok := ResolveOutcome(state, outcomes)
	if !ok || effect.Message != "default" {
		t.Fatalf("expected default outcome, got %q ok=%v", effect.Message, ok)
	}

	state.Grounded = true
	effect, ok = ResolveOutcome(state, outcomes)
	if !ok || effect.Message != "grounded" {
		t.Fatalf("expected grounded outcome, got %q ok=%v", effect.Message, ok)
	}
}

func TestConditionHolds(t *testing.T) {
	lonely := NewPlayerState([]Friend{})
	social := NewPlayerState(nil)
	grounded := NewPlayerState(nil)
	grounded.Grounded = true

	tests := []struct {
		name  string
		cond  Condition
		state PlayerState
		want  bool
	}{
		{name: "always", cond: Always, state: lonely, want: true},
		{name: "grounded on grounded", cond: WhenGrounded, state: grounded, want: true},
		{name: "grounded on free", cond: WhenGrounded, state: social, want: false},
		{name: "not grounded on grounded", cond: WhenNotGrounded, state: grounded, want: false},
		{name: "has friends", cond: WhenHasFriends, state: social, want: true},
		{name: "has friends when lonely", cond: WhenHasFriends, state: lonely, want: false},
		{name: "no friends when lonely", cond: WhenNoFriends, state: lonely, want: true},
		{name: "unknown condition", cond: Condition("full_moon"), state: social, want: false},
	}
	for _, tc := range tests {
		if got := tc.cond.Holds(tc.state); got != tc.want {
			t.Fatalf("%s: Holds=%v want=%v", tc.name, got, tc.want)
		}
	}
}
