package game

import (
	"strconv"
	"strings"
)

// Condition gates an Outcome or an Activity against the current state.
type Condition string

const (
	Always          Condition = ""
	WhenGrounded    Condition = "grounded"
	WhenNotGrounded Condition = "not_grounded"
	WhenHasFriends  Condition = "has_friends"
	WhenNoFriends   Condition = "no_friends"
)

func (c Condition) Holds(s PlayerState) bool {
	switch c {
	case Always:
		return true
	case WhenGrounded:
		return s.Grounded
	case WhenNotGrounded:
		return !s.Grounded
	case WhenHasFriends:
		return s.HasFriends()
	case WhenNoFriends:
		return !s.HasFriends()
	default:
		return false
	}
}

type GroundingChange string

const (
	GroundingUnchanged GroundingChange = ""
	GroundingGround    GroundingChange = "ground"
	GroundingLift      GroundingChange = "lift"
)

// payoutToken in an Effect message is replaced with the resolved payout.
const payoutToken = "{payout}"

// Effect is a declarative state transformation plus its narrative text.
type Effect struct {
	Delta           StatDelta       `yaml:"delta,omitempty" json:"delta,omitempty"`
	Grounded        GroundingChange `yaml:"grounded,omitempty" json:"grounded,omitempty"`
	FriendCloseness int             `yaml:"friend_closeness,omitempty" json:"friend_closeness,omitempty"`
	AddItem         string          `yaml:"add_item,omitempty" json:"add_item,omitempty"`
	Payout          []int           `yaml:"payout,omitempty" json:"payout,omitempty"`
	Message         string          `yaml:"message" json:"message"`
}

// Outcome pairs an effect with the condition under which it applies.
type Outcome struct {
	When   Condition `yaml:"when,omitempty" json:"when,omitempty"`
	Effect Effect    `yaml:"effect" json:"effect"`
}

// ResolveOutcome returns the effect of the first outcome whose condition holds.
func ResolveOutcome(s PlayerState, outcomes []Outcome) (Effect, bool) {
	for _, outcome := range outcomes {
		if outcome.When.Holds(s) {
			return outcome.Effect, true
		}
	}
	return Effect{}, false
}

// ApplyEffect runs effect against a clone of s and returns the result with
// the narrative message. s itself is never modified.
func ApplyEffect(s PlayerState, effect Effect, rng RandomSource) (PlayerState, string) {
	next := s.Clone()
	message := effect.Message

	next.applyDelta(effect.Delta)

	if len(effect.Payout) > 0 {
		pay := effect.Payout[0]
		if len(effect.Payout) > 1 && rng != nil {
			pay = effect.Payout[rng.IntN(len(effect.Payout))]
		}
		next.Money += pay
		message = strings.ReplaceAll(message, payoutToken, strconv.Itoa(pay))
	}

	if effect.FriendCloseness != 0 {
		for i := range next.Friends {
			next.Friends[i].Closeness = ClampStat(next.Friends[i].Closeness + effect.FriendCloseness)
		}
	}

	switch effect.Grounded {
	case GroundingGround:
		next.Grounded = true
	case GroundingLift:
		next.Grounded = false
	}

	if effect.AddItem != "" {
		next.Inventory = append(next.Inventory, InventoryItem{Name: effect.AddItem})
	}

	clampPlayer(&next)
	return next, message
}

// ApplyChoice resolves an event choice.
func ApplyChoice(s PlayerState, choice Choice, rng RandomSource) (PlayerState, string) {
	return ApplyEffect(s, choice.Effect, rng)
}
