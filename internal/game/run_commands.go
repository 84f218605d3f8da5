package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandResult reports how a text command was handled. Message carries
// feedback that did not already go through the presenter.
type CommandResult struct {
	Handled     bool
	Message     string
	Err         error
	DayAdvanced bool
}

const commandHelp = "Commands: next, choose <1-3>, stats, activities, friends, store, do <activity>, buy <item>, help."

// ExecuteCommand runs one strict text command against the session.
func (s *Session) ExecuteCommand(raw string) CommandResult {
	command := strings.TrimSpace(strings.ToLower(raw))
	if command == "" {
		return CommandResult{Handled: false}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	if n, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		return s.executeChooseCommand(n)
	}

	switch fields[0] {
	case "commands", "help":
		return CommandResult{Handled: true, Message: commandHelp}
	case "next":
		return s.commandOutcome(s.RequestAdvance(), false)
	case "choose", "pick":
		if len(fields) != 2 {
			return CommandResult{Handled: true, Message: "Usage: choose <1-3>"}
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return CommandResult{Handled: true, Message: fmt.Sprintf("%q is not a choice number.", fields[1])}
		}
		return s.executeChooseCommand(n)
	case "stats", "activities", "friends", "store":
		return s.commandOutcome(s.RequestOverlay(OverlayKind(fields[0])), false)
	case "do":
		if len(fields) < 2 {
			return CommandResult{Handled: true, Message: "Usage: do <activity>"}
		}
		return s.commandOutcome(s.RequestActivity(strings.Join(fields[1:], " ")), false)
	case "buy":
		if len(fields) < 2 {
			return CommandResult{Handled: true, Message: "Usage: buy <item>"}
		}
		return s.commandOutcome(s.RequestPurchase(strings.Join(fields[1:], " ")), false)
	default:
		return CommandResult{Handled: false}
	}
}

// executeChooseCommand takes the 1-based number the player sees.
func (s *Session) executeChooseCommand(n int) CommandResult {
	return s.commandOutcome(s.SelectChoice(n-1), true)
}

func (s *Session) commandOutcome(err error, advancesDay bool) CommandResult {
	if err != nil {
		return CommandResult{Handled: true, Message: describeError(err), Err: err}
	}
	return CommandResult{Handled: true, DayAdvanced: advancesDay}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidChoiceIndex):
		return "That isn't one of the choices."
	case errors.Is(err, ErrNoPendingEvent):
		return "Nothing to choose right now. Type next to start the day."
	case errors.Is(err, ErrEventPending):
		return "Finish today's event before moving on."
	case errors.Is(err, ErrInsufficientFunds):
		return "You can't afford that yet."
	case errors.Is(err, ErrActivityUnavailable):
		return "That activity isn't available right now."
	case errors.Is(err, ErrUnknownActivity):
		return "No such activity. Type activities to see the list."
	case errors.Is(err, ErrUnknownItem):
		return "The store doesn't sell that. Type store to see what's on offer."
	case errors.Is(err, ErrBusy):
		return "Still working on the last action."
	default:
		return err.Error()
	}
}
