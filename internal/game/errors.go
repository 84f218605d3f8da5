package game

import "errors"

var (
	ErrInvalidChoiceIndex  = errors.New("invalid choice index")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrActivityUnavailable = errors.New("activity unavailable")
	ErrUnknownActivity     = errors.New("unknown activity")
	ErrUnknownItem         = errors.New("unknown store item")
	ErrUnknownOverlay      = errors.New("unknown overlay")
	ErrNoPendingEvent      = errors.New("no event is waiting for a choice")
	ErrEventPending        = errors.New("current event has not been resolved")
	ErrBusy                = errors.New("session is handling another request")
)
