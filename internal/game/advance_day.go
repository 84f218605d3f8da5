package game

import "fmt"

const daysPerYear = 100

// AdvanceDay moves to the next day. When the new day is a multiple of 100
// the player ages a year and the birthday message is returned.
func (s *PlayerState) AdvanceDay() (string, bool) {
	s.Day++
	if s.Day%daysPerYear != 0 {
		return "", false
	}
	s.Age++
	return fmt.Sprintf("Happy birthday! You're now %d years old.", s.Age), true
}
