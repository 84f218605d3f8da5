package game

const (
	ActivityStudy       = "Study"
	ActivityHangOut     = "Hang Out"
	ActivityPartTimeJob = "Get a Part-Time Job"
	ActivityDoChores    = "Do Chores"
	ActivityExercise    = "Exercise"
)

// chorePayout is picked uniformly; index 0 is the low branch.
func chorePayout() []int {
	return []int{5, 10}
}

func BuiltInActivities() []Activity {
	return []Activity{
		{
			Name:        ActivityStudy,
			Description: "Improve your grades at the cost of mood.",
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Grades: 5, Mood: -3},
					Message: "You hit the books and learn a lot. Your grades improve but you feel a bit drained.",
				}},
			},
		},
		{
			Name:        ActivityHangOut,
			Description: "Spend time with friends to boost mood and popularity.",
			Requires:    WhenNotGrounded,
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Mood: 6, Popularity: 4},
					Message: "You hang out with friends, share laughs and stories. You feel happier and more popular.",
				}},
			},
		},
		{
			Name:        ActivityPartTimeJob,
			Description: "Work an odd job for extra cash, at the cost of mood and health.",
			Requires:    WhenNotGrounded,
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Money: 20, Mood: -4, Health: -2},
					Message: "You work a part‑time job after school and earn $20. You're tired afterwards but your wallet is happy.",
				}},
			},
		},
		{
			Name:        ActivityDoChores,
			Description: "Help out around the house. Might earn some money and avoid being grounded.",
			Outcomes: []Outcome{
				{When: WhenGrounded, Effect: Effect{
					Delta:    StatDelta{Mood: -2},
					Payout:   chorePayout(),
					Grounded: GroundingLift,
					Message:  "You catch up on chores and your parents forgive you. You're no longer grounded and you earn $" + payoutToken + ".",
				}},
				{Effect: Effect{
					Delta:   StatDelta{Mood: -2},
					Payout:  chorePayout(),
					Message: "You help around the house and get $" + payoutToken + ". It's not super exciting, but it keeps you on your parents' good side.",
				}},
			},
		},
		{
			Name:        ActivityExercise,
			Description: "Go for a run or hit the gym to improve your health and mood.",
			Requires:    WhenNotGrounded,
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Health: 8, Mood: 3, Popularity: 1},
					Message: "You work out and feel the endorphins kicking in. Your health, mood, and even popularity get a boost!",
				}},
			},
		},
	}
}
