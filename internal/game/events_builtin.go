package game

const (
	EventPopQuizID         = "pop_quiz"
	EventCafeteriaDramaID  = "cafeteria_drama"
	EventFamilyChoreID     = "family_chore"
	EventPartyInvitationID = "party_invitation"
	EventHealthScareID     = "health_scare"
	EventGroupProjectID    = "group_project"
	EventGroundedID        = "grounded"
)

func BuiltInEvents() []Event {
	return []Event{
		{
			ID:          EventPopQuizID,
			Title:       "Pop Quiz!",
			Description: "Your math teacher surprises the class with a pop quiz. You feel unprepared. What do you do?",
			Choices: []Choice{
				{
					Label: "Do your best and focus",
					Effect: Effect{
						Delta:   StatDelta{Grades: 5, Mood: -5},
						Message: "You concentrate and manage to answer most questions. Your grades improve slightly but you feel drained.",
					},
				},
				{
					Label: "Sneak a peek at someone else's paper",
					Effect: Effect{
						Delta:   StatDelta{Grades: 2, Popularity: -10},
						Message: "You cheat and get a few answers. Your teacher notices your suspicious behavior and your reputation suffers.",
					},
				},
				{
					Label: "Leave it blank and doodle instead",
					Effect: Effect{
						Delta:   StatDelta{Grades: -10, Mood: 5},
						Message: "You ignore the quiz and relax. Your grades take a hit, but you feel surprisingly calm.",
					},
				},
			},
		},
		{
			ID:          EventCafeteriaDramaID,
			Title:       "Cafeteria Drama",
			Description: "At lunch, someone accidentally bumps into you and spills their food. Everyone is watching. How do you react?",
			Choices: []Choice{
				{
					Label: "Laugh it off and help clean up",
					Effect: Effect{
						Delta:   StatDelta{Popularity: 5, Mood: 2},
						Message: "You stay positive and help them clean up. People appreciate your kindness and you become more popular.",
					},
				},
				{
					Label: "Make fun of them",
					Effect: Effect{
						Delta:   StatDelta{Popularity: -5, Mood: -5},
						Message: "You mock them and others laugh. Later, you feel guilty and people think less of you.",
					},
				},
				{
					Label: "Ignore it and walk away",
					Effect: Effect{
						Delta:   StatDelta{Mood: -1},
						Message: "You decide to avoid the situation altogether. Nothing changes but you miss a chance to be helpful.",
					},
				},
			},
		},
		{
			ID:          EventFamilyChoreID,
			Title:       "Chore Time",
			Description: "Your parents ask you to mow the lawn. It's a beautiful day and your friends are texting to hang out. What do you do?",
			Choices: []Choice{
				{
					Label: "Do the chore now",
					Effect: Effect{
						Delta:   StatDelta{Money: 10, Mood: -5},
						Message: "You take care of the lawn. Your parents are pleased and give you $10, but you miss out on some fun.",
					},
				},
				{
					Label: "Ask to do it later",
					Effect: Effect{
						Delta:   StatDelta{Mood: 5},
						Message: "You promise to mow later and go have fun. Your parents agree, but you’ll need to remember to do it later!",
					},
				},
				{
					Label: "Refuse and go hang out",
					Effect: Effect{
						Delta:    StatDelta{Popularity: 5, Mood: 10},
						Grounded: GroundingGround,
						Message:  "You ditch the chore for fun. Your parents find out and ground you. Hanging out was fun but now you’re grounded.",
					},
				},
			},
		},
		{
			ID:          EventPartyInvitationID,
			Title:       "Party Invitation",
			Description: "You’re invited to a party this weekend. Your best friend really wants you to go, but you have a big exam Monday. What do you do?",
			Choices: []Choice{
				{
					Label: "Go to the party",
					Effect: Effect{
						Delta:   StatDelta{Popularity: 10, Grades: -10, Mood: 8},
						Message: "You attend the party, have a blast and everyone thinks you’re cool. Unfortunately, your study time suffers.",
					},
				},
				{
					Label: "Stay home and study",
					Effect: Effect{
						Delta:   StatDelta{Grades: 10, Mood: -3},
						Message: "You skip the party and study hard. Your grades thank you, but you feel a bit left out.",
					},
				},
				{
					Label: "Study for a bit then show up fashionably late",
					Effect: Effect{
						Delta:   StatDelta{Grades: 3, Popularity: 3, Mood: 2},
						Message: "You compromise by studying early and arriving late. You maintain your grades and still enjoy some social time.",
					},
				},
			},
		},
		{
			ID:          EventHealthScareID,
			Title:       "Not Feeling Great",
			Description: "You wake up with a sore throat and headache. There's a big basketball game today that you’ve been training for. How will you handle it?",
			Choices: []Choice{
				{
					Label: "Play anyway",
					Effect: Effect{
						Delta:   StatDelta{Health: -20, Popularity: 5, Mood: 1},
						Message: "You push through the pain and play. Your teammates appreciate your dedication, but your health takes a toll.",
					},
				},
				{
					Label: "Skip the game and rest",
					Effect: Effect{
						Delta:   StatDelta{Health: 15, Popularity: -5, Mood: -2},
						Message: "You decide to rest and recover. You feel better soon, though you lose a bit of popularity with your team.",
					},
				},
				{
					Label: "Cheer from the sidelines",
					Effect: Effect{
						Delta:   StatDelta{Health: 5, Popularity: 2},
						Message: "You support your friends from the sidelines. You maintain your health and still show team spirit.",
					},
				},
			},
		},
		{
			ID:          EventGroupProjectID,
			Title:       "Group Project",
			Description: "Your English group project partner isn’t responding. The project is due tomorrow. What do you do?",
			Choices: []Choice{
				{
					Label: "Do all the work yourself",
					Effect: Effect{
						Delta:   StatDelta{Grades: 7, Mood: -6},
						Message: "You take on the project solo and pull an all‑nighter. The project is good but you’re exhausted.",
					},
				},
				{
					Label: "Confront your partner",
					Effect: Effect{
						Delta:   StatDelta{Popularity: -5, Mood: 2},
						Message: "You tell your partner off. You feel better speaking up, but some people think you’re being harsh.",
					},
				},
				{
					Label: "Talk to the teacher",
					Effect: Effect{
						Delta:   StatDelta{Grades: 3, Popularity: -2},
						Message: "You explain the situation to your teacher, who gives you more time. Your partner is annoyed, but your grades are safe.",
					},
				},
			},
		},
	}
}

// GroundedEvent replaces the whole event pool while the player is grounded.
func GroundedEvent() Event {
	return Event{
		ID:          EventGroundedID,
		Title:       "Grounded",
		Description: "You're grounded. You can't go out with friends until you do some chores.",
		Choices: []Choice{
			{
				Label: "Apologize and promise to do better",
				Effect: Effect{
					Delta:    StatDelta{Popularity: -1},
					Grounded: GroundingLift,
					Message:  "You apologize sincerely. Your parents lift your grounding, but you feel a little embarrassed.",
				},
			},
			{
				Label: "Sneak out anyway",
				Effect: Effect{
					Delta:    StatDelta{Popularity: 5, Mood: 5},
					Grounded: GroundingGround,
					Message:  "You sneak out and have fun with friends, but your parents find out and extend your grounding.",
				},
			},
			{
				Label: "Tackle chores diligently",
				Effect: Effect{
					Delta:    StatDelta{Money: 15, Mood: -3},
					Grounded: GroundingLift,
					Message:  "You work hard on chores. Your parents appreciate your effort, you earn $15, and your grounding is lifted.",
				},
			},
		},
	}
}
