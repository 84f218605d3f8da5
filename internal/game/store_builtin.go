package game

const (
	ItemVideoGame     = "Video Game"
	ItemConcertTicket = "Concert Ticket"
	ItemNewOutfit     = "New Outfit"
	ItemMovieNight    = "Movie Night"
)

func BuiltInStoreItems() []StoreItem {
	return []StoreItem{
		{
			Name:        ItemVideoGame,
			Price:       30,
			Description: "A new video game to play during downtime. Improves mood.",
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Mood: 6},
					AddItem: ItemVideoGame,
					Message: "You buy a new video game and can't wait to play it. You're super excited!",
				}},
			},
		},
		{
			Name:        ItemConcertTicket,
			Price:       50,
			Description: "A ticket to see your favorite band live. Boosts popularity.",
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Popularity: 10},
					AddItem: ItemConcertTicket,
					Message: "You score a concert ticket. Everyone wants to hear about the show!",
				}},
			},
		},
		{
			Name:        ItemNewOutfit,
			Price:       40,
			Description: "Stylish clothes that make you feel confident.",
			Outcomes: []Outcome{
				{Effect: Effect{
					Delta:   StatDelta{Popularity: 8, Mood: 4},
					Message: "You grab a fresh outfit and feel more confident walking into school.",
				}},
			},
		},
		{
			Name:        ItemMovieNight,
			Price:       15,
			Description: "Enjoy a movie with friends. Improves mood and closeness.",
			Outcomes: []Outcome{
				{When: WhenHasFriends, Effect: Effect{
					Delta:           StatDelta{Mood: 5},
					FriendCloseness: 5,
					Message:         "You host a movie night. You and your friends have a great time and feel closer.",
				}},
				{Effect: Effect{
					Delta:   StatDelta{Mood: 2},
					Message: "You watch a movie on your own. It's still enjoyable, but you wish you had company.",
				}},
			},
		},
	}
}
