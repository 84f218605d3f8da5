package game

import "maps"

const (
	startingDay        = 1
	startingAge        = 15
	startingMood       = 50
	startingPopularity = 50
	startingMoney      = 20
	startingGrades     = 75
	startingHealth     = 80
)

type Friend struct {
	Name      string `yaml:"name" json:"name"`
	Closeness int    `yaml:"closeness" json:"closeness"`
}

type InventoryItem struct {
	Name string `yaml:"name" json:"name"`
}

type PlayerState struct {
	Day        int  `json:"day"`
	Age        int  `json:"age"`
	Mood       int  `json:"mood"`
	Popularity int  `json:"popularity"`
	Money      int  `json:"money"`
	Grades     int  `json:"grades"`
	Health     int  `json:"health"`
	Grounded   bool `json:"grounded"`

	Friends      []Friend        `json:"friends"`
	Inventory    []InventoryItem `json:"inventory"`
	Achievements []string        `json:"achievements"`
	Flags        map[string]bool `json:"flags"`
}

func DefaultFriends() []Friend {
	return []Friend{
		{Name: "Jamie", Closeness: 60},
		{Name: "Alex", Closeness: 40},
	}
}

// NewPlayerState returns the opening state of a fresh session. A nil friends
// slice means the default pair; an empty non-nil slice means no friends.
func NewPlayerState(friends []Friend) PlayerState {
	if friends == nil {
		friends = DefaultFriends()
	}
	state := PlayerState{
		Day:          startingDay,
		Age:          startingAge,
		Mood:         startingMood,
		Popularity:   startingPopularity,
		Money:        startingMoney,
		Grades:       startingGrades,
		Health:       startingHealth,
		Friends:      append([]Friend{}, friends...),
		Inventory:    []InventoryItem{},
		Achievements: []string{},
		Flags:        map[string]bool{},
	}
	clampPlayer(&state)
	return state
}

// Clone returns a deep copy, so effects can be applied without touching s.
func (s PlayerState) Clone() PlayerState {
	out := s
	out.Friends = append([]Friend{}, s.Friends...)
	out.Inventory = append([]InventoryItem{}, s.Inventory...)
	out.Achievements = append([]string{}, s.Achievements...)
	out.Flags = make(map[string]bool, len(s.Flags))
	maps.Copy(out.Flags, s.Flags)
	return out
}

func (s PlayerState) HasFriends() bool {
	return len(s.Friends) > 0
}

func (s PlayerState) InventoryNames() []string {
	names := make([]string, 0, len(s.Inventory))
	for _, item := range s.Inventory {
		names = append(names, item.Name)
	}
	return names
}
