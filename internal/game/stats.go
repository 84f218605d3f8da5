package game

type Stat string

const (
	StatMood       Stat = "mood"
	StatPopularity Stat = "popularity"
	StatMoney      Stat = "money"
	StatGrades     Stat = "grades"
	StatHealth     Stat = "health"
)

const (
	statMin = 0
	statMax = 100
)

func AllStats() []Stat {
	return []Stat{StatMood, StatPopularity, StatMoney, StatGrades, StatHealth}
}

// Bounded reports whether the stat is clamped to [0,100]. Money is not.
func (s Stat) Bounded() bool {
	return s != StatMoney
}

// ClampStat returns value limited to [0,100].
func ClampStat(value int) int {
	return clamp(value, statMin, statMax)
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

// StatDelta is a set of additive changes, zero meaning untouched.
type StatDelta struct {
	Mood       int `yaml:"mood,omitempty" json:"mood,omitempty"`
	Popularity int `yaml:"popularity,omitempty" json:"popularity,omitempty"`
	Money      int `yaml:"money,omitempty" json:"money,omitempty"`
	Grades     int `yaml:"grades,omitempty" json:"grades,omitempty"`
	Health     int `yaml:"health,omitempty" json:"health,omitempty"`
}

func (d StatDelta) IsZero() bool {
	return d == StatDelta{}
}

func (d StatDelta) Get(stat Stat) int {
	switch stat {
	case StatMood:
		return d.Mood
	case StatPopularity:
		return d.Popularity
	case StatMoney:
		return d.Money
	case StatGrades:
		return d.Grades
	case StatHealth:
		return d.Health
	default:
		return 0
	}
}

func (s PlayerState) Stat(stat Stat) int {
	switch stat {
	case StatMood:
		return s.Mood
	case StatPopularity:
		return s.Popularity
	case StatMoney:
		return s.Money
	case StatGrades:
		return s.Grades
	case StatHealth:
		return s.Health
	default:
		return 0
	}
}

func (s *PlayerState) applyDelta(d StatDelta) {
	s.Mood = ClampStat(s.Mood + d.Mood)
	s.Popularity = ClampStat(s.Popularity + d.Popularity)
	s.Grades = ClampStat(s.Grades + d.Grades)
	s.Health = ClampStat(s.Health + d.Health)
	s.Money += d.Money
}

func clampPlayer(s *PlayerState) {
	s.Mood = ClampStat(s.Mood)
	s.Popularity = ClampStat(s.Popularity)
	s.Grades = ClampStat(s.Grades)
	s.Health = ClampStat(s.Health)
	for i := range s.Friends {
		s.Friends[i].Closeness = ClampStat(s.Friends[i].Closeness)
	}
}
