package game

// Presenter receives everything the session wants shown to the player.
// Calls are made synchronously from inside session operations.
type Presenter interface {
	OnMessage(text string)
	OnEventPresented(title, description string, choiceLabels []string)
	OnOverlayRequest(kind OverlayKind, payload OverlayPayload)
}

type OverlayKind string

const (
	OverlayStats      OverlayKind = "stats"
	OverlayActivities OverlayKind = "activities"
	OverlayFriends    OverlayKind = "friends"
	OverlayStore      OverlayKind = "store"
)

func AllOverlayKinds() []OverlayKind {
	return []OverlayKind{OverlayStats, OverlayActivities, OverlayFriends, OverlayStore}
}

// OverlayPayload is one of StatsOverlay, ActivitiesOverlay, FriendsOverlay
// or StoreOverlay.
type OverlayPayload interface {
	OverlayKind() OverlayKind
}

type StatsOverlay struct {
	Day        int
	Age        int
	Mood       int
	Popularity int
	Money      int
	Grades     int
	Health     int
	Grounded   bool
	Inventory  []string
}

func (StatsOverlay) OverlayKind() OverlayKind { return OverlayStats }

type ActivityEntry struct {
	Name        string
	Description string
	Available   bool
}

type ActivitiesOverlay struct {
	Activities []ActivityEntry
}

func (ActivitiesOverlay) OverlayKind() OverlayKind { return OverlayActivities }

type FriendsOverlay struct {
	Friends []Friend
}

func (FriendsOverlay) OverlayKind() OverlayKind { return OverlayFriends }

type StoreEntry struct {
	Name        string
	Price       int
	Description string
	Affordable  bool
}

type StoreOverlay struct {
	Money int
	Items []StoreEntry
}

func (StoreOverlay) OverlayKind() OverlayKind { return OverlayStore }

// NopPresenter discards everything.
type NopPresenter struct{}

func (NopPresenter) OnMessage(string) {}

func (NopPresenter) OnEventPresented(string, string, []string) {}

func (NopPresenter) OnOverlayRequest(OverlayKind, OverlayPayload) {}

func buildOverlay(kind OverlayKind, s PlayerState, catalog Catalog) (OverlayPayload, bool) {
	switch kind {
	case OverlayStats:
		return StatsOverlay{
			Day:        s.Day,
			Age:        s.Age,
			Mood:       s.Mood,
			Popularity: s.Popularity,
			Money:      s.Money,
			Grades:     s.Grades,
			Health:     s.Health,
			Grounded:   s.Grounded,
			Inventory:  s.InventoryNames(),
		}, true
	case OverlayActivities:
		entries := make([]ActivityEntry, 0, len(catalog.Activities))
		for _, activity := range catalog.Activities {
			entries = append(entries, ActivityEntry{
				Name:        activity.Name,
				Description: activity.Description,
				Available:   activity.Available(s),
			})
		}
		return ActivitiesOverlay{Activities: entries}, true
	case OverlayFriends:
		return FriendsOverlay{Friends: append([]Friend{}, s.Friends...)}, true
	case OverlayStore:
		items := make([]StoreEntry, 0, len(catalog.Store))
		for _, item := range catalog.Store {
			items = append(items, StoreEntry{
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
				Affordable:  item.Affordable(s),
			})
		}
		return StoreOverlay{Money: s.Money, Items: items}, true
	default:
		return nil, false
	}
}
