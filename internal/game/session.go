package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns one play-through: the player state, the random source, the
// event waiting for a choice and the presenter everything is reported to.
// Requests are handled one at a time; concurrent or re-entrant calls fail
// with ErrBusy.
type Session struct {
	id        uuid.UUID
	seed      int64
	state     PlayerState
	catalog   Catalog
	rng       RandomSource
	presenter Presenter
	log       *zap.Logger

	// mu serialises requests; view guards state and pending for readers,
	// which may be presenter callbacks running inside a request.
	mu      sync.Mutex
	view    sync.RWMutex
	pending *Event
}

func NewSession(cfg SessionConfig, presenter Presenter) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := cfg.Random
	if rng == nil {
		rng = NewRandomSource(seed)
	}
	catalog := DefaultCatalog()
	if cfg.Catalog != nil {
		catalog = *cfg.Catalog
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	id := uuid.New()
	s := &Session{
		id:        id,
		seed:      seed,
		state:     NewPlayerState(cfg.Friends),
		catalog:   catalog,
		rng:       rng,
		presenter: presenter,
		log:       logger.With(zap.String("session", id.String())),
	}
	s.log.Debug("session started", zap.Int64("seed", seed), zap.Int("events", len(catalog.Events)))
	return s, nil
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Seed() int64 { return s.seed }

func (s *Session) Catalog() Catalog { return s.catalog }

// State returns a copy of the current player state.
func (s *Session) State() PlayerState {
	s.view.RLock()
	defer s.view.RUnlock()
	return s.state.Clone()
}

// PendingEvent returns the event waiting for a choice, if any.
func (s *Session) PendingEvent() (Event, bool) {
	s.view.RLock()
	defer s.view.RUnlock()
	if s.pending == nil {
		return Event{}, false
	}
	return *s.pending, true
}

func (s *Session) acquire() error {
	if !s.mu.TryLock() {
		return ErrBusy
	}
	return nil
}

// commit publishes a new state and pending event. Only the request holding
// mu writes, so it may read both fields without view.
func (s *Session) commit(state PlayerState, pending *Event) {
	s.view.Lock()
	s.state = state
	s.pending = pending
	s.view.Unlock()
}

// RequestAdvance picks the next event and presents it. It fails while a
// previous event is still waiting for a choice.
func (s *Session) RequestAdvance() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if s.pending != nil {
		return fmt.Errorf("advance to day %d: %w", s.state.Day+1, ErrEventPending)
	}

	event := SelectEvent(s.state, s.catalog, s.rng)
	s.commit(s.state, &event)
	s.log.Debug("event presented",
		zap.Int("day", s.state.Day),
		zap.String("event", event.ID),
		zap.String("pool", string(ActivePool(s.state))),
	)
	s.presenter.OnEventPresented(event.Title, event.Description, event.ChoiceLabels())
	return nil
}

// SelectChoice resolves the pending event with the choice at index and
// moves to the next day.
func (s *Session) SelectChoice(index int) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if s.pending == nil {
		return ErrNoPendingEvent
	}
	event := *s.pending
	if index < 0 || index >= len(event.Choices) {
		return fmt.Errorf("%w: %d not in [0,%d) for %q", ErrInvalidChoiceIndex, index, len(event.Choices), event.Title)
	}
	choice := event.Choices[index]

	next, message := ApplyChoice(s.state, choice, s.rng)
	birthday, aged := next.AdvanceDay()
	s.commit(next, nil)

	s.log.Debug("choice resolved",
		zap.String("event", event.ID),
		zap.String("choice", choice.Label),
		zap.Int("day", s.state.Day),
		zap.Bool("grounded", s.state.Grounded),
	)
	s.presenter.OnMessage(message)
	if aged {
		s.log.Info("birthday", zap.Int("age", s.state.Age), zap.Int("day", s.state.Day))
		s.presenter.OnMessage(birthday)
	}
	return nil
}

// RequestActivity runs the named activity if its availability holds.
// Activities never advance the day.
func (s *Session) RequestActivity(name string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	activity, ok := s.catalog.Activity(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownActivity, name)
	}
	if !activity.Available(s.state) {
		return fmt.Errorf("%w: %s", ErrActivityUnavailable, activity.Name)
	}
	effect, ok := ResolveOutcome(s.state, activity.Outcomes)
	if !ok {
		return fmt.Errorf("%w: %s has no outcome for the current state", ErrActivityUnavailable, activity.Name)
	}

	next, message := ApplyEffect(s.state, effect, s.rng)
	s.commit(next, s.pending)
	s.log.Debug("activity run",
		zap.String("activity", activity.Name),
		zap.Int("money", s.state.Money),
		zap.Bool("grounded", s.state.Grounded),
	)
	s.presenter.OnMessage(message)
	return nil
}

// RequestPurchase checks the price, deducts it and applies the item in one
// step. A failed check leaves the state untouched and emits nothing.
func (s *Session) RequestPurchase(name string) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	item, ok := s.catalog.StoreItem(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	if !item.Affordable(s.state) {
		return fmt.Errorf("%w: %s costs $%d, you have $%d", ErrInsufficientFunds, item.Name, item.Price, s.state.Money)
	}
	effect, ok := ResolveOutcome(s.state, item.Outcomes)
	if !ok {
		return fmt.Errorf("%w: %s has no outcome for the current state", ErrUnknownItem, item.Name)
	}

	paid := s.state.Clone()
	paid.Money -= item.Price
	next, message := ApplyEffect(paid, effect, s.rng)
	s.commit(next, s.pending)
	s.log.Debug("item purchased",
		zap.String("item", item.Name),
		zap.Int("price", item.Price),
		zap.Int("money", s.state.Money),
	)
	s.presenter.OnMessage(message)
	return nil
}

// RequestOverlay sends the payload for kind to the presenter.
func (s *Session) RequestOverlay(kind OverlayKind) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	payload, ok := buildOverlay(kind, s.state, s.catalog)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOverlay, kind)
	}
	s.presenter.OnOverlayRequest(kind, payload)
	return nil
}
