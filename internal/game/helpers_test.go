package game

import "testing"

// fixedRandom always returns the same index, capped to the range asked for.
type fixedRandom int

func (f fixedRandom) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

// sequenceRandom replays values in order and then repeats the last one.
type sequenceRandom struct {
	values []int
	next   int
}

func (r *sequenceRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[min(r.next, len(r.values)-1)]
	r.next++
	return v % n
}

type presentedEvent struct {
	Title       string
	Description string
	Labels      []string
}

type presentedOverlay struct {
	Kind    OverlayKind
	Payload OverlayPayload
}

type recordingPresenter struct {
	messages []string
	events   []presentedEvent
	overlays []presentedOverlay

	onMessage func(string)
}

func (p *recordingPresenter) OnMessage(text string) {
	p.messages = append(p.messages, text)
	if p.onMessage != nil {
		p.onMessage(text)
	}
}

func (p *recordingPresenter) OnEventPresented(title, description string, labels []string) {
	p.events = append(p.events, presentedEvent{Title: title, Description: description, Labels: labels})
}

func (p *recordingPresenter) OnOverlayRequest(kind OverlayKind, payload OverlayPayload) {
	p.overlays = append(p.overlays, presentedOverlay{Kind: kind, Payload: payload})
}

func newTestSession(t *testing.T, rng RandomSource) (*Session, *recordingPresenter) {
	t.Helper()

	presenter := &recordingPresenter{}
	session, err := NewSession(SessionConfig{Seed: 4242, Random: rng}, presenter)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session, presenter
}

// presentEvent forces the pending event to the one with id.
func presentEvent(t *testing.T, s *Session, id string) Event {
	t.Helper()

	for _, event := range append(append([]Event{}, s.catalog.Events...), s.catalog.Grounded) {
		if event.ID == id {
			e := event
			s.commit(s.state, &e)
			return e
		}
	}
	t.Fatalf("event %q not in catalog", id)
	return Event{}
}

func findChoice(t *testing.T, event Event, label string) int {
	t.Helper()

	for i, choice := range event.Choices {
		if choice.Label == label {
			return i
		}
	}
	t.Fatalf("choice %q not in event %q", label, event.Title)
	return -1
}
