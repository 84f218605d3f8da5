package ui

import "github.com/appengine-ltd/teen-life/internal/game"

const maxHistory = 8

// screenPresenter buffers presenter callbacks until the next View.
type screenPresenter struct {
	messages    []string
	title       string
	description string
	labels      []string
	overlay     game.OverlayPayload
}

func (p *screenPresenter) OnMessage(text string) {
	p.messages = append(p.messages, text)
	if len(p.messages) > maxHistory {
		p.messages = append([]string(nil), p.messages[len(p.messages)-maxHistory:]...)
	}
}

func (p *screenPresenter) OnEventPresented(title, description string, choiceLabels []string) {
	p.title = title
	p.description = description
	p.labels = append([]string(nil), choiceLabels...)
	p.overlay = nil
}

func (p *screenPresenter) OnOverlayRequest(_ game.OverlayKind, payload game.OverlayPayload) {
	p.overlay = payload
}

func (p *screenPresenter) clearEvent() {
	p.title = ""
	p.description = ""
	p.labels = nil
}
