package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/teen-life/internal/game"
)

// TextPresenter writes the session narrative as plain lines. It is used by
// headless runs where no terminal UI is attached.
type TextPresenter struct {
	w   io.Writer
	err error
}

func NewTextPresenter(w io.Writer) *TextPresenter {
	return &TextPresenter{w: w}
}

// Err returns the first write error, if any.
func (p *TextPresenter) Err() error {
	return p.err
}

func (p *TextPresenter) OnMessage(text string) {
	p.writeLines("> " + text)
}

func (p *TextPresenter) OnEventPresented(title, description string, choiceLabels []string) {
	p.writeLines(eventLines("== "+title+" ==", description, choiceLabels)...)
}

func (p *TextPresenter) OnOverlayRequest(_ game.OverlayKind, payload game.OverlayPayload) {
	lines := append([]string{"-- " + overlayTitle(payload) + " --"}, overlayLines(payload)...)
	p.writeLines(lines...)
}

func (p *TextPresenter) writeLines(lines ...string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, strings.Join(lines, "\n"))
}
