package tui

import (
	"fmt"
	"strings"

	"github.com/gerunddev/lift/internal/db"
)

// picker selects one exercise from the library.
type picker struct {
	exercises []db.Exercise
	cursor    int
	visible   bool
}

func (p *picker) open() {
	p.cursor = 0
	p.visible = true
}

func (p *picker) close() {
	p.visible = false
}

func (p *picker) move(delta int) {
	if len(p.exercises) == 0 {
		return
	}
	p.cursor = (p.cursor + delta + len(p.exercises)) % len(p.exercises)
}

func (p *picker) selected() (db.Exercise, bool) {
	if p.cursor < 0 || p.cursor >= len(p.exercises) {
		return db.Exercise{}, false
	}
	return p.exercises[p.cursor], true
}

func (p picker) View() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Render("Add exercise"))
	b.WriteString("\n")
	if len(p.exercises) == 0 {
		b.WriteString(emptyStyle.Render("exercise library is empty"))
	}
	for i, e := range p.exercises {
		line := fmt.Sprintf("%s  %s", e.Name, fieldStyle.Render(e.BodyPart+" · "+e.Equipment))
		if i == p.cursor {
			b.WriteString(cursorStyle.Render("› ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString(fieldStyle.Render("enter: add  esc: cancel"))
	return dialogStyle.Render(b.String())
}
