package main

import (
	"github.com/sahilm/fuzzy"

	"github.com/glintui/glint/input"
	"github.com/glintui/glint/node"
	"github.com/glintui/glint/style"
)

// modelPicker is a modal fuzzy filter over the model list, opened with '/'
type modelPicker struct {
	models   []string
	filter   string
	selected int
}

func newModelPicker(models []string, current string) *modelPicker {
	p := &modelPicker{models: models}
	for i, m := range models {
		if m == current {
			p.selected = i
		}
	}
	return p
}

// visible returns the filtered models with their fuzzy match positions;
// an empty filter shows everything unranked
func (p *modelPicker) visible() []fuzzy.Match {
	if p.filter == "" {
		out := make([]fuzzy.Match, len(p.models))
		for i, m := range p.models {
			out[i] = fuzzy.Match{Str: m, Index: i}
		}
		return out
	}
	return fuzzy.Find(p.filter, p.models)
}

func (p *modelPicker) clampSelected(n int) {
	if p.selected >= n {
		p.selected = n - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// handle consumes one event; done reports the picker closed, with the
// chosen model or "" on cancel
func (p *modelPicker) handle(ev input.Event) (done bool, chosen string) {
	if ev.Kind != input.EventKey {
		return false, ""
	}

	matches := p.visible()
	p.clampSelected(len(matches))

	switch ev.Key {
	case input.KeyEsc:
		return true, ""
	case input.KeyEnter, input.KeySubmit:
		if len(matches) == 0 {
			return true, ""
		}
		return true, matches[p.selected].Str
	case input.KeyUp:
		p.selected--
		p.clampSelected(len(matches))
	case input.KeyDown:
		p.selected++
		p.clampSelected(len(matches))
	case input.KeyBackspace:
		if p.filter != "" {
			runes := []rune(p.filter)
			p.filter = string(runes[:len(runes)-1])
			p.selected = 0
		}
	case input.KeyRune:
		p.filter += string(ev.Rune)
		p.selected = 0
	}
	return false, ""
}

func (p *modelPicker) render(width, height int, theme Theme) node.Node {
	matches := p.visible()
	p.clampSelected(len(matches))

	cursorStyle := style.TextStyle{}
	cursorStyle.CursorAnchor = true
	cursorStyle.CursorAfter = true
	prompt := node.NewText("Model: /").
		Run(p.filter, style.TextStyle{}.Color(theme.Accent)).
		Run(" ", cursorStyle).
		Node()

	list := node.NewColumn()
	for i, m := range matches {
		list = list.Child(p.matchRow(m, i == p.selected, theme))
	}
	if len(matches) == 0 {
		list = list.Child(node.Plain("no matching model"))
	}

	body := node.NewColumn().Gap(1).
		Child(
			node.Plain("Pick a model  (Enter select, Esc cancel)"),
			prompt,
			list.Node(),
		).
		Node()

	return node.NewContainer(
		node.NewColumn().JustifyCenter().ItemsCenter().
			Child(body).
			Node(),
	).Style(style.BoxStyle{}.Text(theme.Text)).Node()
}

// matchRow renders one candidate, bolding the fuzzily matched characters
func (p *modelPicker) matchRow(m fuzzy.Match, selected bool, theme Theme) node.Node {
	base := style.TextStyle{}
	hit := style.TextStyle{}.Color(theme.Accent).Bold()
	marker := "  "
	if selected {
		marker = "> "
		base = base.Color(theme.Accent)
	}

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, idx := range m.MatchedIndexes {
		matched[idx] = true
	}

	row := node.NewText(marker)
	for i, ch := range m.Str {
		st := base
		if matched[i] {
			st = hit
		}
		row = row.Run(string(ch), st)
	}
	return row.Node()
}
