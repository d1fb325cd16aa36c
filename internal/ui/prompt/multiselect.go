package prompt

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dheater/viewyard/internal/search"
	"github.com/dheater/viewyard/internal/ui/styles"
)

const maxVisible = 10

type multiSelectModel struct {
	prompt   string
	options  []string
	filtered []int // indices into options, fuzzy-ranked
	cursor   int   // position in filtered list
	selected map[int]bool
	filter   string
	done     bool
	accepted bool
}

func newMultiSelectModel(prompt string, options []string, preselect bool) multiSelectModel {
	m := multiSelectModel{
		prompt:   prompt,
		options:  options,
		selected: make(map[int]bool),
	}
	if preselect {
		for i := range options {
			m.selected[i] = true
		}
	}
	m.applyFilter()
	return m
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "home", "pgup":
		m.cursor = 0
	case "end", "pgdown":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}
	case " ", "space":
		if len(m.filtered) > 0 {
			idx := m.filtered[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
	case "ctrl+a":
		// Toggle all
		allOn := len(m.selected) == len(m.options)
		for i := range m.options {
			if allOn {
				delete(m.selected, i)
			} else {
				m.selected[i] = true
			}
		}
	case "enter":
		m.accepted = true
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.done = true
		return m, tea.Quit
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	default:
		// Typing narrows the filter
		if key.Text != "" {
			m.filter += key.Text
			m.applyFilter()
		}
	}

	return m, nil
}

func (m *multiSelectModel) applyFilter() {
	matches := search.Rank(m.filter, m.options)
	m.filtered = m.filtered[:0]
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d selected)\n", m.prompt, len(m.selected))
	b.WriteString(styles.MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		idx := m.filtered[i]

		cursor := "  "
		label := m.options[idx]
		if i == m.cursor {
			cursor = "> "
			label = styles.AccentStyle.Render(label)
		}
		checkbox := "[ ]"
		if m.selected[idx] {
			checkbox = "[" + styles.SuccessStyle.Render(styles.Check) + "]"
		}
		b.WriteString(cursor + checkbox + " " + label + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}

	b.WriteString("\n" + styles.InfoStyle.Render("↑/↓ move • space toggle • ctrl+a all • type to filter • enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// indices returns the selected option indices in original order.
func (m multiSelectModel) indices() []int {
	var out []int
	for i := range m.options {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// MultiSelectResult holds the result of a multi-select prompt.
type MultiSelectResult struct {
	Indices   []int
	Cancelled bool
}

// MultiSelect shows a filterable checkbox list. With preselect, every
// option starts checked so enter means "all".
func MultiSelect(prompt string, options []string, preselect bool) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{}, nil
	}
	if !Interactive() {
		// Non-interactive callers get the preselection unchanged.
		m := newMultiSelectModel(prompt, options, preselect)
		return MultiSelectResult{Indices: m.indices()}, nil
	}

	p := newProgram(newMultiSelectModel(prompt, options, preselect))
	finalModel, err := p.Run()
	if err != nil {
		return MultiSelectResult{}, err
	}
	m := finalModel.(multiSelectModel)
	if !m.accepted {
		return MultiSelectResult{Cancelled: true}, nil
	}
	return MultiSelectResult{Indices: m.indices()}, nil
}
