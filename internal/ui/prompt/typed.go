package prompt

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/dheater/viewyard/internal/ui/styles"
)

type typedModel struct {
	input    textinput.Model
	prompt   string
	required string
	done     bool
	matched  bool
}

func (m typedModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m typedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.matched = m.input.Value() == m.required
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m typedModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	hint := styles.MutedStyle.Render(fmt.Sprintf("type %q to confirm", m.required))
	return tea.NewView(fmt.Sprintf("%s %s\n%s", m.prompt, hint, m.input.View()))
}

// TypedConfirm requires the user to type an exact word (usually "yes")
// to proceed. Used before destructive operations where a single
// keypress is too easy.
func TypedConfirm(prompt, required string) (bool, error) {
	if !Interactive() {
		line, err := readLine(fmt.Sprintf("%s (type %q to confirm): ", prompt, required))
		if err != nil {
			return false, nil
		}
		return line == required, nil
	}

	ti := textinput.New()
	ti.Placeholder = required
	ti.Focus()
	ti.CharLimit = len(required) + 10
	ti.SetWidth(30)

	p := newProgram(typedModel{input: ti, prompt: prompt, required: required})
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	return finalModel.(typedModel).matched, nil
}
