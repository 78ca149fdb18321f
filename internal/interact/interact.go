// Package interact implements the prompt loop used when txcv starts without
// any words to translate.
package interact

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/txcv/cli/internal/render"
	"github.com/txcv/cli/internal/translate"
)

// Translator is the single call the prompt loop needs.
type Translator interface {
	Word(ctx context.Context, word string) (translate.Result, error)
}

type resultMsg struct {
	line string
}

type errMsg struct {
	err error
}

type model struct {
	ctx        context.Context
	input      textinput.Model
	translator Translator
	lines      []string
	waiting    bool
	err        error
}

func newModel(ctx context.Context, tr Translator) model {
	ti := textinput.New()
	ti.Placeholder = "word"
	ti.Prompt = "> "
	ti.Focus()
	return model{ctx: ctx, input: ti, translator: tr}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			word := strings.TrimSpace(m.input.Value())
			if word == "" {
				// An empty line ends the session.
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.waiting = true
			return m, translateCmd(m.ctx, m.translator, word)
		}
	case resultMsg:
		m.waiting = false
		m.lines = append(m.lines, msg.line)
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.waiting {
		b.WriteString("...\n")
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	return b.String()
}

func translateCmd(ctx context.Context, tr Translator, word string) tea.Cmd {
	return func() tea.Msg {
		res, err := tr.Word(ctx, word)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg{line: render.Line(res)}
	}
}

// Run drives the prompt loop until the user quits or a translation fails.
// A translation failure is returned so the caller can exit non-zero.
func Run(ctx context.Context, tr Translator) error {
	final, err := tea.NewProgram(newModel(ctx, tr)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
