// Package tui is the interactive FEN viewer. The input line is re-parsed on
// every keystroke; the board below always reflects the current text.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fenboard/internal/render"
	"fenboard/pkg/fen"
)

type Model struct {
	input    textinput.Model
	renderer *render.Renderer

	rec      fen.Record
	parseErr error

	width int
}

func New(renderer *render.Renderer) Model {
	var input = textinput.New()
	input.Placeholder = fen.StartingFEN
	input.SetValue(fen.StartingFEN)
	input.Focus()

	var m = Model{input: input, renderer: renderer}
	m.reparse()
	return m
}

// Run starts the viewer and blocks until the user quits.
func Run(renderer *render.Renderer) error {
	var _, err = tea.NewProgram(New(renderer), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) reparse() {
	m.rec, m.parseErr = fen.Parse(m.input.Value())
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.parseErr == nil {
				m.input.SetValue(m.rec.String())
				m.reparse()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.reparse()
	return m, cmd
}

func (m Model) View() string {
	var body string
	if m.parseErr != nil {
		body = m.renderer.Error(m.parseErr)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderer.Board(m.rec),
			m.renderer.Summary(m.rec),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("fenboard"),
		inputBoxStyle.Render(m.input.View()),
		boardBoxStyle.Render(body),
		helpStyle.Render("enter: normalize • esc: quit"),
	)
}
