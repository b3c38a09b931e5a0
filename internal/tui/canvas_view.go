package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prxssh/mutator/internal/state"
)

const historySize = 8

type canvasViewModel struct {
	theme         theme
	state         *state.State
	history       *[]state.Message
	width, height int
}

func newCanvasView(theme theme, s *state.State, history *[]state.Message) screen {
	return &canvasViewModel{theme: theme, state: s, history: history}
}

func (m *canvasViewModel) SetSize(width, height int) {
	m.width, m.height = width, height
}

func (m *canvasViewModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	return m, nil
}

func (m *canvasViewModel) View() string {
	if m.width == 0 {
		return ""
	}

	logoStyle := lipgloss.NewStyle().Foreground(m.theme.Blue)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Gray).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(m.theme.Fg)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(m.state.Color.Hex())).
		Render("    ")

	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Aqua).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			row("size", fmt.Sprintf("%dx%d", m.state.Width, m.state.Height)),
			row("position", m.state.Position.String()),
			row("message", m.state.Message),
			row("color", swatch+" "+m.state.Color.Hex()),
			row("quit", fmt.Sprintf("%t", m.state.Quit)),
		))

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logoStyle.Render(logo),
		panel,
		m.historyView(),
	)
}

/////////////// Private ///////////////

func (m *canvasViewModel) historyView() string {
	history := *m.history
	if len(history) == 0 {
		return lipgloss.NewStyle().Foreground(m.theme.Gray).Render("No messages yet.")
	}

	start := max(len(history)-historySize, 0)
	lines := make([]string, 0, historySize)
	for i := len(history) - 1; i >= start; i-- {
		lines = append(lines, fmt.Sprintf("%3d  %s", i+1, history[i]))
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.Yellow).
		Render(strings.Join(lines, "\n"))
}
