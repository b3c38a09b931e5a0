package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptViewModel struct {
	theme         theme
	input         textinput.Model
	width, height int
}

func newPromptView(theme theme) *promptViewModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message"
	ti.Prompt = "echo> "
	ti.CharLimit = 256
	ti.Width = 40

	return &promptViewModel{theme: theme, input: ti}
}

// Open fills the input with current and focuses it.
func (m *promptViewModel) Open(current string) tea.Cmd {
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *promptViewModel) SetSize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(min(width-10, 60), 10)
}

func (m *promptViewModel) Update(msg tea.Msg) (screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			text := m.input.Value()
			m.input.Blur()
			return m, func() tea.Msg { return echoSubmittedMsg{text: text} }
		case tea.KeyEsc, tea.KeyCtrlC:
			m.input.Blur()
			return m, func() tea.Msg { return promptClosedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptViewModel) View() string {
	help := lipgloss.NewStyle().Foreground(m.theme.Gray).Render("enter to echo, esc to cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Orange).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.input.View(), help))
}
