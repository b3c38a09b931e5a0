package tui

import tea "github.com/charmbracelet/bubbletea"

// Screen is a contract that all our views must fulfill.
type screen interface {
	SetSize(width, height int)
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

type viewState int

const (
	canvasState viewState = iota
	promptState
)

// echoSubmittedMsg is sent by the prompt when the user confirms a text.
type echoSubmittedMsg struct {
	text string
}

// promptClosedMsg is sent by the prompt when the user cancels it.
type promptClosedMsg struct{}
