package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/prxssh/mutator/internal/state"
)

const logo = `
 __  __ _   _ _____ _  _____ ___  ___
|  \/  | | | |_   _/_\|_   _/ _ \| _ \
| |\/| | |_| | | |/ _ \ | || (_) |   /
|_|  |_|\___/  |_/_/ \_\|_| \___/|_|_\
`

// colorStep is how much the red, green and blue keys add to a component.
const colorStep = 16

// Options configures an interactive session.
type Options struct {
	Initial state.State
	Theme   string
	Logger  *zap.Logger
}

// Result is what a finished session leaves behind.
type Result struct {
	State    state.State
	Messages []state.Message
}

// Start runs the interactive program until the state is quit.
func Start(opts Options) (Result, error) {
	m := newModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	fm := final.(model)
	return Result{State: *fm.state, Messages: *fm.history}, nil
}

/////////////// Private ///////////////

type model struct {
	state         *state.State
	history       *[]state.Message
	prompt        *promptViewModel
	screens       map[viewState]screen
	activeState   viewState
	theme         theme
	keys          keyMap
	help          help.Model
	palette       int
	log           *zap.Logger
	width, height int
}

func newModel(opts Options) model {
	theme := newTheme(opts.Theme)
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := opts.Initial
	history := make([]state.Message, 0)
	prompt := newPromptView(theme)

	screens := map[viewState]screen{
		canvasState: newCanvasView(theme, &s, &history),
		promptState: prompt,
	}

	return model{
		state:       &s,
		history:     &history,
		prompt:      prompt,
		theme:       theme,
		keys:        newKeyMap(),
		help:        help.New(),
		palette:     -1,
		log:         log,
		screens:     screens,
		activeState: canvasState,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for _, s := range m.screens {
			s.SetSize(m.width, m.height)
		}
		m.apply(state.Resize{Width: uint64(max(msg.Width, 0)), Height: uint64(max(msg.Height, 0))})
		return m, nil

	case echoSubmittedMsg:
		m.apply(state.Echo{Text: msg.text})
		m.activeState = canvasState
		return m, nil

	case promptClosedMsg:
		m.activeState = canvasState
		return m, nil

	case tea.KeyMsg:
		if m.activeState == canvasState {
			if cmd, handled := m.handleKey(msg); handled {
				return m, cmd
			}
		}
	}

	currScreen, cmd := m.screens[m.activeState].Update(msg)
	m.screens[m.activeState] = currScreen

	return m, cmd
}

func (m model) View() string {
	screenContent := lipgloss.JoinVertical(
		lipgloss.Center,
		m.screens[m.activeState].View(),
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screenContent)
}

// apply processes msg against the session state and records it.
func (m *model) apply(msg state.Message) {
	m.state.Process(msg)
	*m.history = append(*m.history, msg)
	m.log.Debug("message applied", zap.Stringer("message", msg), zap.Stringer("state", m.state))
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	pos := m.state.Position
	color := m.state.Color

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.apply(state.Quit{})
		return tea.Quit, true

	case key.Matches(msg, m.keys.Up):
		if pos.Y > 0 {
			pos.Y--
		}
		m.apply(state.Move{Position: pos})

	case key.Matches(msg, m.keys.Down):
		if pos.Y < limit(m.state.Height) {
			pos.Y++
		}
		m.apply(state.Move{Position: pos})

	case key.Matches(msg, m.keys.Left):
		if pos.X > 0 {
			pos.X--
		}
		m.apply(state.Move{Position: pos})

	case key.Matches(msg, m.keys.Right):
		if pos.X < limit(m.state.Width) {
			pos.X++
		}
		m.apply(state.Move{Position: pos})

	case key.Matches(msg, m.keys.Echo):
		m.activeState = promptState
		return m.prompt.Open(m.state.Message), true

	case key.Matches(msg, m.keys.Cycle):
		m.palette = (m.palette + 1) % len(m.theme.Palette)
		next := m.theme.Palette[m.palette]
		m.apply(state.ChangeColor{R: next.R, G: next.G, B: next.B})

	case key.Matches(msg, m.keys.Red):
		m.apply(state.ChangeColor{R: color.R + colorStep, G: color.G, B: color.B})

	case key.Matches(msg, m.keys.Green):
		m.apply(state.ChangeColor{R: color.R, G: color.G + colorStep, B: color.B})

	case key.Matches(msg, m.keys.Blue):
		m.apply(state.ChangeColor{R: color.R, G: color.G, B: color.B + colorStep})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		return nil, false
	}

	return nil, true
}

// limit is the last coordinate inside size. An unknown (zero) size only
// bounds moves by the coordinate's range.
func limit(size uint64) uint64 {
	if size == 0 {
		return math.MaxUint64
	}
	return size - 1
}
