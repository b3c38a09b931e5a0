package state

import "fmt"

// Position is a cell on the canvas.
type Position struct {
	X, Y uint64
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Color is an RGB color composed of red, green and blue.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// State is the application state mutated by messages. Each field holds the
// last value assigned to it. A State must not be shared between goroutines
// without external synchronization.
type State struct {
	Width    uint64
	Height   uint64
	Position Position
	Message  string
	Color    Color
	Quit     bool
}

// Resize sets both dimensions.
func (s *State) Resize(width, height uint64) {
	s.Width = width
	s.Height = height
}

// MoveTo replaces both coordinates of the position.
func (s *State) MoveTo(p Position) {
	s.Position = p
}

// Echo replaces the message text.
func (s *State) Echo(text string) {
	s.Message = text
}

// ChangeColor sets all three color components.
func (s *State) ChangeColor(r, g, b uint8) {
	s.Color = Color{R: r, G: g, B: b}
}

// Stop marks the state as quit. There is no way back.
func (s *State) Stop() {
	s.Quit = true
}

func (s State) String() string {
	return fmt.Sprintf(
		"size=%dx%d position=%s message=%q color=%s quit=%t",
		s.Width, s.Height, s.Position, s.Message, s.Color, s.Quit,
	)
}
