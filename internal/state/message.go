package state

import "fmt"

// Message is one of the closed set of variants below. The unexported marker
// keeps other packages from adding variants that Process does not know about.
type Message interface {
	Kind() Kind
	String() string
	message()
}

// Kind names a message variant.
type Kind string

const (
	KindResize      Kind = "resize"
	KindMove        Kind = "move"
	KindEcho        Kind = "echo"
	KindChangeColor Kind = "change_color"
	KindQuit        Kind = "quit"
)

// Kinds returns every message kind.
func Kinds() []Kind {
	return []Kind{KindResize, KindMove, KindEcho, KindChangeColor, KindQuit}
}

type Resize struct {
	Width, Height uint64
}

type Move struct {
	Position Position
}

type Echo struct {
	Text string
}

type ChangeColor struct {
	R, G, B uint8
}

type Quit struct{}

func (Resize) Kind() Kind      { return KindResize }
func (Move) Kind() Kind        { return KindMove }
func (Echo) Kind() Kind        { return KindEcho }
func (ChangeColor) Kind() Kind { return KindChangeColor }
func (Quit) Kind() Kind        { return KindQuit }

func (m Resize) String() string {
	return fmt.Sprintf("resize %dx%d", m.Width, m.Height)
}

func (m Move) String() string {
	return "move " + m.Position.String()
}

func (m Echo) String() string {
	return fmt.Sprintf("echo %q", m.Text)
}

func (m ChangeColor) String() string {
	return "change_color " + Color{R: m.R, G: m.G, B: m.B}.String()
}

func (Quit) String() string {
	return "quit"
}

/////////////// Private ///////////////

func (Resize) message()      {}
func (Move) message()        {}
func (Echo) message()        {}
func (ChangeColor) message() {}
func (Quit) message()        {}
