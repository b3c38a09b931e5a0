package state

import "fmt"

// Process applies msg to s. Exactly the fields the variant addresses change.
func Process(s *State, msg Message) {
	switch msg := msg.(type) {
	case Resize:
		s.Resize(msg.Width, msg.Height)
	case Move:
		s.MoveTo(msg.Position)
	case Echo:
		s.Echo(msg.Text)
	case ChangeColor:
		s.ChangeColor(msg.R, msg.G, msg.B)
	case Quit:
		s.Stop()
	default:
		// Only reachable when a variant is added without a case above.
		panic(fmt.Sprintf("state: unhandled message %T", msg))
	}
}

// Process applies msg to the state.
func (s *State) Process(msg Message) {
	Process(s, msg)
}

// ProcessAll applies msgs in order.
func (s *State) ProcessAll(msgs ...Message) {
	for _, msg := range msgs {
		Process(s, msg)
	}
}
