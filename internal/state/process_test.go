package state

import (
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessScenario(t *testing.T) {
	s := State{
		Width:    0,
		Height:   0,
		Position: Position{X: 0, Y: 0},
		Message:  "hello world",
		Color:    Color{R: 0, G: 0, B: 0},
		Quit:     false,
	}

	s.Process(Resize{Width: 10, Height: 30})
	s.Process(Move{Position: Position{X: 10, Y: 15}})
	s.Process(Echo{Text: "Hello world!"})
	s.Process(ChangeColor{R: 255, G: 0, B: 255})
	s.Process(Quit{})

	want := State{
		Width:    10,
		Height:   30,
		Position: Position{X: 10, Y: 15},
		Message:  "Hello world!",
		Color:    Color{R: 255, G: 0, B: 255},
		Quit:     true,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("final state mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessTouchesOnlyAddressedFields(t *testing.T) {
	base := State{
		Width:    3,
		Height:   4,
		Position: Position{X: 1, Y: 2},
		Message:  "before",
		Color:    Color{R: 9, G: 8, B: 7},
	}

	testCases := []struct {
		name   string
		msg    Message
		mutate func(s *State)
	}{
		{
			name:   "resize",
			msg:    Resize{Width: 80, Height: 24},
			mutate: func(s *State) { s.Width, s.Height = 80, 24 },
		},
		{
			name:   "move",
			msg:    Move{Position: Position{X: 7, Y: 0}},
			mutate: func(s *State) { s.Position = Position{X: 7, Y: 0} },
		},
		{
			name:   "echo",
			msg:    Echo{Text: "after"},
			mutate: func(s *State) { s.Message = "after" },
		},
		{
			name:   "echo empty",
			msg:    Echo{Text: ""},
			mutate: func(s *State) { s.Message = "" },
		},
		{
			name:   "change color",
			msg:    ChangeColor{R: 1, G: 2, B: 3},
			mutate: func(s *State) { s.Color = Color{R: 1, G: 2, B: 3} },
		},
		{
			name:   "quit",
			msg:    Quit{},
			mutate: func(s *State) { s.Quit = true },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := base
			Process(&got, tc.msg)

			want := base
			tc.mutate(&want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessHandlesEveryKind(t *testing.T) {
	samples := map[Kind]Message{
		KindResize:      Resize{Width: 1, Height: 1},
		KindMove:        Move{Position: Position{X: 1, Y: 1}},
		KindEcho:        Echo{Text: "x"},
		KindChangeColor: ChangeColor{R: 1, G: 1, B: 1},
		KindQuit:        Quit{},
	}

	for _, kind := range Kinds() {
		msg, ok := samples[kind]
		require.Truef(t, ok, "no sample message for kind %q", kind)
		assert.Equal(t, kind, msg.Kind())

		var s State
		assert.NotPanics(t, func() { s.Process(msg) }, "kind %q", kind)
		assert.NotEqual(t, State{}, s, "kind %q left the state untouched", kind)
	}
	assert.Len(t, samples, len(Kinds()))
}

func TestProcessNilMessagePanics(t *testing.T) {
	var s State
	assert.PanicsWithValue(t, "state: unhandled message <nil>", func() {
		s.Process(nil)
	})
}

func TestQuitIsOneDirectional(t *testing.T) {
	var s State
	s.Process(Quit{})
	s.ProcessAll(
		Resize{Width: 1, Height: 2},
		Move{Position: Position{X: 3, Y: 4}},
		Echo{Text: "still here"},
		ChangeColor{R: 5, G: 6, B: 7},
	)
	assert.True(t, s.Quit)

	s.Process(Quit{})
	assert.True(t, s.Quit)
}

func TestLastWriteWins(t *testing.T) {
	var s State
	s.ProcessAll(
		Echo{Text: "first"},
		Resize{Width: 1, Height: 1},
		Echo{Text: "second"},
		Resize{Width: 2, Height: 3},
	)
	assert.Equal(t, "second", s.Message)
	assert.Equal(t, uint64(2), s.Width)
	assert.Equal(t, uint64(3), s.Height)
}

func TestResizeProperty(t *testing.T) {
	f := func(before State, w, h uint64) bool {
		got := before
		got.Process(Resize{Width: w, Height: h})

		want := before
		want.Width, want.Height = w, h
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMoveProperty(t *testing.T) {
	f := func(before State, p Position) bool {
		got := before
		got.Process(Move{Position: p})

		want := before
		want.Position = p
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestEchoProperty(t *testing.T) {
	f := func(before State, text string) bool {
		got := before
		got.Process(Echo{Text: text})

		want := before
		want.Message = text
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestChangeColorProperty(t *testing.T) {
	f := func(before State, r, g, b uint8) bool {
		got := before
		got.Process(ChangeColor{R: r, G: g, B: b})

		want := before
		want.Color = Color{R: r, G: g, B: b}
		return got == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestDifferentFieldsCommute(t *testing.T) {
	f := func(before State, w, h uint64, r, g, b uint8) bool {
		resize := Resize{Width: w, Height: h}
		color := ChangeColor{R: r, G: g, B: b}

		a := before
		a.ProcessAll(resize, color)

		c := before
		c.ProcessAll(color, resize)
		return a == c
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMessageString(t *testing.T) {
	testCases := []struct {
		msg      Message
		expected string
	}{
		{Resize{Width: 10, Height: 30}, "resize 10x30"},
		{Move{Position: Position{X: 10, Y: 15}}, "move (10, 15)"},
		{Echo{Text: "Hello world!"}, `echo "Hello world!"`},
		{ChangeColor{R: 255, G: 0, B: 255}, "change_color (255, 0, 255)"},
		{Quit{}, "quit"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.msg.String())
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ff00ff", Color{R: 255, G: 0, B: 255}.Hex())
	assert.Equal(t, "#000000", Color{}.Hex())
}
