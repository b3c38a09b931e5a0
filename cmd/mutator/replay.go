package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prxssh/mutator/internal/journal"
	"github.com/prxssh/mutator/internal/state"
)

var (
	replayFormat string
	printJSON    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay [journal]",
	Short: "Apply a recorded journal and print the final state",
	Long: `Decodes a journal of messages and applies them in order to the
configured initial state. The format follows the file extension (.json for
JSON, anything else for bencode) unless --format is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

// demoCmd walks the state through one message of every kind.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Apply one message of every kind and print the final state",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	replayCmd.Flags().StringVar(&replayFormat, "format", "", "journal format: bencode or json")
	replayCmd.Flags().BoolVar(&printJSON, "json", false, "print the final state as JSON")
	demoCmd.Flags().BoolVar(&printJSON, "json", false, "print the final state as JSON")
}

func runReplay(cmd *cobra.Command, args []string) error {
	msgs, err := readJournal(args[0])
	if err != nil {
		return err
	}

	s := cfg.Initial.State()
	apply(&s, msgs)

	return printState(cmd.OutOrStdout(), s)
}

func runDemo(cmd *cobra.Command, args []string) error {
	s := cfg.Initial.State()
	apply(&s, []state.Message{
		state.Resize{Width: 10, Height: 30},
		state.Move{Position: state.Position{X: 10, Y: 15}},
		state.Echo{Text: "Hello world!"},
		state.ChangeColor{R: 255, G: 0, B: 255},
		state.Quit{},
	})

	return printState(cmd.OutOrStdout(), s)
}

/////////////// Private ///////////////

func readJournal(path string) ([]state.Message, error) {
	if replayFormat == "" {
		return journal.ReadFile(path)
	}

	format, err := journal.ParseFormat(replayFormat)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return journal.Decode(f, format)
}

func apply(s *state.State, msgs []state.Message) {
	for i, msg := range msgs {
		s.Process(msg)
		logger.Debug("message applied",
			zap.Int("index", i),
			zap.Stringer("message", msg),
			zap.Stringer("state", s),
		)
	}
}

type stateView struct {
	Width    uint64    `json:"width"`
	Height   uint64    `json:"height"`
	Position [2]uint64 `json:"position"`
	Message  string    `json:"message"`
	Color    [3]uint8  `json:"color"`
	Quit     bool      `json:"quit"`
}

func printState(w io.Writer, s state.State) error {
	if !printJSON {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	b, err := json.MarshalIndent(stateView{
		Width:    s.Width,
		Height:   s.Height,
		Position: [2]uint64{s.Position.X, s.Position.Y},
		Message:  s.Message,
		Color:    [3]uint8{s.Color.R, s.Color.G, s.Color.B},
		Quit:     s.Quit,
	}, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
