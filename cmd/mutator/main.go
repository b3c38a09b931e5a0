package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prxssh/mutator/internal/config"
	"github.com/prxssh/mutator/internal/journal"
	"github.com/prxssh/mutator/internal/logging"
	"github.com/prxssh/mutator/internal/tui"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Interactive flags
	recordPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mutator",
	Short: "Apply messages to an application state",
	Long: `mutator keeps a small application state (size, position, message,
color and a quit flag) and changes it one message at a time.

Run without arguments to drive the state interactively. Messages applied in a
session can be recorded to a journal and replayed later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		logger, err = logging.New(logConfigFor(cmd), verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mutator.yaml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every applied message")
	rootCmd.Flags().StringVar(&recordPath, "record", "", "write the session's messages to this journal on exit")

	rootCmd.AddCommand(replayCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running mutator:", err)
		os.Exit(1)
	}
}

// logConfigFor sends the interactive UI's logs to a file unless one is
// configured; the other commands keep stderr.
func logConfigFor(cmd *cobra.Command) config.LogConfig {
	lc := cfg.Log
	if !cmd.HasParent() && lc.File == "" {
		lc.File = config.InteractiveLogFile
	}
	return lc
}

func runInteractive(cmd *cobra.Command, args []string) error {
	res, err := tui.Start(tui.Options{
		Initial: cfg.Initial.State(),
		Theme:   cfg.Theme,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	logger.Info("session finished",
		zap.Stringer("state", res.State),
		zap.Int("messages", len(res.Messages)),
	)

	if recordPath == "" {
		return nil
	}
	if err := journal.WriteFile(recordPath, res.Messages); err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	logger.Info("session recorded", zap.String("path", recordPath))

	return nil
}
