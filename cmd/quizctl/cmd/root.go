// Package cmd contains the quizctl commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/black301/quiz-system-client/api"
	"github.com/black301/quiz-system-client/auth"
	"github.com/black301/quiz-system-client/instructor"
	"github.com/black301/quiz-system-client/internal/config"
	"github.com/black301/quiz-system-client/session"
)

var (
	verbose bool

	cfg               config.Config
	logger            zerolog.Logger
	store             session.Store
	authService       *auth.Service
	instructorService *instructor.Service
)

// rootCmd is the base command; subcommands register themselves in init.
var rootCmd = &cobra.Command{
	Use:   "quizctl",
	Short: "Instructor console for the quiz platform",
	Long: `quizctl drives the quiz platform's instructor API from the terminal.

Sign in once with quizctl login; the session is stored under the user
config directory and every later command reuses it, refreshing the access
token transparently when it expires.

Example usage:
  quizctl login --email jane@example.com --password secret --remember
  quizctl courses              # List the instructor's courses
  quizctl stats                # Dashboard totals
  quizctl stats --quiz 7       # Per-question statistics for one quiz`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initServices()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		displayAppname(cfg.GetAppName())
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// initServices wires configuration, logging, the session store and the API
// services shared by every subcommand.
func initServices() error {
	_ = godotenv.Load()
	cfg = config.New()

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(logLevel())

	var err error
	store, err = openSessionStore()
	if err != nil {
		return err
	}

	client, err := api.New(cfg, store, api.WithLogger(logger))
	if err != nil {
		return err
	}
	authService, err = auth.NewService(cfg, store, auth.WithLogger(logger))
	if err != nil {
		return err
	}
	instructorService, err = instructor.NewService(client)
	if err != nil {
		return err
	}
	return nil
}

// openSessionStore wires the dual store: an in-process expiring primary and
// a file-backed secondary under the user config dir, so a signed-in session
// survives between invocations.
func openSessionStore() (session.Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	secondary, err := session.NewFileKV(filepath.Join(configDir, "quizctl", "session.json"))
	if err != nil {
		return nil, err
	}
	return session.NewDualStore(session.NewMemoryExpiring(), secondary), nil
}

func logLevel() zerolog.Level {
	if verbose || os.Getenv("QUIZCTL_DEBUG") != "" {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
}
