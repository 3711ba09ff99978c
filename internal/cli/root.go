// Package cli implements the exeq command line tool on top of the SDK.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/exeq-dev/exeq-go"
	"github.com/exeq-dev/exeq-go/internal/config"
)

var errorLabel = color.New(color.FgRed)

// app holds the state shared by every command of one invocation.
type app struct {
	configFile string
	envFile    string
	apiKey     string
	baseURL    string
	output     string
	verbose    bool

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the exeq command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "exeq [command] [flags]",
		Short: "exeq CLI - manage remote browser sessions",
		Long: `exeq manages remote browser sessions and profiles.

The API key is read from --api-key, EXEQ_API_KEY, a .env file or the
config file (~/.config/exeq/config.yaml), in that order of priority.

Examples:
  # Start a recorded session
  exeq sessions create --duration 30m --recording

  # List sessions as JSON
  exeq sessions list -o json

  # Stop a session
  exeq sessions stop sess_abc123`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Path to configuration file to override default")
	flags.StringVar(&a.envFile, "env-file", "", "Path to .env file (default ./.env)")
	flags.StringVar(&a.apiKey, "api-key", "", "API key")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL")
	flags.StringVarP(&a.output, "output", "o", "", "Output format: table, json or yaml")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log API calls to stderr")

	root.AddCommand(
		a.newSessionsCmd(),
		a.newProfilesCmd(),
		a.newVersionCmd(),
	)
	return root
}

// Execute runs the CLI and reports any error on stderr.
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		reportError(cmd.ErrOrStderr(), err)
	}
	return err
}

func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, a.envFile)
	if err != nil {
		return err
	}
	cfg.Override(a.apiKey, a.baseURL)
	if a.output != "" {
		cfg.Output = a.output
	}
	if cfg.Output == "" {
		cfg.Output = formatTable
	}
	if !validFormat(cfg.Output) {
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", cfg.Output)
	}
	a.cfg = cfg

	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().
		Logger()
	return nil
}

// client builds an SDK client from the resolved configuration.
func (a *app) client() (*exeq.Client, error) {
	return exeq.NewClient(a.cfg.APIKey, a.cfg.ClientOptions(a.logger)...)
}

func (a *app) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), format: a.cfg.Output}
}

func reportError(w io.Writer, err error) {
	var apiErr *exeq.Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		errorLabel.Fprintf(w, "Error (%d %s): %s\n", apiErr.Status, apiErr.Code, apiErr.Message)
		return
	}
	errorLabel.Fprintf(w, "Error: %v\n", err)
}

// exitCode maps an error to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, exeq.ErrConfiguration):
		return 2
	default:
		return 1
	}
}

// Main runs the CLI and exits the process.
func Main() {
	os.Exit(exitCode(Execute()))
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
