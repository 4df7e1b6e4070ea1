// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"serde-cli/internal/app"
	"serde-cli/internal/observability/logging"
)

var (
	// build info (inject via -ldflags)
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	// global flags
	cfgFile   string
	output    string
	logFormat string
	verbose   bool
	quiet     bool
)

// runIDEnv lets a caller correlate logs of several runs.
const runIDEnv = "SERDE_RUN_ID"

// NewRootCmd builds the root command for serde.
//
// Behavior:
// - -f/--config-file loads that file (.json, .yaml, .toml); any failure is fatal
// - without it: <user config dir>/serde/config.yaml, else the builtin config
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serde",
		Short: "serde test",
		Long: "serde resolves a config record from an explicit file, the per-user " +
			"config.yaml or a builtin default, prints it, then prints a sample record as JSON.",
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// global flags
	cmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config-file",
		"f",
		"",
		"path to a .json, .yaml or .toml config file",
	)
	cmd.PersistentFlags().StringVarP(
		&output,
		"output",
		"o",
		string(app.OutputDebug),
		"record output: debug, json, yaml or toml",
	)
	cmd.PersistentFlags().StringVar(
		&logFormat,
		"log-format",
		string(logging.ModeFromEnv()),
		"log format: text or json (env "+logging.EnvLogFormat+")",
	)
	cmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"enable verbose logging",
	)
	cmd.PersistentFlags().BoolVar(
		&quiet,
		"quiet",
		false,
		"suppress non-error logs",
	)

	// version wiring (supports `serde --version`)
	cmd.Version = Version
	cmd.SetVersionTemplate(versionTemplate())

	cmd.AddCommand(
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// Execute is called by cmd/serde/main.go
func Execute() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	root := NewRootCmd()
	root.SetContext(ctx)

	if err := root.Execute(); err != nil {
		// Cobra output is silenced; print clean error
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

// setupLogging installs the logger and a run id in the command context.
func setupLogging(cmd *cobra.Command, args []string) error {
	mode, err := logging.ParseMode(logFormat)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Mode:   mode,
		Level:  logging.LevelFor(verbose, quiet, logging.LevelFromEnv()),
		Writer: cmd.ErrOrStderr(),
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.StartRun(ctx, logger, os.Getenv(runIDEnv)))
	return nil
}

func newApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Flags().Changed("config-file") && cfgFile == "" {
		return nil, errors.New("--config-file: path must not be empty")
	}

	out, err := app.ParseOutput(output)
	if err != nil {
		return nil, err
	}

	return app.New(app.Options{
		ConfigFile: cfgFile,
		Dir:        userConfigDir,
		Output:     out,
	}), nil
}
