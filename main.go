package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"transcriptdiff/config"
	"transcriptdiff/logger"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run executes the CLI with the given arguments and streams, closing any
// logger it opened before returning.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := &appContext{}
	defer app.close()

	cmd := newRootCommand(app)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// appContext carries state shared by subcommands
type appContext struct {
	configFlag   string
	logLevelFlag string

	cfg          *config.Config
	configPath   string
	configExists bool
	log          *logger.LimitedLogger
}

func (a *appContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	cfg, path, exists, err := config.Load(a.configFlag)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if a.logLevelFlag != "" {
		if !logger.ValidLogLevel(a.logLevelFlag) {
			return nil, fmt.Errorf("invalid --log-level %q", a.logLevelFlag)
		}
		cfg.LogLevel = a.logLevelFlag
	}

	if err := a.setupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return nil, err
	}
	if exists {
		logger.Debug("loaded config from %s", path)
	} else {
		logger.Debug("no config at %s, using defaults", path)
	}

	a.cfg = cfg
	a.configPath = path
	a.configExists = exists
	return cfg, nil
}

// setupLogger logs to the configured file, or to stderr when none is set.
// The logger is closed by appContext.close.
func (a *appContext) setupLogger(cfg *config.Config, stderr io.Writer) error {
	level := logger.ParseLogLevel(cfg.LogLevel)
	if cfg.LogFile == "" {
		a.log = logger.NewWriterLogger(stderr, level)
		return nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	a.log = logger.NewLimitedLogger(f, level)
	return nil
}

func (a *appContext) close() {
	if a.log != nil {
		a.log.Close()
		a.log = nil
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func newRootCommand(app *appContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "transcriptdiff",
		Short:         "Compare two revisions of a transcript line by line and word by word",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := app.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&app.logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newCompareCommand(app))
	rootCmd.AddCommand(newShowCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}
