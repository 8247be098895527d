// Package cli implements the themegen command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solutivemind/themegen/internal/config"
	"github.com/solutivemind/themegen/internal/logging"
)

var (
	configFile string
	projectDir string
	logLevel   string
	logFormat  string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "themegen",
	Short: "Generate stylesheet color tokens from palettes",
	Long: `themegen turns a named color palette into the CSS custom properties
declared in the site's global stylesheet. The output is printed for you to
paste; no files are modified.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.ErrOrStderr())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: themegen.yaml in the project dir)")
	flags.StringVarP(&projectDir, "project", "C", "", "project directory (default: current directory)")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isReported(err) {
		newStyles(os.Stderr).printError(os.Stderr, err)
	}
	return err
}

// GetConfig returns the configuration loaded for the current command.
func GetConfig() *config.Config {
	return appConfig
}

func initConfig(stderr io.Writer) error {
	dir, err := resolveProjectDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir, configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Init(cfg.LoggingOptions(), stderr); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

func resolveProjectDir() (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return dir, nil
}

// reportedError marks an error whose diagnostic was already written.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func isReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}
