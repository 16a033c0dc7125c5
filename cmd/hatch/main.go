package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SimonDaKappa/go-hatch"
)

type rootOpts struct {
	configFile string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	logger := logrus.New()

	rootCmd := &cobra.Command{
		Use:           "hatch",
		Short:         "Parse token streams with the declaration grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfig(cmd, opts.configFile); err != nil {
				return err
			}
			return configureLogger(logger, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ./hatch.yaml if present)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(newParseCmd(logger))
	rootCmd.AddCommand(newRulesCmd(logger))

	return rootCmd
}

func configureLogger(logger *logrus.Logger, opts *rootOpts) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stderr)

	switch opts.logFormat {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", opts.logFormat)
	}

	hatch.SetDefaultLogger(logger)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
