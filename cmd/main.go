package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/argoproj-labs/sentry-msteams/cmd/tools"
	"github.com/argoproj-labs/sentry-msteams/pkg"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)
	var command = cobra.Command{
		Use:     "sentry-msteams",
		Short:   pkg.Description,
		Version: pkg.Version,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return configureLogging(logLevel, logFormat)
		},
		Run: func(c *cobra.Command, args []string) {
			c.HelpFunc()(c, args)
		},
	}
	command.AddCommand(newServeCommand())
	command.AddCommand(tools.NewToolsCommand())
	command.PersistentFlags().StringVar(&logLevel, "loglevel", "info", "Set the logging level. One of: debug|info|warn|error")
	command.PersistentFlags().StringVar(&logFormat, "logformat", "text", "Set the logging format. One of: text|json")
	return &command
}

func configureLogging(logLevel string, logFormat string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	switch strings.ToLower(logFormat) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text":
		if os.Getenv("FORCE_LOG_COLORS") == "1" {
			log.SetFormatter(&log.TextFormatter{ForceColors: true})
		}
	default:
		return fmt.Errorf("Unknown log format '%s'", logFormat)
	}
	return nil
}
