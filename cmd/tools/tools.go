package tools

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"

	"github.com/argoproj-labs/sentry-msteams/shared/k8s"
)

func withDebugLogs() func() {
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	return func() {
		log.SetLevel(level)
	}
}

func addOutputFlags(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "wide", "Output format. One of:json|yaml|wide")
}

func NewToolsCommand() *cobra.Command {
	var (
		cmdContext = commandContext{
			stdout: os.Stdout,
			stderr: os.Stderr,
		}
	)
	var command = cobra.Command{
		Use:   "tools",
		Short: "Set of CLI commands that helps to configure and debug notifications",
		Run: func(c *cobra.Command, args []string) {
			c.HelpFunc()(c, args)
		},
	}

	command.AddCommand(newNotifyCommand(&cmdContext))
	command.AddCommand(newCardCommand(&cmdContext))
	command.AddCommand(newConfigFieldsCommand(&cmdContext))

	command.PersistentFlags().StringVar(&cmdContext.configMapPath,
		"config-map", "", "sentry-msteams-cm.yaml file path")
	command.PersistentFlags().StringVar(&cmdContext.secretPath,
		"secret", "", "sentry-msteams-secret.yaml file path. Use empty secret if provided value is ':empty'")
	clientConfig := k8s.AddK8SFlagsToCmd(&command)
	cmdContext.getK8SClient = func() (kubernetes.Interface, string, error) {
		return k8s.NewClient(clientConfig)
	}
	return &command
}
