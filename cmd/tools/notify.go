package tools

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	"github.com/argoproj-labs/sentry-msteams/pkg/services"
)

const consoleService = "console"

func newNotifyCommand(cmdContext *commandContext) *cobra.Command {
	var (
		serviceType string
	)
	var command = cobra.Command{
		Use: "notify EVENT_FILE",
		Example: `
# Send the event to the project webhook using in-cluster config map and secret
sentry-msteams tools notify ./event.json

# Print the message instead of sending it
sentry-msteams tools notify ./event.json --service console --config-map ./cm.yaml --secret :empty
`,
		Short: "Sends notification for the event stored in the specified file",
		RunE: func(c *cobra.Command, args []string) error {
			cancel := withDebugLogs()
			defer cancel()
			if len(args) < 1 {
				return fmt.Errorf("expected one argument, got %d", len(args))
			}

			config, err := cmdContext.getConfig()
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to parse config: %v\n", err)
				return nil
			}
			notifier, err := pkg.NewNotifier(*config)
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to create notifier: %v\n", err)
				return nil
			}
			notifier.AddService(consoleService, services.NewConsoleService(cmdContext.stdout))

			eventCtx, err := cmdContext.loadEvent(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to load event: %v\n", err)
				return nil
			}

			res, err := notifier.Notify(context.Background(), *eventCtx, serviceType)
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to notify: %v\n", err)
				return nil
			}
			switch {
			case res.Status == pkg.StatusNotConfigured:
				_, _ = fmt.Fprintf(cmdContext.stdout, "project '%s' is not configured\n", eventCtx.Project.Slug)
			case res.Response != nil:
				_, _ = fmt.Fprintf(cmdContext.stdout, "sent, destination responded with %d: %s\n",
					res.Response.StatusCode, string(res.Response.Body))
			}
			return nil
		},
	}
	command.Flags().StringVar(&serviceType, "service", pkg.DefaultService, "Notification service. One of: teams|console")

	return &command
}
