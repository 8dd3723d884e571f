package tools

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
	"github.com/argoproj-labs/sentry-msteams/pkg/services"
	"github.com/argoproj-labs/sentry-msteams/pkg/util/misc"
)

func newCardCommand(cmdContext *commandContext) *cobra.Command {
	var (
		output string
	)
	var command = cobra.Command{
		Use: "card EVENT_FILE",
		Example: `
# Print card facts of the event
sentry-msteams tools card ./event.json
# Print JSON message that would be posted to the webhook
sentry-msteams tools card ./event.json -o json
`,
		Short: "Renders message card for the event stored in the specified file",
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("expected one argument, got %d", len(args))
			}
			config, err := cmdContext.getConfig()
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to parse config: %v\n", err)
				return nil
			}
			eventCtx, err := cmdContext.loadEvent(args[0])
			if err != nil {
				_, _ = fmt.Fprintf(cmdContext.stderr, "failed to load event: %v\n", err)
				return nil
			}

			card := pkg.BuildCard(*eventCtx, config.GetProjectSettings(eventCtx.Project.Slug), sentry.NewTagLabeler(config.TagLabels))
			switch output {
			case "", "wide":
				_, _ = fmt.Fprintf(cmdContext.stdout, "%s\n\n", card.Title)
				var rows [][]string
				for i, section := range card.Sections {
					for _, fact := range section.Facts {
						rows = append(rows, []string{strconv.Itoa(i + 1), fact.Name, fact.Value})
					}
				}
				misc.PrintTable(cmdContext.stdout, []string{"SECTION", "NAME", "VALUE"}, rows)
			default:
				return misc.PrintFormatted(services.NewTeamsMessage(card), output, cmdContext.stdout)
			}
			return nil
		},
	}
	addOutputFlags(&command, &output)
	return &command
}

func newConfigFieldsCommand(cmdContext *commandContext) *cobra.Command {
	var (
		output string
	)
	var command = cobra.Command{
		Use:   "config-fields",
		Short: "Prints per-project configuration fields",
		RunE: func(c *cobra.Command, args []string) error {
			fields := pkg.ConfigFields()
			switch output {
			case "", "wide":
				var rows [][]string
				for _, f := range fields {
					rows = append(rows, []string{f.Name, f.Label, f.Type, strconv.FormatBool(f.Required), f.Help})
				}
				misc.PrintTable(cmdContext.stdout, []string{"NAME", "LABEL", "TYPE", "REQUIRED", "HELP"}, rows)
			default:
				return misc.PrintFormatted(fields, output, cmdContext.stdout)
			}
			return nil
		},
	}
	addOutputFlags(&command, &output)
	return &command
}
