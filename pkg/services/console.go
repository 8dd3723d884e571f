package services

import (
	"context"
	"io"

	"github.com/argoproj-labs/sentry-msteams/pkg/util/misc"
)

// consoleService prints the message instead of posting it. It never produces a response.
type consoleService struct {
	stdout io.Writer
	output string
}

func (c *consoleService) Send(_ context.Context, card MessageCard, _ Destination) (*Response, error) {
	return nil, misc.PrintFormatted(NewTeamsMessage(card), c.output, c.stdout)
}

func NewConsoleService(stdout io.Writer) *consoleService {
	return &consoleService{stdout: stdout, output: "json"}
}
