package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ghodss/yaml"
)

// Destination holds notification destination details
type Destination struct {
	Service    string `json:"service"`
	WebhookURL string `json:"-"`
}

// Response is what the destination answered. It is returned as is, whatever the status.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Header     http.Header `json:"-"`
	Body       []byte      `json:"-"`
}

//go:generate mockgen -destination=./mocks/mocks.go -package=mocks github.com/argoproj-labs/sentry-msteams/pkg/services NotificationService

// NotificationService defines notification service interface
type NotificationService interface {
	Send(ctx context.Context, card MessageCard, dest Destination) (*Response, error)
}

func NewService(serviceType string, optsData []byte) (NotificationService, error) {
	switch serviceType {
	case "teams":
		var opts TeamsOptions
		if err := yaml.Unmarshal(optsData, &opts); err != nil {
			return nil, err
		}
		return NewTeamsService(opts), nil
	default:
		return nil, fmt.Errorf("service type '%s' is not supported", serviceType)
	}
}
