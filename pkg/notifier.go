package pkg

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
	"github.com/argoproj-labs/sentry-msteams/pkg/services"
)

//go:generate mockgen -destination=./mocks/mocks.go -package=mocks github.com/argoproj-labs/sentry-msteams/pkg Notifier

type Notifier interface {
	Notify(ctx context.Context, eventCtx sentry.EventContext, serviceType string) (Result, error)
	IsConfigured(project sentry.Project) bool
	AddService(name string, service services.NotificationService)
	GetServices() map[string]services.NotificationService
}

const DefaultService = "teams"

type Status string

const (
	StatusSent          Status = "sent"
	StatusNotConfigured Status = "not_configured"
)

// Result tells whether a notification was posted. Response is nil unless the service
// produced one.
type Result struct {
	Status   Status
	Response *services.Response
}

type notifier struct {
	services map[string]services.NotificationService
	settings func(slug string) ProjectSettings
	labeler  sentry.TagLabeler
}

func (n *notifier) AddService(name string, service services.NotificationService) {
	n.services[name] = service
}

func (n *notifier) GetServices() map[string]services.NotificationService {
	return n.services
}

func (n *notifier) IsConfigured(project sentry.Project) bool {
	return n.settings(project.Slug).WebhookURL != ""
}

func (n *notifier) Notify(ctx context.Context, eventCtx sentry.EventContext, serviceType string) (Result, error) {
	settings := n.settings(eventCtx.Project.Slug)
	if settings.WebhookURL == "" {
		log.WithField("project", eventCtx.Project.Slug).Debug("Webhook URL is not configured, skipping notification")
		return Result{Status: StatusNotConfigured}, nil
	}
	service, ok := n.services[serviceType]
	if !ok {
		return Result{}, fmt.Errorf("service '%s' is not supported", serviceType)
	}

	card := BuildCard(eventCtx, settings, n.labeler)
	resp, err := service.Send(ctx, card, services.Destination{Service: serviceType, WebhookURL: settings.WebhookURL})
	if err != nil {
		return Result{}, err
	}
	return Result{Status: StatusSent, Response: resp}, nil
}

func NewNotifier(cfg Config) (*notifier, error) {
	n := notifier{
		services: map[string]services.NotificationService{},
		settings: cfg.GetProjectSettings,
		labeler:  sentry.NewTagLabeler(cfg.TagLabels),
	}
	for k, v := range cfg.Services {
		svc, err := v()
		if err != nil {
			return nil, err
		}
		n.services[k] = svc
	}
	if _, ok := n.services[DefaultService]; !ok {
		n.services[DefaultService] = services.NewTeamsService(services.TeamsOptions{})
	}

	return &n, nil
}
