package testing

import (
	"k8s.io/utils/pointer"

	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
)

const (
	TestNamespace   = "default"
	TestProjectSlug = "api"
	TestGroupURL    = "https://sentry.io/organizations/acme/issues/1/"
)

func WithProject(slug string, fullName string) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		ctx.Project = sentry.Project{Slug: slug, FullName: fullName}
	}
}

func WithTitle(title string, message string) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		ctx.Event.Title = pointer.StringPtr(title)
		ctx.Event.Message = pointer.StringPtr(message)
	}
}

func WithLegacyMessage(messageShort string, errorMessage string) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		ctx.Event.MessageShort = pointer.StringPtr(messageShort)
		ctx.Event.Error = pointer.StringPtr(errorMessage)
	}
}

func WithTimesSeen(count int) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		ctx.Group.TimesSeen = count
	}
}

func WithCulprit(culprit string) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		ctx.Group.Culprit = culprit
	}
}

// WithTags takes alternating keys and values.
func WithTags(keyValues ...string) func(ctx *sentry.EventContext) {
	return func(ctx *sentry.EventContext) {
		for i := 0; i+1 < len(keyValues); i += 2 {
			ctx.Event.Tags = append(ctx.Event.Tags, sentry.Tag{Key: keyValues[i], Value: keyValues[i+1]})
		}
	}
}

func NewEventContext(modifiers ...func(ctx *sentry.EventContext)) sentry.EventContext {
	ctx := sentry.EventContext{
		Project: sentry.Project{Slug: TestProjectSlug, FullName: "Acme/API"},
		Group:   sentry.Group{AbsoluteURL: TestGroupURL, Title: "NullPointerException"},
	}
	for i := range modifiers {
		modifiers[i](&ctx)
	}
	return ctx
}
