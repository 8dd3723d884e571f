package pkg

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
	"github.com/argoproj-labs/sentry-msteams/pkg/services"
	"github.com/argoproj-labs/sentry-msteams/pkg/util/text"
)

const (
	linkDisplayText = "Click Here"
	eventLinkText   = "%s to View this Event in Sentry"
	tagsSectionText = "The following Tags were attached to the Event"
)

func markdownLink(display string, targetURL string) string {
	return "[" + display + "](" + targetURL + ")"
}

// BuildCard renders the event into a Teams message card.
func BuildCard(eventCtx sentry.EventContext, settings ProjectSettings, labeler sentry.TagLabeler) services.MessageCard {
	group := eventCtx.Group
	projectName := text.Coalesce(eventCtx.Project.FullName, eventCtx.Project.Slug)
	title, errorMessage := eventCtx.Event.Summary()

	facts := []services.TeamsFact{{Name: "Project", Value: projectName}}
	if errorMessage != "" {
		facts = append(facts, services.TeamsFact{Name: "Error", Value: errorMessage})
	}
	if group.TimesSeen > 0 {
		facts = append(facts, services.TeamsFact{Name: "Times Seen", Value: fmt.Sprintf("Seen %d Times", group.TimesSeen)})
	}
	if group.Culprit != "" && group.Culprit != title {
		facts = append(facts, services.TeamsFact{Name: "Culprit", Value: group.Culprit})
	}

	link := markdownLink(linkDisplayText, sentry.AddReferrerParam(group.AbsoluteURL, Slug))
	heading := fmt.Sprintf("[%s] %s", projectName, title)
	card := services.MessageCard{
		Summary: heading,
		Title:   heading,
		Sections: []services.TeamsSection{{
			Facts: facts,
			Text:  fmt.Sprintf(eventLinkText, link),
		}},
	}

	if !settings.IncludeTags {
		return card
	}
	if len(eventCtx.Event.Tags) == 0 {
		log.WithField("project", eventCtx.Project.Slug).Debug("Event has no tags, skipping tags section")
		return card
	}
	tags := make([]services.TeamsFact, 0, len(eventCtx.Event.Tags))
	for _, tag := range eventCtx.Event.Tags {
		tags = append(tags, services.TeamsFact{
			Name:  labeler.KeyLabel(tag.Key),
			Value: labeler.ValueLabel(tag.Key, tag.Value),
		})
	}
	card.Sections = append(card.Sections, services.TeamsSection{Facts: tags, Text: tagsSectionText})
	return card
}
