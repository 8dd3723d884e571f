package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"

	httputil "github.com/argoproj-labs/sentry-msteams/pkg/util/http"
)

const (
	teamsMessageType     = "message"
	teamsCardContentType = "application/vnd.microsoft.teams.card.o365connector"
	teamsCardType        = "MessageCard"
	teamsCardContext     = "https://schema.org/extensions"
)

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type TeamsSection struct {
	Facts []TeamsFact `json:"facts"`
	Text  string      `json:"text"`
}

// MessageCard is the content of an Office 365 connector card.
type MessageCard struct {
	Summary  string         `json:"summary"`
	Title    string         `json:"title"`
	Sections []TeamsSection `json:"sections"`
}

type teamsCard struct {
	Type    string `json:"@type"`
	Context string `json:"@context"`
	MessageCard
}

type teamsAttachment struct {
	ContentType string    `json:"contentType"`
	Content     teamsCard `json:"content"`
}

type teamsMessage struct {
	Type        string            `json:"type"`
	Attachments []teamsAttachment `json:"attachments"`
}

// NewTeamsMessage wraps the card into the envelope accepted by Teams incoming webhooks.
func NewTeamsMessage(card MessageCard) interface{} {
	return teamsMessage{
		Type: teamsMessageType,
		Attachments: []teamsAttachment{{
			ContentType: teamsCardContentType,
			Content: teamsCard{
				Type:        teamsCardType,
				Context:     teamsCardContext,
				MessageCard: card,
			},
		}},
	}
}

type TeamsOptions struct {
	InsecureSkipVerify bool `json:"insecureSkipVerify"`
}

type teamsService struct {
	client *http.Client
}

// NewTeamsService creates the service with one client for all deliveries, so connections are reused.
func NewTeamsService(opts TeamsOptions) NotificationService {
	return &teamsService{client: &http.Client{
		Transport: httputil.NewLoggingRoundTripper(
			httputil.NewTransport(opts.InsecureSkipVerify), log.WithField("service", "teams")),
	}}
}

func (s *teamsService) Send(ctx context.Context, card MessageCard, dest Destination) (*Response, error) {
	message, err := json.Marshal(NewTeamsMessage(card))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, dest.WebhookURL, bytes.NewReader(message))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	bodyBytes, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Body:       bodyBytes,
	}, nil
}
