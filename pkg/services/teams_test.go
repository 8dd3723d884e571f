package services

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testCard = MessageCard{
	Summary: "[Acme/API] NullPointerException",
	Title:   "[Acme/API] NullPointerException",
	Sections: []TeamsSection{{
		Facts: []TeamsFact{{Name: "Project", Value: "Acme/API"}},
		Text:  "[Click Here](https://sentry.io/issues/1/?referrer=msteams) to View this Event in Sentry",
	}},
}

func TestTeams_PostsMessageCard(t *testing.T) {
	var receivedBody map[string]interface{}
	var contentType, method string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, err := ioutil.ReadAll(request.Body)
		assert.NoError(t, err)

		err = json.Unmarshal(data, &receivedBody)
		assert.NoError(t, err)

		contentType = request.Header.Get("Content-Type")
		method = request.Method

		_, err = writer.Write([]byte("1"))
		assert.NoError(t, err)
	}))
	defer server.Close()

	service := NewTeamsService(TeamsOptions{})

	resp, err := service.Send(context.Background(), testCard, Destination{Service: "teams", WebhookURL: server.URL})
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", string(resp.Body))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)

	assert.Equal(t, "message", receivedBody["type"])
	attachments := receivedBody["attachments"].([]interface{})
	if !assert.Len(t, attachments, 1) {
		return
	}
	attachment := attachments[0].(map[string]interface{})
	assert.Equal(t, "application/vnd.microsoft.teams.card.o365connector", attachment["contentType"])
	content := attachment["content"].(map[string]interface{})
	assert.Equal(t, "MessageCard", content["@type"])
	assert.Equal(t, "https://schema.org/extensions", content["@context"])
	assert.Equal(t, testCard.Summary, content["summary"])
	assert.Equal(t, testCard.Title, content["title"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{
			"facts": []interface{}{map[string]interface{}{"name": "Project", "value": "Acme/API"}},
			"text":  testCard.Sections[0].Text,
		},
	}, content["sections"])
}

func TestTeams_NonSuccessStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte("Summary or Text is required."))
	}))
	defer server.Close()

	resp, err := NewTeamsService(TeamsOptions{}).Send(context.Background(), testCard, Destination{WebhookURL: server.URL})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Summary or Text is required.", string(resp.Body))
}

func TestTeams_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
	url := server.URL
	server.Close()

	resp, err := NewTeamsService(TeamsOptions{}).Send(context.Background(), testCard, Destination{WebhookURL: url})
	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestTeams_MalformedURL(t *testing.T) {
	_, err := NewTeamsService(TeamsOptions{}).Send(context.Background(), testCard, Destination{WebhookURL: "://bad"})
	assert.Error(t, err)
}

func TestTeams_ReusesConnections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte("1"))
	}))
	defer server.Close()

	service := NewTeamsService(TeamsOptions{})
	send := func() {
		_, err := service.Send(context.Background(), testCard, Destination{WebhookURL: server.URL})
		assert.NoError(t, err)
	}

	send()
	before := runtime.NumGoroutine()
	for i := 0; i < 100; i++ {
		send()
	}

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+5
	}, 5*time.Second, 50*time.Millisecond)
}
