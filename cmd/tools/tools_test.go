package tools

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"k8s.io/client-go/kubernetes"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	testingutil "github.com/argoproj-labs/sentry-msteams/testing"
)

const eventJSON = `{
  "project": {"slug": "api", "full_name": "Acme/API"},
  "group": {"absolute_url": "https://sentry.io/organizations/acme/issues/1/", "times_seen": 5, "culprit": "handler.process"},
  "event": {"title": "NullPointerException", "message": "null pointer", "tags": [["env", "prod"], ["env", "staging"]]}
}`

func newTestContext(stdout io.Writer, stderr io.Writer, data map[string]string) (*commandContext, string, func(), error) {
	tmpDir, err := ioutil.TempDir("", "")
	if err != nil {
		return nil, "", nil, err
	}
	cm := testingutil.NewConfigMap(pkg.ConfigMapName, data)
	cmData, err := yaml.Marshal(cm)
	if err != nil {
		return nil, "", nil, err
	}
	cmPath := filepath.Join(tmpDir, "config-map.yaml")
	if err := ioutil.WriteFile(cmPath, cmData, 0644); err != nil {
		return nil, "", nil, err
	}
	eventPath := filepath.Join(tmpDir, "event.json")
	if err := ioutil.WriteFile(eventPath, []byte(eventJSON), 0644); err != nil {
		return nil, "", nil, err
	}

	ctx := &commandContext{
		stdout:        stdout,
		stderr:        stderr,
		secretPath:    ":empty",
		configMapPath: cmPath,
		getK8SClient: func() (kubernetes.Interface, string, error) {
			return nil, "", nil
		},
	}
	return ctx, eventPath, func() {
		_ = os.RemoveAll(tmpDir)
	}, nil
}

func TestNotifyConsole(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, eventPath, closer, err := newTestContext(&stdout, &stderr, map[string]string{
		"project.api": "webhook_url: https://example.com/hook",
	})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newNotifyCommand(ctx)
	assert.NoError(t, command.Flags().Set("service", "console"))
	err = command.RunE(command, []string{eventPath})
	assert.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), `"title": "[Acme/API] NullPointerException"`)
}

func TestNotifyTeams(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, err := ioutil.ReadAll(request.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(data, &received))
		_, _ = writer.Write([]byte("1"))
	}))
	defer server.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, eventPath, closer, err := newTestContext(&stdout, &stderr, map[string]string{
		"project.api": "webhook_url: " + server.URL,
	})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newNotifyCommand(ctx)
	err = command.RunE(command, []string{eventPath})
	assert.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "sent, destination responded with 200: 1")
	assert.Equal(t, "message", received["type"])
}

func TestNotifyNotConfigured(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, eventPath, closer, err := newTestContext(&stdout, &stderr, map[string]string{})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newNotifyCommand(ctx)
	err = command.RunE(command, []string{eventPath})
	assert.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "project 'api' is not configured")
}

func TestNotifyMissingEvent(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, _, closer, err := newTestContext(&stdout, &stderr, map[string]string{})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newNotifyCommand(ctx)
	err = command.RunE(command, []string{"/does/not/exist.json"})
	assert.NoError(t, err)
	assert.Contains(t, stderr.String(), "failed to load event")
}

func TestCardWide(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, eventPath, closer, err := newTestContext(&stdout, &stderr, map[string]string{
		"project.api": "include_tags: true",
		"tagLabels":   "env: Environment",
	})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newCardCommand(ctx)
	err = command.RunE(command, []string{eventPath})
	assert.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "[Acme/API] NullPointerException")
	assert.Contains(t, stdout.String(), "Seen 5 Times")
	assert.Contains(t, stdout.String(), "handler.process")
	assert.Contains(t, stdout.String(), "Environment")
	assert.Contains(t, stdout.String(), "staging")
}

func TestCardJSON(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	ctx, eventPath, closer, err := newTestContext(&stdout, &stderr, map[string]string{})
	if !assert.NoError(t, err) {
		return
	}
	defer closer()

	command := newCardCommand(ctx)
	assert.NoError(t, command.Flags().Set("output", "json"))
	err = command.RunE(command, []string{eventPath})
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), `"contentType": "application/vnd.microsoft.teams.card.o365connector"`)
}

func TestConfigFields(t *testing.T) {
	var stdout bytes.Buffer
	ctx := &commandContext{stdout: &stdout}

	command := newConfigFieldsCommand(ctx)
	err := command.RunE(command, nil)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "webhook_url")
	assert.Contains(t, stdout.String(), "Teams Webhook URL")
	assert.Contains(t, stdout.String(), "include_tags")
}
