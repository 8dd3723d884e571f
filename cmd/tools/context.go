package tools

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/ghodss/yaml"
	"k8s.io/client-go/kubernetes"

	"github.com/argoproj-labs/sentry-msteams/pkg"
	"github.com/argoproj-labs/sentry-msteams/pkg/sentry"
	"github.com/argoproj-labs/sentry-msteams/shared/settings"
)

type commandContext struct {
	configMapPath string
	secretPath    string
	stdout        io.Writer
	stderr        io.Writer
	getK8SClient  func() (kubernetes.Interface, string, error)
}

func (c *commandContext) getConfig() (*pkg.Config, error) {
	return settings.Source{
		ConfigMapPath: c.configMapPath,
		SecretPath:    c.secretPath,
		GetK8SClient:  c.getK8SClient,
	}.Load(context.Background())
}

// loadEvent reads an event context from a JSON or YAML file.
func (c *commandContext) loadEvent(path string) (*sentry.EventContext, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var eventCtx sentry.EventContext
	if err := yaml.Unmarshal(data, &eventCtx); err != nil {
		return nil, err
	}
	return &eventCtx, nil
}
