package pkg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	v1 "k8s.io/api/core/v1"

	"github.com/argoproj-labs/sentry-msteams/pkg/services"
)

const (
	ConfigMapName = "sentry-msteams-cm"
	SecretName    = "sentry-msteams-secret"

	projectKeyPrefix = "project."
	serviceKeyPrefix = "service."
	defaultsKey      = "defaults"
	tagLabelsKey     = "tagLabels"
)

var secretRefPattern = regexp.MustCompile(`[$][\w-_]+`)

type ServiceFactory func() (services.NotificationService, error)

// ProjectSettings are the per-project options of the integration.
type ProjectSettings struct {
	WebhookURL  string `json:"webhook_url"`
	IncludeTags bool   `json:"include_tags"`
}

type Config struct {
	// Projects is keyed by project slug.
	Projects  map[string]ProjectSettings
	Defaults  ProjectSettings
	TagLabels map[string]string
	Services  map[string]ServiceFactory
}

// GetProjectSettings returns the settings of the project, or the defaults when the project has none.
func (c *Config) GetProjectSettings(slug string) ProjectSettings {
	if s, ok := c.Projects[slug]; ok {
		return s
	}
	return c.Defaults
}

func ParseConfig(configMap *v1.ConfigMap, secret *v1.Secret) (*Config, error) {
	secretValues := map[string][]byte{}
	for k, v := range secret.Data {
		secretValues[k] = v
	}
	for k, v := range secret.StringData {
		secretValues[k] = []byte(v)
	}

	cfg := Config{
		Projects:  map[string]ProjectSettings{},
		TagLabels: map[string]string{},
		Services:  map[string]ServiceFactory{},
	}
	for k, v := range configMap.Data {
		switch {
		case k == defaultsKey:
			if err := unmarshalProjectSettings(v, secretValues, &cfg.Defaults); err != nil {
				return nil, fmt.Errorf("failed to unmarshal defaults: %w", err)
			}
		case k == tagLabelsKey:
			if err := yaml.Unmarshal([]byte(v), &cfg.TagLabels); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tag labels: %w", err)
			}
		case strings.HasPrefix(k, projectKeyPrefix):
			slug := strings.TrimPrefix(k, projectKeyPrefix)
			if slug == "" {
				return nil, fmt.Errorf("invalid project key; expected '%s<slug>' but got '%s'", projectKeyPrefix, k)
			}
			var settings ProjectSettings
			if err := unmarshalProjectSettings(v, secretValues, &settings); err != nil {
				return nil, fmt.Errorf("failed to unmarshal project %s: %w", slug, err)
			}
			cfg.Projects[slug] = settings
		case strings.HasPrefix(k, serviceKeyPrefix):
			serviceType := strings.TrimPrefix(k, serviceKeyPrefix)
			if serviceType == "" || strings.Contains(serviceType, ".") {
				return nil, fmt.Errorf("invalid service key; expected '%s<type>' but got '%s'", serviceKeyPrefix, k)
			}
			optsData := []byte(v)
			cfg.Services[serviceType] = func() (services.NotificationService, error) {
				return services.NewService(serviceType, optsData)
			}
		}
	}
	return &cfg, nil
}

func unmarshalProjectSettings(data string, secretValues map[string][]byte, settings *ProjectSettings) error {
	if err := yaml.Unmarshal([]byte(data), settings); err != nil {
		return err
	}
	settings.WebhookURL = replaceStringSecret(settings.WebhookURL, secretValues)
	return nil
}

// replaceStringSecret replaces every $key reference in the given string with the corresponding secret value
func replaceStringSecret(val string, secretValues map[string][]byte) string {
	return secretRefPattern.ReplaceAllStringFunc(val, func(ref string) string {
		secretVal, ok := secretValues[ref[1:]]
		if !ok {
			log.Warnf("config referenced '%s', but key does not exist in secret", ref)
			return ref
		}
		return string(secretVal)
	})
}
