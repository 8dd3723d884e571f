package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/argoproj-labs/sentry-msteams/pkg"
)

func TestConfigureLogging(t *testing.T) {
	level := log.GetLevel()
	defer log.SetLevel(level)

	assert.NoError(t, configureLogging("debug", "text"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	assert.Error(t, configureLogging("loud", "text"))
	assert.EqualError(t, configureLogging("info", "xml"), "Unknown log format 'xml'")
}

func TestNewCommand_Subcommands(t *testing.T) {
	command := newCommand()

	var names []string
	for _, c := range command.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "tools")
}

func TestNewNotifier_Console(t *testing.T) {
	notifier, err := newNotifier(pkg.Config{}, "console")
	if !assert.NoError(t, err) {
		return
	}
	assert.NotNil(t, notifier.GetServices()["console"])
	assert.NotNil(t, notifier.GetServices()["teams"])
}
