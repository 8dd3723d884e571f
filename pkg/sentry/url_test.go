package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReferrerParam(t *testing.T) {
	assert.Equal(t, "https://sentry.io/acme/api/issues/1/?referrer=msteams",
		AddReferrerParam("https://sentry.io/acme/api/issues/1/", "msteams"))
}

func TestAddReferrerParam_KeepsQuery(t *testing.T) {
	assert.Equal(t, "https://sentry.io/issues/1/?environment=prod&referrer=msteams",
		AddReferrerParam("https://sentry.io/issues/1/?environment=prod", "msteams"))
}

func TestAddReferrerParam_EmptyReferrer(t *testing.T) {
	assert.Equal(t, "https://sentry.io/issues/1/", AddReferrerParam("https://sentry.io/issues/1/", ""))
}

func TestAddReferrerParam_KeepsOrderAndDropsBlanks(t *testing.T) {
	assert.Equal(t, "https://sentry.io/issues/1/?b=2&referrer=msteams",
		AddReferrerParam("https://sentry.io/issues/1/?b=2&a=&referrer=x", "msteams"))
	assert.Equal(t, "https://sentry.io/issues/1/?referrer=msteams&z=1&a=2&a=3",
		AddReferrerParam("https://sentry.io/issues/1/?referrer=old&z=1&a=2&a=3", "msteams"))
}

func TestAddReferrerParam_EscapesValues(t *testing.T) {
	assert.Equal(t, "https://sentry.io/issues/1/?query=is%3Aunresolved+level%3Aerror&referrer=msteams",
		AddReferrerParam("https://sentry.io/issues/1/?query=is:unresolved%20level:error", "msteams"))
}
