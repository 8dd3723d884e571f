package sentry

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagLabeler maps raw tag keys and values to display strings.
type TagLabeler interface {
	KeyLabel(key string) string
	ValueLabel(key string, value string) string
}

var builtinKeyLabels = map[string]string{
	"exc_type":       "Exception Type",
	"sentry:user":    "User",
	"sentry:release": "Release",
	"sentry:dist":    "Distribution",
	"os":             "OS",
	"url":            "URL",
	"server_name":    "Server",
}

var userValuePrefixes = []string{"id:", "email:", "username:", "ip:"}

// NewTagLabeler returns the default labeler. Overrides take precedence over built-in key labels.
func NewTagLabeler(overrides map[string]string) *labeler {
	return &labeler{overrides: overrides}
}

type labeler struct {
	overrides map[string]string
}

func (l *labeler) KeyLabel(key string) string {
	if label, ok := l.overrides[key]; ok {
		return label
	}
	if label, ok := builtinKeyLabels[key]; ok {
		return label
	}
	return titleWords(strings.ReplaceAll(key, "_", " "))
}

// titleWords capitalizes every run of letters, so "browser.name" becomes "Browser.Name".
func titleWords(s string) string {
	// a Caser keeps state, so it is not shared between calls
	caser := cases.Title(language.Und)
	var b strings.Builder
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}

func (l *labeler) ValueLabel(key string, value string) string {
	if key != "sentry:user" {
		return value
	}
	for _, prefix := range userValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return strings.TrimPrefix(value, prefix)
		}
	}
	return value
}
