package sentry

import (
	"encoding/json"
	"fmt"
)

// Project is the Sentry project which owns the group.
type Project struct {
	Slug     string `json:"slug"`
	FullName string `json:"full_name"`
}

// Group is an error cluster.
type Group struct {
	AbsoluteURL string `json:"absolute_url"`
	TimesSeen   int    `json:"times_seen"`
	Culprit     string `json:"culprit,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Event holds both the legacy (message_short/error) and the current (title/message)
// event shapes. Only one of them is normally populated.
type Event struct {
	MessageShort *string `json:"message_short,omitempty"`
	Error        *string `json:"error,omitempty"`

	Title   *string `json:"title,omitempty"`
	Message *string `json:"message,omitempty"`

	Tags Tags `json:"tags,omitempty"`
}

// Summary returns the event title and error description. The legacy shape wins when
// both of its fields are present.
func (e Event) Summary() (title string, errorMessage string) {
	if e.MessageShort != nil && e.Error != nil {
		return *e.MessageShort, *e.Error
	}
	return deref(e.Title), deref(e.Message)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EventContext bundles everything a notification is built from.
type EventContext struct {
	Event   Event   `json:"event"`
	Group   Group   `json:"group"`
	Project Project `json:"project"`
}

type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tags keeps the order tags were attached in.
type Tags []Tag

// UnmarshalJSON accepts both [["key","value"]] and [{"key":"...","value":"..."}].
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	res := make(Tags, 0, len(raw))
	for i := range raw {
		var pair []string
		if err := json.Unmarshal(raw[i], &pair); err == nil {
			if len(pair) != 2 {
				return fmt.Errorf("tag %d: expected [key, value] pair but got %d items", i, len(pair))
			}
			res = append(res, Tag{Key: pair[0], Value: pair[1]})
			continue
		}
		var tag Tag
		if err := json.Unmarshal(raw[i], &tag); err != nil {
			return fmt.Errorf("tag %d: %w", i, err)
		}
		res = append(res, tag)
	}
	*t = res
	return nil
}
