package pkg

const (
	Title       = "Microsoft Teams"
	Slug        = "msteams"
	Version     = "0.1.0"
	Description = "Post Notifications to Microsoft Teams Channel"
)

// ConfigField describes one per-project option for the host settings form.
type ConfigField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
	Help        string `json:"help"`
}

func ConfigFields() []ConfigField {
	return []ConfigField{{
		Name:        "webhook_url",
		Label:       "Teams Webhook URL",
		Type:        "url",
		Placeholder: "https://company.webhook.office.com/webhookb2/abcde-12345-5555-1111-eeee",
		Required:    true,
		Help:        "Microsoft Teams Incoming Webhook URL",
	}, {
		Name:     "include_tags",
		Label:    "Include Tags",
		Type:     "bool",
		Required: false,
		Help:     "Include tags with notifications",
	}}
}
