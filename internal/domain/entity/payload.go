// Package entity contains the core business objects of the project.
package entity

const (
	// DefaultPushTitle is used when a push payload carries no title.
	DefaultPushTitle = "Menfes UNBIN"
	// DefaultPushBody is used when a push payload carries no body.
	DefaultPushBody = "Aktivitas baru"
)

// PushNotification is the display block of a push payload.
type PushNotification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Badge string `json:"badge,omitempty"`
	Image string `json:"image,omitempty"`
}

// PushPayload is the message shape delivered over the push boundary, both
// foreground and worker-side. Every accessor defaults rather than fails, so
// a malformed payload degrades to the fallback strings instead of being
// rejected.
type PushPayload struct {
	Notification *PushNotification `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
}

// Title returns the notification title, defaulting when absent.
func (p PushPayload) Title() string {
	if p.Notification != nil && p.Notification.Title != "" {
		return p.Notification.Title
	}

	return DefaultPushTitle
}

// Body returns the notification body, defaulting when absent.
func (p PushPayload) Body() string {
	if p.Notification != nil && p.Notification.Body != "" {
		return p.Notification.Body
	}

	return DefaultPushBody
}

// Admin reports whether the payload was flagged as an admin broadcast.
func (p PushPayload) Admin() bool {
	return p.Data["admin"] == "true"
}

// ClickURL resolves the navigation target for notification activation:
// click_action wins over url, and both default to the board root.
func (p PushPayload) ClickURL() string {
	if v := p.Data["click_action"]; v != "" {
		return v
	}
	if v := p.Data["url"]; v != "" {
		return v
	}

	return "/"
}

// InboxAlert is the normalized form of one unread notification document from
// the per-user inbox feed.
type InboxAlert struct {
	Kind    NotificationKind
	Message string
	Admin   bool
}

// AlertFromDoc maps a raw inbox document onto an InboxAlert. Admin-authored
// alerts override the document's own kind so they render with admin styling.
func AlertFromDoc(data map[string]any) InboxAlert {
	alert := InboxAlert{Kind: KindInfo, Message: "Notifikasi baru"}

	if v, ok := data["message"].(string); ok && v != "" {
		alert.Message = v
	}
	if v, ok := data["type"].(string); ok && v != "" {
		alert.Kind = NotificationKind(v)
	}
	if v, ok := data["by_admin"].(bool); ok && v {
		alert.Admin = true
	}
	if v, ok := data["actor_is_admin"].(bool); ok && v {
		alert.Admin = true
	}
	if alert.Admin {
		alert.Kind = KindAdmin
		alert.Message = "🛡️ Admin: " + alert.Message
	}

	return alert
}
