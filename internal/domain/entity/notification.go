// Package entity contains the core business objects of the project.
package entity

// NotificationKind classifies a toast notification request.
type NotificationKind string

const (
	KindLike    NotificationKind = "like"
	KindComment NotificationKind = "comment"
	KindReply   NotificationKind = "reply"
	KindShare   NotificationKind = "share"
	KindEdit    NotificationKind = "edit"
	KindDelete  NotificationKind = "delete"
	KindAdmin   NotificationKind = "admin"
	KindInfo    NotificationKind = "info"
)

// GlyphBell is the fallback accent glyph for kinds without one of their own.
const GlyphBell = "🔔"

var glyphByKind = map[NotificationKind]string{
	KindLike:    "❤️",
	KindComment: "💬",
	KindReply:   "↩️",
	KindShare:   "🔗",
	KindEdit:    "✏️",
	KindDelete:  "🗑️",
}

// Glyph returns the accent glyph associated with the kind, or the bell glyph.
func (k NotificationKind) Glyph() string {
	if g, ok := glyphByKind[k]; ok {
		return g
	}

	return GlyphBell
}

// NotificationRequest is a transient request to display a toast. It is
// created on event arrival, consumed by the queue and discarded after
// display; it is never persisted.
type NotificationRequest struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	Accent  string           `json:"accent,omitempty"`
}

// ResolveAccent returns the glyph to render for the request. A missing
// accent is derived from the kind; the "?" and "??" placeholders left by
// glyph-less render paths are normalized to the bell glyph unconditionally,
// regardless of kind.
func (r NotificationRequest) ResolveAccent() string {
	switch r.Accent {
	case "":
		return r.Kind.Glyph()
	case "?", "??":
		return GlyphBell
	}

	return r.Accent
}
