// Package entity contains the core business objects of the project.
package entity

// PostStatus is the moderation status of a post.
type PostStatus string

const (
	// StatusActive marks a post as visible.
	StatusActive PostStatus = "Active"
	// StatusDeleted marks a post as soft-deleted; mirrored elements are
	// hidden, never removed.
	StatusDeleted PostStatus = "Deleted"
)

// PostSnapshot mirrors the scalar fields of one post document. Absent fields
// stay at their zero value and must not be patched into the view, so a
// partial snapshot never clobbers rendered state with defaults.
type PostSnapshot struct {
	ID      string     `json:"id"`
	Likes   *int64     `json:"likes,omitempty"`   // nil when the payload carried no numeric like count.
	Mood    string     `json:"mood,omitempty"`    // Empty when absent.
	Content string     `json:"content,omitempty"` // Empty when absent.
	Status  PostStatus `json:"status,omitempty"`
}

// PostFromDoc maps a raw snapshot document onto a PostSnapshot. Only
// well-typed fields are carried over; the like count accepts the integer
// and float encodings the feed may deliver.
func PostFromDoc(id string, data map[string]any) PostSnapshot {
	snap := PostSnapshot{ID: id}

	switch v := data["likes"].(type) {
	case int64:
		snap.Likes = &v
	case float64:
		n := int64(v)
		snap.Likes = &n
	}
	if v, ok := data["mood"].(string); ok {
		snap.Mood = v
	}
	if v, ok := data["content"].(string); ok {
		snap.Content = v
	}
	if v, ok := data["status"].(string); ok {
		snap.Status = PostStatus(v)
	}

	return snap
}
