// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// CommentRecord mirrors one comment document of a post thread. Comments are
// ordered by CreatedAt ascending within their thread; Text is the only field
// that may change after creation.
type CommentRecord struct {
	ID        string    `json:"id"`         // Document ID, unique within the thread.
	Text      string    `json:"text"`       // Comment body.
	CreatedAt time.Time `json:"created_at"` // Creation timestamp used for feed ordering.
	AuthorUID string    `json:"author_uid"` // Identity of the commenter, empty for legacy comments.
	ByAdmin   bool      `json:"by_admin"`   // Whether an admin wrote the comment.
}

// CommentFromDoc maps a raw feed document onto a CommentRecord. Missing
// fields default rather than fail; a missing creation time falls back to the
// local clock, matching how server-rendered pages treat it.
func CommentFromDoc(id string, data map[string]any) CommentRecord {
	rec := CommentRecord{ID: id, CreatedAt: time.Now()}

	if v, ok := data["text"].(string); ok {
		rec.Text = v
	}
	if v, ok := data["created_at"].(time.Time); ok {
		rec.CreatedAt = v
	}
	if v, ok := data["author_uid"].(string); ok {
		rec.AuthorUID = v
	}
	if v, ok := data["by_admin"].(bool); ok {
		rec.ByAdmin = v
	}

	return rec
}

// wibLocation is Asia/Jakarta; comment timestamps render in WIB.
var wibLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}

	return loc
}()

// FormatWIB renders a timestamp the way the board shows comment times.
func FormatWIB(t time.Time) string {
	return t.In(wibLocation).Format("02/01/2006 15:04:05") + " WIB"
}
