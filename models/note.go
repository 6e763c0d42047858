package models

import (
	"time"

	"github.com/google/uuid"
)

// Titles substituted at read time when a note was created without one. A
// locked note masks its missing title differently so the minimal payload
// never hints at the content behind the password gate.
const (
	DefaultTitle   = "Untitled Note"
	ProtectedTitle = "Protected Note"
)

type Note struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShareID             string     `gorm:"size:16;uniqueIndex;not null" json:"shareId"`
	Content             string     `gorm:"not null" json:"content"`
	Title               string     `json:"title"`
	PasswordHash        string     `json:"-"`
	IsPasswordProtected bool       `gorm:"default:false" json:"isPasswordProtected"`
	AllowEditing        bool       `gorm:"default:false" json:"allowEditing"`
	ExpiresAt           *time.Time `json:"expiresAt,omitempty"`
	CreatedAt           time.Time  `gorm:"not null;default:now()" json:"createdAt"`
}

// Expired reports whether the note's auto-expire deadline has passed.
// Notes created without auto-expire never expire through this mechanism.
func (n *Note) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && n.ExpiresAt.Before(now)
}

// DisplayTitle is the title served for an open or unlocked note.
func (n *Note) DisplayTitle() string {
	if n.Title == "" {
		return DefaultTitle
	}
	return n.Title
}

// LockedTitle is the title served for a password-protected note before
// verification.
func (n *Note) LockedTitle() string {
	if n.Title == "" {
		return ProtectedTitle
	}
	return n.Title
}

// NoteView is the full payload returned for an open note, or for a locked
// note after password verification. The password hash has no field here.
type NoteView struct {
	Content             string `json:"content"`
	Title               string `json:"title"`
	AllowEditing        bool   `json:"allowEditing"`
	IsPasswordProtected bool   `json:"isPasswordProtected"`
}

// LockedNoteView is the minimal payload returned for a password-protected
// note before verification.
type LockedNoteView struct {
	IsPasswordProtected bool   `json:"isPasswordProtected"`
	RequiresPassword    bool   `json:"requiresPassword"`
	Title               string `json:"title"`
}

// PublicView projects the note for a reader without a verified password.
func (n *Note) PublicView() NoteView {
	return NoteView{
		Content:             n.Content,
		Title:               n.DisplayTitle(),
		AllowEditing:        n.AllowEditing,
		IsPasswordProtected: n.IsPasswordProtected,
	}
}

// LockedView projects the note for a reader who has not yet verified the
// password.
func (n *Note) LockedView() LockedNoteView {
	return LockedNoteView{
		IsPasswordProtected: true,
		RequiresPassword:    true,
		Title:               n.LockedTitle(),
	}
}
