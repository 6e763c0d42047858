package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoteExpired(t *testing.T) {
	now := time.Now()

	t.Run("No Expiry", func(t *testing.T) {
		note := Note{}
		assert.False(t, note.Expired(now))
	})

	t.Run("Future Expiry", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		note := Note{ExpiresAt: &future}
		assert.False(t, note.Expired(now))
	})

	t.Run("Past Expiry", func(t *testing.T) {
		past := now.Add(-time.Minute)
		note := Note{ExpiresAt: &past}
		assert.True(t, note.Expired(now))
	})
}

func TestTitleFallbacks(t *testing.T) {
	t.Run("Empty Title", func(t *testing.T) {
		note := Note{}
		assert.Equal(t, DefaultTitle, note.DisplayTitle())
		assert.Equal(t, ProtectedTitle, note.LockedTitle())
	})

	t.Run("Explicit Title", func(t *testing.T) {
		note := Note{Title: "Meeting Notes"}
		assert.Equal(t, "Meeting Notes", note.DisplayTitle())
		assert.Equal(t, "Meeting Notes", note.LockedTitle())
	})
}

func TestViewsNeverExposeHash(t *testing.T) {
	note := Note{
		ShareID:             "0123456789abcdef",
		Content:             "secret body",
		PasswordHash:        "$2a$10$abcdefghijklmnopqrstuv",
		IsPasswordProtected: true,
	}

	locked, err := json.Marshal(note.LockedView())
	assert.NoError(t, err)
	assert.NotContains(t, string(locked), "secret body")
	assert.NotContains(t, string(locked), note.PasswordHash)
	assert.Contains(t, string(locked), `"requiresPassword":true`)

	full, err := json.Marshal(note.PublicView())
	assert.NoError(t, err)
	assert.NotContains(t, string(full), note.PasswordHash)
	assert.Contains(t, string(full), "secret body")
}

func TestNoteJSONHidesPasswordHash(t *testing.T) {
	note := Note{
		ShareID:      "0123456789abcdef",
		Content:      "hello",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	data, err := json.Marshal(&note)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), note.PasswordHash)
}
