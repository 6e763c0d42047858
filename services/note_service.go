package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"sharepad-notes/sharepad/database"
	"sharepad-notes/sharepad/models"
	"sharepad-notes/sharepad/utils/shareid"

	"gorm.io/gorm"
)

// shareIDAttempts bounds the generate-check loop on the vanishingly unlikely
// event of a share id collision; the unique index backstops it.
const shareIDAttempts = 3

// publicNoteColumns is the projection served to callers without a verified
// password. The password hash is only ever selected by VerifyPassword.
var publicNoteColumns = []string{
	"id", "share_id", "content", "title",
	"is_password_protected", "allow_editing", "expires_at", "created_at",
}

type CreateNoteInput struct {
	Content         string
	Title           string
	PasswordProtect bool
	Password        string
	AutoExpire      bool
	ExpireDays      int
}

type NoteServiceInterface interface {
	CreateNote(db *database.Database, input CreateNoteInput) (models.Note, error)
	GetNoteByShareID(db *database.Database, shareID string) (models.Note, error)
	VerifyPassword(db *database.Database, shareID, password string) (models.Note, error)
	UpdateContent(db *database.Database, shareID, content string) error
	UpdateEditability(db *database.Database, shareID string, allowEditing bool) (models.Note, error)
}

type NoteService struct {
	credentials CredentialServiceInterface
}

func NewNoteService(credentials CredentialServiceInterface) *NoteService {
	return &NoteService{credentials: credentials}
}

func (s *NoteService) CreateNote(db *database.Database, input CreateNoteInput) (models.Note, error) {
	if strings.TrimSpace(input.Content) == "" {
		return models.Note{}, ErrContentRequired
	}

	if input.AutoExpire && input.ExpireDays < 1 {
		return models.Note{}, ErrInvalidInput
	}

	// The flag without a password stores an unprotected note.
	var passwordHash string
	isProtected := false
	if input.PasswordProtect && input.Password != "" {
		hash, err := s.credentials.HashPassword(input.Password)
		if err != nil {
			return models.Note{}, err
		}
		passwordHash = hash
		isProtected = true
	}

	var expiresAt *time.Time
	if input.AutoExpire {
		t := time.Now().Add(time.Duration(input.ExpireDays) * 24 * time.Hour)
		expiresAt = &t
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	var id string
	for attempt := 0; attempt < shareIDAttempts; attempt++ {
		candidate, err := shareid.New()
		if err != nil {
			tx.Rollback()
			return models.Note{}, err
		}

		var count int64
		if err := tx.Model(&models.Note{}).Where("share_id = ?", candidate).Count(&count).Error; err != nil {
			tx.Rollback()
			return models.Note{}, err
		}
		if count == 0 {
			id = candidate
			break
		}
	}
	if id == "" {
		tx.Rollback()
		return models.Note{}, ErrInternal
	}

	note := models.Note{
		ID:                  uuid.New(),
		ShareID:             id,
		Content:             input.Content,
		Title:               input.Title,
		PasswordHash:        passwordHash,
		IsPasswordProtected: isProtected,
		AllowEditing:        false,
		ExpiresAt:           expiresAt,
	}

	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	return note, nil
}

func (s *NoteService) GetNoteByShareID(db *database.Database, shareID string) (models.Note, error) {
	var note models.Note
	if err := db.DB.Select(publicNoteColumns).First(&note, "share_id = ?", shareID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	// Expired notes are indistinguishable from ones that never existed.
	if note.Expired(time.Now()) {
		return models.Note{}, ErrNoteNotFound
	}

	return note, nil
}

func (s *NoteService) VerifyPassword(db *database.Database, shareID, password string) (models.Note, error) {
	var note models.Note
	if err := db.DB.First(&note, "share_id = ?", shareID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	if note.Expired(time.Now()) {
		return models.Note{}, ErrNoteNotFound
	}

	if !note.IsPasswordProtected {
		return models.Note{}, ErrNotProtected
	}

	if err := s.credentials.ComparePasswords(note.PasswordHash, password); err != nil {
		return models.Note{}, ErrInvalidPassword
	}

	return note, nil
}

func (s *NoteService) UpdateContent(db *database.Database, shareID, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var note models.Note
	if err := tx.Select(publicNoteColumns).First(&note, "share_id = ?", shareID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	if note.Expired(time.Now()) {
		tx.Rollback()
		return ErrNoteNotFound
	}

	if !note.AllowEditing {
		tx.Rollback()
		return ErrEditingNotAllowed
	}

	// Unconditional overwrite: concurrent updates are last-write-wins.
	if err := tx.Model(&models.Note{}).Where("share_id = ?", shareID).Update("content", content).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	return nil
}

func (s *NoteService) UpdateEditability(db *database.Database, shareID string, allowEditing bool) (models.Note, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	var note models.Note
	if err := tx.Select(publicNoteColumns).First(&note, "share_id = ?", shareID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	if note.Expired(time.Now()) {
		tx.Rollback()
		return models.Note{}, ErrNoteNotFound
	}

	if err := tx.Model(&models.Note{}).Where("share_id = ?", shareID).Update("allow_editing", allowEditing).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	note.AllowEditing = allowEditing
	return note, nil
}

var NoteServiceInstance NoteServiceInterface = NewNoteService(CredentialServiceInstance)
