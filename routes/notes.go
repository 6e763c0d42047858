package routes

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharepad-notes/sharepad/database"
	"sharepad-notes/sharepad/services"
)

type createNoteRequest struct {
	Content         string `json:"content"`
	Title           string `json:"title"`
	PasswordProtect bool   `json:"passwordProtect"`
	Password        string `json:"password"`
	AutoExpire      bool   `json:"autoExpire"`
	ExpireDays      int    `json:"expireDays"`
}

type verifyPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type updateContentRequest struct {
	Content string `json:"content"`
}

type updateSettingsRequest struct {
	AllowEditing *bool `json:"allowEditing" binding:"required"`
}

func RegisterNoteRoutes(router *gin.Engine, db *database.Database, noteService services.NoteServiceInterface) {
	group := router.Group("/api/v1/notes")
	{
		group.POST("", func(c *gin.Context) { CreateNote(c, db, noteService) })
		group.GET("/:shareId", func(c *gin.Context) { GetNote(c, db, noteService) })
		group.POST("/:shareId/verify", func(c *gin.Context) { VerifyPassword(c, db, noteService) })
		group.PUT("/:shareId", func(c *gin.Context) { UpdateContent(c, db, noteService) })
		group.PATCH("/:shareId", func(c *gin.Context) { UpdateSettings(c, db, noteService) })
	}
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	var request createNoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.CreateNote(db, services.CreateNoteInput{
		Content:         request.Content,
		Title:           request.Title,
		PasswordProtect: request.PasswordProtect,
		Password:        request.Password,
		AutoExpire:      request.AutoExpire,
		ExpireDays:      request.ExpireDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note content is required"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiration"})
		default:
			log.Printf("Error saving note: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save note"})
		}
		return
	}

	// The create response reveals the share id only, never the content.
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"shareId": note.ShareID,
		"message": "Note saved successfully",
	})
}

func GetNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	shareID := c.Param("shareId")

	note, err := noteService.GetNoteByShareID(db, shareID)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("Error fetching note: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch note"})
		return
	}

	if note.IsPasswordProtected {
		c.JSON(http.StatusOK, note.LockedView())
		return
	}

	c.JSON(http.StatusOK, note.PublicView())
}

func VerifyPassword(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	shareID := c.Param("shareId")

	var request verifyPasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.VerifyPassword(db, shareID, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		case errors.Is(err, services.ErrNotProtected):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note is not password protected"})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			log.Printf("Error verifying password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		}
		return
	}

	c.JSON(http.StatusOK, note.PublicView())
}

func UpdateContent(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	shareID := c.Param("shareId")

	var request updateContentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := noteService.UpdateContent(db, shareID, request.Content); err != nil {
		switch {
		case errors.Is(err, services.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		case errors.Is(err, services.ErrEditingNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Editing not allowed"})
		case errors.Is(err, services.ErrContentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Note content is required"})
		default:
			log.Printf("Error updating note: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func UpdateSettings(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	shareID := c.Param("shareId")

	var request updateSettingsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := noteService.UpdateEditability(db, shareID, *request.AllowEditing)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("Error updating settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"allowEditing": note.AllowEditing,
	})
}
