package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"sharepad-notes/sharepad/database"
)

// RegisterHealthRoutes sets up the liveness probe. There is deliberately no
// per-note existence probe here: answering "does this share id exist" without
// the id's holder asking would leak link validity.
func RegisterHealthRoutes(router *gin.Engine, db *database.Database) {
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"time":   time.Now(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now(),
		})
	})
}
