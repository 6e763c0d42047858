package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware adds the required headers to allow cross-origin requests
// from the browser editor that drives the note API.
func CORSMiddleware(appOrigins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(appOrigins, ",")
	corsConfig.AllowWildcard = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"Accept-Encoding",
		"X-Requested-With",
	}...)

	return cors.New(corsConfig)
}
