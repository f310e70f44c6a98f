// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the frontend origin. Credentials must be enabled because
// the cart session rides on a cookie.
func CORS(frontendOrigin string) gin.HandlerFunc {
	config := cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"X-Total-Count", "X-Total-Pages", "X-Page", "X-Per-Page"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if frontendOrigin == "" || frontendOrigin == "*" {
		config.AllowOrigins = nil
		config.AllowOriginFunc = func(origin string) bool { return true }
	}

	return cors.New(config)
}
