package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler turns errors attached with c.Error into a JSON error body and
// recovers panics as 500s. Handlers set the status before attaching the error;
// anything below 400 is reported as a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Error: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		message := c.Errors.Last().Error()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			log.Printf("Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, c.Errors.String())
			message = "Internal Server Error"
		}
		c.JSON(status, ErrorResponse{Error: message})
	}
}
