package response

import "github.com/gin-gonic/gin"

// Message is the uniform failure body: every error the API returns is a JSON
// object with a single human-readable message. Internal error details are
// logged server-side, never echoed here.
type Message struct {
	Message string `json:"message"`
}

// Error writes the failure body and aborts the handler chain.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Message{Message: message})
}
