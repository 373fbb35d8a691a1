package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for non-Slack endpoints
type Response struct {
	Code int    `json:"code"`
	Mess string `json:"mess"`
}

// BadRequest returns a bad request response
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized returns an unauthorized response
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthorized",
	})
}

// ServerError returns a server error response
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Server error",
	})
}
