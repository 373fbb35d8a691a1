package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tpeo/attendbot/response"
	"github.com/tpeo/attendbot/slack"
)

// SlackAuthMiddleware verifies the Slack signature on every inbound
// command request. The raw body is read for HMAC verification and
// restored so the controller can still parse the form from it.
func SlackAuthMiddleware(signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "unreadable request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		timestamp := c.GetHeader("X-Slack-Request-Timestamp")
		signature := c.GetHeader("X-Slack-Signature")
		if err := slack.VerifyRequest(signingSecret, timestamp, signature, body, time.Now()); err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("rawBody", body)
		c.Next()
	}
}
