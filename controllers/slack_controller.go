package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpeo/attendbot/response"
	"github.com/tpeo/attendbot/slack"
)

// SlackController handles the slash-command webhook.
type SlackController struct {
	router *slack.Router
}

func NewSlackController(router *slack.Router) *SlackController {
	return &SlackController{router: router}
}

// HandleCommand parses the verified slash-command form, routes it, and
// answers with the rendered chat message. Slack expects 200 regardless
// of the command outcome; anything else shows the user a transport
// error instead of the bot's message.
func (ctl *SlackController) HandleCommand(c *gin.Context) {
	raw, exists := c.Get("rawBody")
	if !exists {
		response.ServerError(c)
		return
	}
	payload, err := slack.ParsePayload(string(raw.([]byte)))
	if err != nil {
		response.BadRequest(c, "unparseable command payload")
		return
	}
	if payload.UserName == "" {
		response.BadRequest(c, "missing user_name")
		return
	}

	msg := ctl.router.Route(c.Request.Context(), payload)
	c.JSON(http.StatusOK, msg)
}
