package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tpeo/attendbot/controllers"
	middlewares "github.com/tpeo/attendbot/middleware"
)

func SetupRoutes(router *gin.Engine, slackController *controllers.SlackController, signingSecret string) {
	v1 := router.Group("/api/v1")
	v1.POST("/slack/command", middlewares.SlackAuthMiddleware(signingSecret), slackController.HandleCommand)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
