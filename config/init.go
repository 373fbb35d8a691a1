package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// InitApp builds the gin engine and the cron scheduler.
func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("X-Slack-Signature", "X-Slack-Request-Timestamp")
	configCors.AllowAllOrigins = true
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, nil, err
	}

	c := cron.New()

	return router, c, nil
}
