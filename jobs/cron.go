package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tpeo/attendbot/services/logger"
)

// SchemaChecker re-validates the live sheet layout.
type SchemaChecker interface {
	CheckSchemas(ctx context.Context) error
}

// InitCronJobs schedules the hourly schema check. The sheets are hand
// edited out-of-band, so drift is a matter of when, not if; catching it
// here beats catching it as a wrong match on the request path.
func InitCronJobs(c *cron.Cron, checker SchemaChecker, lg logger.Logger) error {
	_, err := c.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := checker.CheckSchemas(ctx); err != nil {
			lg.Error("sheet schema check failed: %v", err)
			return
		}
		lg.Debug("sheet schema check passed")
	})
	if err != nil {
		return err
	}

	c.Start()
	lg.Info("cron jobs initialized")
	return nil
}
