package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartSyncWorker schedules periodic mail syncs on the given cron
// expression (e.g. "@every 10m"). The worker stops when ctx is done.
func StartSyncWorker(ctx context.Context, schedule string, sync *MailSyncService) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()

		n, err := sync.Sync(runCtx)
		if err != nil {
			log.Println("sync worker: sync failed:", err)
			return
		}
		log.Printf("sync worker: stored %d messages", n)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	go func() {
		<-ctx.Done()
		log.Println("sync worker: shutting down")
		c.Stop()
	}()

	return c, nil
}
