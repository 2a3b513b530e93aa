// Package job contains the panel's scheduled background jobs.
package job

import (
	"time"

	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/service"
)

const pruneAfter = 90 * 24 * time.Hour

// NotificationPruneJob deletes read notifications older than the
// retention window.
type NotificationPruneJob struct {
	notificationService *service.NotificationService
}

func NewNotificationPruneJob(notificationService *service.NotificationService) *NotificationPruneJob {
	return &NotificationPruneJob{notificationService: notificationService}
}

// Run implements cron.Job.
func (j *NotificationPruneJob) Run() {
	cutoff := time.Now().Add(-pruneAfter).Unix()
	pruned, err := j.notificationService.PruneRead(cutoff)
	if err != nil {
		logger.Warning("notification prune job err:", err)
		return
	}
	if pruned > 0 {
		logger.Infof("pruned %d read notifications", pruned)
	}
}
