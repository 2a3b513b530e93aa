package job

import (
	"time"

	"github.com/velmara/heritage-panel/logger"
	"github.com/velmara/heritage-panel/web/service"
)

const staleAfter = 30 * 24 * time.Hour

// StaleContactJob reports contact messages that sat in "new" past the
// review window. It only logs; status changes stay administrator-driven.
type StaleContactJob struct {
	contactService *service.ContactService
}

func NewStaleContactJob(contactService *service.ContactService) *StaleContactJob {
	return &StaleContactJob{contactService: contactService}
}

// Run implements cron.Job.
func (j *StaleContactJob) Run() {
	cutoff := time.Now().Add(-staleAfter).Unix()
	count, err := j.contactService.CountStale(cutoff)
	if err != nil {
		logger.Warning("stale contact job err:", err)
		return
	}
	if count > 0 {
		logger.Warningf("%d contact messages unreviewed for over 30 days", count)
	}
}
