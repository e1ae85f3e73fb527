// services/scheduler.go
package services

import (
	"time"

	"github.com/geraldsberongoy/cpe-fair-web-sub000/models"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

const scoreRetention = 30 * 24 * time.Hour

// StartRetentionScheduler hard-deletes score rows that were
// soft-deleted longer than the retention window ago. Runs daily and
// only ever touches rows no read path can see. The caller owns the
// returned scheduler and must Shutdown it on exit.
func (s *ScoreService) StartRetentionScheduler() (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-scoreRetention)
			res := s.DB.Unscoped().
				Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
				Delete(&models.Score{})
			if res.Error != nil {
				log.Printf("[Scheduler] score purge failed: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				log.Printf("✅ purged %d expired score rows", res.RowsAffected)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
