package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sportsmatch/backend/internal/models"
	"github.com/sportsmatch/backend/pkg/logger"
	"gorm.io/gorm"
)

// completedAfter is how long past its start time an in-progress game is
// considered finished.
const completedAfter = 3 * time.Hour

// SchedulerService advances game statuses on a fixed interval: open games
// whose start time has passed become in_progress, and in_progress games well
// past their start time become completed.
type SchedulerService struct {
	db            *gorm.DB
	cronScheduler *cron.Cron
}

func NewSchedulerService(db *gorm.DB) *SchedulerService {
	return &SchedulerService{db: db}
}

func (s *SchedulerService) StartScheduler() {
	s.cronScheduler = cron.New()

	if _, err := s.cronScheduler.AddFunc("*/5 * * * *", func() {
		s.Sweep()
	}); err != nil {
		logger.Errorf("[Scheduler] Failed to add sweep job: %v", err)
		return
	}

	s.cronScheduler.Start()
	logger.Infof("[Scheduler] Game status sweeper started (every 5 minutes)")
}

func (s *SchedulerService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

// Sweep runs one pass of the status transitions.
func (s *SchedulerService) Sweep() {
	now := time.Now()

	res := s.db.Model(&models.Game{}).
		Where("status = ? AND start_at <= ?", models.GameStatusOpen, now).
		Update("status", models.GameStatusInProgress)
	if res.Error != nil {
		logger.Errorf("[Scheduler] Failed to start games: %v", res.Error)
	} else if res.RowsAffected > 0 {
		logger.Infof("[Scheduler] Moved %d games to in_progress", res.RowsAffected)
	}

	res = s.db.Model(&models.Game{}).
		Where("status = ? AND start_at <= ?", models.GameStatusInProgress, now.Add(-completedAfter)).
		Update("status", models.GameStatusCompleted)
	if res.Error != nil {
		logger.Errorf("[Scheduler] Failed to complete games: %v", res.Error)
	} else if res.RowsAffected > 0 {
		logger.Infof("[Scheduler] Moved %d games to completed", res.RowsAffected)
	}
}
