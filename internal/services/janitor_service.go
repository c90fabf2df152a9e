package services

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/repository"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

var ErrPurgeInProgress = errors.New("purge is in progress")

// Purger permanently removes soft-deleted exercises and trainings once they
// are older than the configured retention.
type Purger struct {
	exerciseRepo  repository.ExerciseRepository
	trainingRepo  repository.TrainingRepository
	configuration *config.Configuration
	logService    LogService
	purging       bool
	mutex         sync.Mutex
	forced        sync.WaitGroup
	cron          *cron.Cron
	now           func() time.Time
}

func NewPurger(
	exerciseRepo repository.ExerciseRepository,
	trainingRepo repository.TrainingRepository,
	logService LogService,
	configuration *config.Configuration,
) *Purger {
	return &Purger{
		exerciseRepo:  exerciseRepo,
		trainingRepo:  trainingRepo,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
		now:           time.Now,
	}
}

// ForcePurge starts a purge in the background and returns at once.
func (p *Purger) ForcePurge() error {
	if !p.begin() {
		return ErrPurgeInProgress
	}
	p.forced.Add(1)
	go func() {
		defer p.forced.Done()
		defer p.end()
		_, _ = p.run(context.Background(), true)
	}()
	return nil
}

// StartPurgeCycle schedules the purge on cleanup.schedule. An empty schedule
// disables it.
func (p *Purger) StartPurgeCycle() {
	schedule := p.configuration.Cleanup.Schedule
	if schedule == "" {
		p.logService.Log.Debug("no purge schedule configured")
		return
	}
	_, err := p.cron.AddFunc(schedule, func() {
		if !p.begin() {
			return
		}
		defer p.end()
		_, _ = p.run(context.Background(), false)
	})
	if err != nil {
		p.logService.Log.WithFields(logrus.Fields{
			"job":   "purge",
			"cron":  schedule,
			"error": err.Error(),
		}).Error("Failed to schedule purge job")
		return
	}
	p.cron.Start()
}

// StopPurgeCycle stops the schedule and waits for scheduled and forced runs
// still in flight.
func (p *Purger) StopPurgeCycle() {
	<-p.cron.Stop().Done()
	p.forced.Wait()
	p.logService.Log.WithFields(logrus.Fields{
		"job":    "purge",
		"status": "stopped",
	}).Info("Purge job stopped")
}

func (p *Purger) IsPurging() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.purging
}

// Purge runs one purge synchronously. It fails with ErrPurgeInProgress when
// another run is active.
func (p *Purger) Purge(ctx context.Context) (int64, error) {
	if !p.begin() {
		return 0, ErrPurgeInProgress
	}
	defer p.end()
	return p.run(ctx, true)
}

func (p *Purger) begin() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.purging {
		return false
	}
	p.purging = true
	return true
}

func (p *Purger) end() {
	p.mutex.Lock()
	p.purging = false
	p.mutex.Unlock()
}

func (p *Purger) run(ctx context.Context, forced bool) (int64, error) {
	fields := logrus.Fields{
		"job": "purge",
		"run": uuid.NewString(),
	}
	if forced {
		fields["status"] = "forced"
	} else {
		fields["cron"] = p.configuration.Cleanup.Schedule
	}
	log := p.logService.Log.WithFields(fields)

	retention, err := time.ParseDuration(p.configuration.Cleanup.Retention)
	if err != nil {
		log.WithField("error", err.Error()).Error("Invalid retention")
		return 0, fmt.Errorf("cleanup retention: %w", err)
	}
	cutoff := p.now().Add(-retention)
	log.Debug(fmt.Sprintf("purging rows deleted before %s", cutoff.Format(time.RFC3339)))

	exercises, err := p.exerciseRepo.Purge(ctx, cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to purge exercises")
		return 0, err
	}
	trainings, err := p.trainingRepo.Purge(ctx, cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to purge trainings")
		return exercises, err
	}

	total := exercises + trainings
	if total > 0 {
		log.WithFields(logrus.Fields{
			"exercises": exercises,
			"trainings": trainings,
		}).Info("purge job finished")
	}
	return total, nil
}
