package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Job - периодическая фоновая задача
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler запускает каждую задачу сразу и затем по своему интервалу.
// Ошибка или паника задачи логируется и не останавливает остальные задачи.
type Scheduler struct {
	jobs   []Job
	clock  clockwork.Clock
	logger *logrus.Logger
	wg     sync.WaitGroup
}

func New(clock clockwork.Clock, logger *logrus.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, clock: clock, logger: logger}
}

// Start запускает горутину на каждую задачу с положительным интервалом
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.logger.WithField("job", job.Name).Warn("Job disabled: non-positive interval")
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
}

// Wait блокируется до остановки всех задач после отмены контекста
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()
	log := s.logger.WithFields(logrus.Fields{"job": job.Name, "interval": job.Interval.String()})
	log.Info("Starting scheduled job")

	ticker := s.clock.NewTicker(job.Interval)
	defer ticker.Stop()

	s.RunOnce(ctx, job)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping scheduled job")
			return
		case <-ticker.Chan():
			s.RunOnce(ctx, job)
		}
	}
}

// RunOnce выполняет задачу один раз, перехватывая панику
func (s *Scheduler) RunOnce(ctx context.Context, job Job) (err error) {
	log := s.logger.WithField("job", job.Name)
	start := s.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("job %s panicked: %v", job.Name, r)
		}
		if err != nil {
			log.WithError(err).Error("Scheduled job failed")
			return
		}
		log.WithField("duration", s.clock.Since(start).String()).Info("Scheduled job finished")
	}()
	return job.Run(ctx)
}
