package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/fitness/workouts"
	"github.com/2beens/liftstats/internal/strength"

	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=scheduler_mocks_test.go -package=reports_test

type activeUsersLister interface {
	ActiveUsers(ctx context.Context, since time.Time) ([]string, error)
}

type snapshotter interface {
	Snapshot(ctx context.Context, userID string, source Source) (Report, error)
}

// Scheduler saves a report for every user active in the last six weeks, on a
// cron schedule (seconds field included, e.g. "0 30 3 * * *").
type Scheduler struct {
	cron        *cron.Cron
	users       activeUsersLister
	snapshotter snapshotter
	now         func() time.Time
}

func NewScheduler(
	spec string,
	users activeUsersLister,
	snapshotter snapshotter,
	now func() time.Time,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		users:       users,
		snapshotter: snapshotter,
		now:         now,
	}

	if err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid report schedule [%s]: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	log.Debugln("report scheduler starting ...")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Debugln("report scheduler stopped")
}

func (s *Scheduler) run() {
	saved, err := s.RunOnce(context.Background())
	if err != nil {
		log.Errorf("scheduled reports: saved %d, errors: %s", saved, err)
		return
	}
	log.Infof("scheduled reports: saved %d", saved)
}

// RunOnce snapshots all active users. A failing user does not stop the run,
// all errors are returned combined.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	since := workouts.Day(s.now()).AddDate(0, 0, -strength.SixWeekWindowDays)
	users, err := s.users.ActiveUsers(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("list active users: %w", err)
	}

	saved := 0
	var errs error
	for _, userID := range users {
		if _, err := s.snapshotter.Snapshot(ctx, userID, SourceScheduled); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("user %s: %w", userID, err))
			continue
		}
		saved++
	}
	return saved, errs
}
