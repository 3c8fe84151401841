package stats

import (
	"fmt"
	"sync"

	"github.com/auralisbot/auralis/core/usage"
	"github.com/mudler/xlog"
	"github.com/robfig/cron/v3"
)

const DefaultSchedule = "@hourly"

// Source is anything that can summarise usage, such as a usage.Ledger.
type Source interface {
	Stats() usage.Stats
}

// Reporter periodically logs how many users and messages the ledger has seen
// since the process started.
type Reporter struct {
	source Source
	quota  int
	cron   *cron.Cron

	mu   sync.Mutex
	last usage.Stats
}

func NewReporter(source Source, quota int, schedule string) (*Reporter, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	r := &Reporter{
		source: source,
		quota:  quota,
		cron:   cron.New(),
	}
	if _, err := r.cron.AddFunc(schedule, func() { r.Report() }); err != nil {
		return nil, fmt.Errorf("invalid stats schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Report logs the current aggregates and returns them.
func (r *Reporter) Report() usage.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.source.Stats()
	xlog.Info("Usage report",
		"users", s.Users,
		"messages", s.Messages,
		"new_messages", s.Messages-r.last.Messages,
		"quota", r.quota,
	)
	r.last = s
	return s
}

func (r *Reporter) Start() {
	r.cron.Start()
}

// Stop waits for a running report to finish.
func (r *Reporter) Stop() {
	<-r.cron.Stop().Done()
}
