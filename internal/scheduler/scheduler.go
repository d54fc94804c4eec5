package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"real-estate-publications/internal/search"

	"github.com/robfig/cron/v3"
)

// ErrAlreadyRunning is returned by RunNow while a reindex is in progress
var ErrAlreadyRunning = errors.New("reindex already running")

// Reindexer rebuilds the search index from a source
type Reindexer interface {
	Reindex(ctx context.Context, src search.Source) (int, error)
}

// Scheduler runs the periodic search reindex
type Scheduler struct {
	cron      *cron.Cron
	reindexer Reindexer
	source    search.Source
	spec      string
	timeout   time.Duration

	mu        sync.Mutex
	running   bool
	isStarted bool
	lastRun   time.Time
	lastCount int
	lastErr   error
}

// NewScheduler creates a new scheduler. An empty spec disables the periodic job.
func NewScheduler(reindexer Reindexer, source search.Source, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		reindexer: reindexer,
		source:    source,
		spec:      spec,
		timeout:   10 * time.Minute,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	if s.spec == "" {
		slog.Info("scheduler: periodic reindex is disabled in configuration")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		slog.Info("scheduler: starting reindex job")
		if err := s.RunNow(); err != nil {
			slog.Error("scheduler: reindex failed", "err", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.isStarted = true
	slog.Info("scheduler: started", "cron", s.spec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	if s.isStarted {
		<-s.cron.Stop().Done()
		s.isStarted = false
		slog.Info("scheduler: stopped")
	}
}

// RunNow executes a full reindex immediately. Only one run happens at a time.
func (s *Scheduler) RunNow() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	count, err := s.reindexer.Reindex(ctx, s.source)

	s.mu.Lock()
	s.running = false
	s.lastRun = start
	s.lastCount = count
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		return err
	}
	slog.Info("scheduler: reindex completed", "indexed", count, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// Status describes the last reindex run
type Status struct {
	Running   bool      `json:"running"`
	LastRun   time.Time `json:"last_run,omitempty"`
	LastCount int       `json:"last_count"`
	LastError string    `json:"last_error,omitempty"`
}

// GetStatus returns the state of the last reindex run
func (s *Scheduler) GetStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		Running:   s.running,
		LastRun:   s.lastRun,
		LastCount: s.lastCount,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	return st
}
