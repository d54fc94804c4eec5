package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"real-estate-publications/internal/models"
	"real-estate-publications/internal/search"
)

type stubSource struct{}

func (stubSource) ListPublications(context.Context) ([]models.Publication, error) {
	return []models.Publication{{ID: 1}, {ID: 2}}, nil
}

type stubReindexer struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
}

func (r *stubReindexer) Reindex(ctx context.Context, src search.Source) (int, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.release != nil {
		<-r.release
	}
	if r.err != nil {
		return 0, r.err
	}
	items, err := src.ListPublications(ctx)
	return len(items), err
}

func TestRunNowRecordsStatus(t *testing.T) {
	r := &stubReindexer{}
	s := NewScheduler(r, stubSource{}, "")

	if err := s.RunNow(); err != nil {
		t.Fatalf("RunNow: %v", err)
	}
	st := s.GetStatus()
	if st.Running {
		t.Fatal("expected running=false after completion")
	}
	if st.LastCount != 2 {
		t.Fatalf("last count = %d, want 2", st.LastCount)
	}
	if st.LastError != "" {
		t.Fatalf("unexpected last error %q", st.LastError)
	}
}

func TestRunNowRecordsFailure(t *testing.T) {
	r := &stubReindexer{err: errors.New("index down")}
	s := NewScheduler(r, stubSource{}, "")

	if err := s.RunNow(); err == nil {
		t.Fatal("expected error")
	}
	if got := s.GetStatus().LastError; got != "index down" {
		t.Fatalf("last error = %q, want %q", got, "index down")
	}
}

func TestRunNowRejectsConcurrentRun(t *testing.T) {
	r := &stubReindexer{release: make(chan struct{})}
	s := NewScheduler(r, stubSource{}, "")

	done := make(chan error, 1)
	go func() { done <- s.RunNow() }()

	deadline := time.Now().Add(2 * time.Second)
	for !s.GetStatus().Running {
		if time.Now().After(deadline) {
			t.Fatal("first run never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := s.RunNow(); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}

	close(r.release)
	if err := <-done; err != nil {
		t.Fatalf("first run: %v", err)
	}
}

func TestStartWithoutSpecIsNoop(t *testing.T) {
	s := NewScheduler(&stubReindexer{}, stubSource{}, "")
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := NewScheduler(&stubReindexer{}, stubSource{}, "not a cron spec")
	if err := s.Start(); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}
