package download

import (
	"context"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-backup/internal/model"
)

// Log messages shown to the user
const (
	LogSeparatorWidth = 50
	LogSeparatorChar  = "="

	MessageStarting        = "Starting download: "
	MessageCancelRequested = "Download cancellation requested..."
	MessageCompleted       = "All downloads completed!"
	MessageCancelled       = "Download cancelled."
	MessageFatalPrefix     = "Fatal error: "
	MessageCollectionSize  = "Items found: %d"

	JobIDPrefix = "job-"
)

// Service launches backup jobs, one at a time
type Service struct {
	extractor Extractor

	// state holds a model.JobState. It leaves idle only through Start and
	// returns to idle only when the worker goroutine exits.
	state atomic.Int32

	mu       sync.Mutex
	current  *model.Job
	cancel   context.CancelFunc
	done     chan struct{}
	reporter Reporter
}

// NewService creates a new launcher delegating to extractor
func NewService(extractor Extractor) *Service {
	return &Service{extractor: extractor}
}

// SetReporter sets the receiver of log lines, progress and state changes
func (s *Service) SetReporter(reporter Reporter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporter = reporter
}

// State returns the state of the current job, or idle
func (s *Service) State() model.JobState {
	return model.JobState(s.state.Load())
}

// Current returns a snapshot of the most recent job
func (s *Service) Current() (model.Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Job{}, false
	}
	return *s.current, true
}

// Start validates req and hands it to a new worker. It returns as soon as the
// worker is spawned; a second call while a job is active fails with
// ErrJobRunning and leaves the running job untouched.
func (s *Service) Start(req model.JobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.Format == "" {
		req.Format = model.FormatBest
	}

	if !s.state.CompareAndSwap(int32(model.JobStateIdle), int32(model.JobStateProbing)) {
		return nil, ErrJobRunning
	}

	token, cancel := context.WithCancel(context.Background())
	job := &model.Job{
		ID:        generateJobID(),
		Request:   req,
		State:     model.JobStateProbing,
		StartedAt: time.Now(),
	}
	done := make(chan struct{})

	s.mu.Lock()
	s.current = job
	s.cancel = cancel
	s.done = done
	snapshot := *job
	s.mu.Unlock()

	log.Printf("Starting job %s for %s (format=%s, subtitles=%v, dir=%s)",
		job.ID, req.URL, req.Format, req.EmbedSubtitles, req.OutputDir)

	s.logLine(strings.Repeat(LogSeparatorChar, LogSeparatorWidth))
	s.logLine(MessageStarting + req.URL)
	s.notifyState(snapshot)

	go s.runJob(token, job, done)

	return &snapshot, nil
}

// Stop asks the active job to cancel. Cancellation is cooperative: the worker
// notices it at its next stage or progress boundary.
func (s *Service) Stop() bool {
	if !s.State().IsActive() {
		return false
	}

	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return false
	}

	cancel()
	s.logLine(MessageCancelRequested)
	return true
}

// Wait blocks until the current worker, if any, has exited
func (s *Service) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// logLine forwards text to the reporter, one call per line
func (s *Service) logLine(text string) {
	reporter := s.getReporter()
	if reporter == nil {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		reporter.OnLogLine(line)
	}
}

// reportProgress forwards a progress event to the reporter
func (s *Service) reportProgress(event model.ProgressEvent) {
	if reporter := s.getReporter(); reporter != nil {
		reporter.OnProgress(event)
	}
}

// notifyState forwards a job snapshot to the reporter
func (s *Service) notifyState(job model.Job) {
	if reporter := s.getReporter(); reporter != nil {
		reporter.OnJobState(job)
	}
}

func (s *Service) getReporter() Reporter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reporter
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return JobIDPrefix + uuid.NewString()
}
