package download

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/ytget/yt-backup/internal/model"
	"github.com/ytget/yt-backup/internal/platform"
)

// runJob is the worker goroutine. Every exit path, panics included, ends in
// a terminal job state and returns the launcher to idle.
func (s *Service) runJob(token context.Context, job *model.Job, done chan struct{}) {
	defer close(done)
	defer s.finish(job)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("worker panic: %v", r)
			log.Printf("Job %s panicked: %v", job.ID, r)
			s.setTerminal(job, model.JobStateFailed, err)
			s.logLine(MessageFatalPrefix + err.Error())
			s.logLine(string(debug.Stack()))
		}
	}()

	err := s.execute(token, job)

	switch {
	case err == nil:
		s.setTerminal(job, model.JobStateCompleted, nil)
		s.logLine(MessageCompleted)
	case errors.Is(err, ErrCancelled):
		s.setTerminal(job, model.JobStateCancelled, err)
		s.logLine(MessageCancelled)
	default:
		log.Printf("Job %s failed: %v", job.ID, err)
		s.setTerminal(job, model.JobStateFailed, err)
		s.logLine(MessageFatalPrefix + err.Error())
		s.logLine(fmt.Sprintf("%+v", err))
	}
}

// execute runs the probe and fetch phases. The token is checked between the
// phases and at every progress callback of the fetch.
func (s *Service) execute(token context.Context, job *model.Job) error {
	req := job.Request

	info, err := s.extractor.Probe(context.Background(), req.URL)
	if err != nil {
		return errors.Wrap(err, "probe")
	}
	if info == nil {
		return errors.New("probe returned no metadata")
	}

	result := Classify(info)
	destination := ResolveDestination(req.OutputDir, result)
	s.logLine(DestinationMessage(result.Kind, destination))
	if result.Kind.IsCollectionLike() && info.EntryCount > 0 {
		s.logLine(fmt.Sprintf(MessageCollectionSize, info.EntryCount))
	}

	if err := platform.CreateDirectoryIfNotExists(destination); err != nil {
		return errors.Wrapf(err, "create destination %s", destination)
	}

	s.update(job, func(j *model.Job) {
		j.Target = result.Kind
		j.Destination = destination
	})

	if token.Err() != nil {
		return ErrCancelled
	}

	s.transition(job, model.JobStateFetching)

	opts := BuildOptions(req, destination, result.Kind)
	hooks := model.FetchHooks{
		OnProgress: func(event model.ProgressEvent) error {
			if token.Err() != nil {
				return ErrCancelled
			}
			s.reportProgress(event)
			return nil
		},
		OnLog: s.logLine,
	}

	if err := s.extractor.Fetch(context.Background(), req.URL, opts, hooks); err != nil {
		if errors.Is(err, ErrCancelled) {
			return ErrCancelled
		}
		return errors.Wrap(err, "fetch")
	}

	if token.Err() != nil {
		return ErrCancelled
	}
	return nil
}

// update mutates the job under the lock and publishes a snapshot
func (s *Service) update(job *model.Job, fn func(*model.Job)) {
	s.mu.Lock()
	fn(job)
	snapshot := *job
	s.mu.Unlock()

	s.notifyState(snapshot)
}

// transition moves an active job to the next active state
func (s *Service) transition(job *model.Job, state model.JobState) {
	s.state.Store(int32(state))
	s.update(job, func(j *model.Job) {
		j.State = state
	})
}

// setTerminal records the outcome of a job without publishing it
func (s *Service) setTerminal(job *model.Job, state model.JobState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.State = state
	job.Err = err
	job.FinishedAt = time.Now()
}

// finish releases the token, publishes the terminal snapshot and returns the
// launcher to idle
func (s *Service) finish(job *model.Job) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if !job.State.IsFinished() {
		job.State = model.JobStateFailed
		job.FinishedAt = time.Now()
	}
	snapshot := *job
	s.mu.Unlock()

	log.Printf("Job %s finished: %s in %s", job.ID, snapshot.State, snapshot.Elapsed().Round(time.Millisecond))

	// The terminal snapshot must be published before a new Start can succeed
	s.notifyState(snapshot)
	s.state.Store(int32(model.JobStateIdle))
}
