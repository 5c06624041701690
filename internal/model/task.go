package model

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyLocator is returned when a job is requested without a URL
var ErrEmptyLocator = errors.New("please enter a video URL")

// JobRequest is a snapshot of the form taken when the user presses Start.
// It is passed by value and never modified once the job starts.
type JobRequest struct {
	URL            string
	Format         Format
	EmbedSubtitles bool
	OutputDir      string
}

// Validate checks the fields that must be present before a worker is spawned
func (r JobRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyLocator
	}
	return nil
}

// Job represents a single backup job
type Job struct {
	ID          string
	Request     JobRequest
	State       JobState
	Target      TargetKind // resolved by the probe
	Destination string     // folder the media is written into
	Err         error      // terminal error if any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Elapsed returns how long the job ran, or has been running so far
func (j *Job) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}
