package download

import (
	"context"

	"github.com/ytget/yt-backup/internal/model"
)

// Reporter receives everything a job wants to show the user. Calls arrive
// from the worker goroutine; implementations marshal them onto the UI thread.
type Reporter interface {
	OnLogLine(text string)
	OnProgress(event model.ProgressEvent)
	OnJobState(job model.Job)
}

// Extractor is the external media library the worker delegates to.
type Extractor interface {
	// Probe queries metadata for url without downloading media
	Probe(ctx context.Context, url string) (*model.ProbeInfo, error)

	// Fetch downloads url with opts, blocking until the extractor exits
	Fetch(ctx context.Context, url string, opts model.FetchOptions, hooks model.FetchHooks) error
}

// Launcher defines the interface for the job launcher.
type Launcher interface {
	SetReporter(Reporter)
	Start(req model.JobRequest) (*model.Job, error)
	Stop() bool
	State() model.JobState
	Current() (model.Job, bool)
}
