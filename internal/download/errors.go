package download

import "errors"

var (
	// ErrJobRunning is returned by Start while another job is active
	ErrJobRunning = errors.New("download already in progress")

	// ErrCancelled ends a job stopped by the user
	ErrCancelled = errors.New("download cancelled by user")
)
