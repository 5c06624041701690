package model

// JobState represents the lifecycle stage of a backup job
type JobState int32

const (
	// JobStateIdle means no job is running
	JobStateIdle JobState = iota

	// JobStateProbing means metadata is being queried without downloading media
	JobStateProbing

	// JobStateFetching means the extractor is downloading and post-processing
	JobStateFetching

	// JobStateCompleted means the job finished successfully
	JobStateCompleted

	// JobStateCancelled means the job was stopped by user
	JobStateCancelled

	// JobStateFailed means the job ended with an error
	JobStateFailed
)

// String returns the string representation of JobState
func (js JobState) String() string {
	switch js {
	case JobStateIdle:
		return "Idle"
	case JobStateProbing:
		return "Probing"
	case JobStateFetching:
		return "Fetching"
	case JobStateCompleted:
		return "Completed"
	case JobStateCancelled:
		return "Cancelled"
	case JobStateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsActive returns true while a worker owns the job
func (js JobState) IsActive() bool {
	return js == JobStateProbing || js == JobStateFetching
}

// IsFinished returns true if the job reached a terminal state (completed, cancelled, or failed)
func (js JobState) IsFinished() bool {
	return js == JobStateCompleted || js == JobStateCancelled || js == JobStateFailed
}
