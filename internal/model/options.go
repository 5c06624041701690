package model

import "time"

// PostProcessor is a step the extractor applies to already downloaded media
type PostProcessor string

const (
	PostProcessEmbedSubtitle  PostProcessor = "EmbedSubtitle"
	PostProcessExtractAudio   PostProcessor = "ExtractAudio"
	PostProcessEmbedThumbnail PostProcessor = "EmbedThumbnail"
)

// FetchOptions is the configuration handed to the extractor for the fetch phase
type FetchOptions struct {
	OutputTemplate string
	Format         string

	// Sidecar files. Only an embedded thumbnail and subtitle track may
	// survive a job, so all of these stay false.
	WriteDescription bool
	WriteInfoJSON    bool
	WriteAnnotations bool
	WriteAutoSubs    bool

	// WriteSubtitles must be set for EmbedSubtitle to have a track to embed
	WriteSubtitles bool
	SubtitleLangs  []string

	AudioCodec   string
	AudioQuality string

	PostProcessors []PostProcessor

	// IgnoreErrors keeps a collection going past failing items
	IgnoreErrors bool

	ProgressInterval time.Duration
}

// HasPostProcessor reports whether step is scheduled
func (o FetchOptions) HasPostProcessor(step PostProcessor) bool {
	for _, pp := range o.PostProcessors {
		if pp == step {
			return true
		}
	}
	return false
}

// FetchHooks are the callbacks an extractor invokes during a fetch.
// A non-nil error from OnProgress aborts the fetch and is returned by it.
type FetchHooks struct {
	OnProgress func(ProgressEvent) error
	OnLog      func(text string)
}
