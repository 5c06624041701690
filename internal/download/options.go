package download

import (
	"path/filepath"
	"time"

	"github.com/ytget/yt-backup/internal/model"
)

// Extractor option values
const (
	OutputNameTemplate = "%(title)s.%(ext)s"

	FormatBestMerge = "bestvideo+bestaudio/best"
	FormatBestAudio = "bestaudio"

	AudioCodecMP3   = "mp3"
	AudioQuality320 = "320K"

	DefaultProgressInterval = 500 * time.Millisecond
)

// SubtitleLanguages are requested when subtitles are embedded: English and
// auto-generated English tracks.
var SubtitleLanguages = []string{"en.*", "a.en.*"}

// BuildOptions derives the fetch configuration from a job request, the
// resolved destination folder and the probed target kind.
func BuildOptions(req model.JobRequest, destination string, kind model.TargetKind) model.FetchOptions {
	opts := model.FetchOptions{
		OutputTemplate:   filepath.Join(destination, OutputNameTemplate),
		IgnoreErrors:     kind.IsCollectionLike(),
		ProgressInterval: DefaultProgressInterval,
	}

	audioOnly := req.Format.IsAudioOnly()

	if req.EmbedSubtitles && !audioOnly {
		opts.SubtitleLangs = append([]string(nil), SubtitleLanguages...)
		opts.WriteSubtitles = true
		opts.PostProcessors = append(opts.PostProcessors, model.PostProcessEmbedSubtitle)
	}

	switch req.Format {
	case model.FormatBest:
		opts.Format = FormatBestMerge
	case model.FormatMP3:
		opts.Format = FormatBestAudio
		opts.AudioCodec = AudioCodecMP3
		opts.AudioQuality = AudioQuality320
		opts.PostProcessors = append(opts.PostProcessors, model.PostProcessExtractAudio)
	default:
		opts.Format = "best[ext=" + string(req.Format) + "]"
	}

	if !audioOnly {
		opts.PostProcessors = append(opts.PostProcessors, model.PostProcessEmbedThumbnail)
	}

	return opts
}
