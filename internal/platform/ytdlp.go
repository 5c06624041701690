package platform

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/pkg/errors"

	"github.com/ytget/yt-backup/internal/model"
)

// Progress and log relay constants
const (
	DefaultProgressInterval = 500 * time.Millisecond
	DebugLinePrefix         = "[debug]"
	ProgressJSONMarker      = `"downloaded_bytes"`
)

// YTDLP runs probes and fetches through the yt-dlp binary
type YTDLP struct {
	autoInstall bool

	installMu sync.Mutex
	installed bool
}

// NewYTDLP creates a new extractor. When autoInstall is set, yt-dlp and
// ffmpeg are resolved or downloaded before the first call.
func NewYTDLP(autoInstall bool) *YTDLP {
	return &YTDLP{autoInstall: autoInstall}
}

// EnsureInstalled makes sure yt-dlp and ffmpeg are available. A failed
// attempt is retried on the next call.
func (y *YTDLP) EnsureInstalled(ctx context.Context) error {
	if !y.autoInstall {
		return nil
	}

	y.installMu.Lock()
	defer y.installMu.Unlock()

	if y.installed {
		return nil
	}
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return errors.Wrap(err, "install yt-dlp")
	}
	if _, err := ytdlp.InstallFFmpeg(ctx, nil); err != nil {
		return errors.Wrap(err, "install ffmpeg")
	}
	y.installed = true
	return nil
}

// Probe queries metadata for url without downloading media. Collections are
// listed flat so only their top-level fields are fetched.
func (y *YTDLP) Probe(ctx context.Context, url string) (*model.ProbeInfo, error) {
	if err := y.EnsureInstalled(ctx); err != nil {
		return nil, err
	}

	res, err := ytdlp.New().
		SkipDownload().
		DumpSingleJSON().
		FlatPlaylist().
		Run(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "query metadata for %s", url)
	}

	return ProbeInfoFromResult(res)
}

// Fetch downloads url with opts. Progress is relayed to hooks.OnProgress;
// an error returned from it kills yt-dlp and is returned unchanged.
func (y *YTDLP) Fetch(ctx context.Context, url string, opts model.FetchOptions, hooks model.FetchHooks) error {
	if err := y.EnsureInstalled(ctx); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		abortMu  sync.Mutex
		abortErr error
	)

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	dl := BuildCommand(opts)
	dl.ProgressFunc(interval, func(update ytdlp.ProgressUpdate) {
		abortMu.Lock()
		defer abortMu.Unlock()

		if abortErr != nil || hooks.OnProgress == nil {
			return
		}
		if err := hooks.OnProgress(ProgressEventFromUpdate(update)); err != nil {
			abortErr = err
			cancel()
		}
	})

	res, err := dl.Run(runCtx, url)
	if res != nil && hooks.OnLog != nil {
		forwardOutput(res.Stdout, hooks.OnLog)
		forwardOutput(res.Stderr, hooks.OnLog)
	}

	abortMu.Lock()
	aborted := abortErr
	abortMu.Unlock()

	if aborted != nil {
		return aborted
	}
	if err != nil {
		return errors.Wrapf(err, "download %s", url)
	}
	return nil
}

// BuildCommand maps fetch options onto yt-dlp flags
func BuildCommand(opts model.FetchOptions) *ytdlp.Command {
	dl := ytdlp.New().
		Output(opts.OutputTemplate).
		Format(opts.Format)

	if opts.WriteDescription {
		dl.WriteDescription()
	} else {
		dl.NoWriteDescription()
	}
	if opts.WriteInfoJSON {
		dl.WriteInfoJSON()
	} else {
		dl.NoWriteInfoJSON()
	}
	if opts.WriteAutoSubs {
		dl.WriteAutoSubs()
	} else {
		dl.NoWriteAutoSubs()
	}
	// yt-dlp no longer writes annotations, WriteAnnotations needs no flag.

	if opts.WriteSubtitles {
		dl.WriteSubs()
	} else {
		dl.NoWriteSubs()
	}
	if len(opts.SubtitleLangs) > 0 {
		dl.SubLangs(strings.Join(opts.SubtitleLangs, ","))
	}

	for _, step := range opts.PostProcessors {
		switch step {
		case model.PostProcessEmbedSubtitle:
			dl.EmbedSubs()
		case model.PostProcessExtractAudio:
			dl.ExtractAudio()
			if opts.AudioCodec != "" {
				dl.AudioFormat(opts.AudioCodec)
			}
			if opts.AudioQuality != "" {
				dl.AudioQuality(opts.AudioQuality)
			}
		case model.PostProcessEmbedThumbnail:
			dl.EmbedThumbnail()
		}
	}

	if opts.IgnoreErrors {
		dl.IgnoreErrors()
	} else {
		dl.AbortOnError()
	}

	return dl
}

// ProbeInfoFromResult extracts the metadata of a --dump-single-json run.
// go-ytdlp only tags output lines as JSON for the -j style flags, so untagged
// stdout lines holding an object are decoded with ytdlp.ParseExtractedInfo as
// well. The last info dict wins.
func ProbeInfoFromResult(res *ytdlp.Result) (*model.ProbeInfo, error) {
	if res == nil {
		return nil, errors.New("no metadata in yt-dlp output")
	}

	infos, err := res.GetExtractedInfo()
	if err != nil {
		return nil, errors.Wrap(err, "decode metadata")
	}

	if len(infos) == 0 {
		for _, line := range res.OutputLogs {
			if line.Pipe != "stdout" || line.JSON != nil || !strings.HasPrefix(line.Line, "{") {
				continue
			}
			raw := json.RawMessage(line.Line)
			info, err := ytdlp.ParseExtractedInfo(&raw)
			if err != nil {
				return nil, errors.Wrap(err, "decode metadata")
			}
			infos = append(infos, info)
		}
	}

	if len(infos) == 0 {
		return nil, errors.New("no metadata in yt-dlp output")
	}
	return ProbeInfoFromExtracted(infos[len(infos)-1]), nil
}

// ProbeInfoFromExtracted maps the fields used for classification. A null
// entries list counts as absent.
func ProbeInfoFromExtracted(info *ytdlp.ExtractedInfo) *model.ProbeInfo {
	probe := &model.ProbeInfo{
		Type:         string(info.Type),
		Title:        deref(info.Title),
		Uploader:     deref(info.Uploader),
		Channel:      deref(info.Channel),
		ExtractorKey: deref(info.ExtractorKey),
		HasEntries:   info.Entries != nil,
		EntryCount:   len(info.Entries),
	}
	if info.PlaylistCount != nil && *info.PlaylistCount > probe.EntryCount {
		probe.EntryCount = *info.PlaylistCount
	}
	return probe
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// ProgressEventFromUpdate converts a yt-dlp progress update into a model event
func ProgressEventFromUpdate(update ytdlp.ProgressUpdate) model.ProgressEvent {
	event := model.ProgressEvent{
		Status:         model.ProgressDownloading,
		Percent:        -1,
		BytesPerSecond: -1,
		ETA:            -1,
	}

	switch update.Status {
	case ytdlp.ProgressStatusFinished:
		event.Status = model.ProgressFinished
	case ytdlp.ProgressStatusPostProcessing:
		event.Status = model.ProgressPostProcessing
	}

	if update.TotalBytes > 0 {
		event.Percent = float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
	}

	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			event.BytesPerSecond = float64(update.DownloadedBytes) / elapsed.Seconds()
		}
	}

	if eta := update.ETA(); eta > 0 {
		event.ETA = eta
	}

	if update.Info != nil && update.Info.Title != nil {
		event.Title = *update.Info.Title
	}

	return event
}

// forwardOutput sends each meaningful line of yt-dlp output to fn
func forwardOutput(output string, fn func(string)) {
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); keepLogLine(line) {
			fn(line)
		}
	}
}

// keepLogLine drops blank lines, debug chatter and raw progress JSON
func keepLogLine(line string) bool {
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, DebugLinePrefix):
		return false
	case strings.HasPrefix(line, "{"), strings.Contains(line, ProgressJSONMarker):
		return false
	}
	return true
}
