package download

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ytget/yt-backup/internal/model"
)

func TestBuildOptions_Formats(t *testing.T) {
	tests := []struct {
		format   model.Format
		expected string
	}{
		{model.FormatBest, "bestvideo+bestaudio/best"},
		{model.FormatMP4, "best[ext=mp4]"},
		{model.FormatWebM, "best[ext=webm]"},
		{model.FormatMP3, "bestaudio"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			opts := BuildOptions(model.JobRequest{Format: tt.format}, "/out/Channel", model.TargetVideo)
			if opts.Format != tt.expected {
				t.Errorf("expected format %q, got %q", tt.expected, opts.Format)
			}
			if opts.OutputTemplate != filepath.Join("/out/Channel", "%(title)s.%(ext)s") {
				t.Errorf("unexpected output template %q", opts.OutputTemplate)
			}
		})
	}
}

func TestBuildOptions_AudioOnly(t *testing.T) {
	for _, subs := range []bool{false, true} {
		opts := BuildOptions(model.JobRequest{Format: model.FormatMP3, EmbedSubtitles: subs}, "/out", model.TargetVideo)

		if !opts.HasPostProcessor(model.PostProcessExtractAudio) {
			t.Error("expected audio extraction step")
		}
		if opts.AudioCodec != "mp3" || opts.AudioQuality != "320K" {
			t.Errorf("expected mp3 at 320K, got %s at %s", opts.AudioCodec, opts.AudioQuality)
		}
		if opts.HasPostProcessor(model.PostProcessEmbedThumbnail) {
			t.Error("audio-only output must not embed a thumbnail")
		}
		if opts.HasPostProcessor(model.PostProcessEmbedSubtitle) || opts.WriteSubtitles || len(opts.SubtitleLangs) != 0 {
			t.Error("audio-only output must not request subtitles")
		}
	}
}

func TestBuildOptions_Subtitles(t *testing.T) {
	for _, format := range []model.Format{model.FormatBest, model.FormatMP4, model.FormatWebM} {
		t.Run(string(format), func(t *testing.T) {
			opts := BuildOptions(model.JobRequest{Format: format, EmbedSubtitles: true}, "/out", model.TargetVideo)

			if !reflect.DeepEqual(opts.SubtitleLangs, []string{"en.*", "a.en.*"}) {
				t.Errorf("unexpected subtitle languages %v", opts.SubtitleLangs)
			}
			if !opts.WriteSubtitles {
				t.Error("subtitles must be written to be embedded")
			}

			expected := []model.PostProcessor{model.PostProcessEmbedSubtitle, model.PostProcessEmbedThumbnail}
			if !reflect.DeepEqual(opts.PostProcessors, expected) {
				t.Errorf("expected post processors %v, got %v", expected, opts.PostProcessors)
			}
		})
	}
}

func TestBuildOptions_NoSubtitles(t *testing.T) {
	opts := BuildOptions(model.JobRequest{Format: model.FormatBest}, "/out", model.TargetVideo)

	if opts.WriteSubtitles || len(opts.SubtitleLangs) != 0 || opts.HasPostProcessor(model.PostProcessEmbedSubtitle) {
		t.Error("subtitles must not be requested when disabled")
	}
	if !reflect.DeepEqual(opts.PostProcessors, []model.PostProcessor{model.PostProcessEmbedThumbnail}) {
		t.Errorf("expected thumbnail step only, got %v", opts.PostProcessors)
	}
}

func TestBuildOptions_NoSidecars(t *testing.T) {
	opts := BuildOptions(model.JobRequest{Format: model.FormatBest, EmbedSubtitles: true}, "/out", model.TargetCollection)

	if opts.WriteDescription || opts.WriteInfoJSON || opts.WriteAnnotations || opts.WriteAutoSubs {
		t.Errorf("sidecar files must be suppressed: %+v", opts)
	}
}

func TestBuildOptions_IgnoreErrors(t *testing.T) {
	tests := []struct {
		kind     model.TargetKind
		expected bool
	}{
		{model.TargetVideo, false},
		{model.TargetCollection, true},
		{model.TargetChannel, true},
	}

	for _, tt := range tests {
		opts := BuildOptions(model.JobRequest{Format: model.FormatBest}, "/out", tt.kind)
		if opts.IgnoreErrors != tt.expected {
			t.Errorf("kind %s: expected IgnoreErrors=%v", tt.kind, tt.expected)
		}
		if opts.ProgressInterval != DefaultProgressInterval {
			t.Errorf("expected progress interval %v, got %v", DefaultProgressInterval, opts.ProgressInterval)
		}
	}
}
