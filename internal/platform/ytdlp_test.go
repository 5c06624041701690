package platform

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/yt-backup/internal/model"
)

func stdoutResult(lines ...string) *ytdlp.Result {
	res := &ytdlp.Result{}
	for _, line := range lines {
		res.OutputLogs = append(res.OutputLogs, &ytdlp.ResultLog{Line: line, Pipe: "stdout"})
	}
	return res
}

func TestProbeInfoFromResult(t *testing.T) {
	tests := []struct {
		name     string
		result   *ytdlp.Result
		expected model.ProbeInfo
	}{
		{
			name:   "single video",
			result: stdoutResult(`{"_type":"video","id":"x","title":"Song","uploader":"Band","channel":"Band Channel","extractor_key":"Youtube"}`),
			expected: model.ProbeInfo{
				Type:         "video",
				Title:        "Song",
				Uploader:     "Band",
				Channel:      "Band Channel",
				ExtractorKey: "Youtube",
			},
		},
		{
			name:   "playlist with entries",
			result: stdoutResult(`{"_type":"playlist","id":"PL1","title":"My Playlist/2024","uploader":"U","extractor_key":"YoutubeTab","entries":[{"id":"a"},{"id":"b"},{"id":"c"}]}`),
			expected: model.ProbeInfo{
				Type:         "playlist",
				Title:        "My Playlist/2024",
				Uploader:     "U",
				ExtractorKey: "YoutubeTab",
				HasEntries:   true,
				EntryCount:   3,
			},
		},
		{
			name:   "playlist count beats partial entries",
			result: stdoutResult(`{"_type":"playlist","id":"PL2","title":"Big","entries":[{"id":"a"}],"playlist_count":120}`),
			expected: model.ProbeInfo{
				Type:       "playlist",
				Title:      "Big",
				HasEntries: true,
				EntryCount: 120,
			},
		},
		{
			name:   "empty entries list is present",
			result: stdoutResult(`{"_type":"playlist","id":"PL3","title":"Empty","entries":[]}`),
			expected: model.ProbeInfo{
				Type:       "playlist",
				Title:      "Empty",
				HasEntries: true,
			},
		},
		{
			name:     "null fields",
			result:   stdoutResult(`{"id":"x","title":"Clip","uploader":null,"channel":null,"entries":null}`),
			expected: model.ProbeInfo{Title: "Clip"},
		},
		{
			name:   "json after other lines",
			result: stdoutResult("[youtube] Extracting URL", `{"id":"x","title":"Clip","uploader":"Someone"}`),
			expected: model.ProbeInfo{
				Title:    "Clip",
				Uploader: "Someone",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ProbeInfoFromResult(tt.result)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *info != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *info)
			}
		})
	}
}

func TestProbeInfoFromResult_TaggedJSON(t *testing.T) {
	raw := json.RawMessage(`{"_type":"playlist","id":"UC1","title":"Uploads","channel":"Chan","extractor_key":"YoutubeTab"}`)
	res := &ytdlp.Result{OutputLogs: []*ytdlp.ResultLog{{Line: string(raw), JSON: &raw, Pipe: "stdout"}}}

	info, err := ProbeInfoFromResult(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Type != "playlist" || info.Channel != "Chan" || info.HasEntries {
		t.Errorf("unexpected info %+v", *info)
	}
}

func TestProbeInfoFromResult_Errors(t *testing.T) {
	tests := []struct {
		name   string
		result *ytdlp.Result
	}{
		{"nil result", nil},
		{"empty output", stdoutResult()},
		{"no json", stdoutResult("ERROR: Unsupported URL")},
		{"broken json", stdoutResult(`{"title":`)},
		{"json on stderr only", &ytdlp.Result{OutputLogs: []*ytdlp.ResultLog{{Line: `{"title":"x"}`, Pipe: "stderr"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ProbeInfoFromResult(tt.result); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestProgressEventFromUpdate(t *testing.T) {
	title := "Video Title"
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		TotalBytes:      1000,
		DownloadedBytes: 250,
		Started:         time.Now().Add(-2 * time.Second),
		Info:            &ytdlp.ExtractedInfo{Title: &title},
	}

	event := ProgressEventFromUpdate(update)

	if event.Status != model.ProgressDownloading {
		t.Errorf("expected downloading status, got %s", event.Status)
	}
	if event.Percent != 25 {
		t.Errorf("expected 25%%, got %v", event.Percent)
	}
	if event.BytesPerSecond <= 0 {
		t.Errorf("expected positive speed, got %v", event.BytesPerSecond)
	}
	if event.Title != title {
		t.Errorf("expected title %q, got %q", title, event.Title)
	}
}

func TestProgressEventFromUpdate_Unknown(t *testing.T) {
	event := ProgressEventFromUpdate(ytdlp.ProgressUpdate{Status: ytdlp.ProgressStatusDownloading})

	if event.Percent != -1 || event.BytesPerSecond != -1 || event.ETA != -1 {
		t.Errorf("expected unknown values, got %+v", event)
	}
	if event.Message() != "Downloading: N/A at N/A | ETA: N/A" {
		t.Errorf("unexpected message %q", event.Message())
	}
}

func TestProgressEventFromUpdate_Status(t *testing.T) {
	tests := []struct {
		status   ytdlp.ProgressStatus
		expected model.ProgressStatus
	}{
		{ytdlp.ProgressStatusDownloading, model.ProgressDownloading},
		{ytdlp.ProgressStatusPostProcessing, model.ProgressPostProcessing},
		{ytdlp.ProgressStatusFinished, model.ProgressFinished},
	}

	for _, tt := range tests {
		event := ProgressEventFromUpdate(ytdlp.ProgressUpdate{Status: tt.status})
		if event.Status != tt.expected {
			t.Errorf("status %s: expected %s, got %s", tt.status, tt.expected, event.Status)
		}
	}
}

func TestForwardOutput(t *testing.T) {
	output := "[youtube] abc: Downloading webpage\n" +
		"[debug] Command-line config\n" +
		"\n" +
		`{"status":"downloading","downloaded_bytes":10}` + "\n" +
		"WARNING: Requested format is not available\n"

	var lines []string
	forwardOutput(output, func(line string) {
		lines = append(lines, line)
	})

	expected := []string{
		"[youtube] abc: Downloading webpage",
		"WARNING: Requested format is not available",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(lines), lines)
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestEnsureInstalled_Disabled(t *testing.T) {
	y := NewYTDLP(false)
	if err := y.EnsureInstalled(context.Background()); err != nil {
		t.Errorf("expected nil error when auto install is disabled, got %v", err)
	}
}
