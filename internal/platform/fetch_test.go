package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ytget/yt-backup/internal/model"
)

const progressLine = `progress:{"info":{"id":"abc","title":"Clip"},"progress":{"status":"downloading","downloaded_bytes":10,"total_bytes":100,"filename":"clip.mp4"}}`

// installFakeYTDLP puts a shell script named yt-dlp first on PATH
func installFakeYTDLP(t *testing.T, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a unix shell")
	}

	binDir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(binDir, "yt-dlp"), []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	// keep go-ytdlp away from a cached real binary
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func fetchOptions(t *testing.T) model.FetchOptions {
	return model.FetchOptions{
		OutputTemplate:   filepath.Join(t.TempDir(), "%(title)s.%(ext)s"),
		Format:           "best",
		ProgressInterval: 100 * time.Millisecond,
	}
}

func TestFetch_ProgressErrorAborts(t *testing.T) {
	installFakeYTDLP(t, "echo '"+progressLine+"'\necho '"+progressLine+"'\nexec sleep 10")

	errStop := errors.New("stop requested")
	var (
		mu     sync.Mutex
		events []model.ProgressEvent
	)
	hooks := model.FetchHooks{
		OnProgress: func(event model.ProgressEvent) error {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return errStop
		},
	}

	started := time.Now()
	err := NewYTDLP(false).Fetch(context.Background(), "https://example.com/v", fetchOptions(t), hooks)

	if !errors.Is(err, errStop) {
		t.Fatalf("expected hook error to be returned, got %v", err)
	}
	if elapsed := time.Since(started); elapsed > 5*time.Second {
		t.Errorf("yt-dlp was not killed, fetch took %s", elapsed)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Fatalf("expected exactly 1 progress event before abort, got %d", len(events))
	}
	if events[0].Title != "Clip" || events[0].Percent != 10 {
		t.Errorf("unexpected event %+v", events[0])
	}
}

func TestFetch_ForwardsOutput(t *testing.T) {
	installFakeYTDLP(t, strings.Join([]string{
		"echo '[youtube] abc: Downloading webpage'",
		"echo '" + progressLine + "'",
		"echo '[debug] noise'",
		"echo 'WARNING: low quality' >&2",
	}, "\n"))

	var (
		lines    []string
		progress int
	)
	hooks := model.FetchHooks{
		OnProgress: func(model.ProgressEvent) error {
			progress++
			return nil
		},
		OnLog: func(line string) {
			lines = append(lines, line)
		},
	}

	if err := NewYTDLP(false).Fetch(context.Background(), "https://example.com/v", fetchOptions(t), hooks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if progress != 1 {
		t.Errorf("expected 1 progress event, got %d", progress)
	}
	expected := []string{"[youtube] abc: Downloading webpage", "WARNING: low quality"}
	if strings.Join(lines, "|") != strings.Join(expected, "|") {
		t.Errorf("expected log lines %q, got %q", expected, lines)
	}
}

func TestFetch_ExitCodeIsWrapped(t *testing.T) {
	installFakeYTDLP(t, "echo 'ERROR: Unsupported URL' >&2\nexit 1")

	err := NewYTDLP(false).Fetch(context.Background(), "https://example.com/v", fetchOptions(t), model.FetchHooks{})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "download https://example.com/v") {
		t.Errorf("expected wrapped error, got %v", err)
	}
}
