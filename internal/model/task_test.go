package model

import (
	"errors"
	"testing"
	"time"
)

func TestJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "  \t\n", true},
		{"video url", "https://youtube.com/watch?v=123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := JobRequest{URL: tt.url, Format: FormatBest}.Validate()
			if tt.wantErr && !errors.Is(err, ErrEmptyLocator) {
				t.Errorf("Validate() = %v, expected ErrEmptyLocator", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
		})
	}
}

func TestJob_Elapsed(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	job := &Job{}
	if job.Elapsed() != 0 {
		t.Errorf("Expected zero elapsed for unstarted job, got %v", job.Elapsed())
	}

	job.StartedAt = start
	job.FinishedAt = start.Add(90 * time.Second)
	if job.Elapsed() != 90*time.Second {
		t.Errorf("Expected 90s elapsed, got %v", job.Elapsed())
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		parsed, err := ParseFormat(string(f))
		if err != nil {
			t.Fatalf("ParseFormat(%s) returned error: %v", f, err)
		}
		if parsed != f {
			t.Errorf("ParseFormat(%s) = %s", f, parsed)
		}
	}

	if _, err := ParseFormat("flac"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestFormat_IsAudioOnly(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatBest, false},
		{FormatMP4, false},
		{FormatWebM, false},
		{FormatMP3, true},
	}

	for _, test := range tests {
		if test.format.IsAudioOnly() != test.expected {
			t.Errorf("Format(%s).IsAudioOnly() = %v, expected %v", test.format, !test.expected, test.expected)
		}
	}
}
