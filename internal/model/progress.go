package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ProgressStatus is the phase reported by a progress callback
type ProgressStatus string

const (
	ProgressDownloading    ProgressStatus = "downloading"
	ProgressFinished       ProgressStatus = "finished"
	ProgressPostProcessing ProgressStatus = "post_processing"
)

// NotAvailable is rendered for unknown progress values
const NotAvailable = "N/A"

// ProgressEvent is a single progress report relayed from the extractor.
// Negative numeric fields mean the value is unknown.
type ProgressEvent struct {
	Status         ProgressStatus
	Percent        float64 // 0 to 100
	BytesPerSecond float64
	ETA            time.Duration
	Title          string
}

// Message renders the event as a log line
func (e ProgressEvent) Message() string {
	if e.Status != ProgressDownloading {
		return "Processing and embedding metadata..."
	}
	return fmt.Sprintf("Downloading: %s at %s | ETA: %s", e.PercentString(), e.SpeedString(), e.ETAString())
}

// PercentString returns the percentage with one decimal, or N/A
func (e ProgressEvent) PercentString() string {
	if e.Percent < 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", e.Percent)
}

// SpeedString returns the transfer rate in binary units, or N/A
func (e ProgressEvent) SpeedString() string {
	if e.BytesPerSecond < 0 {
		return NotAvailable
	}
	return humanize.IBytes(uint64(e.BytesPerSecond)) + "/s"
}

// ETAString returns ETA formatted as hh:mm:ss or mm:ss, or N/A if unknown
func (e ProgressEvent) ETAString() string {
	if e.ETA < 0 {
		return NotAvailable
	}

	total := int(e.ETA.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}
