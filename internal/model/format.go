package model

import "fmt"

// Format is the output format requested for a job
type Format string

const (
	FormatBest Format = "best"
	FormatMP4  Format = "mp4"
	FormatWebM Format = "webm"
	FormatMP3  Format = "mp3"
)

// AllFormats returns the selectable formats in display order
func AllFormats() []Format {
	return []Format{FormatBest, FormatMP4, FormatWebM, FormatMP3}
}

// ParseFormat converts a stored or user supplied value into a Format
func ParseFormat(s string) (Format, error) {
	for _, f := range AllFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// IsAudioOnly reports whether the format drops the video stream
func (f Format) IsAudioOnly() bool {
	return f == FormatMP3
}

// String returns the string representation of Format
func (f Format) String() string {
	return string(f)
}
