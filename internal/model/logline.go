package model

import "time"

// LogTimeFormat is the timestamp layout used in the log pane
const LogTimeFormat = "15:04:05"

// LogLine is one entry of the job log
type LogLine struct {
	Time time.Time
	Text string
}

// NewLogLine stamps text with the current time
func NewLogLine(text string) LogLine {
	return LogLine{Time: time.Now(), Text: text}
}

// String renders the line for display
func (l LogLine) String() string {
	return "[" + l.Time.Format(LogTimeFormat) + "] " + l.Text
}
