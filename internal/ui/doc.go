// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the job form and the log pane, forwards Start/Stop to the launcher
// and receives job reports on the UI thread. All UI strings are localized via
// Localization.
package ui
