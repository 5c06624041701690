package model

// Package model defines the domain data used across the app: job requests,
// output formats, job states, probe results, progress events and log lines.
// Values here carry no behaviour beyond validation and formatting.
