package platform

// Package platform contains OS integration and external tooling glue:
// the yt-dlp extractor adapter, tool installation, filesystem helpers and
// revealing folders in the system file manager.
