package download

// Package download implements the backup job pipeline on top of an external
// extractor (yt-dlp via github.com/lrstanley/go-ytdlp in production). It owns
// the single-job launcher, the probe/fetch worker, target classification and
// the options handed to the extractor.
