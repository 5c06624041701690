package download

import (
	"path/filepath"
	"strings"

	"github.com/ytget/yt-backup/internal/model"
	"github.com/ytget/yt-backup/internal/platform"
)

// Probe markers and folder name fallbacks
const (
	PlaylistTypeMarker = "playlist"

	DefaultCollectionName = "Playlist"
	DefaultChannelName    = "Channel"
)

// extractor keys that identify channel-like pages
var channelExtractorHints = []string{"channel", "user"}

// Classify decides what the probed URL points at and which name the
// destination folder is derived from. Precedence: explicit playlist marker,
// channel-like extractor key, nested entries, single video.
func Classify(info *model.ProbeInfo) model.ProbeResult {
	if info == nil {
		return model.ProbeResult{Kind: model.TargetVideo, Name: DefaultChannelName}
	}

	switch {
	case info.Type == PlaylistTypeMarker:
		return model.ProbeResult{Kind: model.TargetCollection, Name: collectionName(info)}
	case isChannelExtractor(info.ExtractorKey):
		return model.ProbeResult{Kind: model.TargetChannel, Name: uploaderName(info)}
	case info.HasEntries:
		return model.ProbeResult{Kind: model.TargetCollection, Name: collectionName(info)}
	default:
		return model.ProbeResult{Kind: model.TargetVideo, Name: uploaderName(info)}
	}
}

// ResolveDestination joins the sanitized folder name under root
func ResolveDestination(root string, result model.ProbeResult) string {
	name := platform.SanitizeFolderName(result.Name)
	if name == "" {
		name = defaultName(result.Kind)
	}
	return filepath.Join(root, name)
}

// DestinationMessage returns the log line announcing where a job writes to
func DestinationMessage(kind model.TargetKind, destination string) string {
	switch kind {
	case model.TargetCollection:
		return "Downloading playlist to: " + destination
	case model.TargetChannel:
		return "Downloading channel content to: " + destination
	default:
		return "Downloading video to: " + destination
	}
}

func isChannelExtractor(key string) bool {
	key = strings.ToLower(key)
	for _, hint := range channelExtractorHints {
		if strings.Contains(key, hint) {
			return true
		}
	}
	return false
}

func collectionName(info *model.ProbeInfo) string {
	if info.Title != "" {
		return info.Title
	}
	return DefaultCollectionName
}

func uploaderName(info *model.ProbeInfo) string {
	switch {
	case info.Uploader != "":
		return info.Uploader
	case info.Channel != "":
		return info.Channel
	default:
		return DefaultChannelName
	}
}

func defaultName(kind model.TargetKind) string {
	if kind == model.TargetCollection {
		return DefaultCollectionName
	}
	return DefaultChannelName
}
