package model

// TargetKind classifies what a URL points at
type TargetKind string

const (
	TargetVideo      TargetKind = "video"
	TargetCollection TargetKind = "collection"
	TargetChannel    TargetKind = "channel"
)

// IsCollectionLike reports whether the target groups several items
func (k TargetKind) IsCollectionLike() bool {
	return k == TargetCollection || k == TargetChannel
}

// ProbeInfo is the metadata returned by a probe, independent of the extractor
// that produced it. Empty strings mean the field was absent.
type ProbeInfo struct {
	Type         string // "_type" marker, e.g. "playlist" or "video"
	Title        string
	Uploader     string
	Channel      string
	ExtractorKey string
	HasEntries   bool // the result carried a nested entries field
	EntryCount   int
}

// ProbeResult is the classification derived from a ProbeInfo
type ProbeResult struct {
	Kind TargetKind
	Name string // display name the destination folder is derived from
}
