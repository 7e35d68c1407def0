package domain

// ManifestEntry is one line of a supplier manifest: the URL of a product
// document and its supplier-computed content hash. Order in the manifest
// is not significant; hash equality determines "unchanged".
type ManifestEntry struct {
	SourceURL   string
	ContentHash string
	ExternalKey string // family id extracted from the URL
}

// Classification is the result of diffing a manifest against the stored
// hashes. The four buckets are exhaustive and mutually exclusive.
type Classification struct {
	New       []ManifestEntry
	Changed   []ManifestEntry
	Unchanged []ManifestEntry
	Removed   []string // stored external keys absent from the manifest
}

func (c Classification) Scanned() int {
	return len(c.New) + len(c.Changed) + len(c.Unchanged)
}
