package service

import (
	"sort"

	"promisync/internal/domain"
)

// Classify compares manifest entries against the last-synced hashes of
// the stored products, matched by external key. An entry is new when its
// key has no stored counterpart, changed when the stored hash differs,
// unchanged when the hashes match; any stored key absent from the
// manifest is removed. Pure function of its two inputs.
func Classify(entries []domain.ManifestEntry, storedHashes map[string]string) domain.Classification {
	var c domain.Classification

	inManifest := make(map[string]bool, len(entries))
	for _, entry := range entries {
		inManifest[entry.ExternalKey] = true

		stored, ok := storedHashes[entry.ExternalKey]
		switch {
		case !ok:
			c.New = append(c.New, entry)
		case stored != entry.ContentHash:
			c.Changed = append(c.Changed, entry)
		default:
			c.Unchanged = append(c.Unchanged, entry)
		}
	}

	for key := range storedHashes {
		if !inManifest[key] {
			c.Removed = append(c.Removed, key)
		}
	}
	sort.Strings(c.Removed)

	return c
}
