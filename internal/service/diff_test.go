package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisync/internal/domain"
)

func entry(key, hash string) domain.ManifestEntry {
	return domain.ManifestEntry{
		SourceURL:   "https://catalog.example.com/" + key + ".json",
		ContentHash: hash,
		ExternalKey: key,
	}
}

func TestClassify(t *testing.T) {
	entries := []domain.ManifestEntry{
		entry("A", "h1"),
		entry("B", "h2"),
		entry("C", "h3"),
	}
	stored := map[string]string{"A": "h1", "B": "h0", "D": "h9"}

	c := Classify(entries, stored)

	require.Len(t, c.New, 1)
	assert.Equal(t, "C", c.New[0].ExternalKey)

	require.Len(t, c.Changed, 1)
	assert.Equal(t, "B", c.Changed[0].ExternalKey)

	require.Len(t, c.Unchanged, 1)
	assert.Equal(t, "A", c.Unchanged[0].ExternalKey)

	assert.Equal(t, []string{"D"}, c.Removed)
	assert.Equal(t, 3, c.Scanned())
}

func TestClassify_EmptyManifest(t *testing.T) {
	c := Classify(nil, map[string]string{"B": "h2", "A": "h1"})

	assert.Empty(t, c.New)
	assert.Empty(t, c.Changed)
	assert.Empty(t, c.Unchanged)
	assert.Equal(t, []string{"A", "B"}, c.Removed)
}

func TestClassify_EmptyStore(t *testing.T) {
	c := Classify([]domain.ManifestEntry{entry("A", "h1")}, nil)

	require.Len(t, c.New, 1)
	assert.Empty(t, c.Removed)
}

// Every (stored, manifest) pair lands in exactly one bucket.
func TestClassify_ExhaustiveAndExclusive(t *testing.T) {
	entries := []domain.ManifestEntry{
		entry("same", "h"),
		entry("diff", "h-new"),
		entry("fresh", "h"),
	}
	stored := map[string]string{"same": "h", "diff": "h-old", "gone": "h"}

	c := Classify(entries, stored)

	total := len(c.New) + len(c.Changed) + len(c.Unchanged) + len(c.Removed)
	assert.Equal(t, len(entries)+1, total)

	seen := map[string]int{}
	for _, e := range c.New {
		seen[e.ExternalKey]++
	}
	for _, e := range c.Changed {
		seen[e.ExternalKey]++
	}
	for _, e := range c.Unchanged {
		seen[e.ExternalKey]++
	}
	for _, k := range c.Removed {
		seen[k]++
	}
	for key, count := range seen {
		assert.Equal(t, 1, count, "key %s classified %d times", key, count)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	entries := []domain.ManifestEntry{entry("A", "h1"), entry("B", "h2")}
	stored := map[string]string{"A": "h0", "X": "h", "Y": "h", "Z": "h"}

	first := Classify(entries, stored)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Classify(entries, stored))
	}
}
