package promidata

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"promisync/internal/domain"
)

// ParseManifest decodes the line-oriented "url|hash" manifest. Blank
// lines are ignored. A malformed line yields an error for that line
// only; parsing continues and all line errors are returned alongside
// the successfully parsed entries.
func ParseManifest(text string) ([]domain.ManifestEntry, []error) {
	var (
		entries []domain.ManifestEntry
		errs    []error
	)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			errs = append(errs, fmt.Errorf("manifest line %d: expected url|hash, got %q", i+1, line))
			continue
		}

		key, err := KeyFromURL(fields[0])
		if err != nil {
			errs = append(errs, fmt.Errorf("manifest line %d: %w", i+1, err))
			continue
		}

		entries = append(entries, domain.ManifestEntry{
			SourceURL:   fields[0],
			ContentHash: fields[1],
			ExternalKey: key,
		})
	}

	return entries, errs
}

// ParseCategories decodes the semicolon-delimited category file
// "code;name;parentCode". An empty parent code denotes a root category.
func ParseCategories(text string) ([]domain.Category, []error) {
	var (
		categories []domain.Category
		errs       []error
	)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ";")
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" {
			errs = append(errs, fmt.Errorf("category line %d: expected code;name;parentCode, got %q", i+1, line))
			continue
		}

		categories = append(categories, domain.Category{
			Code:       fields[0],
			Name:       fields[1],
			ParentCode: fields[2],
		})
	}

	return categories, errs
}

// KeyFromURL extracts the external product key (family id) from a
// manifest source URL: the path basename without its extension.
func KeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse source url %q: %w", rawURL, err)
	}

	base := path.Base(u.Path)
	key := strings.TrimSuffix(base, path.Ext(base))
	if key == "" || key == "." || key == "/" {
		return "", fmt.Errorf("source url %q has no product key", rawURL)
	}
	return key, nil
}
