package promidata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"promisync/internal/domain"
	"promisync/internal/httpclient"
)

// Config holds per-supplier source configuration.
type Config struct {
	BaseURL      string
	SupplierCode string
}

// Source fetches a supplier's catalog over HTTP: the change manifest,
// the category tree, and per-product JSON documents.
type Source struct {
	client       *httpclient.Client
	baseURL      string
	supplierCode string
	logger       *slog.Logger
}

func New(cfg Config, client *httpclient.Client, logger *slog.Logger) *Source {
	return &Source{
		client:       client,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		supplierCode: cfg.SupplierCode,
		logger:       logger.With("supplier", cfg.SupplierCode),
	}
}

func (s *Source) SupplierCode() string {
	return s.supplierCode
}

func (s *Source) manifestURL() string {
	return fmt.Sprintf("%s/%s/Import.txt", s.baseURL, s.supplierCode)
}

func (s *Source) categoriesURL() string {
	return fmt.Sprintf("%s/%s/CAT.csv", s.baseURL, s.supplierCode)
}

// FetchManifest downloads and parses the manifest. Malformed lines are
// returned as per-line errors and do not fail the fetch.
func (s *Source) FetchManifest(ctx context.Context) ([]domain.ManifestEntry, []error, error) {
	text, err := s.client.GetText(ctx, s.manifestURL())
	if err != nil {
		return nil, nil, fmt.Errorf("fetch manifest: %w", err)
	}

	entries, lineErrs := ParseManifest(text)
	for _, lineErr := range lineErrs {
		s.logger.Warn("skipping malformed manifest line", "error", lineErr)
	}

	s.logger.Debug("fetched manifest", "entries", len(entries), "bad_lines", len(lineErrs))
	return entries, lineErrs, nil
}

// FetchCategories downloads and parses the supplier category tree.
func (s *Source) FetchCategories(ctx context.Context) ([]domain.Category, []error, error) {
	text, err := s.client.GetText(ctx, s.categoriesURL())
	if err != nil {
		return nil, nil, fmt.Errorf("fetch categories: %w", err)
	}

	categories, lineErrs := ParseCategories(text)
	for _, lineErr := range lineErrs {
		s.logger.Warn("skipping malformed category line", "error", lineErr)
	}

	return categories, lineErrs, nil
}

// FetchProduct downloads one product document and transforms it into the
// canonical representation.
func (s *Source) FetchProduct(ctx context.Context, sourceURL, contentHash string) (*domain.Product, error) {
	var doc Document
	if err := s.client.GetJSON(ctx, sourceURL, &doc); err != nil {
		return nil, err
	}

	product, err := Transform(&doc, s.supplierCode, contentHash)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", sourceURL, err)
	}
	return product, nil
}

// TestConnection checks that the manifest endpoint is reachable.
func (s *Source) TestConnection(ctx context.Context) error {
	if err := s.client.Head(ctx, s.manifestURL()); err != nil {
		return fmt.Errorf("manifest source unreachable: %w", err)
	}
	return nil
}
