// Package sink delivers synced products to downstream document stores
// (the search index and the RAG store) over their HTTP ingest APIs.
package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"promisync/internal/domain"
	"promisync/internal/httpclient"
)

// Document is the denormalized payload pushed to a sink. The content
// hash travels with it so verification can compare sink state against
// the system of record without refetching.
type Document struct {
	SupplierCode    string               `json:"supplier_code"`
	ExternalKey     string               `json:"external_key"`
	SKU             string               `json:"sku"`
	Name            domain.LocalizedText `json:"name"`
	Description     domain.LocalizedText `json:"description"`
	Currency        string               `json:"currency"`
	MainImageURL    *string              `json:"main_image_url,omitempty"`
	PrimaryCategory *string              `json:"primary_category,omitempty"`
	Categories      []string             `json:"categories"`
	Variants        []domain.Variant     `json:"variants"`
	ContentHash     string               `json:"content_hash"`
}

type existsResponse struct {
	ContentHash string `json:"content_hash"`
}

// HTTPSink talks to one downstream document store. Both sinks expose
// the same ingest surface: PUT/GET/DELETE on /documents/{supplier}/{key}.
type HTTPSink struct {
	name    string
	baseURL string
	client  *httpclient.Client
	logger  *slog.Logger
}

func New(name, baseURL string, client *httpclient.Client, logger *slog.Logger) *HTTPSink {
	return &HTTPSink{
		name:    name,
		baseURL: baseURL,
		client:  client,
		logger:  logger.With("sink", name),
	}
}

func (s *HTTPSink) Name() string {
	return s.name
}

func (s *HTTPSink) documentURL(supplierCode, externalKey string) string {
	return fmt.Sprintf("%s/documents/%s/%s", s.baseURL, supplierCode, externalKey)
}

func (s *HTTPSink) UpsertDocument(ctx context.Context, product *domain.Product) error {
	doc := Document{
		SupplierCode:    product.SupplierCode,
		ExternalKey:     product.ANumber,
		SKU:             product.SKU,
		Name:            product.Name,
		Description:     product.Description,
		Currency:        product.Currency,
		MainImageURL:    product.MainImageURL,
		PrimaryCategory: product.PrimaryCategory,
		Categories:      product.Categories,
		Variants:        product.Variants,
		ContentHash:     product.PromidataHash,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %s: %w", doc.ExternalKey, err)
	}

	url := s.documentURL(product.SupplierCode, product.ANumber)
	resp, err := s.client.Send(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("upsert document in %s: %w", s.name, err)
	}
	resp.Body.Close()

	s.logger.Debug("document upserted", "external_key", product.ANumber)
	return nil
}

// DeleteDocument removes the document from the sink. A 404 counts as
// success so removals stay idempotent.
func (s *HTTPSink) DeleteDocument(ctx context.Context, supplierCode, externalKey string) error {
	url := s.documentURL(supplierCode, externalKey)
	resp, err := s.client.Fetch(ctx, http.MethodDelete, url)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil
		}
		return fmt.Errorf("delete document from %s: %w", s.name, err)
	}
	resp.Body.Close()

	s.logger.Debug("document deleted", "external_key", externalKey)
	return nil
}

// Exists reports whether the sink holds the document, and the content
// hash it holds it under.
func (s *HTTPSink) Exists(ctx context.Context, supplierCode, externalKey string) (bool, string, error) {
	url := s.documentURL(supplierCode, externalKey)

	var got existsResponse
	err := s.client.GetJSON(ctx, url, &got)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return false, "", nil
		}
		return false, "", fmt.Errorf("check document in %s: %w", s.name, err)
	}
	return true, got.ContentHash, nil
}
