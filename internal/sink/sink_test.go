package sink

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promisync/internal/domain"
	"promisync/internal/httpclient"
	"promisync/testdata/utils"
)

func newTestSink(t *testing.T, handler http.Handler) (*HTTPSink, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	cfg := httpclient.RetryConfig{MaxAttempts: 3, BaseDelay: 10 * time.Millisecond, MaxDelay: 50 * time.Millisecond}
	client := httpclient.New(server.Client(), cfg, nil, logger)
	return New("search_index", server.URL, client, logger), server
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func testProduct() *domain.Product {
	return &domain.Product{
		SupplierCode:  "A23",
		ANumber:       "A100",
		SKU:           "A100",
		Name:          domain.LocalizedText{domain.LangEN: "Pen"},
		Currency:      "EUR",
		Categories:    []string{"writing"},
		PromidataHash: "hash-1",
		Variants: []domain.Variant{
			{SKU: "A100-RED", Color: "Red", Price: utils.Ptr(1.5), PrimaryForColor: true},
		},
	}
}

func TestUpsertDocument_SendsPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotDoc Document

	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDoc))
		w.WriteHeader(http.StatusOK)
	}))

	err := s.UpsertDocument(context.Background(), testProduct())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/documents/A23/A100", gotPath)
	assert.Equal(t, "A100", gotDoc.ExternalKey)
	assert.Equal(t, "hash-1", gotDoc.ContentHash)
	gotName, _ := gotDoc.Name.Get(domain.LangEN)
	assert.Equal(t, "Pen", gotName)
	require.Len(t, gotDoc.Variants, 1)
	assert.True(t, gotDoc.Variants[0].PrimaryForColor)
}

func TestUpsertDocument_RetriesOn5xx(t *testing.T) {
	var calls int
	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		body, err := json.Marshal(map[string]any{})
		require.NoError(t, err)
		// Verify the body is replayed on the retry.
		var doc Document
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "A100", doc.ExternalKey)
		w.Write(body)
	}))

	err := s.UpsertDocument(context.Background(), testProduct())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDeleteDocument_NotFoundIsSuccess(t *testing.T) {
	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := s.DeleteDocument(context.Background(), "A23", "A100")
	assert.NoError(t, err)
}

func TestDeleteDocument_UsesDeleteMethod(t *testing.T) {
	var gotMethod, gotPath string
	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	err := s.DeleteDocument(context.Background(), "A23", "A100")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/documents/A23/A100", gotPath)
}

func TestExists_Found(t *testing.T) {
	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(existsResponse{ContentHash: "hash-1"})
	}))

	found, hash, err := s.Exists(context.Background(), "A23", "A100")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hash-1", hash)
}

func TestExists_NotFound(t *testing.T) {
	s, _ := newTestSink(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	found, hash, err := s.Exists(context.Background(), "A23", "A100")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, hash)
}
