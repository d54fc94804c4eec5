package search

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"real-estate-publications/internal/models"
)

type recordedCall struct {
	method string
	path   string
	body   string
}

// fakeMeilisearch answers every task-producing call with an enqueued task
func fakeMeilisearch(t *testing.T) (*httptest.Server, func() []recordedCall) {
	t.Helper()
	var (
		mu    sync.Mutex
		calls []recordedCall
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, recordedCall{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"taskUid":1,"indexUid":"publications","status":"enqueued","type":"documentAdditionOrUpdate","enqueuedAt":"2024-01-01T00:00:00Z"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []recordedCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedCall(nil), calls...)
	}
}

type fakeSource struct {
	items []models.Publication
	err   error
}

func (f fakeSource) ListPublications(ctx context.Context) ([]models.Publication, error) {
	return f.items, f.err
}

func TestIndexPublicationsSendsReadModels(t *testing.T) {
	srv, calls := fakeMeilisearch(t)
	client := NewSearchClient(srv.URL, "key", "")

	err := client.IndexPublications([]models.Publication{{
		ID:           3,
		PropertyType: "Casa",
		Images:       []models.PublicationImage{{ID: 9, URL: "a", PublicationID: 3}},
	}})
	if err != nil {
		t.Fatalf("IndexPublications: %v", err)
	}

	got := calls()
	if len(got) != 1 {
		t.Fatalf("calls = %d, want 1", len(got))
	}
	if got[0].method != http.MethodPost || got[0].path != "/indexes/publications/documents" {
		t.Fatalf("unexpected call %s %s", got[0].method, got[0].path)
	}

	var docs []map[string]any
	if err := json.Unmarshal([]byte(got[0].body), &docs); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(docs) != 1 || docs[0]["id"] != float64(3) || docs[0]["propertyType"] != "Casa" {
		t.Fatalf("unexpected documents: %v", docs)
	}
}

func TestEmptyBatchesSkipTheNetwork(t *testing.T) {
	srv, calls := fakeMeilisearch(t)
	client := NewSearchClient(srv.URL, "", "publications")

	if err := client.IndexPublications(nil); err != nil {
		t.Fatal(err)
	}
	if err := client.RemovePublications(nil); err != nil {
		t.Fatal(err)
	}
	if n := len(calls()); n != 0 {
		t.Fatalf("calls = %d, want 0", n)
	}
}

func TestRemovePublications(t *testing.T) {
	srv, calls := fakeMeilisearch(t)
	client := NewSearchClient(srv.URL, "", "publications")

	if err := client.RemovePublications([]int{4, 5}); err != nil {
		t.Fatalf("RemovePublications: %v", err)
	}
	got := calls()
	if len(got) != 1 || !strings.HasSuffix(got[0].path, "/documents/delete-batch") {
		t.Fatalf("unexpected calls: %+v", got)
	}
	if !strings.Contains(got[0].body, `"4"`) || !strings.Contains(got[0].body, `"5"`) {
		t.Fatalf("ids missing from body %q", got[0].body)
	}
}

func TestReindexBatches(t *testing.T) {
	srv, calls := fakeMeilisearch(t)
	client := NewSearchClient(srv.URL, "", "publications")

	items := make([]models.Publication, reindexBatchSize+1)
	for i := range items {
		items[i] = models.Publication{ID: i + 1}
	}

	n, err := client.Reindex(context.Background(), fakeSource{items: items})
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if n != len(items) {
		t.Fatalf("indexed = %d, want %d", n, len(items))
	}

	got := calls()
	if len(got) != 3 {
		t.Fatalf("calls = %d, want clear plus two batches", len(got))
	}
	if got[0].method != http.MethodDelete {
		t.Fatalf("first call = %s %s, want index clear", got[0].method, got[0].path)
	}
}

func TestReindexSourceFailure(t *testing.T) {
	srv, calls := fakeMeilisearch(t)
	client := NewSearchClient(srv.URL, "", "publications")

	_, err := client.Reindex(context.Background(), fakeSource{err: errors.New("db down")})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(calls()); n != 0 {
		t.Fatalf("index touched despite source failure: %d calls", n)
	}
}
