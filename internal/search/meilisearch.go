package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"real-estate-publications/internal/models"
	"real-estate-publications/internal/publication"

	"github.com/meilisearch/meilisearch-go"
)

const reindexBatchSize = 500

// Source lists the publications to rebuild the index from
type Source interface {
	ListPublications(ctx context.Context) ([]models.Publication, error)
}

// SearchClient mirrors publications into a Meilisearch index.
// It implements publication.Indexer.
type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(host, apiKey, index string) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: apiKey,
	})

	if index == "" {
		index = "publications"
	}

	return &SearchClient{
		client: client,
		index:  index,
	}
}

// InitIndex initializes the Meilisearch index
func (s *SearchClient) InitIndex() error {
	// Create index if it doesn't exist
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	// Ignore error if index already exists
	if err != nil && err.Error() != "index already exists" {
		return err
	}

	// Configure searchable attributes
	_, err = s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"propertyType",
		"operationType",
		"description",
	})
	if err != nil {
		return err
	}

	// Configure filterable attributes
	_, err = s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"propertyType",
		"operationType",
		"roomCount",
		"areaM2",
		"ageYears",
	})
	if err != nil {
		return err
	}

	return nil
}

// IndexPublications adds or replaces documents for the given publications
func (s *SearchClient) IndexPublications(items []models.Publication) error {
	if len(items) == 0 {
		return nil
	}
	_, err := s.client.Index(s.index).AddDocuments(publication.ToReadModels(items), "id")
	return err
}

// RemovePublications deletes documents by publication id
func (s *SearchClient) RemovePublications(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, strconv.Itoa(id))
	}
	_, err := s.client.Index(s.index).DeleteDocuments(keys)
	return err
}

// Reindex replaces the whole index with the current contents of src
func (s *SearchClient) Reindex(ctx context.Context, src Source) (int, error) {
	items, err := src.ListPublications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list publications: %w", err)
	}

	if _, err := s.client.Index(s.index).DeleteAllDocuments(); err != nil {
		return 0, fmt.Errorf("failed to clear index: %w", err)
	}

	for start := 0; start < len(items); start += reindexBatchSize {
		end := start + reindexBatchSize
		if end > len(items) {
			end = len(items)
		}
		if err := s.IndexPublications(items[start:end]); err != nil {
			return start, fmt.Errorf("failed to index batch at %d: %w", start, err)
		}
		slog.Debug("reindex progress", "indexed", end, "total", len(items))
	}

	return len(items), nil
}
