package publication

import (
	"context"

	"real-estate-publications/internal/models"
)

// Store is the persistence capability the service depends on.
// Lookups report absence through the bool result, not an error.
type Store interface {
	// ListPublications returns every publication with images, newest id first.
	ListPublications(ctx context.Context) ([]models.Publication, error)
	GetPublication(ctx context.Context, id int) (models.Publication, bool, error)
	// CreatePublication inserts p and its images in one transaction and sets the generated ids.
	CreatePublication(ctx context.Context, p *models.Publication) error
	// UpdatePublication overwrites scalars and replaces the image set atomically.
	UpdatePublication(ctx context.Context, p *models.Publication) (bool, error)
	DeletePublication(ctx context.Context, id int) (bool, error)
	// DeletePublications removes the subset of ids that exist, in one transaction,
	// and returns that subset.
	DeletePublications(ctx context.Context, ids []int) ([]int, error)
}

// Indexer mirrors publications into an external index after writes
type Indexer interface {
	IndexPublications(items []models.Publication) error
	RemovePublications(ids []int) error
}

type nopIndexer struct{}

func (nopIndexer) IndexPublications([]models.Publication) error { return nil }
func (nopIndexer) RemovePublications([]int) error               { return nil }
