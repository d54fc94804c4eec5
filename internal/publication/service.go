package publication

import (
	"context"
	"log/slog"

	"real-estate-publications/internal/dto"
	"real-estate-publications/internal/models"
)

// Service implements the publication use cases on top of a Store
type Service struct {
	store   Store
	indexer Indexer
	logger  *slog.Logger
}

// NewService creates a publication service. indexer may be nil.
func NewService(store Store, indexer Indexer, logger *slog.Logger) *Service {
	if indexer == nil {
		indexer = nopIndexer{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, indexer: indexer, logger: logger}
}

// ListAll returns every publication, most recently created first
func (s *Service) ListAll(ctx context.Context) ([]dto.Publication, error) {
	items, err := s.store.ListPublications(ctx)
	if err != nil {
		return nil, unexpected("list publications", err)
	}
	return ToReadModels(items), nil
}

// GetOne returns a single publication by id
func (s *Service) GetOne(ctx context.Context, id int) (dto.Publication, error) {
	p, found, err := s.store.GetPublication(ctx, id)
	if err != nil {
		return dto.Publication{}, unexpected("get publication", err)
	}
	if !found {
		return dto.Publication{}, notFound(id)
	}
	return ToReadModel(p), nil
}

// Create validates and stores a new publication with its images
func (s *Service) Create(ctx context.Context, req dto.PublicationRequest) (dto.Publication, error) {
	if err := Validate(req); err != nil {
		return dto.Publication{}, err
	}

	entity := FromCreateRequest(req)
	if err := s.store.CreatePublication(ctx, &entity); err != nil {
		return dto.Publication{}, unexpected("create publication", err)
	}

	// Reload so the response carries the persisted image ids
	stored, found, err := s.store.GetPublication(ctx, entity.ID)
	if err != nil {
		return dto.Publication{}, unexpected("reload publication", err)
	}
	if !found {
		return dto.Publication{}, notFound(entity.ID)
	}

	s.logger.Info("publication created", "id", stored.ID, "images", stored.ImageURLs())
	s.syncIndex(stored)
	return ToReadModel(stored), nil
}

// Update validates the request and replaces the publication's fields and images
func (s *Service) Update(ctx context.Context, id int, req dto.PublicationRequest) error {
	if err := Validate(req); err != nil {
		return err
	}

	entity, found, err := s.store.GetPublication(ctx, id)
	if err != nil {
		return unexpected("get publication", err)
	}
	if !found {
		return notFound(id)
	}

	ApplyUpdate(&entity, req)
	found, err = s.store.UpdatePublication(ctx, &entity)
	if err != nil {
		return unexpected("update publication", err)
	}
	if !found {
		// removed between load and write
		return notFound(id)
	}

	s.logger.Info("publication updated", "id", id, "images", entity.ImageURLs())
	s.syncIndex(entity)
	return nil
}

// Delete removes a publication and its images
func (s *Service) Delete(ctx context.Context, id int) error {
	found, err := s.store.DeletePublication(ctx, id)
	if err != nil {
		return unexpected("delete publication", err)
	}
	if !found {
		return notFound(id)
	}

	s.logger.Info("publication deleted", "id", id)
	s.removeFromIndex([]int{id})
	return nil
}

// DeleteMany removes every existing publication among ids and reports which
// ids were deleted and which did not exist. Non-positive and duplicate ids are ignored.
func (s *Service) DeleteMany(ctx context.Context, ids []int) (dto.BulkDeleteResult, error) {
	if ids == nil {
		return dto.BulkDeleteResult{}, invalid("ids must be provided.")
	}

	requested := normalizeIDs(ids)
	if len(requested) == 0 {
		return dto.BulkDeleteResult{}, invalid("ids list is empty.")
	}

	deleted, err := s.store.DeletePublications(ctx, requested)
	if err != nil {
		return dto.BulkDeleteResult{}, unexpected("bulk delete publications", err)
	}

	result := partitionIDs(requested, deleted)
	s.logger.Info("publications bulk deleted",
		"requested", len(requested), "deleted", result.DeletedCount, "not_found", result.NotFoundCount)
	if result.DeletedCount > 0 {
		s.removeFromIndex(result.DeletedIDs)
	}
	return result, nil
}

// normalizeIDs drops non-positive and repeated ids, keeping first-seen order
func normalizeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	res := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

// partitionIDs splits requested into deleted and not-found, in requested order
func partitionIDs(requested, deleted []int) dto.BulkDeleteResult {
	removed := make(map[int]struct{}, len(deleted))
	for _, id := range deleted {
		removed[id] = struct{}{}
	}

	result := dto.BulkDeleteResult{
		DeletedIDs:  make([]int, 0, len(deleted)),
		NotFoundIDs: make([]int, 0, len(requested)-len(deleted)),
	}
	for _, id := range requested {
		if _, ok := removed[id]; ok {
			result.DeletedIDs = append(result.DeletedIDs, id)
		} else {
			result.NotFoundIDs = append(result.NotFoundIDs, id)
		}
	}
	result.DeletedCount = len(result.DeletedIDs)
	result.NotFoundCount = len(result.NotFoundIDs)
	return result
}

// syncIndex pushes the stored state of a publication to the indexer.
// Index failures never fail the request.
func (s *Service) syncIndex(p models.Publication) {
	if err := s.indexer.IndexPublications([]models.Publication{p}); err != nil {
		s.logger.Warn("index sync failed", "id", p.ID, "err", err)
	}
}

func (s *Service) removeFromIndex(ids []int) {
	if err := s.indexer.RemovePublications(ids); err != nil {
		s.logger.Warn("index removal failed", "ids", ids, "err", err)
	}
}
