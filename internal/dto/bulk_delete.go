package dto

// BulkDeleteRequest lists the publication ids to remove.
// A missing "ids" key decodes to a nil slice.
type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

// BulkDeleteResult partitions the requested ids into removed and missing
type BulkDeleteResult struct {
	DeletedIDs    []int `json:"deletedIds"`
	NotFoundIDs   []int `json:"notFoundIds"`
	DeletedCount  int   `json:"deletedCount"`
	NotFoundCount int   `json:"notFoundCount"`
}
