package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"real-estate-publications/internal/dto"

	"github.com/gin-gonic/gin"
)

// PublicationService is the set of use cases the publication endpoints call
type PublicationService interface {
	ListAll(ctx context.Context) ([]dto.Publication, error)
	GetOne(ctx context.Context, id int) (dto.Publication, error)
	Create(ctx context.Context, req dto.PublicationRequest) (dto.Publication, error)
	Update(ctx context.Context, id int, req dto.PublicationRequest) error
	Delete(ctx context.Context, id int) error
	DeleteMany(ctx context.Context, ids []int) (dto.BulkDeleteResult, error)
}

// PublicationHandler serves the publication REST endpoints
type PublicationHandler struct {
	service  PublicationService
	basePath string
	logger   *slog.Logger
}

// NewPublicationHandler creates a new publication handler. basePath is the
// prefix the routes are mounted under and is used to build Location headers.
func NewPublicationHandler(service PublicationService, basePath string, logger *slog.Logger) *PublicationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublicationHandler{
		service:  service,
		basePath: strings.TrimRight(basePath, "/"),
		logger:   logger,
	}
}

// Register mounts the routes on rg. write runs before every mutating route.
func (h *PublicationHandler) Register(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	withWrite := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, write...), handler)
	}

	rg.GET("/publications", h.List)
	rg.GET("/publications/:id", h.Get)
	rg.POST("/publications", withWrite(h.Create)...)
	rg.POST("/publications/bulk-delete", withWrite(h.BulkDelete)...)
	rg.PUT("/publications/:id", withWrite(h.Update)...)
	rg.DELETE("/publications/:id", withWrite(h.Delete)...)
}

// List returns every publication
// @Summary List publications
// @Description Returns every publication with its images, newest first
// @Tags publications
// @Produce json
// @Success 200 {array} dto.Publication
// @Failure 500 {object} Problem
// @Router /publications [get]
func (h *PublicationHandler) List(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one publication
// @Summary Get a publication
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.Publication
// @Failure 404 {object} Problem
// @Router /publications/{id} [get]
func (h *PublicationHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	item, err := h.service.GetOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create stores a new publication and returns it with a Location header
// @Summary Create a publication
// @Tags publications
// @Accept json
// @Produce json
// @Param publication body dto.PublicationRequest true "Publication data"
// @Success 201 {object} dto.Publication
// @Failure 400 {object} Problem
// @Failure 429 {object} Problem
// @Router /publications [post]
func (h *PublicationHandler) Create(c *gin.Context) {
	var req dto.PublicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Header("Location", h.basePath+"/publications/"+strconv.Itoa(created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update replaces a publication's fields and images
// @Summary Update a publication
// @Tags publications
// @Accept json
// @Param id path int true "Publication ID"
// @Param publication body dto.PublicationRequest true "Publication data"
// @Success 204
// @Failure 400 {object} Problem
// @Failure 404 {object} Problem
// @Router /publications/{id} [put]
func (h *PublicationHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.PublicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete removes a publication
// @Summary Delete a publication
// @Tags publications
// @Param id path int true "Publication ID"
// @Success 204
// @Failure 404 {object} Problem
// @Router /publications/{id} [delete]
func (h *PublicationHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BulkDelete removes several publications and reports which ids were missing
// @Summary Delete several publications
// @Tags publications
// @Accept json
// @Produce json
// @Param ids body dto.BulkDeleteRequest true "Publication IDs"
// @Success 200 {object} dto.BulkDeleteResult
// @Failure 400 {object} Problem
// @Router /publications/bulk-delete [post]
func (h *PublicationHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	result, err := h.service.DeleteMany(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// pathID parses the :id parameter. A non-integer id is answered like an unknown route.
func (h *PublicationHandler) pathID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeProblem(c, http.StatusNotFound, "Not found", "no resource matches "+c.Request.URL.Path+".")
		return 0, false
	}
	return id, true
}

func (h *PublicationHandler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Info("malformed request body", "path", c.Request.URL.Path, "err", err)
		writeProblem(c, http.StatusBadRequest, "Invalid request", "request body is not valid JSON for this endpoint.")
		return false
	}
	return true
}
