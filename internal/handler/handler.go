package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"imageresizer/internal/dimension"
	"imageresizer/internal/domain"
	"imageresizer/internal/estimate"
	"imageresizer/internal/i18n"
	"imageresizer/internal/service"
)

type Handler struct {
	service service.ImageService
	catalog *i18n.Catalog
	log     *zap.Logger
}

func NewHandler(service service.ImageService, catalog *i18n.Catalog, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		catalog: catalog,
		log:     log,
	}
}

type imageRequest struct {
	Path string `json:"path" binding:"required"`
	domain.SelectionState
}

type inspectResponse struct {
	Image         *domain.ImageSelection `json:"image"`
	FileSize      string                 `json:"file_size"`
	Suggested     []domain.Dimensions    `json:"suggested"`
	SuggestedText []string               `json:"suggested_options"`
}

type estimateResponse struct {
	Choice   domain.DimensionChoice `json:"choice"`
	Estimate domain.SizeEstimate    `json:"estimate"`
	Lines    []line                 `json:"lines"`
}

type line struct {
	Key   i18n.Key `json:"key"`
	Label string   `json:"label"`
	Value string   `json:"value"`
}

func (h *Handler) translations(c *gin.Context) i18n.Translations {
	return h.catalog.Lookup(c.Query("lang"))
}

func (h *Handler) StandardDimensions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"dimensions": dimension.StandardNames()})
}

func (h *Handler) Languages(c *gin.Context) {
	langs := make([]gin.H, 0)
	for _, l := range i18n.Languages() {
		langs = append(langs, gin.H{"id": l, "name": l.DisplayName()})
	}
	c.JSON(http.StatusOK, gin.H{"languages": langs})
}

func (h *Handler) Translations(c *gin.Context) {
	lang, err := i18n.ParseLanguage(c.Param("language"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown language"})
		return
	}
	c.JSON(http.StatusOK, h.catalog.Lookup(string(lang)))
}

func (h *Handler) InspectImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image path is required"})
		return
	}

	sel, ok := h.selectImage(c, req.Path)
	if !ok {
		return
	}

	tr := h.translations(c)
	c.JSON(http.StatusOK, inspectResponse{
		Image:         sel,
		FileSize:      estimate.FormatSize(float64(sel.Size)),
		Suggested:     h.service.Suggestions(sel),
		SuggestedText: dimension.SuggestedOptions(tr.Get(i18n.SelectSuggestedDimension), sel.Width, sel.Height),
	})
}

func (h *Handler) EstimateImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image path is required"})
		return
	}

	sel, ok := h.selectImage(c, req.Path)
	if !ok {
		return
	}

	choice, est, err := h.service.Estimate(sel, req.SelectionState)
	if err != nil {
		h.abortWithSelectionError(c, err)
		return
	}

	tr := h.translations(c)
	c.JSON(http.StatusOK, estimateResponse{
		Choice:   choice,
		Estimate: est,
		Lines: []line{
			{i18n.NewSize, tr.Get(i18n.NewSize), estimate.FormatSize(est.ProjectedBytes)},
			{i18n.SizeReduction, tr.Get(i18n.SizeReduction), estimate.FormatPercent(est.ReductionPercent)},
			{i18n.SizeJPG, tr.Get(i18n.SizeJPG), estimate.FormatSize(est.JPGEstimateBytes)},
			{i18n.SizePNG, tr.Get(i18n.SizePNG), estimate.FormatSize(est.PNGEstimateBytes)},
		},
	})
}

// ResizeImage overwrites the image at the requested server-side path. Without
// APP_ROOT_DIR any readable image with an allowed extension can be replaced,
// so the server is meant to listen on localhost only.
func (h *Handler) ResizeImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image path is required"})
		return
	}

	sel, ok := h.selectImage(c, req.Path)
	if !ok {
		return
	}

	choice, err := h.service.Resize(c.Request.Context(), sel, req.SelectionState)
	if err != nil {
		if errors.Is(err, dimension.ErrNoSelection) || errors.Is(err, service.ErrInvalidDimensions) {
			h.abortWithSelectionError(c, err)
			return
		}
		h.log.Error("Failed to resize image", zap.String("path", sel.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resize image"})
		return
	}

	tr := h.translations(c)
	c.JSON(http.StatusOK, gin.H{
		"title":   tr.Get(i18n.Success),
		"message": tr.Get(i18n.ImageResized),
		"choice":  choice,
	})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) selectImage(c *gin.Context, path string) (*domain.ImageSelection, bool) {
	sel, err := h.service.Select(path)
	switch {
	case err == nil:
		return sel, true
	case errors.Is(err, os.ErrNotExist):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
	case errors.Is(err, service.ErrOutsideRoot):
		c.JSON(http.StatusForbidden, gin.H{"error": "Image is outside the allowed directory"})
	case errors.Is(err, service.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Invalid file format. Only JPG, JPEG, PNG, GIF allowed"})
	default:
		h.log.Error("Failed to read image", zap.String("path", path), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to read image"})
	}
	return nil, false
}

func (h *Handler) abortWithSelectionError(c *gin.Context, err error) {
	h.log.Debug("No usable dimension selection", zap.Error(err))
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
