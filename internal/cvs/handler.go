package cvs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/cv/model"
	"cvbuilder-backend/cv/parse"
	"cvbuilder-backend/cv/suggest"
	"cvbuilder-backend/internal/extract"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc           *Service
	MaxUploadSize int64
}

// NewHandler constructs a Handler with the given upload size cap in bytes.
func NewHandler(svc *Service, maxUploadSize int64) *Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = 10 << 20
	}
	return &Handler{Svc: svc, MaxUploadSize: maxUploadSize}
}

// RegisterRoutes attaches CV routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cvs/import", h.importCV)
	rg.GET("/cvs", h.list)
	rg.GET("/cvs/:id", h.get)
	rg.GET("/cvs/:id/quality", h.quality)
	rg.POST("/cvs/:id/suggestions/apply", h.applySuggestion)
}

func (h *Handler) importCV(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Import(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, parse.ErrNoContent):
			respond.Error(c, http.StatusBadRequest, "no_content", "could not extract content", nil)
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", "only PDF, DOCX, and plain text files are supported", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to import cv", nil)
		}
		return
	}

	c.Set("cvId", res.CV.ID)
	respond.JSON(c, http.StatusCreated, toImportResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	records, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list cvs", nil)
		}
		return
	}

	resp := make([]SummaryResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toSummary(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	cvID := c.Param("id")

	rec, err := h.Svc.Get(c.Request.Context(), userID, cvID)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.Set("cvId", rec.CV.ID)
	respond.JSON(c, http.StatusOK, rec.CV)
}

func (h *Handler) quality(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	cvID := c.Param("id")

	report, err := h.Svc.Quality(c.Request.Context(), userID, cvID)
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.Set("cvId", cvID)
	respond.JSON(c, http.StatusOK, QualityResponse{
		Score:        report.Score,
		Validation:   report.Validation,
		Improvements: report.Improvements,
	})
}

func (h *Handler) applySuggestion(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	cvID := c.Param("id")

	var sug model.Suggestion
	if err := c.ShouldBindJSON(&sug); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.ApplySuggestion(c.Request.Context(), userID, cvID, sug)
	if err != nil {
		switch {
		case errors.Is(err, suggest.ErrUnknownSection):
			respond.Error(c, http.StatusUnprocessableEntity, "suggestion_not_applicable", "suggestion targets an unknown section", gin.H{"section": sug.Section})
		default:
			h.respondLookupError(c, err)
		}
		return
	}

	c.Set("cvId", rec.CV.ID)
	respond.JSON(c, http.StatusOK, ApplyResponse{CV: rec.CV, Score: rec.Score})
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch cv", nil)
	}
}
