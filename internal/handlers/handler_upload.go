package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_app/internal/apperrors"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/SscSPs/journal_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// uploadHandler handles journal document uploads.
type uploadHandler struct {
	uploadService    portssvc.UploadSvcFacade
	maxDocumentBytes int64
}

// newUploadHandler creates a new uploadHandler.
func newUploadHandler(us portssvc.UploadSvcFacade, maxDocumentBytes int64) *uploadHandler {
	return &uploadHandler{
		uploadService:    us,
		maxDocumentBytes: maxDocumentBytes,
	}
}

// registerUploadRoutes registers the upload route on an authenticated group.
func registerUploadRoutes(rg *gin.RouterGroup, uploadService portssvc.UploadSvcFacade, maxDocumentBytes int64) {
	h := newUploadHandler(uploadService, maxDocumentBytes)
	rg.POST("/upload", h.uploadEntry)
}

// uploadEntry godoc
// @Summary Upload a journal entry
// @Description Stores a rendered journal PDF under {YYYY}/{MonthName}/{DD MonthName YYYY}.pdf. Uploading the same date again overwrites the entry.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param pdfFile formData file true "Journal entry PDF"
// @Param date formData string true "Entry date, dd MMMM yyyy" example(07 July 2025)
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.MessageResponse "Missing file, not a PDF, too large or invalid date"
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Failure 500 {object} dto.MessageResponse "Bucket not configured or storage failure"
// @Security BearerAuth
// @Router /upload [post]
func (h *uploadHandler) uploadEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form, err := extractUploadForm(c, h.maxDocumentBytes)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.String("date", form.Date),
		slog.String("filename", form.Document.Filename),
		slog.Int64("size", form.Document.Size),
	)
	logger.Info("Received journal entry upload")

	stored, err := h.uploadService.UploadEntry(c.Request.Context(), form)
	if err != nil {
		h.respondError(c, logger, err)
		return
	}

	logger.Info("Journal entry stored", slog.String("bucket", stored.Bucket), slog.String("key", stored.Key))
	c.JSON(http.StatusOK, dto.UploadResponse{Message: apperrors.MsgUploadSucceeded, Key: stored.Key})
}

func (h *uploadHandler) respondError(c *gin.Context, logger *slog.Logger, err error) {
	var validationErr *apperrors.ValidationError
	var configErr *apperrors.ConfigurationError

	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Rejected journal entry upload", slog.String("reason", validationErr.Message))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: validationErr.Message})
	case errors.As(err, &configErr):
		logger.Error("Upload failed on server configuration", slog.String("setting", configErr.Setting))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: configErr.Message})
	case errors.Is(err, apperrors.ErrStorage):
		logger.Error("Failed to write journal entry to storage", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: apperrors.MsgUploadFailed, Error: err.Error()})
	default:
		logger.Error("Unexpected upload failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: apperrors.MsgInternal})
	}
}
