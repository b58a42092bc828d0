package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// multipartOverhead bounds the non-file part of an upload body: boundaries, part
// headers and the date field.
const multipartOverhead int64 = 1 << 20

// multipartMemory is the part of the form kept in memory; the rest spills to temp files.
const multipartMemory int64 = 8 << 20

// extractUploadForm reads the upload multipart body into a dto.UploadForm. It fails
// with a *apperrors.ValidationError when the file part is missing, is not a file or
// the body exceeds maxDocumentBytes plus the multipart overhead. Content type, size
// and date are carried through unchecked.
func extractUploadForm(c *gin.Context, maxDocumentBytes int64) (dto.UploadForm, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes+multipartOverhead)

	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return dto.UploadForm{}, apperrors.NewValidationError(apperrors.MsgTooLarge)
		}
		return dto.UploadForm{}, apperrors.NewValidationError(apperrors.MsgNoFile)
	}
	form := c.Request.MultipartForm

	files := form.File[dto.UploadFileField]
	if len(files) == 0 {
		if _, sentAsValue := form.Value[dto.UploadFileField]; sentAsValue {
			return dto.UploadForm{}, apperrors.NewValidationError(apperrors.MsgNotAFile)
		}
		return dto.UploadForm{}, apperrors.NewValidationError(apperrors.MsgNoFile)
	}
	header := files[0]

	f, err := header.Open()
	if err != nil {
		return dto.UploadForm{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return dto.UploadForm{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	var date string
	if values := form.Value[dto.UploadDateField]; len(values) > 0 {
		date = values[0]
	}

	return dto.UploadForm{
		Document: domain.Document{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        int64(len(content)),
			Content:     content,
		},
		Date: date,
	}, nil
}
