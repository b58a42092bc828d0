package dto

import "github.com/SscSPs/journal_app/internal/core/domain"

// Multipart field names of the upload form.
const (
	UploadFileField = "pdfFile"
	UploadDateField = "date"
)

// UploadForm is the typed result of extracting the upload multipart body.
type UploadForm struct {
	Document domain.Document
	Date     string
}

// UploadResponse is returned on a successful upload.
type UploadResponse struct {
	Message string `json:"message" example:"File uploaded successfully"`
	Key     string `json:"key" example:"2025/July/07 July 2025.pdf"`
}

// MessageResponse is the body of every failed request and of plain acknowledgements.
// Error carries the underlying message of server-side failures only.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
