package domain

import "strings"

// PDFContentType is the MIME type every uploaded document must declare.
const PDFContentType = "application/pdf"

// Document is a rendered journal entry as received from the client.
type Document struct {
	Filename    string
	ContentType string // declared by the client in the multipart part header
	Size        int64
	Content     []byte
}

// IsPDF reports whether the declared content type starts with application/pdf.
// Parameters such as "; charset=binary" are tolerated.
func (d Document) IsPDF() bool {
	return strings.HasPrefix(d.ContentType, PDFContentType)
}

// StoredContentType is the content type written alongside the object.
func (d Document) StoredContentType() string {
	if d.ContentType == "" {
		return PDFContentType
	}
	return d.ContentType
}

// StoredDocument describes a document after a successful write.
type StoredDocument struct {
	Bucket string
	Key    string
	Size   int64
}
