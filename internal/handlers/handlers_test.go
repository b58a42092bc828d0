package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"time"

	"github.com/SscSPs/journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/core/services"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/SscSPs/journal_app/internal/handlers"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPassword   = "correct horse"
	testCookieName = "journal_session"
)

// --- Mock UploadService ---
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadEntry(ctx context.Context, form dto.UploadForm) (*domain.StoredDocument, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredDocument), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "8080",
		StorageDriver:     config.StorageDriverMemory,
		S3BucketName:      "journal-bucket",
		MaxUploadBytes:    2 * 1024 * 1024,
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "journal-test",
		SessionCookieName: testCookieName,
		SecretPassword:    testPassword,
		LoginRateLimit:    "100-M",
	}
}

// newTestRouter wires the real routes around the given upload service.
func newTestRouter(cfg *config.Config, upload portssvc.UploadSvcFacade) (*gin.Engine, portssvc.TokenSvcFacade, error) {
	gin.SetMode(gin.TestMode)
	tokens := services.NewTokenService(cfg)
	container := &portssvc.ServiceContainer{
		Upload: upload,
		Auth:   services.NewAuthService(cfg, tokens),
		Token:  tokens,
	}
	r := gin.New()
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return nil, nil, err
	}
	return r, tokens, nil
}

type formFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// multipartBody builds an upload body. Files get an explicit part Content-Type.
func multipartBody(values map[string]string, files ...formFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.filename))
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.content); err != nil {
			return nil, "", err
		}
	}
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func decodeMessage(t require.TestingT, w *httptest.ResponseRecorder) dto.MessageResponse {
	var resp dto.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
