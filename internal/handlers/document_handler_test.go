package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/middleware"
	"estatedesk/internal/models"
	"estatedesk/internal/pagination"
	"estatedesk/internal/services"
)

type mockDocumentService struct {
	uploadFn        func(name string, content io.Reader, owner services.DocumentOwner) (*models.Document, error)
	listDocumentsFn func(page pagination.PageRequest) (*pagination.PageResponse[models.Document], error)
	getDocumentFn   func(id string) (*models.Document, error)
	filePath        string
	thumbnailPathFn func(id string) (string, error)
}

func (m *mockDocumentService) Upload(name string, content io.Reader, owner services.DocumentOwner) (*models.Document, error) {
	if m.uploadFn != nil {
		return m.uploadFn(name, content, owner)
	}
	return &models.Document{Name: name}, nil
}

func (m *mockDocumentService) ListDocuments(page pagination.PageRequest) (*pagination.PageResponse[models.Document], error) {
	if m.listDocumentsFn != nil {
		return m.listDocumentsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Document{}, 1, 30, 0)
	return &resp, nil
}

func (m *mockDocumentService) GetDocument(id string) (*models.Document, error) {
	if m.getDocumentFn != nil {
		return m.getDocumentFn(id)
	}
	return &models.Document{Base: models.Base{ID: id}, Name: "deed.pdf"}, nil
}

func (m *mockDocumentService) FilePath(*models.Document) string { return m.filePath }

func (m *mockDocumentService) ThumbnailPath(id string) (string, error) {
	if m.thumbnailPathFn != nil {
		return m.thumbnailPathFn(id)
	}
	return "", apperrors.WithMessage(apperrors.ErrNotFound, "Thumbnail not found")
}

var _ services.DocumentServicer = (*mockDocumentService)(nil)

func setupDocumentRouter(handler *DocumentHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/doc/upload", handler.UploadDocuments)
	auth.GET("/doc/list", handler.ListDocuments)
	auth.GET("/doc/:id", handler.DownloadDocument)
	auth.GET("/thumbnails/:id", handler.GetThumbnail)
	return r
}

func doUpload(t *testing.T, r *gin.Engine, fields map[string]string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for name, content := range files {
		part, err := w.CreateFormFile(middleware.UploadField, name)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write([]byte(content))
	}
	w.Close()

	req := httptest.NewRequest("POST", "/doc/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDocumentHandler_Upload(t *testing.T) {
	t.Run("stores every file with the owner", func(t *testing.T) {
		const propertyID = "0191e1a2-0000-7000-8000-0000000000cc"
		var names []string
		var gotOwner services.DocumentOwner
		svc := &mockDocumentService{
			uploadFn: func(name string, content io.Reader, owner services.DocumentOwner) (*models.Document, error) {
				data, _ := io.ReadAll(content)
				if len(data) == 0 {
					t.Errorf("empty content for %s", name)
				}
				names = append(names, name)
				gotOwner = owner
				return &models.Document{Name: name, Type: models.DocumentTypeDoc}, nil
			},
		}
		handler := NewDocumentHandler(svc, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doUpload(t, r,
			map[string]string{"propertyId": propertyID},
			map[string]string{"deed.pdf": "%PDF-1.4", "plan.png": "png"})

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(names) != 2 {
			t.Errorf("expected 2 uploads, got %d", len(names))
		}
		if gotOwner.PropertyID == nil || *gotOwner.PropertyID != propertyID {
			t.Errorf("expected property owner, got %+v", gotOwner)
		}
	})

	t.Run("returns 400 without files", func(t *testing.T) {
		handler := NewDocumentHandler(&mockDocumentService{}, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doUpload(t, r, map[string]string{"note": "x"}, nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if parseJSON(t, rec)["message"] != "No files uploaded" {
			t.Error("unexpected message")
		}
	})

	t.Run("propagates owner conflicts", func(t *testing.T) {
		svc := &mockDocumentService{
			uploadFn: func(string, io.Reader, services.DocumentOwner) (*models.Document, error) {
				return nil, apperrors.WithMessage(apperrors.ErrBadRequest, "A document can belong to one record only")
			},
		}
		handler := NewDocumentHandler(svc, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doUpload(t, r, nil, map[string]string{"deed.pdf": "%PDF"})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDocumentHandler_Download(t *testing.T) {
	t.Run("sends the file as attachment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stored.pdf")
		if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatal(err)
		}
		handler := NewDocumentHandler(&mockDocumentService{filePath: path}, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doRequest(r, "GET", "/doc/0191e1a2-0000-7000-8000-000000000001", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != "%PDF-1.4" {
			t.Errorf("unexpected content %q", rec.Body.String())
		}
		if cd := rec.Header().Get("Content-Disposition"); cd == "" {
			t.Error("expected Content-Disposition header")
		}
	})

	t.Run("returns 404 when file is gone", func(t *testing.T) {
		svc := &mockDocumentService{filePath: filepath.Join(t.TempDir(), "missing.pdf")}
		handler := NewDocumentHandler(svc, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doRequest(r, "GET", "/doc/0191e1a2-0000-7000-8000-000000000001", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestDocumentHandler_Thumbnail(t *testing.T) {
	t.Run("serves existing thumbnail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "thumb.png")
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
		svc := &mockDocumentService{
			thumbnailPathFn: func(string) (string, error) { return path, nil },
		}
		handler := NewDocumentHandler(svc, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doRequest(r, "GET", "/thumbnails/0191e1a2-0000-7000-8000-000000000001", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		handler := NewDocumentHandler(&mockDocumentService{}, &mockAuditService{})
		r := setupDocumentRouter(handler)

		rec := doRequest(r, "GET", "/thumbnails/0191e1a2-0000-7000-8000-000000000001", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
