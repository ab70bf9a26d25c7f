package services

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/models"
	"estatedesk/internal/pagination"
	"estatedesk/internal/uuid"
	"estatedesk/internal/validator"
)

// Upload subdirectories.
const (
	imagesDir     = "images"
	docsDir       = "docs"
	thumbnailsDir = "thumbnails"
)

var documentTypes = map[string]models.DocumentType{
	".png":  models.DocumentTypeImage,
	".jpg":  models.DocumentTypeImage,
	".jpeg": models.DocumentTypeImage,
	".pdf":  models.DocumentTypeDoc,
}

// DocumentTypeFor returns the document type for a file name, or false when
// the extension is not accepted.
func DocumentTypeFor(name string) (models.DocumentType, bool) {
	t, ok := documentTypes[strings.ToLower(filepath.Ext(name))]
	return t, ok
}

// documentService stores uploaded files on local disk and their metadata in the database.
type documentService struct {
	db        *gorm.DB
	uploadDir string
}

// NewDocumentService creates a new DocumentServicer rooted at uploadDir.
func NewDocumentService(db *gorm.DB, uploadDir string) DocumentServicer {
	return &documentService{db: db, uploadDir: uploadDir}
}

func (o DocumentOwner) count() int {
	n := 0
	for _, id := range []*string{o.ExpenseID, o.MaintenanceExpenseID, o.InvestmentID, o.PropertyID, o.AgentID} {
		if id != nil && *id != "" {
			n++
		}
	}
	return n
}

func subdirFor(t models.DocumentType) string {
	if t == models.DocumentTypeImage {
		return imagesDir
	}
	return docsDir
}

// Upload writes content under a fresh id and records the document.
func (s *documentService) Upload(name string, content io.Reader, owner DocumentOwner) (*models.Document, error) {
	docType, ok := DocumentTypeFor(name)
	if !ok {
		return nil, apperrors.ErrUnsupportedFileType
	}

	res := validator.Validate(owner)
	if err := res.Err(); err != nil {
		return nil, err
	}
	if owner.count() > 1 {
		return nil, apperrors.WithMessage(apperrors.ErrBadRequest, "A document can be linked to at most one record")
	}

	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(name))
	dir := filepath.Join(s.uploadDir, subdirFor(docType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	path := filepath.Join(dir, id+ext)
	if err := writeFile(path, content); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	doc := &models.Document{
		Name:                 name,
		URL:                  "/docs/" + id + ext,
		Type:                 docType,
		ExpenseID:            owner.ExpenseID,
		MaintenanceExpenseID: owner.MaintenanceExpenseID,
		InvestmentID:         owner.InvestmentID,
		PropertyID:           owner.PropertyID,
		AgentID:              owner.AgentID,
	}
	doc.ID = id
	if err := s.db.Create(doc).Error; err != nil {
		_ = os.Remove(path)
		return nil, apperrors.FromDB(err)
	}
	return doc, nil
}

func writeFile(path string, content io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// ListDocuments pages through documents, newest first.
func (s *documentService) ListDocuments(page pagination.PageRequest) (*pagination.PageResponse[models.Document], error) {
	page.Defaults(pagination.DocumentsPageSize)

	var total int64
	if err := s.db.Model(&models.Document{}).Count(&total).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	var docs []models.Document
	if err := s.db.Scopes(pagination.Paginate(page)).Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	resp := pagination.NewPageResponse(docs, page.Page, page.PageSize, total)
	return &resp, nil
}

func (s *documentService) GetDocument(id string) (*models.Document, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return nil, err
	}

	var doc models.Document
	if err := s.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, apperrors.NotFoundOr(err, apperrors.ErrDocumentNotFound)
	}
	return &doc, nil
}

// FilePath is where the document's content lives on disk.
func (s *documentService) FilePath(doc *models.Document) string {
	return filepath.Join(s.uploadDir, subdirFor(doc.Type), filepath.Base(doc.URL))
}

// ThumbnailPath returns the thumbnail for a document if one has been generated.
func (s *documentService) ThumbnailPath(id string) (string, error) {
	if _, err := uuid.Require("id", id); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, thumbnailsDir, id+".png")
	if _, err := os.Stat(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", apperrors.WithMessage(apperrors.ErrNotFound, "Thumbnail not found")
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return path, nil
}
