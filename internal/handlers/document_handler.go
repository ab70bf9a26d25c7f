package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/middleware"
	"estatedesk/internal/models"
	"estatedesk/internal/pagination"
	"estatedesk/internal/services"
)

// DocumentHandler handles document uploads and downloads.
type DocumentHandler struct {
	documentService services.DocumentServicer
	auditService    services.AuditServicer
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService services.DocumentServicer, auditService services.AuditServicer) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, auditService: auditService}
}

// UploadDocuments handles a multipart upload of one or more files.
// @Summary     Upload documents
// @Description Upload png, jpg, jpeg or pdf files of at most 5MB each, optionally linked to one record
// @Tags        documents
// @Accept      multipart/form-data
// @Produce     json
// @Param       files                formData file   true  "Files"
// @Param       expenseId            formData string false "Custom expense ID"
// @Param       maintenanceExpenseId formData string false "Maintenance expense ID"
// @Param       investmentId         formData string false "Investment ID"
// @Param       propertyId           formData string false "Property ID"
// @Param       agentId              formData string false "Agent ID"
// @Success     201 {array}  models.Document "Stored documents"
// @Failure     400 {object} ErrorResponse "No files or invalid owner"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     413 {object} ErrorResponse "File too large"
// @Failure     422 {object} ErrorResponse "Unsupported file type"
// @Router      /doc/upload [post]
func (h *DocumentHandler) UploadDocuments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid multipart form"))
		return
	}
	files := form.File[middleware.UploadField]
	if len(files) == 0 {
		respondWithError(c, apperrors.ErrNoFilesUploaded)
		return
	}

	var owner services.DocumentOwner
	if err := c.ShouldBind(&owner); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid data: "+err.Error()))
		return
	}

	docs := make([]models.Document, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
			return
		}
		doc, err := h.documentService.Upload(fh.Filename, f, owner)
		f.Close()
		if err != nil {
			respondWithError(c, err)
			return
		}
		docs = append(docs, *doc)

		h.auditService.Log(userID, "UPLOAD_DOCUMENT", "document", doc.ID, c.ClientIP(),
			map[string]any{"name": doc.Name, "type": string(doc.Type)})
	}

	c.JSON(http.StatusCreated, docs)
}

// ListDocuments handles listing documents.
// @Summary     List documents
// @Tags        documents
// @Produce     json
// @Param       page     query int false "Page number (default 1)"
// @Param       pageSize query int false "Items per page (default 30, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Document] "Documents"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /doc/list [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var page pagination.PageRequest
	if err := bindQuery(c, &page); err != nil {
		respondWithError(c, err)
		return
	}

	docs, err := h.documentService.ListDocuments(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// DownloadDocument handles sending a stored file.
// @Summary     Download document
// @Tags        documents
// @Produce     octet-stream
// @Param       id path string true "Document ID"
// @Success     200 {file}   file "File content"
// @Failure     400 {object} ErrorResponse "Invalid document ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Document not found"
// @Router      /doc/{id} [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	doc, err := h.documentService.GetDocument(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	path := h.documentService.FilePath(doc)
	if _, err := os.Stat(path); err != nil {
		respondWithError(c, apperrors.ErrDocumentNotFound)
		return
	}
	c.FileAttachment(path, doc.Name)
}

// GetThumbnail handles sending a document thumbnail.
// @Summary     Get thumbnail
// @Tags        documents
// @Produce     png
// @Param       id path string true "Document ID"
// @Success     200 {file}   file "PNG thumbnail"
// @Failure     400 {object} ErrorResponse "Invalid document ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Thumbnail not found"
// @Router      /thumbnails/{id} [get]
func (h *DocumentHandler) GetThumbnail(c *gin.Context) {
	path, err := h.documentService.ThumbnailPath(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.File(path)
}
