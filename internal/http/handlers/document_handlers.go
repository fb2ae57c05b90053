package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MaxUploadSize caps document uploads at 10 MiB.
const MaxUploadSize = 10 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/gif":          true,
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// DocumentHandlers handles document HTTP requests
type DocumentHandlers struct {
	docSvc domain.DocumentService
}

// NewDocumentHandlers creates new document handlers
func NewDocumentHandlers(docSvc domain.DocumentService) *DocumentHandlers {
	return &DocumentHandlers{docSvc: docSvc}
}

// Upload handles a multipart document upload
func (h *DocumentHandlers) Upload(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if !allowedContentTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File type %s is not supported.", contentType)})
		return
	}

	if fileHeader.Size > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large (Max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	if len(data) > MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large (Max 10MB)"})
		return
	}

	doc, err := h.docSvc.Upload(c.Request.Context(), user.ID, fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}

	c.JSON(http.StatusOK, documentResponse(doc))
}

// List returns the current user's documents
func (h *DocumentHandlers) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	docs, err := h.docSvc.List(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}

	out := make([]gin.H, 0, len(docs))
	for i := range docs {
		out = append(out, documentResponse(&docs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns a single document's metadata
func (h *DocumentHandlers) Get(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := documentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	doc, err := h.docSvc.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document"})
		return
	}

	c.JSON(http.StatusOK, documentResponse(doc))
}

// Download streams the document bytes back to the client
func (h *DocumentHandlers) Download(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := documentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	doc, data, err := h.docSvc.Download(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download document"})
		return
	}

	contentType := doc.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.OriginalFilename))
	c.Data(http.StatusOK, contentType, data)
}

// Delete removes a document and its backing blob
func (h *DocumentHandlers) Delete(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := documentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	if err := h.docSvc.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func documentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}

func documentResponse(doc *domain.Document) gin.H {
	return gin.H{
		"id":                doc.ID,
		"user_id":           doc.UserID,
		"original_filename": doc.OriginalFilename,
		"blob_name":         doc.BlobName,
		"blob_url":          doc.BlobURL,
		"file_size":         doc.FileSize,
		"content_type":      doc.ContentType,
		"created_at":        doc.CreatedAt,
	}
}
