package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// DocumentServiceImpl implements domain.DocumentService. The blob store
// holds the bytes; the repository holds the metadata row. Both sides of
// a delete are treated as one logical unit: the row is only removed
// after the blob deletion succeeded, so a failed blob delete never
// leaves orphaned metadata.
type DocumentServiceImpl struct {
	docRepo domain.DocumentRepository
	blobs   domain.BlobStorage
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo domain.DocumentRepository, blobs domain.BlobStorage) domain.DocumentService {
	return &DocumentServiceImpl{
		docRepo: docRepo,
		blobs:   blobs,
	}
}

// Upload implements domain.DocumentService
func (s *DocumentServiceImpl) Upload(ctx context.Context, userID uint, filename, contentType string, data []byte) (*domain.Document, error) {
	blobName := fmt.Sprintf("%d/%s%s", userID, uuid.New(), filepath.Ext(filename))

	blobURL, err := s.blobs.Upload(ctx, data, blobName, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob: %w", err)
	}

	doc := &domain.Document{
		UserID:           userID,
		OriginalFilename: filename,
		BlobName:         blobName,
		BlobURL:          blobURL,
		FileSize:         int64(len(data)),
		ContentType:      contentType,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		// Best effort: don't leave an unreferenced blob behind.
		if delErr := s.blobs.Delete(ctx, blobName); delErr != nil {
			log.Printf("BLOB_CLEANUP_FAILED: blob=%s error=%v", blobName, delErr)
		}
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	return doc, nil
}

// List implements domain.DocumentService
func (s *DocumentServiceImpl) List(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.docRepo.ListByUser(ctx, userID, offset, limit)
}

// Get implements domain.DocumentService
func (s *DocumentServiceImpl) Get(ctx context.Context, userID, documentID uint) (*domain.Document, error) {
	return s.docRepo.FindByID(ctx, documentID, userID)
}

// Download implements domain.DocumentService
func (s *DocumentServiceImpl) Download(ctx context.Context, userID, documentID uint) (*domain.Document, []byte, error) {
	doc, err := s.docRepo.FindByID(ctx, documentID, userID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.blobs.Download(ctx, doc.BlobName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download blob: %w", err)
	}

	return doc, data, nil
}

// Delete implements domain.DocumentService. Blob first, row second.
func (s *DocumentServiceImpl) Delete(ctx context.Context, userID, documentID uint) error {
	doc, err := s.docRepo.FindByID(ctx, documentID, userID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, doc.BlobName); err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return s.docRepo.Delete(ctx, documentID, userID)
}
