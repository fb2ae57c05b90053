package mocks

import (
	"context"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockDocumentService implements domain.DocumentService interface for testing
type MockDocumentService struct {
	UploadFunc   func(ctx context.Context, userID uint, filename, contentType string, data []byte) (*domain.Document, error)
	ListFunc     func(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error)
	GetFunc      func(ctx context.Context, userID, documentID uint) (*domain.Document, error)
	DownloadFunc func(ctx context.Context, userID, documentID uint) (*domain.Document, []byte, error)
	DeleteFunc   func(ctx context.Context, userID, documentID uint) error
}

// NewMockDocumentService creates a new MockDocumentService with default behaviors
func NewMockDocumentService() *MockDocumentService {
	return &MockDocumentService{}
}

// Upload stores a document
func (m *MockDocumentService) Upload(ctx context.Context, userID uint, filename, contentType string, data []byte) (*domain.Document, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, userID, filename, contentType, data)
	}
	// Default behavior: echo back a record
	return &domain.Document{
		ID:               1,
		UserID:           userID,
		OriginalFilename: filename,
		ContentType:      contentType,
		FileSize:         int64(len(data)),
	}, nil
}

// List returns a user's documents
func (m *MockDocumentService) List(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, offset, limit)
	}
	// Default behavior: empty list
	return []domain.Document{}, nil
}

// Get returns a document's metadata
func (m *MockDocumentService) Get(ctx context.Context, userID, documentID uint) (*domain.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, documentID)
	}
	// Default behavior: not found
	return nil, domain.ErrDocumentNotFound
}

// Download returns a document and its bytes
func (m *MockDocumentService) Download(ctx context.Context, userID, documentID uint) (*domain.Document, []byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, userID, documentID)
	}
	// Default behavior: not found
	return nil, nil, domain.ErrDocumentNotFound
}

// Delete removes a document
func (m *MockDocumentService) Delete(ctx context.Context, userID, documentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, documentID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.DocumentService = (*MockDocumentService)(nil)
