package mocks

import (
	"context"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockDocumentRepository implements domain.DocumentRepository interface for testing
type MockDocumentRepository struct {
	CreateFunc     func(ctx context.Context, doc *domain.Document) error
	FindByIDFunc   func(ctx context.Context, id, userID uint) (*domain.Document, error)
	ListByUserFunc func(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error)
	DeleteFunc     func(ctx context.Context, id, userID uint) error
}

// NewMockDocumentRepository creates a new MockDocumentRepository with default behaviors
func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

// Create creates a new document record
func (m *MockDocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, doc)
	}
	// Default behavior: success
	return nil
}

// FindByID finds a document by id scoped to a user
func (m *MockDocumentRepository) FindByID(ctx context.Context, id, userID uint) (*domain.Document, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrDocumentNotFound
}

// ListByUser lists a user's documents
func (m *MockDocumentRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, offset, limit)
	}
	// Default behavior: empty list
	return []domain.Document{}, nil
}

// Delete removes a document record
func (m *MockDocumentRepository) Delete(ctx context.Context, id, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.DocumentRepository = (*MockDocumentRepository)(nil)
