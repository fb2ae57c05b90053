package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// MockBlobStorage implements domain.BlobStorage interface for testing.
// With no Func fields set it behaves as an in-memory blob store.
type MockBlobStorage struct {
	UploadFunc   func(ctx context.Context, data []byte, blobName, contentType string) (string, error)
	DownloadFunc func(ctx context.Context, blobName string) ([]byte, error)
	DeleteFunc   func(ctx context.Context, blobName string) error
	ListFunc     func(ctx context.Context, prefix string) ([]string, error)
	ExistsFunc   func(ctx context.Context, blobName string) (bool, error)

	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMockBlobStorage creates a new MockBlobStorage with default behaviors
func NewMockBlobStorage() *MockBlobStorage {
	return &MockBlobStorage{blobs: make(map[string][]byte)}
}

// Upload stores a blob
func (m *MockBlobStorage) Upload(ctx context.Context, data []byte, blobName, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, blobName, contentType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[blobName] = append([]byte(nil), data...)
	return "https://blobs.test/" + blobName, nil
}

// Download retrieves a blob
func (m *MockBlobStorage) Download(ctx context.Context, blobName string) ([]byte, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, blobName)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[blobName]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return data, nil
}

// Delete removes a blob
func (m *MockBlobStorage) Delete(ctx context.Context, blobName string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, blobName)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, blobName)
	return nil
}

// List returns blob names matching the prefix
func (m *MockBlobStorage) List(ctx context.Context, prefix string) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

// Exists reports whether a blob is stored
func (m *MockBlobStorage) Exists(ctx context.Context, blobName string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, blobName)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[blobName]
	return ok, nil
}

// Compile-time interface compliance verification
var _ domain.BlobStorage = (*MockBlobStorage)(nil)
