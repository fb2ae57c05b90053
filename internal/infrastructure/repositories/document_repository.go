package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
)

// DocumentRepositoryImpl implements domain.DocumentRepository using GORM
type DocumentRepositoryImpl struct {
	db *gorm.DB
}

// DBDocument represents the database model for Document (with GORM tags)
type DBDocument struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"index"`
	OriginalFilename string `gorm:"size:255"`
	BlobName         string `gorm:"uniqueIndex;size:255"`
	BlobURL          string `gorm:"size:1024"`
	FileSize         int64
	ContentType      string `gorm:"size:128"`
	CreatedAt        time.Time
}

// TableName returns the table name for GORM
func (DBDocument) TableName() string {
	return "documents"
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) domain.DocumentRepository {
	return &DocumentRepositoryImpl{db: db}
}

// Create implements domain.DocumentRepository
func (r *DocumentRepositoryImpl) Create(ctx context.Context, doc *domain.Document) error {
	dbDoc := r.domainToDB(doc)
	if err := r.db.WithContext(ctx).Create(dbDoc).Error; err != nil {
		return err
	}
	doc.ID = dbDoc.ID
	doc.CreatedAt = dbDoc.CreatedAt
	return nil
}

// FindByID implements domain.DocumentRepository. Lookups are always
// scoped to the owning user.
func (r *DocumentRepositoryImpl) FindByID(ctx context.Context, id, userID uint) (*domain.Document, error) {
	var dbDoc DBDocument
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbDoc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbDoc), nil
}

// ListByUser implements domain.DocumentRepository
func (r *DocumentRepositoryImpl) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]domain.Document, error) {
	var dbDocs []DBDocument
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&dbDocs).Error
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(dbDocs))
	for i := range dbDocs {
		docs = append(docs, *r.dbToDomain(&dbDocs[i]))
	}
	return docs, nil
}

// Delete implements domain.DocumentRepository
func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id, userID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&DBDocument{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDocumentNotFound
	}
	return nil
}

// domainToDB converts domain document to database document
func (r *DocumentRepositoryImpl) domainToDB(doc *domain.Document) *DBDocument {
	return &DBDocument{
		ID:               doc.ID,
		UserID:           doc.UserID,
		OriginalFilename: doc.OriginalFilename,
		BlobName:         doc.BlobName,
		BlobURL:          doc.BlobURL,
		FileSize:         doc.FileSize,
		ContentType:      doc.ContentType,
	}
}

// dbToDomain converts database document to domain document
func (r *DocumentRepositoryImpl) dbToDomain(dbDoc *DBDocument) *domain.Document {
	return &domain.Document{
		ID:               dbDoc.ID,
		UserID:           dbDoc.UserID,
		OriginalFilename: dbDoc.OriginalFilename,
		BlobName:         dbDoc.BlobName,
		BlobURL:          dbDoc.BlobURL,
		FileSize:         dbDoc.FileSize,
		ContentType:      dbDoc.ContentType,
		CreatedAt:        dbDoc.CreatedAt,
	}
}
