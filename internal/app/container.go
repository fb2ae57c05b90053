package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/domain"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/config"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/infrastructure/auth"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/infrastructure/database"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/infrastructure/notifications"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/infrastructure/repositories"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/infrastructure/storage"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB    *gorm.DB
	Blobs domain.BlobStorage

	UserRepo domain.UserRepository
	DocRepo  domain.DocumentRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	EmailSvc    domain.EmailService
	OTPSvc      domain.OTPService
	AuthSvc     domain.AuthService
	DocSvc      domain.DocumentService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initStorage(ctx); err != nil {
		return nil, err
	}

	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initStorage(ctx context.Context) error {
	blobs, err := storage.New(ctx, storage.Config{
		Region:    c.Config.S3Region,
		Bucket:    c.Config.S3Bucket,
		Endpoint:  c.Config.S3Endpoint,
		AccessKey: c.Config.S3AccessKey,
		SecretKey: c.Config.S3SecretKey,
	})
	if err != nil {
		return err
	}
	c.Blobs = blobs
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.DocRepo = repositories.NewDocumentRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()

	tokenSvc, err := auth.NewJWTService(
		c.Config.JWTSecret,
		c.Config.JWTAlgorithm,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
	)
	if err != nil {
		return err
	}
	c.TokenSvc = tokenSvc

	c.EmailSvc = notifications.NewEmailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUser,
		c.Config.SMTPPassword,
		c.Config.SMTPFromEmail,
		c.Config.SMTPFromName,
	)

	c.OTPSvc = services.NewOTPService(services.OTPConfig{
		Length: c.Config.OTPLength,
		TTL:    c.Config.OTPTTL,
	})

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc, c.EmailSvc)
	c.DocSvc = services.NewDocumentService(c.DocRepo, c.Blobs)

	return nil
}

// Close closes the database connection
func (c *Container) Close() error {
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
