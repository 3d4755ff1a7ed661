package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sangkips/bookstore-api/internal/config"
	"github.com/sangkips/bookstore-api/internal/domain/entity"
	domainRepo "github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/pkg/logger"
	"github.com/sangkips/bookstore-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.NewGormLogger(log, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&entity.Admin{},
		&entity.Book{},
		&entity.Order{},
		&entity.OrderProduct{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// SeedAdmin creates the bootstrap admin account when one is configured and
// does not exist yet.
func SeedAdmin(ctx context.Context, admins domainRepo.AdminRepository, cfg *config.AdminConfig, log zerolog.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	existing, err := admins.GetByEmail(ctx, cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		log.Debug().Str("email", cfg.Email).Msg("admin already exists")
		return nil
	}

	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Store Admin"
	}

	admin := &entity.Admin{
		FullName: name,
		Email:    cfg.Email,
		Password: hashed,
	}
	if err := admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("admin account created")
	return nil
}
