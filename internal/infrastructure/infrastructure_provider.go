package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/HinduAI/Nara/internal/config"
	"github.com/HinduAI/Nara/internal/domain/chat"
	"github.com/HinduAI/Nara/internal/infrastructure/auth"
	"github.com/HinduAI/Nara/internal/infrastructure/completion"
	"github.com/HinduAI/Nara/internal/infrastructure/database"
	"github.com/HinduAI/Nara/internal/infrastructure/database/repository"
	"github.com/HinduAI/Nara/internal/infrastructure/database/transaction"
	"github.com/HinduAI/Nara/internal/infrastructure/logger"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideTokenValidator provides a JWT validator
func ProvideTokenValidator(cfg *config.Config, log zerolog.Logger) (*auth.TokenValidator, error) {
	return auth.NewTokenValidator(
		context.Background(),
		cfg.JWKSURL,
		cfg.Issuer,
		cfg.Audience,
		cfg.RefreshJWKSInterval,
		cfg.AuthClockSkew,
		log,
	)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DBPostgresqlWriteDSN, cfg.DBPostgresqlRead1DSN)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// ProvideTransactionDatabase provides a transaction database wrapper
func ProvideTransactionDatabase(db *gorm.DB) *transaction.Database {
	return transaction.NewDatabase(db)
}

// ProvideCompletionClient provides the chat completion client
func ProvideCompletionClient(cfg *config.Config) chat.CompletionClient {
	return completion.NewClient(cfg)
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB             *gorm.DB
	TokenValidator *auth.TokenValidator
	Logger         zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	tokenValidator *auth.TokenValidator,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:             db,
		TokenValidator: tokenValidator,
		Logger:         logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,
	ProvideTransactionDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Completion client
	ProvideCompletionClient,

	// Logger
	logger.GetLogger,

	// Auth
	ProvideTokenValidator,

	// Infrastructure struct
	NewInfrastructure,
)
