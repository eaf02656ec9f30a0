package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeypairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeypairRepository creates a new GORM-based KeypairRepository implementation
func NewGormKeypairRepository(db *gorm.DB, logger logger.Logger) (keys.KeypairRepository, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	return &gormKeypairRepository{
		db:     db,
		logger: logger.With("component", "keypair-repository"),
	}, nil
}

func (r *gormKeypairRepository) Create(ctx context.Context, key *keys.KeypairMeta) error {
	if err := key.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeypairModel{}
	model.FromDomain(key)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create keypair: %w", err)
	}

	r.logger.Info("Created keypair with id ", key.ID)
	return nil
}

func (r *gormKeypairRepository) List(ctx context.Context, query *keys.KeypairQuery) ([]*keys.KeypairMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeypairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeypairModel{})

	if !query.CreatedAfter.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.CreatedAfter)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch keypairs: %w", err)
	}

	domainList := make([]*keys.KeypairMeta, len(modelList))
	for i, model := range modelList {
		meta, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = meta
	}

	return domainList, nil
}

func (r *gormKeypairRepository) GetByID(ctx context.Context, keyID string) (*keys.KeypairMeta, error) {
	var model models.KeypairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("keypair with ID %s: %w", keyID, keys.ErrKeypairNotFound)
		}
		return nil, fmt.Errorf("failed to fetch keypair: %w", err)
	}
	return model.ToDomain()
}

func (r *gormKeypairRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeypairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete keypair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("keypair with ID %s: %w", keyID, keys.ErrKeypairNotFound)
	}

	r.logger.Info("Deleted keypair with id ", keyID)
	return nil
}
