package repository

import (
	"context"
	"errors"
	"time"

	"stockpile/internal/models"
	"stockpile/internal/observability"

	"gorm.io/gorm"
)

// SupplyRepository defines persistence operations for supplies.
type SupplyRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Supply, error)
	Create(ctx context.Context, supply *models.Supply) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Supply, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Supply, error)
}

type supplyRepository struct {
	db *gorm.DB
}

// NewSupplyRepository returns a new SupplyRepository implementation.
func NewSupplyRepository(db *gorm.DB) SupplyRepository {
	return &supplyRepository{db: db}
}

func (r *supplyRepository) GetByID(ctx context.Context, id uint) (*models.Supply, error) {
	defer observability.ObserveQuery("select", "supplies", time.Now())

	var supply models.Supply
	if err := r.db.WithContext(ctx).First(&supply, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Supply", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &supply, nil
}

func (r *supplyRepository) Create(ctx context.Context, supply *models.Supply) error {
	defer observability.ObserveQuery("insert", "supplies", time.Now())

	if err := r.db.WithContext(ctx).Create(supply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *supplyRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "supplies", time.Now())

	if err := r.db.WithContext(ctx).Delete(&models.Supply{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *supplyRepository) List(ctx context.Context) ([]models.Supply, error) {
	defer observability.ObserveQuery("select", "supplies", time.Now())

	var supplies []models.Supply
	if err := r.db.WithContext(ctx).Find(&supplies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return supplies, nil
}

func (r *supplyRepository) ListByUser(ctx context.Context, userID uint) ([]models.Supply, error) {
	defer observability.ObserveQuery("select", "supplies", time.Now())

	var supplies []models.Supply
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&supplies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return supplies, nil
}
