package repository

import (
	"context"
	"errors"
	"time"

	"stockpile/internal/models"
	"stockpile/internal/observability"

	"gorm.io/gorm"
)

// NeedRepository defines persistence operations for needs.
type NeedRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Need, error)
	Create(ctx context.Context, need *models.Need) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Need, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Need, error)
}

type needRepository struct {
	db *gorm.DB
}

// NewNeedRepository returns a new NeedRepository implementation.
func NewNeedRepository(db *gorm.DB) NeedRepository {
	return &needRepository{db: db}
}

func (r *needRepository) GetByID(ctx context.Context, id uint) (*models.Need, error) {
	defer observability.ObserveQuery("select", "needs", time.Now())

	var need models.Need
	if err := r.db.WithContext(ctx).First(&need, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Need", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &need, nil
}

func (r *needRepository) Create(ctx context.Context, need *models.Need) error {
	defer observability.ObserveQuery("insert", "needs", time.Now())

	if err := r.db.WithContext(ctx).Create(need).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *needRepository) Delete(ctx context.Context, id uint) error {
	defer observability.ObserveQuery("delete", "needs", time.Now())

	if err := r.db.WithContext(ctx).Delete(&models.Need{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *needRepository) List(ctx context.Context) ([]models.Need, error) {
	defer observability.ObserveQuery("select", "needs", time.Now())

	var needs []models.Need
	if err := r.db.WithContext(ctx).Find(&needs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return needs, nil
}

func (r *needRepository) ListByUser(ctx context.Context, userID uint) ([]models.Need, error) {
	defer observability.ObserveQuery("select", "needs", time.Now())

	var needs []models.Need
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&needs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return needs, nil
}
