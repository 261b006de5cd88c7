package service

import (
	"context"

	"stockpile/internal/models"
	"stockpile/internal/repository"
)

type NeedService struct {
	needRepo repository.NeedRepository
}

// CreateNeedInput carries the fields required to create a need.
type CreateNeedInput struct {
	Name      string
	Frequency int
	Quantity  int
	UserID    uint
}

func NewNeedService(needRepo repository.NeedRepository) *NeedService {
	return &NeedService{needRepo: needRepo}
}

func (s *NeedService) CreateNeed(ctx context.Context, in CreateNeedInput) (*models.Need, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("need_name is required")
	}
	if in.Frequency <= 0 {
		return nil, models.NewValidationError("need_frequency must be a positive integer")
	}
	if in.Quantity <= 0 {
		return nil, models.NewValidationError("need_quantity must be a positive integer")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	need := &models.Need{
		Name:      in.Name,
		Frequency: in.Frequency,
		Quantity:  in.Quantity,
		UserID:    in.UserID,
	}
	if err := s.needRepo.Create(ctx, need); err != nil {
		return nil, err
	}
	return need, nil
}

func (s *NeedService) ListNeeds(ctx context.Context) ([]models.Need, error) {
	return s.needRepo.List(ctx)
}

func (s *NeedService) ListNeedsByUser(ctx context.Context, userID uint) ([]models.Need, error) {
	return s.needRepo.ListByUser(ctx, userID)
}

// DeleteNeed removes a need and returns the deleted record.
func (s *NeedService) DeleteNeed(ctx context.Context, id uint) (*models.Need, error) {
	need, err := s.needRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.needRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return need, nil
}
