package service

import (
	"context"

	"stockpile/internal/models"
	"stockpile/internal/repository"
)

type SupplyService struct {
	supplyRepo repository.SupplyRepository
}

// CreateSupplyInput carries the fields required to create a supply.
// The need's owner is not cross-checked against UserID.
type CreateSupplyInput struct {
	Name               string
	Quantity           int
	Frequency          int
	FailRate           int
	LifeCycle          int
	DemandPerLifeCycle int
	NeedID             uint
	UserID             uint
}

func NewSupplyService(supplyRepo repository.SupplyRepository) *SupplyService {
	return &SupplyService{supplyRepo: supplyRepo}
}

func (s *SupplyService) CreateSupply(ctx context.Context, in CreateSupplyInput) (*models.Supply, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("supply_name is required")
	}
	if in.Quantity <= 0 {
		return nil, models.NewValidationError("supply_quantity must be a positive integer")
	}
	if in.Frequency <= 0 {
		return nil, models.NewValidationError("supply_frequency must be a positive integer")
	}
	if in.NeedID == 0 {
		return nil, models.NewValidationError("need_id is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("user_id is required")
	}

	supply := &models.Supply{
		Name:               in.Name,
		Quantity:           in.Quantity,
		Frequency:          in.Frequency,
		FailRate:           in.FailRate,
		LifeCycle:          in.LifeCycle,
		DemandPerLifeCycle: in.DemandPerLifeCycle,
		NeedID:             in.NeedID,
		UserID:             in.UserID,
	}
	if err := s.supplyRepo.Create(ctx, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

func (s *SupplyService) ListSupplies(ctx context.Context) ([]models.Supply, error) {
	return s.supplyRepo.List(ctx)
}

func (s *SupplyService) ListSuppliesByUser(ctx context.Context, userID uint) ([]models.Supply, error) {
	return s.supplyRepo.ListByUser(ctx, userID)
}

// DeleteSupply removes a supply and returns the deleted record.
func (s *SupplyService) DeleteSupply(ctx context.Context, id uint) (*models.Supply, error) {
	supply, err := s.supplyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.supplyRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return supply, nil
}
