package server

import (
	"fmt"

	"stockpile/internal/models"
	"stockpile/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSupply handles POST /supplies
func (s *Server) CreateSupply(c *fiber.Ctx) error {
	var req struct {
		Name               string `json:"supply_name"`
		Quantity           int    `json:"supply_quantity"`
		Frequency          int    `json:"supply_frequency"`
		FailRate           int    `json:"supply_fail_rate"`
		LifeCycle          int    `json:"supply_life_cycle"`
		DemandPerLifeCycle int    `json:"need_demand_per_life_cycle"`
		NeedID             uint   `json:"need_id"`
		UserID             uint   `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	supply, err := s.supplyService.CreateSupply(c.Context(), service.CreateSupplyInput{
		Name:               req.Name,
		Quantity:           req.Quantity,
		Frequency:          req.Frequency,
		FailRate:           req.FailRate,
		LifeCycle:          req.LifeCycle,
		DemandPerLifeCycle: req.DemandPerLifeCycle,
		NeedID:             req.NeedID,
		UserID:             req.UserID,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(supply)
}

// GetSupplies handles GET /supplies
func (s *Server) GetSupplies(c *fiber.Ctx) error {
	supplies, err := s.supplyService.ListSupplies(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(supplies)
}

// GetSuppliesByUser handles GET /supplies/:userId, listing supplies owned by a user.
func (s *Server) GetSuppliesByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	supplies, err := s.supplyService.ListSuppliesByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(supplies)
}

// DeleteSupply handles DELETE /supplies/:id
func (s *Server) DeleteSupply(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "supply ID")
	if err != nil {
		return nil
	}

	supply, err := s.supplyService.DeleteSupply(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Supply %s deleted", supply.Name),
	})
}
