package server

import (
	"fmt"

	"stockpile/internal/models"
	"stockpile/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateNeed handles POST /needs
func (s *Server) CreateNeed(c *fiber.Ctx) error {
	var req struct {
		Name      string `json:"need_name"`
		Frequency int    `json:"need_frequency"`
		Quantity  int    `json:"need_quantity"`
		UserID    uint   `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	need, err := s.needService.CreateNeed(c.Context(), service.CreateNeedInput{
		Name:      req.Name,
		Frequency: req.Frequency,
		Quantity:  req.Quantity,
		UserID:    req.UserID,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(need)
}

// GetNeeds handles GET /needs
func (s *Server) GetNeeds(c *fiber.Ctx) error {
	needs, err := s.needService.ListNeeds(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(needs)
}

// GetNeedsByUser handles GET /needs/:userId, listing needs owned by a user.
func (s *Server) GetNeedsByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	needs, err := s.needService.ListNeedsByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(needs)
}

// DeleteNeed handles DELETE /needs/:id
func (s *Server) DeleteNeed(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "need ID")
	if err != nil {
		return nil
	}

	need, err := s.needService.DeleteNeed(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Need %s deleted", need.Name),
	})
}
