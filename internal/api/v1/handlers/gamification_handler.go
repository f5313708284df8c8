// internal/api/v1/handlers/gamification_handler.go
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
)

type GamificationHandler struct {
	GamificationService service.GamificationService
}

func NewGamificationHandler(gamificationService service.GamificationService) *GamificationHandler {
	return &GamificationHandler{GamificationService: gamificationService}
}

// GetAchievements godoc
// @Summary Achievements
// @Tags Gamification
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.AchievementsResponse
// @Router /api/gamification/achievements/{userId} [get]
func (h *GamificationHandler) GetAchievements(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	resp, err := h.GamificationService.Achievements(c.Context(), userID)
	if err != nil {
		return serviceError("achievements", err)
	}
	return c.JSON(resp)
}

// GetMissions godoc
// @Summary Daily Missions
// @Tags Gamification
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.MissionsResponse
// @Router /api/gamification/missions/{userId} [get]
func (h *GamificationHandler) GetMissions(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	resp, err := h.GamificationService.Missions(c.Context(), userID)
	if err != nil {
		return serviceError("missions", err)
	}
	return c.JSON(resp)
}
