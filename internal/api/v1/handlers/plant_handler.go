// internal/api/v1/handlers/plant_handler.go
package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type PlantHandler struct {
	PlantService service.PlantService
	Validate     *validator.Validate
}

func NewPlantHandler(plantService service.PlantService) *PlantHandler {
	return &PlantHandler{
		PlantService: plantService,
		Validate:     utils.NewValidator(),
	}
}

// GetUserPlants godoc
// @Summary List User Plants
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {array} models.Plant
// @Router /api/plants/user/{userId} [get]
func (h *PlantHandler) GetUserPlants(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	plants, err := h.PlantService.UserPlants(c.Context(), userID)
	if err != nil {
		return serviceError("list plants", err)
	}
	return c.JSON(plants)
}

// GetPlant godoc
// @Summary Get Plant
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Success 200 {object} models.Plant
// @Failure 404 {object} models.APIError
// @Router /api/plants/{plantId} [get]
func (h *PlantHandler) GetPlant(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	plant, err := h.PlantService.Plant(c.Context(), plantID)
	if err != nil {
		return serviceError("get plant", err)
	}
	return c.JSON(plant)
}

// CreatePlant godoc
// @Summary Create Plant
// @Description Adds a plant to the garden, optionally linked to an earlier diagnosis.
// @Tags Plants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param plant body models.PlantCreateInput true "Plant"
// @Success 201 {object} models.Plant
// @Failure 403 {object} models.APIError
// @Failure 422 {object} models.APIError
// @Router /api/plants [post]
func (h *PlantHandler) CreatePlant(c *fiber.Ctx) error {
	input := new(models.PlantCreateInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}
	if err := actingUser(c, input.UserID); err != nil {
		return err
	}

	plant, err := h.PlantService.Create(c.Context(), input)
	if err != nil {
		return serviceError("create plant", err)
	}
	zlog.Info().Int("plant_id", plant.ID).Msg("Handler: Plant created")
	return c.Status(fiber.StatusCreated).JSON(plant)
}

// UpdatePlant godoc
// @Summary Update Plant
// @Tags Plants
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Param plant body models.PlantUpdateInput true "Fields to change"
// @Success 200 {object} models.Plant
// @Router /api/plants/{plantId} [put]
func (h *PlantHandler) UpdatePlant(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	input := new(models.PlantUpdateInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	plant, err := h.PlantService.Update(c.Context(), plantID, input)
	if err != nil {
		return serviceError("update plant", err)
	}
	return c.JSON(plant)
}

// DeletePlant godoc
// @Summary Delete Plant
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Param user_id query int true "Owner ID"
// @Success 200 {object} models.DeletePlantResponse
// @Failure 403 {object} models.APIError
// @Router /api/plants/{plantId} [delete]
func (h *PlantHandler) DeletePlant(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}

	if err := h.PlantService.Delete(c.Context(), plantID, userID); err != nil {
		return serviceError("delete plant", err)
	}
	return c.JSON(models.DeletePlantResponse{Message: "Plant deleted", PlantID: plantID})
}

// WaterPlant godoc
// @Summary Water Plant
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Success 200 {object} models.CareResponse
// @Router /api/plants/{plantId}/water [put]
func (h *PlantHandler) WaterPlant(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	resp, err := h.PlantService.Water(c.Context(), plantID)
	if err != nil {
		return serviceError("water plant", err)
	}
	return c.JSON(resp)
}

// FertilizePlant godoc
// @Summary Fertilize Plant
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param plantId path int true "Plant ID"
// @Success 200 {object} models.CareResponse
// @Router /api/plants/{plantId}/fertilize [put]
func (h *PlantHandler) FertilizePlant(c *fiber.Ctx) error {
	plantID, err := pathID(c, "plantId")
	if err != nil {
		return err
	}
	resp, err := h.PlantService.Fertilize(c.Context(), plantID)
	if err != nil {
		return serviceError("fertilize plant", err)
	}
	return c.JSON(resp)
}

// GetProgress godoc
// @Summary Garden Progress
// @Tags Plants
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} models.ProgressStats
// @Router /api/plants/user/{userId}/progress [get]
func (h *PlantHandler) GetProgress(c *fiber.Ctx) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	stats, err := h.PlantService.Progress(c.Context(), userID)
	if err != nil {
		return serviceError("progress", err)
	}
	return c.JSON(stats)
}
