// internal/repository/plant_repo.go
package repository

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
)

type plantRepo struct {
	api      apiclient.Service
	validate *validator.Validate
}

func NewPlantRepository(api apiclient.Service) PlantRepository {
	return &plantRepo{api: api, validate: utils.NewValidator()}
}

func (r *plantRepo) UserPlants(ctx context.Context, userID int) result.Result[[]models.Plant] {
	plants, err := r.api.UserPlants(ctx, userID)
	if err != nil {
		return failure[[]models.Plant]("user plants", err)
	}
	if plants == nil {
		plants = []models.Plant{}
	}
	return result.Success(plants)
}

func (r *plantRepo) Plant(ctx context.Context, plantID int) result.Result[models.Plant] {
	plant, err := r.api.Plant(ctx, plantID)
	if err != nil {
		return failure[models.Plant]("plant", err)
	}
	return result.Success(*plant)
}

func (r *plantRepo) Create(ctx context.Context, input models.PlantCreateInput) result.Result[models.Plant] {
	input.Name = strings.TrimSpace(input.Name)
	if err := r.validate.Struct(input); err != nil {
		return failure[models.Plant]("create plant", err)
	}

	plant, err := r.api.CreatePlant(ctx, input)
	if err != nil {
		return failure[models.Plant]("create plant", err)
	}
	return result.Success(*plant)
}

func (r *plantRepo) CreateFromDiagnosis(ctx context.Context, userID, diagnosisID int, name string, species, location *string) result.Result[models.Plant] {
	return r.Create(ctx, models.PlantCreateInput{
		Name:        name,
		UserID:      userID,
		Species:     species,
		Location:    location,
		DiagnosisID: &diagnosisID,
	})
}

func (r *plantRepo) Update(ctx context.Context, plantID int, input models.PlantUpdateInput) result.Result[models.Plant] {
	if err := r.validate.Struct(input); err != nil {
		return failure[models.Plant]("update plant", err)
	}
	plant, err := r.api.UpdatePlant(ctx, plantID, input)
	if err != nil {
		return failure[models.Plant]("update plant", err)
	}
	return result.Success(*plant)
}

func (r *plantRepo) Delete(ctx context.Context, plantID, userID int) result.Result[models.DeletePlantResponse] {
	resp, err := r.api.DeletePlant(ctx, plantID, userID)
	if err != nil {
		return failure[models.DeletePlantResponse]("delete plant", err)
	}
	return result.Success(*resp)
}

func (r *plantRepo) Water(ctx context.Context, plantID int) result.Result[models.CareResponse] {
	resp, err := r.api.WaterPlant(ctx, plantID)
	if err != nil {
		return failure[models.CareResponse]("water plant", err)
	}
	return result.Success(*resp)
}

func (r *plantRepo) Fertilize(ctx context.Context, plantID int) result.Result[models.CareResponse] {
	resp, err := r.api.FertilizePlant(ctx, plantID)
	if err != nil {
		return failure[models.CareResponse]("fertilize plant", err)
	}
	return result.Success(*resp)
}

func (r *plantRepo) ProgressStats(ctx context.Context, userID int) result.Result[models.ProgressStats] {
	stats, err := r.api.ProgressStats(ctx, userID)
	if err != nil {
		return failure[models.ProgressStats]("progress stats", err)
	}
	return result.Success(*stats)
}
