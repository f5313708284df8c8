package repository_test

import (
	"context"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlantRepository_UserPlants(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewPlantRepository(api)

	api.On("UserPlants", mock.Anything, 1).Return(nil, nil).Once()
	res := repo.UserPlants(context.Background(), 1)
	require.True(t, res.IsSuccess())
	assert.NotNil(t, res.Data(), "an empty garden is an empty list, not nil")

	api.On("UserPlants", mock.Anything, 2).
		Return(nil, &apiclient.Error{Kind: apiclient.KindTimeout, Op: "Load plants"}).Once()
	res = repo.UserPlants(context.Background(), 2)
	assert.Equal(t, repository.MsgTimeout, res.Message())
}

func TestPlantRepository_Create(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewPlantRepository(api)

	blank := repo.Create(context.Background(), models.PlantCreateInput{Name: "   ", UserID: 1})
	assert.True(t, blank.IsError())
	assert.Equal(t, "name is required.", blank.Message())

	api.On("CreatePlant", mock.Anything, mock.MatchedBy(func(in models.PlantCreateInput) bool {
		return in.Name == "Monstera" && in.DiagnosisID != nil && *in.DiagnosisID == 44
	})).Return(&models.Plant{ID: 3, Name: "Monstera"}, nil).Once()

	res := repo.CreateFromDiagnosis(context.Background(), 1, 44, " Monstera ", nil, nil)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 3, res.Data().ID)
}

func TestPlantRepository_CareActions(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewPlantRepository(api)

	api.On("WaterPlant", mock.Anything, 3).Return(&models.CareResponse{Message: "Plant watered"}, nil).Once()
	api.On("FertilizePlant", mock.Anything, 3).
		Return(nil, &apiclient.Error{Kind: apiclient.KindHTTP, Op: "Fertilize plant", Status: 404, Detail: "Plant not found"}).Once()
	api.On("DeletePlant", mock.Anything, 3, 1).Return(&models.DeletePlantResponse{PlantID: 3}, nil).Once()

	assert.True(t, repo.Water(context.Background(), 3).IsSuccess())

	fert := repo.Fertilize(context.Background(), 3)
	assert.Equal(t, "Plant not found", fert.Message())
	assert.Equal(t, 404, fert.Code())

	assert.Equal(t, 3, repo.Delete(context.Background(), 3, 1).Data().PlantID)
}
