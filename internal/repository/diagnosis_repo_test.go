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

func resolveAgainst(base string) func(string) string {
	return func(ref string) string { return base + "/" + ref }
}

func TestDiagnosisRepository_ValidatePhoto(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewDiagnosisRepository(api)

	api.On("CaptureGuidance", mock.Anything, "/tmp/ok.jpg").
		Return(&models.CaptureGuidance{Success: true, Message: "Good photo"}, nil).Once()
	api.On("CaptureGuidance", mock.Anything, "/tmp/blurry.jpg").
		Return(&models.CaptureGuidance{Success: false, Message: "Too blurry", Guidance: "Hold still"}, nil).Once()

	ok := repo.ValidatePhoto(context.Background(), "/tmp/ok.jpg")
	require.True(t, ok.IsSuccess())
	assert.True(t, ok.Data().Success)

	blurry := repo.ValidatePhoto(context.Background(), "/tmp/blurry.jpg")
	require.True(t, blurry.IsSuccess(), "a rejected photo is still a successful call")
	assert.False(t, blurry.Data().Success)
}

func TestDiagnosisRepository_PlantHistoryDegradesToEmpty(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewDiagnosisRepository(api)

	api.On("PlantDiagnosisHistory", mock.Anything, 3, 10).
		Return(nil, &apiclient.Error{Kind: apiclient.KindHTTP, Op: "Load plant history", Status: 500}).Once()

	res := repo.PlantHistory(context.Background(), 3, 10)
	require.True(t, res.IsSuccess())
	assert.Empty(t, res.Data())
}

func TestDiagnosisRepository_HistoryResolvesImages(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewDiagnosisRepository(api)

	img := "uploads/d1.jpg"
	api.On("DiagnosisHistory", mock.Anything, 1, 20).
		Return(&models.DiagnosisHistory{Diagnoses: []models.DiagnosisRecord{{ID: 1, ImageURL: &img}}, Total: 1}, nil).Once()
	api.On("ResolveURL", img).Return(resolveAgainst("http://api")).Once()

	res := repo.History(context.Background(), 1, 20)
	require.True(t, res.IsSuccess())
	assert.Equal(t, "http://api/uploads/d1.jpg", *res.Data().Diagnoses[0].ImageURL)
}
