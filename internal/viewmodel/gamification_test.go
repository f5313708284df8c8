package viewmodel_test

import (
	"context"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGamificationViewModel_Load(t *testing.T) {
	tests := []struct {
		name             string
		achievements     result.Result[models.AchievementsResponse]
		missions         result.Result[models.MissionsResponse]
		wantError        string
		wantAchievements bool
		wantMissions     bool
	}{
		{
			name:             "Both loaded",
			achievements:     result.Success(models.AchievementsResponse{TotalPoints: 30}),
			missions:         result.Success(models.MissionsResponse{Missions: []models.Mission{{ID: 1}}}),
			wantAchievements: true,
			wantMissions:     true,
		},
		{
			name:         "First error wins",
			achievements: result.Failure[models.AchievementsResponse](repository.MsgTimeout, 0),
			missions:     result.Failure[models.MissionsResponse](repository.MsgNetwork, 0),
			wantError:    repository.MsgTimeout,
		},
		{
			name:             "Missions error alone",
			achievements:     result.Success(models.AchievementsResponse{}),
			missions:         result.Failure[models.MissionsResponse]("Load missions failed (500)", 500),
			wantError:        "Load missions failed (500)",
			wantAchievements: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockGamificationRepository(t)
			vm := viewmodel.NewGamificationViewModel(repo, fixedUser(1))
			t.Cleanup(vm.Close)
			repo.On("Achievements", mock.Anything, 1).Return(tc.achievements).Once()
			repo.On("Missions", mock.Anything, 1).Return(tc.missions).Once()

			var loading []bool
			vm.State().Subscribe(func(s viewmodel.GamificationState) { loading = append(loading, s.Loading) })

			vm.Load(context.Background())

			state := vm.State().Value()
			assert.Equal(t, tc.wantError, state.Error)
			assert.Equal(t, tc.wantAchievements, state.Achievements != nil)
			assert.Equal(t, tc.wantMissions, state.Missions != nil)
			require.NotEmpty(t, loading)
			assert.Equal(t, []bool{false, true, true, false}, loading, "loading clears only after the second call")
		})
	}
}

func TestDiagnosisHistoryViewModel_Load(t *testing.T) {
	repo := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewDiagnosisHistoryViewModel(repo, fixedUser(1))
	t.Cleanup(vm.Close)
	repo.On("History", mock.Anything, 1, 10).
		Return(result.Success(models.DiagnosisHistory{Diagnoses: []models.DiagnosisRecord{{ID: 1}, {ID: 2}}, Total: 2})).Once()

	vm.Load(context.Background(), 10)

	state := vm.State().Value()
	assert.Equal(t, 2, state.Total)
	assert.Len(t, state.Diagnoses, 2)
}

func TestDiagnosisDetailViewModel_Feedback(t *testing.T) {
	repo := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewDiagnosisDetailViewModel(repo, fixedUser(1), &models.Diagnosis{DiagnosisID: 44})
	t.Cleanup(vm.Close)

	input := models.DiagnosisFeedbackInput{IsCorrect: false, CorrectDiagnosis: ptr("Root rot")}
	repo.On("SubmitFeedback", mock.Anything, 44, 1, input).
		Return(result.Success(models.DiagnosisFeedbackResponse{FeedbackID: 3})).Once()

	vm.SubmitFeedback(context.Background(), input)

	state := vm.State().Value()
	assert.Equal(t, 44, state.DiagnosisID())
	require.True(t, state.Feedback.IsSuccess())
	assert.Equal(t, 3, state.Feedback.Data.FeedbackID)
}

func TestDiagnosisDetailViewModel_LoadByID(t *testing.T) {
	repo := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewDiagnosisDetailViewModel(repo, fixedUser(1), nil)
	t.Cleanup(vm.Close)
	assert.Zero(t, vm.State().Value().DiagnosisID())

	repo.On("Get", mock.Anything, 9).Return(result.Success(models.DiagnosisRecord{ID: 9})).Once()
	vm.Load(context.Background(), 9)

	assert.Equal(t, 9, vm.State().Value().DiagnosisID())
}
