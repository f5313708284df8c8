package viewmodel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/configs"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newCaptureStack wires a CaptureViewModel to a real API client talking to handler,
// counting the requests that reach the server.
func newCaptureStack(t *testing.T, handler http.HandlerFunc) (*viewmodel.CaptureViewModel, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := apiclient.New(configs.APIConfig{
		BaseURL:        srv.URL,
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    2 * time.Second,
		WriteTimeout:   2 * time.Second,
	}, apiclient.TokenFunc(func() string { return "" }))

	vm := viewmodel.NewCaptureViewModel(repository.NewDiagnosisRepository(client), fixedUser(7))
	t.Cleanup(vm.Close)
	return vm, &hits
}

func guidanceHandler(success bool, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/diagnosis/capture-guidance" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.CaptureGuidance{
			Step:     "validation",
			Message:  message,
			Success:  success,
			Guidance: "Keep the leaf centred",
		})
	}
}

func TestCaptureViewModel_ValidatePhotoFollowsServer(t *testing.T) {
	tests := []struct {
		name        string
		success     bool
		wantAnalyze bool
	}{
		{name: "Photo accepted", success: true, wantAnalyze: true},
		{name: "Photo rejected", success: false, wantAnalyze: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vm, hits := newCaptureStack(t, guidanceHandler(tc.success, "checked"))
			vm.SetCapturedImage(test_utils.WritePNG(t))
			vm.SetTargetPlant(3)

			require.NoError(t, vm.ValidatePhoto(context.Background()))

			state := vm.State().Value()
			assert.Equal(t, viewmodel.PhaseSuccess, state.Validation.Phase)
			assert.Equal(t, tc.success, state.Validation.Data.Success)
			assert.Equal(t, "checked", state.Validation.Data.Message)
			assert.Equal(t, tc.wantAnalyze, vm.CanAnalyze())
			assert.EqualValues(t, 1, hits.Load())
		})
	}
}

func TestCaptureViewModel_OversizedPhotoNeverSent(t *testing.T) {
	vm, hits := newCaptureStack(t, guidanceHandler(true, "ok"))
	vm.SetCapturedImage(test_utils.WriteOversizedPNG(t))

	require.NoError(t, vm.ValidatePhoto(context.Background()))

	state := vm.State().Value()
	assert.Equal(t, viewmodel.PhaseError, state.Validation.Phase)
	assert.Equal(t, repository.MsgImageTooLarge, state.Validation.Message)
	assert.EqualValues(t, 0, hits.Load(), "no request may leave the client")
	assert.False(t, vm.CanAnalyze())
}

func TestCaptureViewModel_NotAnImageNeverSent(t *testing.T) {
	vm, hits := newCaptureStack(t, guidanceHandler(true, "ok"))
	vm.SetCapturedImage(test_utils.WriteTextFile(t))

	require.NoError(t, vm.ValidatePhoto(context.Background()))

	assert.Equal(t, repository.MsgNotAnImage, vm.State().Value().Validation.Message)
	assert.EqualValues(t, 0, hits.Load())
}

func TestCaptureViewModel_AnalyzeGate(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	t.Cleanup(vm.Close)

	assert.ErrorIs(t, vm.ValidatePhoto(context.Background()), viewmodel.ErrNoImage)

	vm.SetCapturedImage("/photos/leaf.jpg")
	before := vm.State().Value()
	assert.ErrorIs(t, vm.AnalyzePlant(context.Background(), nil), viewmodel.ErrAnalyzeNotReady)
	assert.Equal(t, before, vm.State().Value(), "a rejected analyze leaves the state untouched")

	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Return(result.Success(models.CaptureGuidance{Success: true})).Once()
	require.NoError(t, vm.ValidatePhoto(context.Background()))
	assert.False(t, vm.CanAnalyze(), "no target plant yet")
	assert.ErrorIs(t, vm.AnalyzePlant(context.Background(), nil), viewmodel.ErrAnalyzeNotReady)

	vm.SetTargetPlant(3)
	require.True(t, vm.CanAnalyze())

	symptoms := ptr("yellow spots")
	diag.On("AnalyzePlant", mock.Anything, apiclient.AnalyzeRequest{
		PlantID: 3, UserID: 7, ImagePath: "/photos/leaf.jpg", Symptoms: symptoms,
	}).Return(result.Success(models.Diagnosis{DiagnosisID: 44, Confidence: 0.9})).Once()

	require.NoError(t, vm.AnalyzePlant(context.Background(), symptoms))
	state := vm.State().Value()
	assert.Equal(t, viewmodel.PhaseSuccess, state.Diagnosis.Phase)
	assert.Equal(t, 44, state.Diagnosis.Data.DiagnosisID)

	// Already succeeded: no second call.
	require.NoError(t, vm.AnalyzePlant(context.Background(), symptoms))
}

func TestCaptureViewModel_RetryReusesStoredInputs(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	t.Cleanup(vm.Close)

	assert.ErrorIs(t, vm.RetryValidation(context.Background()), viewmodel.ErrNothingToRetry)

	vm.SetCapturedImage("/photos/leaf.jpg")
	vm.SetTargetPlant(3)
	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Return(result.Failure[models.CaptureGuidance](repository.MsgTimeout, 0)).Once()
	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Return(result.Success(models.CaptureGuidance{Success: true})).Once()

	require.NoError(t, vm.ValidatePhoto(context.Background()))
	assert.Equal(t, viewmodel.PhaseError, vm.State().Value().Validation.Phase)

	var phases []viewmodel.Phase
	vm.State().Subscribe(func(s viewmodel.CaptureState) { phases = append(phases, s.Validation.Phase) })
	require.NoError(t, vm.RetryValidation(context.Background()))
	assert.Equal(t, []viewmodel.Phase{viewmodel.PhaseError, viewmodel.PhaseLoading, viewmodel.PhaseSuccess}, phases)

	symptoms := ptr("wilting")
	req := apiclient.AnalyzeRequest{PlantID: 3, UserID: 7, ImagePath: "/photos/leaf.jpg", Symptoms: symptoms}
	diag.On("AnalyzePlant", mock.Anything, req).
		Return(result.Failure[models.Diagnosis](repository.MsgNetwork, 0)).Once()
	diag.On("AnalyzePlant", mock.Anything, req).
		Return(result.Success(models.Diagnosis{DiagnosisID: 9})).Once()

	require.NoError(t, vm.AnalyzePlant(context.Background(), symptoms))
	assert.Equal(t, repository.MsgNetwork, vm.State().Value().Diagnosis.Message)
	require.NoError(t, vm.RetryDiagnosis(context.Background()))
	assert.Equal(t, 9, vm.State().Value().Diagnosis.Data.DiagnosisID)
}

func TestCaptureViewModel_DoubleTriggerMakesOneCall(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	t.Cleanup(vm.Close)
	vm.SetCapturedImage("/photos/leaf.jpg")

	started := make(chan struct{})
	release := make(chan struct{})
	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(result.Success(models.CaptureGuidance{Success: true})).Once()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, vm.ValidatePhoto(context.Background()))
	}()
	<-started
	go func() {
		defer wg.Done()
		assert.NoError(t, vm.ValidatePhoto(context.Background()))
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.True(t, vm.State().Value().Validation.IsSuccess())
	diag.AssertNumberOfCalls(t, "ValidatePhoto", 1)
}

func TestCaptureViewModel_JoinedCallOutlivesFirstCaller(t *testing.T) {
	t.Run("Cancelled first caller leaves the joined call running", func(t *testing.T) {
		diag := mocks.NewMockDiagnosisRepository(t)
		vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
		t.Cleanup(vm.Close)
		vm.SetCapturedImage("/photos/leaf.jpg")

		started := make(chan struct{})
		release := make(chan struct{})
		diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
			Return(func(ctx context.Context, _ string) result.Result[models.CaptureGuidance] {
				close(started)
				select {
				case <-ctx.Done():
					return result.Failure[models.CaptureGuidance](repository.MsgCanceled, 0)
				case <-release:
					return result.Success(models.CaptureGuidance{Success: true})
				}
			}).Once()

		firstCtx, cancelFirst := context.WithCancel(context.Background())
		defer cancelFirst()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = vm.ValidatePhoto(firstCtx)
		}()
		<-started
		go func() {
			defer wg.Done()
			_ = vm.ValidatePhoto(context.Background())
		}()
		time.Sleep(20 * time.Millisecond)

		cancelFirst()
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.True(t, vm.State().Value().Validation.IsSuccess())
		diag.AssertNumberOfCalls(t, "ValidatePhoto", 1)
	})

	t.Run("Lone caller cancelling stops the call", func(t *testing.T) {
		diag := mocks.NewMockDiagnosisRepository(t)
		vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
		t.Cleanup(vm.Close)
		vm.SetCapturedImage("/photos/leaf.jpg")

		started := make(chan struct{})
		diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
			Return(func(ctx context.Context, _ string) result.Result[models.CaptureGuidance] {
				close(started)
				<-ctx.Done()
				return result.Failure[models.CaptureGuidance](repository.MsgCanceled, 0)
			}).Once()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = vm.ValidatePhoto(ctx)
		}()
		<-started
		cancel()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("ValidatePhoto did not return after its context was cancelled")
		}
		assert.Equal(t, repository.MsgCanceled, vm.State().Value().Validation.Message)
	})
}

func TestCaptureViewModel_NewImageDropsStaleResult(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	t.Cleanup(vm.Close)
	vm.SetCapturedImage("/photos/old.jpg")

	started := make(chan struct{})
	release := make(chan struct{})
	diag.On("ValidatePhoto", mock.Anything, "/photos/old.jpg").
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(result.Success(models.CaptureGuidance{Success: true})).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = vm.ValidatePhoto(context.Background())
	}()
	<-started
	vm.SetCapturedImage("/photos/new.jpg")
	close(release)
	<-done

	state := vm.State().Value()
	assert.Equal(t, "/photos/new.jpg", state.ImagePath)
	assert.True(t, state.Validation.IsIdle(), "the old photo's result must not land on the new one")
}

func TestCaptureViewModel_CloseCancelsInFlight(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	vm.SetCapturedImage("/photos/leaf.jpg")

	started := make(chan struct{})
	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Return(func(ctx context.Context, _ string) result.Result[models.CaptureGuidance] {
			close(started)
			<-ctx.Done()
			return result.Failure[models.CaptureGuidance](repository.MsgCanceled, 0)
		}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = vm.ValidatePhoto(context.Background())
	}()
	<-started
	vm.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ValidatePhoto did not return after Close")
	}
	assert.Equal(t, repository.MsgCanceled, vm.State().Value().Validation.Message)
}

func TestCaptureViewModel_ResetStates(t *testing.T) {
	diag := mocks.NewMockDiagnosisRepository(t)
	vm := viewmodel.NewCaptureViewModel(diag, fixedUser(7))
	t.Cleanup(vm.Close)

	vm.SetCapturedImage("/photos/leaf.jpg")
	vm.SetTargetPlant(3)
	diag.On("ValidatePhoto", mock.Anything, "/photos/leaf.jpg").
		Return(result.Success(models.CaptureGuidance{Success: true})).Once()
	require.NoError(t, vm.ValidatePhoto(context.Background()))
	require.True(t, vm.CanAnalyze())

	vm.ResetValidation()
	assert.False(t, vm.CanAnalyze())

	vm.ResetStates()
	state := vm.State().Value()
	assert.Empty(t, state.ImagePath)
	assert.Zero(t, state.PlantID)
	assert.True(t, state.Validation.IsIdle())
	assert.True(t, state.Diagnosis.IsIdle())
}
