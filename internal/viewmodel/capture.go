package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	zlog "github.com/rs/zerolog/log"
)

// SessionUser exposes the signed-in user's id. repository.AuthRepository satisfies it.
type SessionUser interface {
	UserID() int
}

// CaptureState is the capture/diagnosis flow: a photo is validated first, then
// (only after a positive validation and with a target plant) fully analysed.
type CaptureState struct {
	ImagePath  string
	PlantID    int
	Validation Async[models.CaptureGuidance]
	Diagnosis  Async[models.Diagnosis]

	// Bumped whenever a step is reset, so results of superseded calls are dropped.
	validationEpoch int
	diagnosisEpoch  int
}

// CanAnalyze reports whether the full diagnosis may run.
func (s CaptureState) CanAnalyze() bool {
	return s.ImagePath != "" &&
		s.PlantID > 0 &&
		s.Validation.IsSuccess() &&
		s.Validation.Data.Success
}

// CaptureViewModel drives the capture screen. Repeated triggers of the same step
// while it is in flight join the running call instead of issuing another request.
// A joined call is cancelled by Close, or when every caller waiting on it has
// cancelled its own context.
type CaptureViewModel struct {
	diagnoses repository.DiagnosisRepository
	user      SessionUser
	state     *StateFlow[CaptureState]
	scope     *scope
	flights   *sharedCalls

	mu       sync.Mutex
	symptoms *string
}

func NewCaptureViewModel(diagnoses repository.DiagnosisRepository, user SessionUser) *CaptureViewModel {
	s := newScope()
	return &CaptureViewModel{
		diagnoses: diagnoses,
		user:      user,
		state:     NewStateFlow(CaptureState{}),
		scope:     s,
		flights:   newSharedCalls(s),
	}
}

func (vm *CaptureViewModel) State() *StateFlow[CaptureState] { return vm.state }

func (vm *CaptureViewModel) CanAnalyze() bool { return vm.state.Value().CanAnalyze() }

// SetCapturedImage stores a new photo and resets both steps.
func (vm *CaptureViewModel) SetCapturedImage(path string) {
	vm.state.Update(func(s CaptureState) CaptureState {
		s.ImagePath = path
		s.Validation = Idle[models.CaptureGuidance]()
		s.Diagnosis = Idle[models.Diagnosis]()
		s.validationEpoch++
		s.diagnosisEpoch++
		return s
	})
}

func (vm *CaptureViewModel) SetTargetPlant(plantID int) {
	vm.state.Update(func(s CaptureState) CaptureState {
		s.PlantID = plantID
		return s
	})
}

// ValidatePhoto runs the photo pre-check on the stored image. It is a no-op once
// validation has succeeded; use SetCapturedImage or ResetValidation to start over.
func (vm *CaptureViewModel) ValidatePhoto(ctx context.Context) error {
	s := vm.state.Value()
	if s.ImagePath == "" {
		return ErrNoImage
	}
	if s.Validation.IsSuccess() {
		return nil
	}
	vm.runValidation(ctx, s.ImagePath)
	return nil
}

// RetryValidation re-runs a failed validation with the same image.
func (vm *CaptureViewModel) RetryValidation(ctx context.Context) error {
	s := vm.state.Value()
	if !s.Validation.IsError() {
		return ErrNothingToRetry
	}
	vm.runValidation(ctx, s.ImagePath)
	return nil
}

// AnalyzePlant runs the full diagnosis for the stored image and target plant.
// It returns ErrAnalyzeNotReady, leaving the state untouched, unless CanAnalyze.
func (vm *CaptureViewModel) AnalyzePlant(ctx context.Context, symptoms *string) error {
	s := vm.state.Value()
	if !s.CanAnalyze() {
		return ErrAnalyzeNotReady
	}
	if s.Diagnosis.IsSuccess() {
		return nil
	}

	vm.mu.Lock()
	vm.symptoms = symptoms
	vm.mu.Unlock()

	vm.runDiagnosis(ctx, s.ImagePath, s.PlantID, symptoms)
	return nil
}

// RetryDiagnosis re-runs a failed diagnosis with the stored image, plant and symptoms.
func (vm *CaptureViewModel) RetryDiagnosis(ctx context.Context) error {
	s := vm.state.Value()
	if !s.Diagnosis.IsError() {
		return ErrNothingToRetry
	}
	if !s.CanAnalyze() {
		return ErrAnalyzeNotReady
	}

	vm.mu.Lock()
	symptoms := vm.symptoms
	vm.mu.Unlock()

	vm.runDiagnosis(ctx, s.ImagePath, s.PlantID, symptoms)
	return nil
}

func (vm *CaptureViewModel) ResetValidation() {
	vm.state.Update(func(s CaptureState) CaptureState {
		s.Validation = Idle[models.CaptureGuidance]()
		s.validationEpoch++
		return s
	})
}

func (vm *CaptureViewModel) ResetDiagnosis() {
	vm.state.Update(func(s CaptureState) CaptureState {
		s.Diagnosis = Idle[models.Diagnosis]()
		s.diagnosisEpoch++
		return s
	})
}

// ResetStates returns to a blank capture: no image, no plant, both steps Idle.
func (vm *CaptureViewModel) ResetStates() {
	vm.mu.Lock()
	vm.symptoms = nil
	vm.mu.Unlock()

	vm.state.Update(func(s CaptureState) CaptureState {
		return CaptureState{
			validationEpoch: s.validationEpoch + 1,
			diagnosisEpoch:  s.diagnosisEpoch + 1,
		}
	})
}

// Close cancels calls still in flight.
func (vm *CaptureViewModel) Close() { vm.scope.close() }

// ====================================================================================
// Steps
// ====================================================================================

func (vm *CaptureViewModel) runValidation(ctx context.Context, path string) {
	shared := vm.flights.do(ctx, "validate\x00"+path, func(ctx context.Context) {
		var epoch int
		vm.state.Update(func(s CaptureState) CaptureState {
			epoch = s.validationEpoch
			s.Validation = Loading[models.CaptureGuidance]()
			return s
		})

		res := vm.diagnoses.ValidatePhoto(ctx, path)

		vm.state.Update(func(s CaptureState) CaptureState {
			if s.validationEpoch == epoch {
				s.Validation = Settle(res)
			}
			return s
		})
	})
	if shared {
		zlog.Debug().Str("image", path).Msg("ViewModel: joined in-flight photo validation")
	}
}

func (vm *CaptureViewModel) runDiagnosis(ctx context.Context, path string, plantID int, symptoms *string) {
	key := fmt.Sprintf("analyze\x00%s\x00%d", path, plantID)
	shared := vm.flights.do(ctx, key, func(ctx context.Context) {
		var epoch int
		vm.state.Update(func(s CaptureState) CaptureState {
			epoch = s.diagnosisEpoch
			s.Diagnosis = Loading[models.Diagnosis]()
			return s
		})

		userID := vm.user.UserID()
		if userID <= 0 {
			vm.state.Update(func(s CaptureState) CaptureState {
				if s.diagnosisEpoch == epoch {
					s.Diagnosis = Fail[models.Diagnosis](MsgSignInRequired)
				}
				return s
			})
			return
		}

		res := vm.diagnoses.AnalyzePlant(ctx, apiclient.AnalyzeRequest{
			PlantID:   plantID,
			UserID:    userID,
			ImagePath: path,
			Symptoms:  symptoms,
		})

		vm.state.Update(func(s CaptureState) CaptureState {
			if s.diagnosisEpoch == epoch {
				s.Diagnosis = Settle(res)
			}
			return s
		})
	})
	if shared {
		zlog.Debug().Str("image", path).Int("plant_id", plantID).Msg("ViewModel: joined in-flight diagnosis")
	}
}
