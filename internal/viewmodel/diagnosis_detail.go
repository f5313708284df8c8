package viewmodel

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

// DiagnosisDetailState is the detail screen of one diagnosis. Exactly one of
// Diagnosis (a fresh analysis handed over by navigation) or Record (a stored
// diagnosis fetched by id) is set once loaded.
type DiagnosisDetailState struct {
	Diagnosis *models.Diagnosis
	Record    Async[models.DiagnosisRecord]
	Feedback  Async[models.DiagnosisFeedbackResponse]
}

// DiagnosisID is the id the screen is showing, 0 when nothing is loaded.
func (s DiagnosisDetailState) DiagnosisID() int {
	if s.Diagnosis != nil {
		return s.Diagnosis.DiagnosisID
	}
	if s.Record.IsSuccess() {
		return s.Record.Data.ID
	}
	return 0
}

type DiagnosisDetailViewModel struct {
	diagnoses repository.DiagnosisRepository
	user      SessionUser
	state     *StateFlow[DiagnosisDetailState]
	scope     *scope
}

// NewDiagnosisDetailViewModel shows d when non-nil; otherwise call Load.
func NewDiagnosisDetailViewModel(diagnoses repository.DiagnosisRepository, user SessionUser, d *models.Diagnosis) *DiagnosisDetailViewModel {
	return &DiagnosisDetailViewModel{
		diagnoses: diagnoses,
		user:      user,
		state:     NewStateFlow(DiagnosisDetailState{Diagnosis: d}),
		scope:     newScope(),
	}
}

func (vm *DiagnosisDetailViewModel) State() *StateFlow[DiagnosisDetailState] { return vm.state }

// Load fetches a stored diagnosis by id.
func (vm *DiagnosisDetailViewModel) Load(ctx context.Context, diagnosisID int) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	vm.state.Update(func(s DiagnosisDetailState) DiagnosisDetailState {
		s.Record = Loading[models.DiagnosisRecord]()
		return s
	})
	res := vm.diagnoses.Get(ctx, diagnosisID)
	vm.state.Update(func(s DiagnosisDetailState) DiagnosisDetailState {
		s.Record = Settle(res)
		return s
	})
}

// SubmitFeedback tells the backend whether the diagnosis on screen was right.
func (vm *DiagnosisDetailViewModel) SubmitFeedback(ctx context.Context, input models.DiagnosisFeedbackInput) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	id := vm.state.Value().DiagnosisID()
	userID := vm.user.UserID()
	switch {
	case userID <= 0:
		vm.setFeedback(Fail[models.DiagnosisFeedbackResponse](MsgSignInRequired))
		return
	case id <= 0:
		vm.setFeedback(Fail[models.DiagnosisFeedbackResponse](MsgNoDiagnosis))
		return
	}

	vm.setFeedback(Loading[models.DiagnosisFeedbackResponse]())
	vm.setFeedback(Settle(vm.diagnoses.SubmitFeedback(ctx, id, userID, input)))
}

func (vm *DiagnosisDetailViewModel) Close() { vm.scope.close() }

func (vm *DiagnosisDetailViewModel) setFeedback(a Async[models.DiagnosisFeedbackResponse]) {
	vm.state.Update(func(s DiagnosisDetailState) DiagnosisDetailState {
		s.Feedback = a
		return s
	})
}
