package viewmodel

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

type DiagnosisHistoryState struct {
	Diagnoses []models.DiagnosisRecord
	Total     int
	Loading   bool
	Error     string
}

type DiagnosisHistoryViewModel struct {
	diagnoses repository.DiagnosisRepository
	user      SessionUser
	state     *StateFlow[DiagnosisHistoryState]
	scope     *scope
}

func NewDiagnosisHistoryViewModel(diagnoses repository.DiagnosisRepository, user SessionUser) *DiagnosisHistoryViewModel {
	return &DiagnosisHistoryViewModel{
		diagnoses: diagnoses,
		user:      user,
		state:     NewStateFlow(DiagnosisHistoryState{}),
		scope:     newScope(),
	}
}

func (vm *DiagnosisHistoryViewModel) State() *StateFlow[DiagnosisHistoryState] { return vm.state }

func (vm *DiagnosisHistoryViewModel) Load(ctx context.Context, limit int) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	if userID <= 0 {
		vm.state.Set(DiagnosisHistoryState{Error: MsgSignInRequired})
		return
	}

	vm.state.Update(func(s DiagnosisHistoryState) DiagnosisHistoryState {
		s.Loading = true
		s.Error = ""
		return s
	})

	res := vm.diagnoses.History(ctx, userID, limit)
	vm.state.Update(func(s DiagnosisHistoryState) DiagnosisHistoryState {
		s.Loading = false
		if res.IsError() {
			s.Error = res.Message()
			return s
		}
		s.Diagnoses = res.Data().Diagnoses
		s.Total = res.Data().Total
		return s
	})
}

func (vm *DiagnosisHistoryViewModel) Close() { vm.scope.close() }
