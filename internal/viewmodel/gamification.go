package viewmodel

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

type GamificationState struct {
	Achievements *models.AchievementsResponse
	Missions     *models.MissionsResponse
	Loading      bool
	Error        string
}

type GamificationViewModel struct {
	gamification repository.GamificationRepository
	user         SessionUser
	state        *StateFlow[GamificationState]
	scope        *scope
}

func NewGamificationViewModel(gamification repository.GamificationRepository, user SessionUser) *GamificationViewModel {
	return &GamificationViewModel{
		gamification: gamification,
		user:         user,
		state:        NewStateFlow(GamificationState{}),
		scope:        newScope(),
	}
}

func (vm *GamificationViewModel) State() *StateFlow[GamificationState] { return vm.state }

// Load fetches achievements, then missions. The first failure is the one reported;
// Loading clears only after both calls are done.
func (vm *GamificationViewModel) Load(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	if userID <= 0 {
		vm.state.Set(GamificationState{Error: MsgSignInRequired})
		return
	}

	vm.state.Update(func(s GamificationState) GamificationState {
		s.Loading = true
		s.Error = ""
		return s
	})

	achievements := vm.gamification.Achievements(ctx, userID)
	vm.state.Update(func(s GamificationState) GamificationState {
		if achievements.IsSuccess() {
			a := achievements.Data()
			s.Achievements = &a
		} else {
			s.Error = achievements.Message()
		}
		return s
	})

	missions := vm.gamification.Missions(ctx, userID)
	vm.state.Update(func(s GamificationState) GamificationState {
		s.Loading = false
		if missions.IsSuccess() {
			m := missions.Data()
			s.Missions = &m
		} else if s.Error == "" {
			s.Error = missions.Message()
		}
		return s
	})
}

func (vm *GamificationViewModel) Close() { vm.scope.close() }
