package viewmodel

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

// GardenState is the "my garden" screen. Stats stay nil when progress could not
// be loaded; the plant list still renders.
type GardenState struct {
	Plants  []models.Plant
	Stats   *models.ProgressStats
	Loading bool
	Error   string
	Notice  string
}

type GardenViewModel struct {
	plants repository.PlantRepository
	user   SessionUser
	state  *StateFlow[GardenState]
	scope  *scope
}

func NewGardenViewModel(plants repository.PlantRepository, user SessionUser) *GardenViewModel {
	return &GardenViewModel{
		plants: plants,
		user:   user,
		state:  NewStateFlow(GardenState{}),
		scope:  newScope(),
	}
}

func (vm *GardenViewModel) State() *StateFlow[GardenState] { return vm.state }

// Load fetches the plants and the progress stats of the signed-in user.
func (vm *GardenViewModel) Load(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()
	vm.load(ctx)
}

// Water records a watering and reloads the garden on success.
func (vm *GardenViewModel) Water(ctx context.Context, plantID int) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	res := vm.plants.Water(ctx, plantID)
	if res.IsError() {
		vm.state.Update(func(s GardenState) GardenState {
			s.Error = res.Message()
			return s
		})
		return
	}
	vm.load(ctx)
	vm.state.Update(func(s GardenState) GardenState {
		s.Notice = res.Data().Message
		return s
	})
}

func (vm *GardenViewModel) Close() { vm.scope.close() }

func (vm *GardenViewModel) load(ctx context.Context) {
	userID := vm.user.UserID()
	if userID <= 0 {
		vm.state.Set(GardenState{Error: MsgSignInRequired})
		return
	}

	vm.state.Update(func(s GardenState) GardenState {
		s.Loading = true
		s.Error = ""
		s.Notice = ""
		return s
	})

	plants := vm.plants.UserPlants(ctx, userID)
	stats := vm.plants.ProgressStats(ctx, userID)

	vm.state.Update(func(s GardenState) GardenState {
		s.Loading = false
		if plants.IsSuccess() {
			s.Plants = plants.Data()
		} else {
			s.Error = plants.Message()
		}
		if stats.IsSuccess() {
			st := stats.Data()
			s.Stats = &st
		}
		return s
	})
}
