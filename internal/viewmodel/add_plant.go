package viewmodel

import (
	"context"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

// AddPlantInput is the add-plant form. DiagnosisID seeds the plant from the
// diagnosis it was first photographed in.
type AddPlantInput struct {
	Name        string
	Species     *string
	Location    *string
	DiagnosisID *int
}

type AddPlantViewModel struct {
	plants repository.PlantRepository
	user   SessionUser
	state  *StateFlow[Async[models.Plant]]
	scope  *scope
}

func NewAddPlantViewModel(plants repository.PlantRepository, user SessionUser) *AddPlantViewModel {
	return &AddPlantViewModel{
		plants: plants,
		user:   user,
		state:  NewStateFlow(Idle[models.Plant]()),
		scope:  newScope(),
	}
}

func (vm *AddPlantViewModel) State() *StateFlow[Async[models.Plant]] { return vm.state }

// AddPlant creates the plant. A blank name or a missing session fails before any call.
func (vm *AddPlantViewModel) AddPlant(ctx context.Context, in AddPlantInput) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	if strings.TrimSpace(in.Name) == "" {
		vm.state.Set(Fail[models.Plant](MsgBlankName))
		return
	}
	userID := vm.user.UserID()
	if userID <= 0 {
		vm.state.Set(Fail[models.Plant](MsgSignInRequired))
		return
	}

	vm.state.Set(Loading[models.Plant]())
	if in.DiagnosisID != nil && *in.DiagnosisID > 0 {
		vm.state.Set(Settle(vm.plants.CreateFromDiagnosis(ctx, userID, *in.DiagnosisID, in.Name, in.Species, in.Location)))
		return
	}
	vm.state.Set(Settle(vm.plants.Create(ctx, models.PlantCreateInput{
		Name:     in.Name,
		UserID:   userID,
		Species:  in.Species,
		Location: in.Location,
	})))
}

func (vm *AddPlantViewModel) Reset() { vm.state.Set(Idle[models.Plant]()) }

func (vm *AddPlantViewModel) Close() { vm.scope.close() }
