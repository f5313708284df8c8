package viewmodel

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
)

type PlantDetailState struct {
	Plant     *models.Plant
	Diagnoses []models.DiagnosisRecord
	Summary   string
	Loading   bool
	Error     string
	Notice    string
	Deleted   bool
}

// PlantDetailViewModel shows one plant and the diagnoses made for it.
type PlantDetailViewModel struct {
	plants    repository.PlantRepository
	diagnoses repository.DiagnosisRepository
	user      SessionUser
	plantID   int
	state     *StateFlow[PlantDetailState]
	scope     *scope
}

func NewPlantDetailViewModel(plants repository.PlantRepository, diagnoses repository.DiagnosisRepository, user SessionUser, plantID int) *PlantDetailViewModel {
	return &PlantDetailViewModel{
		plants:    plants,
		diagnoses: diagnoses,
		user:      user,
		plantID:   plantID,
		state:     NewStateFlow(PlantDetailState{}),
		scope:     newScope(),
	}
}

func (vm *PlantDetailViewModel) State() *StateFlow[PlantDetailState] { return vm.state }

// Load fetches the plant, then its diagnosis history. A failing history leaves
// the list empty without an error.
func (vm *PlantDetailViewModel) Load(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()
	vm.load(ctx)
}

func (vm *PlantDetailViewModel) Water(ctx context.Context) {
	vm.care(ctx, vm.plants.Water)
}

func (vm *PlantDetailViewModel) Fertilize(ctx context.Context) {
	vm.care(ctx, vm.plants.Fertilize)
}

func (vm *PlantDetailViewModel) Delete(ctx context.Context) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	if userID <= 0 {
		vm.setError(MsgSignInRequired)
		return
	}

	res := vm.plants.Delete(ctx, vm.plantID, userID)
	if res.IsError() {
		vm.setError(res.Message())
		return
	}
	vm.state.Update(func(s PlantDetailState) PlantDetailState {
		s.Deleted = true
		s.Error = ""
		s.Notice = res.Data().Message
		return s
	})
}

func (vm *PlantDetailViewModel) Close() { vm.scope.close() }

func (vm *PlantDetailViewModel) care(ctx context.Context, action func(context.Context, int) result.Result[models.CareResponse]) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	res := action(ctx, vm.plantID)
	if res.IsError() {
		vm.setError(res.Message())
		return
	}
	vm.load(ctx)
	vm.state.Update(func(s PlantDetailState) PlantDetailState {
		s.Notice = res.Data().Message
		return s
	})
}

func (vm *PlantDetailViewModel) load(ctx context.Context) {
	vm.state.Update(func(s PlantDetailState) PlantDetailState {
		s.Loading = true
		s.Error = ""
		s.Notice = ""
		return s
	})

	plant := vm.plants.Plant(ctx, vm.plantID)
	if plant.IsError() {
		vm.state.Update(func(s PlantDetailState) PlantDetailState {
			s.Loading = false
			s.Error = plant.Message()
			return s
		})
		return
	}

	history := vm.diagnoses.PlantHistory(ctx, vm.plantID, utils.DefaultHistoryLimit)
	p := plant.Data()
	records := history.Data()

	vm.state.Update(func(s PlantDetailState) PlantDetailState {
		s.Loading = false
		s.Plant = &p
		s.Diagnoses = records
		s.Summary = ProgressSummary(p, records)
		return s
	})
}

func (vm *PlantDetailViewModel) setError(msg string) {
	vm.state.Update(func(s PlantDetailState) PlantDetailState {
		s.Error = msg
		return s
	})
}

// ProgressSummary is the one-paragraph health summary shown above the history.
// Records are expected newest first, as the backend returns them.
func ProgressSummary(p models.Plant, records []models.DiagnosisRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your %s ", p.Name)

	switch {
	case p.HealthScore >= 80:
		b.WriteString("is in excellent shape. ")
	case p.HealthScore >= 60:
		b.WriteString("is healthy but could do better. ")
	case p.HealthScore >= 40:
		b.WriteString("needs attention. ")
	default:
		b.WriteString("needs urgent care. ")
	}

	if len(records) == 0 {
		b.WriteString("No diagnoses yet.")
		return b.String()
	}

	fmt.Fprintf(&b, "%d diagnosis(es) so far. ", len(records))
	found := "general condition"
	if d := records[0].DiseaseName; d != nil && *d != "" {
		found = *d
	}
	fmt.Fprintf(&b, "The latest one found: %s.", found)
	return b.String()
}
