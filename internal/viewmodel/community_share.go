package viewmodel

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
)

// ShareInput is a captured photo shared to the community without a prior diagnosis.
type ShareInput struct {
	ImagePath   string
	Description string
	PlantName   *string
	Symptoms    *string
	IsAnonymous bool
}

type CommunityShareViewModel struct {
	community repository.CommunityRepository
	user      SessionUser
	state     *StateFlow[Async[models.CommunityPost]]
	scope     *scope
}

func NewCommunityShareViewModel(community repository.CommunityRepository, user SessionUser) *CommunityShareViewModel {
	return &CommunityShareViewModel{
		community: community,
		user:      user,
		state:     NewStateFlow(Idle[models.CommunityPost]()),
		scope:     newScope(),
	}
}

func (vm *CommunityShareViewModel) State() *StateFlow[Async[models.CommunityPost]] { return vm.state }

func (vm *CommunityShareViewModel) Share(ctx context.Context, in ShareInput) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	if userID <= 0 {
		vm.state.Set(Fail[models.CommunityPost](MsgSignInRequired))
		return
	}

	vm.state.Set(Loading[models.CommunityPost]())
	vm.state.Set(Settle(vm.community.CreatePostWithImage(ctx, models.CommunityImagePostInput{
		ImagePath:   in.ImagePath,
		Description: in.Description,
		PlantName:   in.PlantName,
		Symptoms:    in.Symptoms,
		IsAnonymous: in.IsAnonymous,
		UserID:      userID,
	})))
}

func (vm *CommunityShareViewModel) Reset() { vm.state.Set(Idle[models.CommunityPost]()) }

func (vm *CommunityShareViewModel) Close() { vm.scope.close() }
