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

func newCommunityVM(t *testing.T, posts ...models.CommunityPost) (*viewmodel.CommunityViewModel, *mocks.MockCommunityRepository) {
	t.Helper()
	repo := mocks.NewMockCommunityRepository(t)
	vm := viewmodel.NewCommunityViewModel(repo, fixedUser(2))
	t.Cleanup(vm.Close)

	repo.On("Posts", mock.Anything, 20).Return(result.Success(posts)).Once()
	vm.LoadPosts(context.Background(), 20)
	require.Len(t, vm.State().Value().Posts, len(posts))
	return vm, repo
}

func TestCommunityViewModel_ToggleLike(t *testing.T) {
	tests := []struct {
		name      string
		server    models.LikeResponse
		wantLikes []int // feed value, optimistic, settled
		wantLiked []bool
	}{
		{
			name:      "Like matches server total",
			server:    models.LikeResponse{Success: true, Liked: true, TotalLikes: 5},
			wantLikes: []int{4, 5, 5},
			wantLiked: []bool{false, true, true},
		},
		{
			name:      "Server total wins over the optimistic count",
			server:    models.LikeResponse{Success: true, Liked: true, TotalLikes: 8},
			wantLikes: []int{4, 5, 8},
			wantLiked: []bool{false, true, true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4}, models.CommunityPost{ID: 8, Likes: 1})
			repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(false)).Once()
			repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(tc.server)).Once()

			var likes []int
			var liked []bool
			vm.State().Subscribe(func(s viewmodel.CommunityState) {
				p, _ := s.Post(7)
				likes = append(likes, p.Likes)
				liked = append(liked, s.Liked[7])
			})

			vm.ToggleLike(context.Background(), 7)

			assert.Equal(t, tc.wantLikes, likes)
			assert.Equal(t, tc.wantLiked, liked)
			other, _ := vm.State().Value().Post(8)
			assert.Equal(t, 1, other.Likes, "other posts are untouched")
		})
	}
}

func TestCommunityViewModel_UnlikeDecrementsByOne(t *testing.T) {
	vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4})
	repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(false)).Once()
	repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(models.LikeResponse{Success: true, Liked: true, TotalLikes: 5})).Once()
	repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(models.LikeResponse{Success: true, Liked: false, TotalLikes: 4})).Once()

	vm.ToggleLike(context.Background(), 7)

	var likes []int
	vm.State().Subscribe(func(s viewmodel.CommunityState) {
		p, _ := s.Post(7)
		likes = append(likes, p.Likes)
	})
	vm.ToggleLike(context.Background(), 7)

	assert.Equal(t, []int{5, 4, 4}, likes)
	assert.False(t, vm.State().Value().Liked[7])
}

func TestCommunityViewModel_ToggleLikeFailureRollsBack(t *testing.T) {
	vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4})
	repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(false)).Once()
	repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Failure[models.LikeResponse](repository.MsgNetwork, 0)).Once()

	vm.ToggleLike(context.Background(), 7)

	state := vm.State().Value()
	post, _ := state.Post(7)
	assert.Equal(t, 4, post.Likes)
	assert.False(t, state.Liked[7])
	assert.Equal(t, repository.MsgNetwork, state.Error)
}

func TestCommunityViewModel_ToggleLikeOnUnopenedPost(t *testing.T) {
	t.Run("Already liked post is unliked by one", func(t *testing.T) {
		vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4})
		repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(true)).Once()
		repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(models.LikeResponse{Success: true, Liked: false, TotalLikes: 3})).Once()

		var likes []int
		vm.State().Subscribe(func(s viewmodel.CommunityState) {
			p, _ := s.Post(7)
			likes = append(likes, p.Likes)
		})
		vm.ToggleLike(context.Background(), 7)

		assert.Equal(t, []int{4, 3, 3}, likes)
		assert.False(t, vm.State().Value().Liked[7])
	})

	t.Run("Unknown flag waits for the server", func(t *testing.T) {
		vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4})
		repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Failure[bool](repository.MsgTimeout, 0)).Once()
		repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(models.LikeResponse{Success: true, Liked: false, TotalLikes: 3})).Once()

		var likes []int
		vm.State().Subscribe(func(s viewmodel.CommunityState) {
			p, _ := s.Post(7)
			likes = append(likes, p.Likes)
		})
		vm.ToggleLike(context.Background(), 7)

		assert.Equal(t, []int{4, 4, 3}, likes, "no optimistic step without a known flag")
		state := vm.State().Value()
		assert.False(t, state.Liked[7])
		assert.Empty(t, state.Error)
	})

	t.Run("Opened post skips the lookup", func(t *testing.T) {
		vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, Likes: 4})
		repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(true)).Once()
		repo.On("Comments", mock.Anything, 7).Return(result.Success([]models.Comment{})).Once()
		repo.On("ToggleLike", mock.Anything, 7, 2).Return(result.Success(models.LikeResponse{Success: true, Liked: false, TotalLikes: 3})).Once()

		vm.OpenPost(context.Background(), 7)
		vm.ToggleLike(context.Background(), 7)

		repo.AssertNumberOfCalls(t, "HasLiked", 1)
		post, _ := vm.State().Value().Post(7)
		assert.Equal(t, 3, post.Likes)
	})
}

func TestCommunityViewModel_OpenPostAndComment(t *testing.T) {
	vm, repo := newCommunityVM(t, models.CommunityPost{ID: 7, CommentsCount: 1})
	repo.On("HasLiked", mock.Anything, 7, 2).Return(result.Success(true)).Once()
	repo.On("Comments", mock.Anything, 7).Return(result.Success([]models.Comment{{ID: 1, Content: "water less"}})).Once()

	vm.OpenPost(context.Background(), 7)

	state := vm.State().Value()
	assert.True(t, state.Liked[7])
	assert.Equal(t, 7, state.OpenPostID)
	require.True(t, state.Comments.IsSuccess())
	assert.Len(t, state.Comments.Data, 1)

	vm.AddComment(context.Background(), 7, "   ", false)
	assert.Equal(t, viewmodel.MsgBlankComment, vm.State().Value().Error)

	repo.On("AddComment", mock.Anything, 7, 2, models.CommentCreateInput{Content: "more light", IsSolution: true}).
		Return(result.Success(models.CommentCreatedResponse{CommentID: 2})).Once()
	repo.On("Comments", mock.Anything, 7).
		Return(result.Success([]models.Comment{{ID: 1}, {ID: 2, Content: "more light"}})).Once()

	vm.AddComment(context.Background(), 7, "more light", true)

	post, _ := vm.State().Value().Post(7)
	assert.Equal(t, 2, post.CommentsCount)
}

func TestCommunityViewModel_CreatePostReloads(t *testing.T) {
	vm, repo := newCommunityVM(t)
	repo.On("CreatePost", mock.Anything, 2, models.CommunityPostCreateInput{DiagnosisID: 44, IsAnonymous: true}).
		Return(result.Success(models.CommunityPost{ID: 10})).Once()
	repo.On("Posts", mock.Anything, 0).Return(result.Success([]models.CommunityPost{{ID: 10}})).Once()

	vm.CreatePost(context.Background(), 44, true)

	state := vm.State().Value()
	assert.False(t, state.Loading)
	assert.Len(t, state.Posts, 1)
}

func TestCommunityShareViewModel(t *testing.T) {
	t.Run("Requires a session", func(t *testing.T) {
		repo := mocks.NewMockCommunityRepository(t)
		vm := viewmodel.NewCommunityShareViewModel(repo, fixedUser(0))
		t.Cleanup(vm.Close)

		vm.Share(context.Background(), viewmodel.ShareInput{ImagePath: "/p.jpg", Description: "help"})
		assert.Equal(t, viewmodel.MsgSignInRequired, vm.State().Value().Message)
	})

	t.Run("Shares the photo", func(t *testing.T) {
		repo := mocks.NewMockCommunityRepository(t)
		vm := viewmodel.NewCommunityShareViewModel(repo, fixedUser(2))
		t.Cleanup(vm.Close)
		repo.On("CreatePostWithImage", mock.Anything, models.CommunityImagePostInput{
			ImagePath: "/p.jpg", Description: "help", PlantName: ptr("fern"), UserID: 2,
		}).Return(result.Success(models.CommunityPost{ID: 12})).Once()

		vm.Share(context.Background(), viewmodel.ShareInput{ImagePath: "/p.jpg", Description: "help", PlantName: ptr("fern")})

		state := vm.State().Value()
		require.True(t, state.IsSuccess())
		assert.Equal(t, 12, state.Data.ID)

		vm.Reset()
		assert.True(t, vm.State().Value().IsIdle())
	})
}
