package repository_test

import (
	"context"
	"testing"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommunityRepository_PostsResolveImageURLs(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewCommunityRepository(api)

	rel, abs, blank := "uploads/community/a.jpg", "https://cdn.example.com/b.jpg", " "
	api.On("CommunityPosts", mock.Anything, 20).Return([]models.CommunityPost{
		{ID: 1, ImageURL: &rel},
		{ID: 2, ImageURL: &abs},
		{ID: 3, ImageURL: &blank},
		{ID: 4},
	}, nil).Once()
	api.On("ResolveURL", mock.Anything).Return(func(ref string) string {
		if ref == abs {
			return ref
		}
		return "http://10.0.2.2:8000/" + ref
	})

	res := repo.Posts(context.Background(), 20)
	require.True(t, res.IsSuccess())
	posts := res.Data()
	assert.Equal(t, "http://10.0.2.2:8000/uploads/community/a.jpg", *posts[0].ImageURL)
	assert.Equal(t, abs, *posts[1].ImageURL)
	assert.Nil(t, posts[2].ImageURL)
	assert.Nil(t, posts[3].ImageURL)
}

func TestCommunityRepository_AddCommentRejectsBlank(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewCommunityRepository(api)

	res := repo.AddComment(context.Background(), 1, 2, models.CommentCreateInput{Content: "  "})
	assert.True(t, res.IsError())
	assert.Equal(t, "content is required.", res.Message())
}

func TestCommunityRepository_ToggleLike(t *testing.T) {
	api := mocks.NewMockService(t)
	repo := repository.NewCommunityRepository(api)

	api.On("ToggleLike", mock.Anything, 7, 2).
		Return(&models.LikeResponse{Success: true, Liked: true, TotalLikes: 4}, nil).Once()

	res := repo.ToggleLike(context.Background(), 7, 2)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 4, res.Data().TotalLikes)
}
