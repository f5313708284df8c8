// internal/repository/community_repo.go
package repository

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
)

type communityRepo struct {
	api      apiclient.Service
	validate *validator.Validate
}

func NewCommunityRepository(api apiclient.Service) CommunityRepository {
	return &communityRepo{api: api, validate: utils.NewValidator()}
}

func (r *communityRepo) Posts(ctx context.Context, limit int) result.Result[[]models.CommunityPost] {
	posts, err := r.api.CommunityPosts(ctx, limit)
	if err != nil {
		return failure[[]models.CommunityPost]("community posts", err)
	}
	if posts == nil {
		posts = []models.CommunityPost{}
	}
	for i := range posts {
		r.resolveImage(&posts[i])
	}
	return result.Success(posts)
}

func (r *communityRepo) CreatePost(ctx context.Context, userID int, input models.CommunityPostCreateInput) result.Result[models.CommunityPost] {
	if err := r.validate.Struct(input); err != nil {
		return failure[models.CommunityPost]("create post", err)
	}
	post, err := r.api.CreatePost(ctx, userID, input)
	if err != nil {
		return failure[models.CommunityPost]("create post", err)
	}
	r.resolveImage(post)
	return result.Success(*post)
}

func (r *communityRepo) CreatePostWithImage(ctx context.Context, input models.CommunityImagePostInput) result.Result[models.CommunityPost] {
	input.Description = strings.TrimSpace(input.Description)
	if err := r.validate.Struct(input); err != nil {
		return failure[models.CommunityPost]("create post with image", err)
	}
	post, err := r.api.CreatePostWithImage(ctx, input)
	if err != nil {
		return failure[models.CommunityPost]("create post with image", err)
	}
	r.resolveImage(post)
	return result.Success(*post)
}

func (r *communityRepo) ToggleLike(ctx context.Context, postID, userID int) result.Result[models.LikeResponse] {
	resp, err := r.api.ToggleLike(ctx, postID, userID)
	if err != nil {
		return failure[models.LikeResponse]("toggle like", err)
	}
	return result.Success(*resp)
}

func (r *communityRepo) HasLiked(ctx context.Context, postID, userID int) result.Result[bool] {
	liked, err := r.api.HasLiked(ctx, postID, userID)
	if err != nil {
		return failure[bool]("liked by", err)
	}
	return result.Success(liked)
}

func (r *communityRepo) Comments(ctx context.Context, postID int) result.Result[[]models.Comment] {
	comments, err := r.api.Comments(ctx, postID)
	if err != nil {
		return failure[[]models.Comment]("comments", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return result.Success(comments)
}

func (r *communityRepo) AddComment(ctx context.Context, postID, userID int, input models.CommentCreateInput) result.Result[models.CommentCreatedResponse] {
	input.Content = strings.TrimSpace(input.Content)
	if err := r.validate.Struct(input); err != nil {
		return failure[models.CommentCreatedResponse]("add comment", err)
	}
	resp, err := r.api.AddComment(ctx, postID, userID, input)
	if err != nil {
		return failure[models.CommentCreatedResponse]("add comment", err)
	}
	return result.Success(*resp)
}

func (r *communityRepo) resolveImage(p *models.CommunityPost) {
	if p.ImageURL == nil {
		return
	}
	if strings.TrimSpace(*p.ImageURL) == "" {
		p.ImageURL = nil
		return
	}
	abs := r.api.ResolveURL(*p.ImageURL)
	p.ImageURL = &abs
}
