// internal/apiclient/community.go
package apiclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

func (c *Client) CommunityPosts(ctx context.Context, limit int) ([]models.CommunityPost, error) {
	var out []models.CommunityPost
	if err := c.getJSON(ctx, "Load posts", "/api/community/posts", limitQuery(limit), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePost(ctx context.Context, userID int, input models.CommunityPostCreateInput) (*models.CommunityPost, error) {
	var out models.CommunityPost
	if err := c.sendJSON(ctx, "Create post", http.MethodPost, "/api/community/posts", userQuery(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePostWithImage shares a photo straight to the feed (multipart).
func (c *Client) CreatePostWithImage(ctx context.Context, input models.CommunityImagePostInput) (*models.CommunityPost, error) {
	form := &multipartForm{imagePath: input.ImagePath}
	form.field("description", input.Description)
	form.optionalField("plant_name", input.PlantName)
	form.optionalField("symptoms", input.Symptoms)
	form.field("is_anonymous", strconv.FormatBool(input.IsAnonymous))
	form.field("user_id", itoa(input.UserID))

	var out models.CommunityPost
	if err := c.sendMultipart(ctx, "Create post", "/api/community/posts/with-image", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLike likes or unlikes a post; the response carries the server's new total.
func (c *Client) ToggleLike(ctx context.Context, postID, userID int) (*models.LikeResponse, error) {
	var out models.LikeResponse
	form := url.Values{"user_id": {itoa(userID)}}
	if err := c.sendForm(ctx, "Like", "/api/community/posts/"+itoa(postID)+"/like", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) HasLiked(ctx context.Context, postID, userID int) (bool, error) {
	var out models.LikedResponse
	path := "/api/community/posts/" + itoa(postID) + "/liked-by/" + itoa(userID)
	if err := c.getJSON(ctx, "Load like", path, nil, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}

func (c *Client) Comments(ctx context.Context, postID int) ([]models.Comment, error) {
	var out []models.Comment
	if err := c.getJSON(ctx, "Load comments", "/api/community/posts/"+itoa(postID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddComment(ctx context.Context, postID, userID int, input models.CommentCreateInput) (*models.CommentCreatedResponse, error) {
	var out models.CommentCreatedResponse
	path := "/api/community/posts/" + itoa(postID) + "/comments"
	if err := c.sendJSON(ctx, "Add comment", http.MethodPost, path, userQuery(userID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
