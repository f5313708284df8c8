// internal/api/v1/handlers/community_handler.go
package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

type CommunityHandler struct {
	CommunityService service.CommunityService
	Validate         *validator.Validate
}

func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		CommunityService: communityService,
		Validate:         utils.NewValidator(),
	}
}

// GetPosts godoc
// @Summary Community Feed
// @Tags Community
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max posts (default 20, max 100)"
// @Success 200 {array} models.CommunityPost
// @Router /api/community/posts [get]
func (h *CommunityHandler) GetPosts(c *fiber.Ctx) error {
	limit := utils.ParseLimitParam(c, utils.DefaultFeedLimit)
	posts, err := h.CommunityService.Posts(c.Context(), limit)
	if err != nil {
		return serviceError("posts", err)
	}
	return c.JSON(posts)
}

// CreatePost godoc
// @Summary Share Diagnosis
// @Description Shares an existing diagnosis to the community feed.
// @Tags Community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param user_id query int true "User ID"
// @Param post body models.CommunityPostCreateInput true "Post"
// @Success 201 {object} models.CommunityPost
// @Failure 404 {object} models.APIError "Diagnosis not found"
// @Router /api/community/posts [post]
func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}
	input := new(models.CommunityPostCreateInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	post, err := h.CommunityService.CreatePost(c.Context(), userID, input)
	if err != nil {
		return serviceError("create post", err)
	}
	zlog.Info().Int("post_id", post.ID).Msg("Handler: Post created")
	return c.Status(fiber.StatusCreated).JSON(post)
}

// CreatePostWithImage godoc
// @Summary Share Photo
// @Description Shares a photo to the feed and asks the community for help.
// @Tags Community
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param image formData file true "Plant photo (max 10 MB)"
// @Param description formData string true "Description"
// @Param plant_name formData string false "Plant name"
// @Param symptoms formData string false "Symptoms"
// @Param is_anonymous formData bool false "Hide the author"
// @Param user_id formData int true "User ID"
// @Success 201 {object} models.CommunityPost
// @Router /api/community/posts/with-image [post]
func (h *CommunityHandler) CreatePostWithImage(c *fiber.Ctx) error {
	userID, err := formUserID(c)
	if err != nil {
		return err
	}
	description := optionalForm(c, "description")
	if description == nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "description is required.")
	}
	data, mimeType, err := readImage(c)
	if err != nil {
		return err
	}
	anonymous, _ := strconv.ParseBool(c.FormValue("is_anonymous"))

	post, err := h.CommunityService.CreatePostWithImage(c.Context(), service.ImagePostInput{
		UserID:      userID,
		Image:       data,
		MIMEType:    mimeType,
		Description: *description,
		PlantName:   optionalForm(c, "plant_name"),
		Symptoms:    optionalForm(c, "symptoms"),
		IsAnonymous: anonymous,
	})
	if err != nil {
		return serviceError("create image post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike godoc
// @Summary Like or Unlike
// @Tags Community
// @Accept x-www-form-urlencoded
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param user_id formData int true "User ID"
// @Success 200 {object} models.LikeResponse
// @Router /api/community/posts/{postId}/like [post]
func (h *CommunityHandler) ToggleLike(c *fiber.Ctx) error {
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}
	userID, err := formUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.CommunityService.ToggleLike(c.Context(), postID, userID)
	if err != nil {
		return serviceError("toggle like", err)
	}
	return c.JSON(resp)
}

// LikedBy godoc
// @Summary Has Liked
// @Tags Community
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param userId path int true "User ID"
// @Success 200 {object} models.LikedResponse
// @Router /api/community/posts/{postId}/liked-by/{userId} [get]
func (h *CommunityHandler) LikedBy(c *fiber.Ctx) error {
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	liked, err := h.CommunityService.HasLiked(c.Context(), postID, userID)
	if err != nil {
		return serviceError("liked by", err)
	}
	return c.JSON(models.LikedResponse{Liked: liked})
}

// GetComments godoc
// @Summary Post Comments
// @Tags Community
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Success 200 {array} models.Comment
// @Router /api/community/posts/{postId}/comments [get]
func (h *CommunityHandler) GetComments(c *fiber.Ctx) error {
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}
	comments, err := h.CommunityService.Comments(c.Context(), postID)
	if err != nil {
		return serviceError("comments", err)
	}
	return c.JSON(comments)
}

// AddComment godoc
// @Summary Add Comment
// @Tags Community
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param postId path int true "Post ID"
// @Param user_id query int true "User ID"
// @Param comment body models.CommentCreateInput true "Comment"
// @Success 201 {object} models.CommentCreatedResponse
// @Router /api/community/posts/{postId}/comments [post]
func (h *CommunityHandler) AddComment(c *fiber.Ctx) error {
	postID, err := pathID(c, "postId")
	if err != nil {
		return err
	}
	userID, err := queryUserID(c)
	if err != nil {
		return err
	}
	input := new(models.CommentCreateInput)
	if err := bindJSON(c, h.Validate, input); err != nil {
		return err
	}

	resp, err := h.CommunityService.AddComment(c.Context(), postID, userID, input)
	if err != nil {
		return serviceError("add comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
