package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/jardin-inteligente-client/internal/api/v1/handlers"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service"
	"github.com/rakaarfi/jardin-inteligente-client/internal/service/mocks"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCommunityApp(t *testing.T) (*fiber.App, *mocks.MockCommunityService) {
	app := newTestApp()
	m := mocks.NewMockCommunityService(t)
	h := handlers.NewCommunityHandler(m)

	api := app.Group("/api/community", test_utils.MockJWTMiddleware(testUserID, "rosa"))
	api.Get("/posts", h.GetPosts)
	api.Post("/posts", h.CreatePost)
	api.Post("/posts/with-image", h.CreatePostWithImage)
	api.Post("/posts/:postId/like", h.ToggleLike)
	api.Get("/posts/:postId/liked/:userId", h.LikedBy)
	api.Get("/posts/:postId/comments", h.GetComments)
	api.Post("/posts/:postId/comments", h.AddComment)
	return app, m
}

func formRequest(t *testing.T, target, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func TestCommunityHandler_GetPosts(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedLimit int
	}{
		{name: "Default Limit", query: "", expectedLimit: utils.DefaultFeedLimit},
		{name: "Explicit Limit", query: "?limit=5", expectedLimit: 5},
		{name: "Garbage Limit", query: "?limit=abc", expectedLimit: utils.DefaultFeedLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, m := setupCommunityApp(t)
			m.On("Posts", mock.Anything, tc.expectedLimit).Return([]models.CommunityPost{{ID: 1, AuthorName: "rosa", Status: models.PostStatusApproved}}, nil).Once()

			status, posts := sendList(t, app, jsonRequest(t, http.MethodGet, "/api/community/posts"+tc.query, nil))
			assert.Equal(t, http.StatusOK, status)
			assert.Len(t, posts, 1)
		})
	}
}

func TestCommunityHandler_CreatePost(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		input          models.CommunityPostCreateInput
		setupMock      func(m *mocks.MockCommunityService, input models.CommunityPostCreateInput)
		expectedStatus int
		expectedDetail string
	}{
		{
			name:  "Success",
			path:  "/api/community/posts?user_id=7",
			input: models.CommunityPostCreateInput{DiagnosisID: 21, IsAnonymous: true},
			setupMock: func(m *mocks.MockCommunityService, input models.CommunityPostCreateInput) {
				m.On("CreatePost", mock.Anything, testUserID, &input).Return(&models.CommunityPost{ID: 4, DiagnosisID: 21, AuthorName: "Anonymous", IsAnonymous: true}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Diagnosis",
			path:           "/api/community/posts?user_id=7",
			input:          models.CommunityPostCreateInput{},
			setupMock:      func(m *mocks.MockCommunityService, input models.CommunityPostCreateInput) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedDetail: "diagnosis_id is required.",
		},
		{
			name:  "Unknown Diagnosis",
			path:  "/api/community/posts?user_id=7",
			input: models.CommunityPostCreateInput{DiagnosisID: 99},
			setupMock: func(m *mocks.MockCommunityService, input models.CommunityPostCreateInput) {
				m.On("CreatePost", mock.Anything, testUserID, &input).Return(nil, service.ErrDiagnosisNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Diagnosis not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, m := setupCommunityApp(t)
			tc.setupMock(m, tc.input)

			status, body := send(t, app, jsonRequest(t, http.MethodPost, tc.path, tc.input))
			assert.Equal(t, tc.expectedStatus, status)
			if tc.expectedDetail != "" {
				assert.Equal(t, tc.expectedDetail, body["detail"])
			} else {
				assert.Equal(t, "Anonymous", body["author_name"])
			}
		})
	}
}

func TestCommunityHandler_CreatePostWithImage(t *testing.T) {
	photo := test_utils.PNGOfSize(t, 80, 80)
	plant := "Basil"

	t.Run("Success", func(t *testing.T) {
		app, m := setupCommunityApp(t)
		m.On("CreatePostWithImage", mock.Anything, service.ImagePostInput{
			UserID:      testUserID,
			Image:       photo,
			MIMEType:    "image/png",
			Description: "Leaves curling",
			PlantName:   &plant,
			IsAnonymous: true,
		}).Return(&models.CommunityPost{ID: 5, Status: models.PostStatusPending}, nil).Once()

		fields := map[string]string{"user_id": "7", "description": " Leaves curling ", "plant_name": "Basil", "is_anonymous": "true"}
		status, body := send(t, app, multipartRequest(t, "/api/community/posts/with-image", fields, photo))
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("Blank Description", func(t *testing.T) {
		app, _ := setupCommunityApp(t)
		fields := map[string]string{"user_id": "7", "description": "  "}
		status, body := send(t, app, multipartRequest(t, "/api/community/posts/with-image", fields, photo))
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "description is required.", body["detail"])
	})

	t.Run("Missing Image", func(t *testing.T) {
		app, _ := setupCommunityApp(t)
		fields := map[string]string{"user_id": "7", "description": "Leaves curling"}
		status, body := send(t, app, multipartRequest(t, "/api/community/posts/with-image", fields, nil))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, handlers.MsgImageMissing, body["detail"])
	})
}

func TestCommunityHandler_ToggleLike(t *testing.T) {
	app, m := setupCommunityApp(t)
	m.On("ToggleLike", mock.Anything, 4, testUserID).Return(&models.LikeResponse{Success: true, Message: "Post liked", Liked: true, TotalLikes: 3}, nil).Once()
	m.On("ToggleLike", mock.Anything, 5, testUserID).Return(nil, service.ErrPostNotFound).Once()

	status, body := send(t, app, formRequest(t, "/api/community/posts/4/like", "user_id=7"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["liked"])
	assert.Equal(t, float64(3), body["total_likes"])

	status, body = send(t, app, formRequest(t, "/api/community/posts/5/like", "user_id=7"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Post not found", body["detail"])

	status, body = send(t, app, formRequest(t, "/api/community/posts/4/like", "user_id=9"))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, handlers.MsgWrongUser, body["detail"])
}

func TestCommunityHandler_LikedBy(t *testing.T) {
	app, m := setupCommunityApp(t)
	m.On("HasLiked", mock.Anything, 4, testUserID).Return(true, nil).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodGet, "/api/community/posts/4/liked/7", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["liked"])
}

func TestCommunityHandler_Comments(t *testing.T) {
	app, m := setupCommunityApp(t)
	input := models.CommentCreateInput{Content: "Cut the brown leaves", IsSolution: true}
	m.On("AddComment", mock.Anything, 4, testUserID, &input).Return(&models.CommentCreatedResponse{Message: "Comment added", CommentID: 12}, nil).Once()
	m.On("Comments", mock.Anything, 4).Return([]models.Comment{{ID: 12, PostID: 4, Content: input.Content, IsSolution: true}}, nil).Once()

	status, body := send(t, app, jsonRequest(t, http.MethodPost, "/api/community/posts/4/comments?user_id=7", input))
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, float64(12), body["comment_id"])

	status, body = send(t, app, jsonRequest(t, http.MethodPost, "/api/community/posts/4/comments?user_id=7", models.CommentCreateInput{Content: " "}))
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "content is required.", body["detail"])

	status, comments := sendList(t, app, jsonRequest(t, http.MethodGet, "/api/community/posts/4/comments", nil))
	assert.Equal(t, http.StatusOK, status)
	if assert.Len(t, comments, 1) {
		assert.Equal(t, true, comments[0]["is_solution"])
	}
}
