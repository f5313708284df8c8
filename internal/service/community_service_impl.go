// internal/service/community_service_impl.go
package service

import (
	"context"
	"slices"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	zlog "github.com/rs/zerolog/log"
)

const (
	xpPost    = 5
	xpComment = 3
)

type communityServiceImpl struct {
	store *Store
}

// NewCommunityService creates a new instance of CommunityService.
func NewCommunityService(store *Store) CommunityService {
	return &communityServiceImpl{store: store}
}

// Posts returns the feed, newest first.
func (s *communityServiceImpl) Posts(ctx context.Context, limit int) ([]models.CommunityPost, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	posts := make([]models.CommunityPost, 0, len(s.store.posts))
	for _, p := range s.store.posts {
		posts = append(posts, *p)
	}
	slices.SortFunc(posts, func(a, b models.CommunityPost) int { return b.ID - a.ID })
	return utils.Take(posts, limit), nil
}

func (s *communityServiceImpl) CreatePost(ctx context.Context, userID int, input *models.CommunityPostCreateInput) (*models.CommunityPost, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.accounts[userID]; !ok {
		return nil, ErrUserNotFound
	}
	e, ok := s.store.diagnoses[input.DiagnosisID]
	if !ok {
		return nil, ErrDiagnosisNotFound
	}

	post := &models.CommunityPost{
		ID:          s.store.next("post"),
		DiagnosisID: input.DiagnosisID,
		UserID:      userID,
		AuthorName:  s.store.authorName(userID, input.IsAnonymous),
		IsAnonymous: input.IsAnonymous,
		Description: strPtr(e.record.DiagnosisText),
		ImageURL:    e.record.ImageURL,
		Status:      models.PostStatusApproved,
		CreatedAt:   s.store.timestamp(),
	}
	if e.record.PlantName != "" {
		post.PlantName = strPtr(e.record.PlantName)
	}
	s.store.posts[post.ID] = post
	s.store.activity(userID).posts++
	s.store.award(userID, xpPost, 0)

	zlog.Info().Int("post_id", post.ID).Int("diagnosis_id", input.DiagnosisID).Msg("Service: Community post created")
	out := *post
	return &out, nil
}

func (s *communityServiceImpl) CreatePostWithImage(ctx context.Context, input ImagePostInput) (*models.CommunityPost, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.accounts[input.UserID]; !ok {
		return nil, ErrUserNotFound
	}

	description := strings.TrimSpace(input.Description)
	if input.Symptoms != nil && strings.TrimSpace(*input.Symptoms) != "" {
		description += "\nSymptoms: " + strings.TrimSpace(*input.Symptoms)
	}
	imageURL := s.store.saveUpload(input.Image, input.MIMEType)

	// Photo-only posts wait for an answer from the community.
	post := &models.CommunityPost{
		ID:          s.store.next("post"),
		UserID:      input.UserID,
		AuthorName:  s.store.authorName(input.UserID, input.IsAnonymous),
		IsAnonymous: input.IsAnonymous,
		PlantName:   input.PlantName,
		Description: &description,
		ImageURL:    &imageURL,
		Status:      models.PostStatusPending,
		CreatedAt:   s.store.timestamp(),
	}
	s.store.posts[post.ID] = post
	s.store.activity(input.UserID).posts++
	s.store.award(input.UserID, xpPost, 0)

	zlog.Info().Int("post_id", post.ID).Msg("Service: Community image post created")
	out := *post
	return &out, nil
}

func (s *communityServiceImpl) ToggleLike(ctx context.Context, postID, userID int) (*models.LikeResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, ok := s.store.posts[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	likers, ok := s.store.likes[postID]
	if !ok {
		likers = make(map[int]bool)
		s.store.likes[postID] = likers
	}

	resp := &models.LikeResponse{Success: true}
	if likers[userID] {
		delete(likers, userID)
		resp.Message = "Like removed"
	} else {
		likers[userID] = true
		resp.Liked = true
		resp.Message = "Post liked"
	}
	post.Likes = len(likers)
	resp.TotalLikes = post.Likes
	return resp, nil
}

func (s *communityServiceImpl) HasLiked(ctx context.Context, postID, userID int) (bool, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if _, ok := s.store.posts[postID]; !ok {
		return false, ErrPostNotFound
	}
	return s.store.likes[postID][userID], nil
}

func (s *communityServiceImpl) Comments(ctx context.Context, postID int) ([]models.Comment, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if _, ok := s.store.posts[postID]; !ok {
		return nil, ErrPostNotFound
	}
	comments := slices.Clone(s.store.comments[postID])
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func (s *communityServiceImpl) AddComment(ctx context.Context, postID, userID int, input *models.CommentCreateInput) (*models.CommentCreatedResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, ok := s.store.posts[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	if _, ok := s.store.accounts[userID]; !ok {
		return nil, ErrUserNotFound
	}

	comment := models.Comment{
		ID:         s.store.next("comment"),
		PostID:     postID,
		UserID:     userID,
		AuthorName: s.store.authorName(userID, false),
		Content:    strings.TrimSpace(input.Content),
		IsSolution: input.IsSolution,
		CreatedAt:  s.store.timestamp(),
	}
	s.store.comments[postID] = append(s.store.comments[postID], comment)
	post.CommentsCount++
	if input.IsSolution && post.Status == models.PostStatusPending {
		post.Status = models.PostStatusResolved
	}

	a := s.store.activity(userID)
	a.comments++
	a.todayComments++
	s.store.award(userID, xpComment, 0)

	return &models.CommentCreatedResponse{Message: "Comment added", CommentID: comment.ID}, nil
}
