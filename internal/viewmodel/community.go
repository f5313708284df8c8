package viewmodel

import (
	"context"
	"maps"
	"strconv"
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	zlog "github.com/rs/zerolog/log"
)

// CommunityState is the feed plus the post currently opened. Liked is keyed by
// post id; the maps are replaced, never mutated, on every transition.
type CommunityState struct {
	Posts   []models.CommunityPost
	Liked   map[int]bool
	Loading bool
	Error   string

	OpenPostID int
	Comments   Async[[]models.Comment]
}

// Post returns the post with id from the feed.
func (s CommunityState) Post(id int) (models.CommunityPost, bool) {
	for _, p := range s.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.CommunityPost{}, false
}

type CommunityViewModel struct {
	community repository.CommunityRepository
	user      SessionUser
	state     *StateFlow[CommunityState]
	scope     *scope
	likes     *sharedCalls
}

func NewCommunityViewModel(community repository.CommunityRepository, user SessionUser) *CommunityViewModel {
	s := newScope()
	return &CommunityViewModel{
		community: community,
		user:      user,
		state:     NewStateFlow(CommunityState{Liked: map[int]bool{}}),
		scope:     s,
		likes:     newSharedCalls(s),
	}
}

func (vm *CommunityViewModel) State() *StateFlow[CommunityState] { return vm.state }

// LoadPosts refreshes the feed. Known like flags are kept.
func (vm *CommunityViewModel) LoadPosts(ctx context.Context, limit int) {
	ctx, done := vm.scope.join(ctx)
	defer done()
	vm.loadPosts(ctx, limit)
}

// ToggleLike flips the like on postID at once, moving the displayed count by
// exactly one, then settles on the server's answer. On failure both the flag and
// the count go back to what they were. A second toggle of the same post while
// one is in flight joins it.
//
// When the flag of postID is not known yet (feed loaded, post never opened) it is
// asked for first. If that fails the optimistic step is skipped and the post only
// changes once the server answers.
func (vm *CommunityViewModel) ToggleLike(ctx context.Context, postID int) {
	userID := vm.user.UserID()
	if userID <= 0 {
		vm.setError(MsgSignInRequired)
		return
	}

	vm.likes.do(ctx, strconv.Itoa(postID), func(ctx context.Context) {
		wasLiked, known := vm.state.Value().Liked[postID]
		if !known {
			if res := vm.community.HasLiked(ctx, postID, userID); res.IsSuccess() {
				wasLiked, known = res.Data(), true
			} else {
				zlog.Debug().Int("post_id", postID).Str("error", res.Message()).Msg("ViewModel: like flag unknown, waiting for the server")
			}
		}

		var (
			oldLikes int
			found    bool
		)
		vm.state.Update(func(s CommunityState) CommunityState {
			s.Error = ""
			if !known {
				return s
			}
			s.Posts, oldLikes, found = withLikes(s.Posts, postID, func(n int) int {
				if wasLiked {
					return n - 1
				}
				return n + 1
			})
			s.Liked = withLiked(s.Liked, postID, !wasLiked)
			return s
		})
		if known && !found {
			zlog.Debug().Int("post_id", postID).Msg("ViewModel: liking a post that is not in the feed")
		}

		res := vm.community.ToggleLike(ctx, postID, userID)

		vm.state.Update(func(s CommunityState) CommunityState {
			if res.IsError() {
				if known {
					s.Posts, _, _ = withLikes(s.Posts, postID, func(int) int { return oldLikes })
					s.Liked = withLiked(s.Liked, postID, wasLiked)
				}
				s.Error = res.Message()
				return s
			}
			confirmed := res.Data()
			s.Posts, _, _ = withLikes(s.Posts, postID, func(int) int { return confirmed.TotalLikes })
			s.Liked = withLiked(s.Liked, postID, confirmed.Liked)
			return s
		})
	})
}

// CreatePost shares a diagnosis and reloads the feed.
func (vm *CommunityViewModel) CreatePost(ctx context.Context, diagnosisID int, anonymous bool) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	if userID <= 0 {
		vm.setError(MsgSignInRequired)
		return
	}

	vm.state.Update(func(s CommunityState) CommunityState {
		s.Loading = true
		return s
	})
	res := vm.community.CreatePost(ctx, userID, models.CommunityPostCreateInput{DiagnosisID: diagnosisID, IsAnonymous: anonymous})
	if res.IsError() {
		vm.state.Update(func(s CommunityState) CommunityState {
			s.Loading = false
			s.Error = res.Message()
			return s
		})
		return
	}
	vm.loadPosts(ctx, 0)
}

// OpenPost loads the comments of postID and whether the user liked it.
func (vm *CommunityViewModel) OpenPost(ctx context.Context, postID int) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	if userID := vm.user.UserID(); userID > 0 {
		if liked := vm.community.HasLiked(ctx, postID, userID); liked.IsSuccess() {
			vm.state.Update(func(s CommunityState) CommunityState {
				s.Liked = withLiked(s.Liked, postID, liked.Data())
				return s
			})
		}
	}
	vm.loadComments(ctx, postID)
}

func (vm *CommunityViewModel) LoadComments(ctx context.Context, postID int) {
	ctx, done := vm.scope.join(ctx)
	defer done()
	vm.loadComments(ctx, postID)
}

// AddComment posts a comment on postID and reloads its comments.
func (vm *CommunityViewModel) AddComment(ctx context.Context, postID int, content string, isSolution bool) {
	ctx, done := vm.scope.join(ctx)
	defer done()

	userID := vm.user.UserID()
	switch {
	case userID <= 0:
		vm.setError(MsgSignInRequired)
		return
	case strings.TrimSpace(content) == "":
		vm.setError(MsgBlankComment)
		return
	}

	res := vm.community.AddComment(ctx, postID, userID, models.CommentCreateInput{Content: content, IsSolution: isSolution})
	if res.IsError() {
		vm.setError(res.Message())
		return
	}
	vm.loadComments(ctx, postID)
	vm.state.Update(func(s CommunityState) CommunityState {
		if s.OpenPostID == postID && s.Comments.IsSuccess() {
			s.Posts = withComments(s.Posts, postID, len(s.Comments.Data))
		}
		return s
	})
}

func (vm *CommunityViewModel) Close() { vm.scope.close() }

func (vm *CommunityViewModel) loadPosts(ctx context.Context, limit int) {
	vm.state.Update(func(s CommunityState) CommunityState {
		s.Loading = true
		s.Error = ""
		return s
	})

	res := vm.community.Posts(ctx, limit)
	vm.state.Update(func(s CommunityState) CommunityState {
		s.Loading = false
		if res.IsError() {
			s.Error = res.Message()
			return s
		}
		s.Posts = res.Data()
		return s
	})
}

func (vm *CommunityViewModel) loadComments(ctx context.Context, postID int) {
	vm.state.Update(func(s CommunityState) CommunityState {
		s.OpenPostID = postID
		s.Comments = Loading[[]models.Comment]()
		return s
	})

	res := vm.community.Comments(ctx, postID)
	vm.state.Update(func(s CommunityState) CommunityState {
		if s.OpenPostID == postID {
			s.Comments = Settle(res)
		}
		return s
	})
}

func (vm *CommunityViewModel) setError(msg string) {
	vm.state.Update(func(s CommunityState) CommunityState {
		s.Error = msg
		return s
	})
}

// withLikes returns a copy of posts where post id has fn(likes) likes, plus the
// previous count.
func withLikes(posts []models.CommunityPost, id int, fn func(int) int) ([]models.CommunityPost, int, bool) {
	out := make([]models.CommunityPost, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].ID == id {
			old := out[i].Likes
			out[i].Likes = fn(old)
			return out, old, true
		}
	}
	return out, 0, false
}

func withComments(posts []models.CommunityPost, id, count int) []models.CommunityPost {
	out := make([]models.CommunityPost, len(posts))
	copy(out, posts)
	for i := range out {
		if out[i].ID == id {
			out[i].CommentsCount = count
		}
	}
	return out
}

func withLiked(liked map[int]bool, id int, v bool) map[int]bool {
	out := maps.Clone(liked)
	if out == nil {
		out = make(map[int]bool)
	}
	out[id] = v
	return out
}
