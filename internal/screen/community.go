package screen

import (
	"fmt"
	"strconv"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
)

func (r *Renderer) Community(s viewmodel.CommunityState) {
	r.title("Community")
	if s.Loading {
		r.loading("posts")
		return
	}
	if s.Error != "" {
		r.errorCard(s.Error, "jardin community feed")
	}
	if len(s.Posts) == 0 {
		if s.Error == "" {
			r.printf("No posts yet.\n")
		}
		return
	}

	rows := make([][]string, 0, len(s.Posts))
	for _, p := range s.Posts {
		heart := "♡"
		if s.Liked[p.ID] {
			heart = "♥"
		}
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			author(p),
			deref(p.PlantName, "-"),
			fmt.Sprintf("%s %d", heart, p.Likes),
			strconv.Itoa(p.CommentsCount),
			string(p.Status),
			deref(p.Description, ""),
		})
	}
	r.table([]string{"ID", "AUTHOR", "PLANT", "LIKES", "COMMENTS", "STATUS", "DESCRIPTION"}, rows)
}

// Post renders one post of the feed with its comments.
func (r *Renderer) Post(s viewmodel.CommunityState, postID int) {
	if p, ok := s.Post(postID); ok {
		heart := "♡"
		if s.Liked[p.ID] {
			heart = "♥"
		}
		r.title(fmt.Sprintf("Post #%d by %s", p.ID, author(p)))
		r.field("Plant", deref(p.PlantName, "-"))
		r.field("Likes", fmt.Sprintf("%s %d", heart, p.Likes))
		r.field("Status", string(p.Status))
		if p.ImageURL != nil {
			r.field("Photo", *p.ImageURL)
		}
		if p.Description != nil {
			r.printf("\n%s\n", *p.Description)
		}
		r.printf("\n")
	} else if s.Error != "" {
		r.errorCard(s.Error, "")
	}
	r.Comments(s.Comments)
}

func (r *Renderer) Comments(c viewmodel.Async[[]models.Comment]) {
	switch c.Phase {
	case viewmodel.PhaseLoading:
		r.loading("comments")
	case viewmodel.PhaseError:
		r.errorCard(c.Message, "jardin community comments <post-id>")
	case viewmodel.PhaseSuccess:
		if len(c.Data) == 0 {
			r.printf("No comments yet.\n")
			return
		}
		for _, cm := range c.Data {
			mark := ""
			if cm.IsSolution {
				mark = " " + r.paint(ansiGreen, "[solution]")
			}
			r.printf("%s%s %s\n", r.paint(ansiBold, cm.AuthorName), mark, r.paint(ansiDim, cm.CreatedAt.Format("2006-01-02 15:04")))
			r.printf("  %s\n", cm.Content)
		}
	}
}

func (r *Renderer) Like(s viewmodel.CommunityState, postID int) {
	if s.Error != "" {
		r.errorCard(s.Error, fmt.Sprintf("jardin community like %d", postID))
		return
	}
	p, ok := s.Post(postID)
	if !ok {
		if s.Liked[postID] {
			r.notice(fmt.Sprintf("Liked post #%d.", postID))
		} else {
			r.notice(fmt.Sprintf("Removed like from post #%d.", postID))
		}
		return
	}
	verb := "Removed like from"
	if s.Liked[postID] {
		verb = "Liked"
	}
	r.notice(fmt.Sprintf("%s post #%d (%d like(s)).", verb, postID, p.Likes))
}

func (r *Renderer) Share(s viewmodel.Async[models.CommunityPost]) {
	switch s.Phase {
	case viewmodel.PhaseLoading:
		r.loading("post")
	case viewmodel.PhaseError:
		r.errorCard(s.Message, "jardin community share-image <image> --description <text>")
	case viewmodel.PhaseSuccess:
		r.notice(fmt.Sprintf("Shared as post #%d; it will appear once approved.", s.Data.ID))
	}
}

func author(p models.CommunityPost) string {
	if p.IsAnonymous || p.AuthorName == "" {
		return "anonymous"
	}
	return p.AuthorName
}
