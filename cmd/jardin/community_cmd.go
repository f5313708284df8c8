package main

import (
	"strings"

	"github.com/rakaarfi/jardin-inteligente-client/internal/utils"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/spf13/cobra"
)

func newCommunityCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Read and take part in the community feed",
	}
	cmd.AddCommand(
		newFeedCmd(current),
		newLikeCmd(current),
		newCommentsCmd(current),
		newCommentCmd(current),
		newShareCmd(current),
		newShareImageCmd(current),
	)
	return cmd
}

// withCommunity runs fn against a fresh community view-model.
func withCommunity(current func() *app, fn func(a *app, vm *viewmodel.CommunityViewModel) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a := current()
		if err := a.requireSession(); err != nil {
			return err
		}
		vm := viewmodel.NewCommunityViewModel(a.community, a.auth)
		defer vm.Close()
		return fn(a, vm)
	}
}

func newFeedCmd(current func() *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the latest posts",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withCommunity(current, func(a *app, vm *viewmodel.CommunityViewModel) error {
		vm.LoadPosts(cmd.Context(), limit)
		s := vm.State().Value()
		a.out.Community(s)
		return failed(s.Error)
	})
	cmd.Flags().IntVar(&limit, "limit", utils.DefaultFeedLimit, "how many posts to show")
	return cmd
}

func newLikeCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post, or take your like back",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		id, err := parseID("post id", args[0])
		if err != nil {
			return err
		}
		return withCommunity(current, func(a *app, vm *viewmodel.CommunityViewModel) error {
			vm.LoadPosts(c.Context(), utils.MaxLimit)
			vm.OpenPost(c.Context(), id)
			vm.ToggleLike(c.Context(), id)
			s := vm.State().Value()
			a.out.Like(s, id)
			return failed(s.Error)
		})(c, args)
	}
	return cmd
}

func newCommentsCmd(current func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <post-id>",
		Short: "Show a post and its comments",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		id, err := parseID("post id", args[0])
		if err != nil {
			return err
		}
		return withCommunity(current, func(a *app, vm *viewmodel.CommunityViewModel) error {
			vm.LoadPosts(c.Context(), utils.MaxLimit)
			vm.OpenPost(c.Context(), id)
			s := vm.State().Value()
			a.out.Post(s, id)
			return failed(s.Comments.Message)
		})(c, args)
	}
	return cmd
}

func newCommentCmd(current func() *app) *cobra.Command {
	var solution bool
	cmd := &cobra.Command{
		Use:   "comment <post-id> <text>...",
		Short: "Reply to a post",
		Args:  cobra.MinimumNArgs(2),
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		id, err := parseID("post id", args[0])
		if err != nil {
			return err
		}
		text := strings.Join(args[1:], " ")
		return withCommunity(current, func(a *app, vm *viewmodel.CommunityViewModel) error {
			vm.LoadPosts(c.Context(), utils.MaxLimit)
			vm.AddComment(c.Context(), id, text, solution)
			s := vm.State().Value()
			a.out.Post(s, id)
			return failed(s.Error)
		})(c, args)
	}
	cmd.Flags().BoolVar(&solution, "solution", false, "mark the reply as a solution")
	return cmd
}

func newShareCmd(current func() *app) *cobra.Command {
	var (
		diagnosisID int
		anonymous   bool
	)
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share one of your diagnoses with the community",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withCommunity(current, func(a *app, vm *viewmodel.CommunityViewModel) error {
		vm.CreatePost(cmd.Context(), diagnosisID, anonymous)
		s := vm.State().Value()
		a.out.Community(s)
		return failed(s.Error)
	})
	cmd.Flags().IntVar(&diagnosisID, "diagnosis", 0, "diagnosis to share")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "hide your name")
	_ = cmd.MarkFlagRequired("diagnosis")
	return cmd
}

func newShareImageCmd(current func() *app) *cobra.Command {
	var (
		description, plantName, symptoms string
		anonymous                        bool
	)
	cmd := &cobra.Command{
		Use:   "share-image <image>",
		Short: "Ask the community about a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.requireSession(); err != nil {
				return err
			}
			vm := viewmodel.NewCommunityShareViewModel(a.community, a.auth)
			defer vm.Close()

			vm.Share(cmd.Context(), viewmodel.ShareInput{
				ImagePath:   args[0],
				Description: description,
				PlantName:   optional(plantName),
				Symptoms:    optional(symptoms),
				IsAnonymous: anonymous,
			})
			s := vm.State().Value()
			a.out.Share(s)
			return failed(s.Message)
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "what you want to ask")
	cmd.Flags().StringVar(&plantName, "plant-name", "", "which plant this is")
	cmd.Flags().StringVar(&symptoms, "symptoms", "", "what you noticed")
	cmd.Flags().BoolVar(&anonymous, "anonymous", false, "hide your name")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
