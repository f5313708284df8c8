package main

import (
	"context"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/internal/repository"
	"github.com/rakaarfi/jardin-inteligente-client/internal/screen"
	"github.com/rakaarfi/jardin-inteligente-client/internal/viewmodel"
	"github.com/spf13/cobra"
)

func loadGamification(ctx context.Context, a *app) (viewmodel.GamificationState, error) {
	if err := a.requireSession(); err != nil {
		return viewmodel.GamificationState{}, err
	}
	vm := viewmodel.NewGamificationViewModel(a.gamification, a.auth)
	defer vm.Close()
	vm.Load(ctx)
	return vm.State().Value(), nil
}

func newAchievementsCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show your achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			s, err := loadGamification(cmd.Context(), a)
			if err != nil {
				return err
			}
			a.out.Achievements(s)
			if s.Achievements == nil {
				return errReported
			}
			return nil
		},
	}
}

func newMissionsCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "missions",
		Short: "Show today's missions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			s, err := loadGamification(cmd.Context(), a)
			if err != nil {
				return err
			}
			a.out.Missions(s)
			if s.Missions == nil {
				return errReported
			}
			return nil
		},
	}
}

func newDoctorCmd(current func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the connection to the server and the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			ctx := cmd.Context()
			var checks []screen.HealthCheck

			// --- Server reachable ---
			start := time.Now()
			health, err := a.api.Health(ctx)
			check := screen.HealthCheck{Name: "Server reachable", OK: err == nil, Latency: time.Since(start)}
			if err != nil {
				check.Detail, _ = repository.Describe(err)
			}
			checks = append(checks, check)

			// --- Session ---
			switch {
			case !a.auth.IsLoggedIn():
				checks = append(checks, screen.HealthCheck{Name: "Signed in", Detail: "Run: jardin login <email-or-username>"})
			case health != nil:
				start = time.Now()
				me := a.auth.CurrentUser(ctx)
				session := screen.HealthCheck{Name: "Session accepted", OK: me.IsSuccess(), Latency: time.Since(start)}
				if me.IsError() {
					session.Detail = me.Message()
				} else {
					session.Detail = "as " + me.Data().Username
				}
				checks = append(checks, session)
			}

			a.out.Doctor(a.api.BaseURL(), health, checks)
			for _, c := range checks {
				if !c.OK {
					return errReported
				}
			}
			return nil
		},
	}
}
