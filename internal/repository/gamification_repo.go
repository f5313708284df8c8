// internal/repository/gamification_repo.go
package repository

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/apiclient"
	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	"github.com/rakaarfi/jardin-inteligente-client/internal/result"
)

type gamificationRepo struct {
	api apiclient.Service
}

func NewGamificationRepository(api apiclient.Service) GamificationRepository {
	return &gamificationRepo{api: api}
}

func (r *gamificationRepo) Achievements(ctx context.Context, userID int) result.Result[models.AchievementsResponse] {
	resp, err := r.api.Achievements(ctx, userID)
	if err != nil {
		return failure[models.AchievementsResponse]("achievements", err)
	}
	return result.Success(*resp)
}

func (r *gamificationRepo) Missions(ctx context.Context, userID int) result.Result[models.MissionsResponse] {
	resp, err := r.api.Missions(ctx, userID)
	if err != nil {
		return failure[models.MissionsResponse]("missions", err)
	}
	return result.Success(*resp)
}
