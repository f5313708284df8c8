// internal/apiclient/gamification.go
package apiclient

import (
	"context"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

func (c *Client) Achievements(ctx context.Context, userID int) (*models.AchievementsResponse, error) {
	var out models.AchievementsResponse
	if err := c.getJSON(ctx, "Load achievements", "/api/gamification/achievements/"+itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Missions(ctx context.Context, userID int) (*models.MissionsResponse, error) {
	var out models.MissionsResponse
	if err := c.getJSON(ctx, "Load missions", "/api/gamification/missions/"+itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
