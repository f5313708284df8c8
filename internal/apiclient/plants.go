// internal/apiclient/plants.go
package apiclient

import (
	"context"
	"net/http"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

func (c *Client) UserPlants(ctx context.Context, userID int) ([]models.Plant, error) {
	var out []models.Plant
	if err := c.getJSON(ctx, "Load plants", "/api/plants/user/"+itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Plant(ctx context.Context, plantID int) (*models.Plant, error) {
	var out models.Plant
	if err := c.getJSON(ctx, "Load plant", "/api/plants/"+itoa(plantID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePlant(ctx context.Context, input models.PlantCreateInput) (*models.Plant, error) {
	var out models.Plant
	if err := c.sendJSON(ctx, "Create plant", http.MethodPost, "/api/plants", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePlant(ctx context.Context, plantID int, input models.PlantUpdateInput) (*models.Plant, error) {
	var out models.Plant
	if err := c.sendJSON(ctx, "Update plant", http.MethodPut, "/api/plants/"+itoa(plantID), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePlant(ctx context.Context, plantID, userID int) (*models.DeletePlantResponse, error) {
	var out models.DeletePlantResponse
	if err := c.sendJSON(ctx, "Delete plant", http.MethodDelete, "/api/plants/"+itoa(plantID), userQuery(userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WaterPlant(ctx context.Context, plantID int) (*models.CareResponse, error) {
	var out models.CareResponse
	if err := c.sendJSON(ctx, "Water plant", http.MethodPut, "/api/plants/"+itoa(plantID)+"/water", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FertilizePlant(ctx context.Context, plantID int) (*models.CareResponse, error) {
	var out models.CareResponse
	if err := c.sendJSON(ctx, "Fertilize plant", http.MethodPut, "/api/plants/"+itoa(plantID)+"/fertilize", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProgressStats(ctx context.Context, userID int) (*models.ProgressStats, error) {
	var out models.ProgressStats
	if err := c.getJSON(ctx, "Load progress", "/api/plants/user/"+itoa(userID)+"/progress", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
