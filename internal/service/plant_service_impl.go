// internal/service/plant_service_impl.go
package service

import (
	"context"
	"slices"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
	zlog "github.com/rs/zerolog/log"
)

// XP and points granted for garden actions.
const (
	xpPlantAdded = 10
	xpWatered    = 5
	xpFertilized = 5
)

type plantServiceImpl struct {
	store *Store
}

// NewPlantService creates a new instance of PlantService.
func NewPlantService(store *Store) PlantService {
	return &plantServiceImpl{store: store}
}

func (s *plantServiceImpl) UserPlants(ctx context.Context, userID int) ([]models.Plant, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	plants := make([]models.Plant, 0)
	for _, p := range s.store.plants {
		if p.UserID == userID {
			plants = append(plants, *p)
		}
	}
	slices.SortFunc(plants, func(a, b models.Plant) int { return a.ID - b.ID })
	return plants, nil
}

func (s *plantServiceImpl) Plant(ctx context.Context, plantID int) (*models.Plant, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	p, ok := s.store.plants[plantID]
	if !ok {
		return nil, ErrPlantNotFound
	}
	plant := *p
	return &plant, nil
}

func (s *plantServiceImpl) Create(ctx context.Context, input *models.PlantCreateInput) (*models.Plant, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.accounts[input.UserID]; !ok {
		return nil, ErrUserNotFound
	}

	plant := &models.Plant{
		UserID:      input.UserID,
		Name:        input.Name,
		Species:     input.Species,
		Location:    input.Location,
		Status:      models.PlantStatusHealthy,
		HealthScore: 100,
		CreatedAt:   s.store.timestamp(),
	}

	// --- Step 1: optional diagnosis link ---
	var entry *diagnosisEntry
	if input.DiagnosisID != nil {
		e, ok := s.store.diagnoses[*input.DiagnosisID]
		if !ok || e.record.UserID != input.UserID {
			zlog.Warn().Int("diagnosis_id", *input.DiagnosisID).Int("user_id", input.UserID).Msg("Service: Diagnosis to link not found for user")
			return nil, ErrDiagnosisNotFound
		}
		entry = e
		plant.Status, plant.HealthScore = healthFromSeverity(e.result.Severity)
		plant.ImageURL = e.record.ImageURL
	}

	// --- Step 2: store ---
	plant.ID = s.store.next("plant")
	s.store.plants[plant.ID] = plant
	if entry != nil {
		entry.record.PlantID = &plant.ID
		entry.record.PlantName = plant.Name
	}
	s.store.award(input.UserID, xpPlantAdded, 0)
	s.store.touch(input.UserID)

	zlog.Info().Int("plant_id", plant.ID).Int("user_id", input.UserID).Msg("Service: Plant created")
	out := *plant
	return &out, nil
}

func (s *plantServiceImpl) Update(ctx context.Context, plantID int, input *models.PlantUpdateInput) (*models.Plant, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p, ok := s.store.plants[plantID]
	if !ok {
		return nil, ErrPlantNotFound
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Species != nil {
		p.Species = input.Species
	}
	if input.Location != nil {
		p.Location = input.Location
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	out := *p
	return &out, nil
}

func (s *plantServiceImpl) Delete(ctx context.Context, plantID, userID int) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p, ok := s.store.plants[plantID]
	if !ok {
		return ErrPlantNotFound
	}
	if p.UserID != userID {
		zlog.Warn().Int("plant_id", plantID).Int("owner_id", p.UserID).Int("user_id", userID).Msg("Service: Attempt to delete another user's plant")
		return ErrNotPlantOwner
	}
	delete(s.store.plants, plantID)
	zlog.Info().Int("plant_id", plantID).Msg("Service: Plant deleted")
	return nil
}

func (s *plantServiceImpl) Water(ctx context.Context, plantID int) (*models.CareResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p, ok := s.store.plants[plantID]
	if !ok {
		return nil, ErrPlantNotFound
	}
	now := s.store.timestamp()
	p.LastWatered = &now

	a := s.store.activity(p.UserID)
	a.waterings++
	a.todayWaterings++
	s.store.award(p.UserID, xpWatered, 1)
	s.store.touch(p.UserID)

	return &models.CareResponse{Message: p.Name + " watered", LastWatered: &now}, nil
}

func (s *plantServiceImpl) Fertilize(ctx context.Context, plantID int) (*models.CareResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p, ok := s.store.plants[plantID]
	if !ok {
		return nil, ErrPlantNotFound
	}
	now := s.store.timestamp()
	p.LastFertilized = &now

	s.store.activity(p.UserID).fertilizings++
	s.store.award(p.UserID, xpFertilized, 1)
	s.store.touch(p.UserID)

	return &models.CareResponse{Message: p.Name + " fertilized", LastFertilized: &now}, nil
}

func (s *plantServiceImpl) Progress(ctx context.Context, userID int) (*models.ProgressStats, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	acc, ok := s.store.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	stats := &models.ProgressStats{
		StreakDays:  acc.user.StreakDays,
		Level:       acc.user.Level,
		XP:          acc.user.XP,
		NextLevelXP: acc.user.Level * xpPerLevel,
	}
	for _, p := range s.store.plants {
		if p.UserID != userID {
			continue
		}
		stats.TotalPlants++
		if p.Status == models.PlantStatusHealthy {
			stats.HealthyPlants++
		}
	}
	for _, e := range s.store.diagnoses {
		if e.record.UserID == userID {
			stats.DiagnosesCount++
		}
	}
	return stats, nil
}

// healthFromSeverity maps a diagnosis severity to the plant status and score it implies.
func healthFromSeverity(severity string) (models.PlantStatus, int) {
	switch severity {
	case SeverityHigh:
		return models.PlantStatusSick, 30
	case SeverityMedium:
		return models.PlantStatusNeedsAttention, 60
	case SeverityLow:
		return models.PlantStatusHealthy, 85
	default:
		return models.PlantStatusHealthy, 100
	}
}
