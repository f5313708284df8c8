// internal/service/gamification_service_impl.go
package service

import (
	"context"
	"time"

	"github.com/rakaarfi/jardin-inteligente-client/internal/models"
)

type achievementRule struct {
	id          int
	name        string
	description string
	icon        string
	points      int
	target      int
	progress    func(a *activity, plants int) int
}

var achievementRules = []achievementRule{
	{1, "First sprout", "Add your first plant.", "🌱", 10, 1, func(_ *activity, plants int) int { return plants }},
	{2, "Green thumb", "Look after five plants at once.", "🪴", 50, 5, func(_ *activity, plants int) int { return plants }},
	{3, "Plant doctor", "Run your first diagnosis.", "🩺", 15, 1, func(a *activity, _ int) int { return a.diagnoses }},
	{4, "Hydration hero", "Water your plants ten times.", "💧", 30, 10, func(a *activity, _ int) int { return a.waterings }},
	{5, "Good neighbour", "Post or comment three times in the community.", "💬", 20, 3, func(a *activity, _ int) int { return a.posts + a.comments }},
}

type missionRule struct {
	id           int
	title        string
	description  string
	rewardXP     int
	rewardPoints int
	target       int
	progress     func(a *activity) int
}

// Missions are daily; progress counts today's (UTC) actions only.
var missionRules = []missionRule{
	{1, "Morning round", "Water two plants today.", 20, 5, 2, func(a *activity) int { return a.todayWaterings }},
	{2, "Check-up", "Diagnose one plant today.", 25, 10, 1, func(a *activity) int { return a.todayDiagnoses }},
	{3, "Lend a hand", "Leave a comment on someone's post.", 15, 5, 1, func(a *activity) int { return a.todayComments }},
}

type gamificationServiceImpl struct {
	store *Store
}

// NewGamificationService creates a new instance of GamificationService.
func NewGamificationService(store *Store) GamificationService {
	return &gamificationServiceImpl{store: store}
}

// Achievements evaluates every rule; the first time one is met its unlock time is recorded.
func (s *gamificationServiceImpl) Achievements(ctx context.Context, userID int) (*models.AchievementsResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.accounts[userID]; !ok {
		return nil, ErrUserNotFound
	}
	a := s.store.activity(userID)
	plants := 0
	for _, p := range s.store.plants {
		if p.UserID == userID {
			plants++
		}
	}
	unlocked, ok := s.store.unlocked[userID]
	if !ok {
		unlocked = make(map[int]time.Time)
		s.store.unlocked[userID] = unlocked
	}

	resp := &models.AchievementsResponse{Achievements: make([]models.Achievement, 0, len(achievementRules))}
	for _, rule := range achievementRules {
		progress := min(rule.progress(a, plants), rule.target)
		target := rule.target
		ach := models.Achievement{
			ID:          rule.id,
			Name:        rule.name,
			Description: rule.description,
			Icon:        rule.icon,
			Points:      rule.points,
			Progress:    &progress,
			Target:      &target,
		}
		at, seen := unlocked[rule.id]
		if !seen && progress >= rule.target {
			at = s.store.now()
			unlocked[rule.id] = at
			seen = true
		}
		if seen {
			ts := models.NewTimestamp(at)
			ach.Unlocked = true
			ach.UnlockedAt = &ts
			resp.TotalPoints += rule.points
		}
		resp.Achievements = append(resp.Achievements, ach)
	}
	return resp, nil
}

func (s *gamificationServiceImpl) Missions(ctx context.Context, userID int) (*models.MissionsResponse, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.store.accounts[userID]; !ok {
		return nil, ErrUserNotFound
	}
	a := s.store.activity(userID)
	endOfDay := models.NewTimestamp(s.store.now().UTC().Truncate(24 * time.Hour).Add(24*time.Hour - time.Second))

	resp := &models.MissionsResponse{Missions: make([]models.Mission, 0, len(missionRules))}
	for _, rule := range missionRules {
		progress := min(rule.progress(a), rule.target)
		expires := endOfDay
		resp.Missions = append(resp.Missions, models.Mission{
			ID:           rule.id,
			Title:        rule.title,
			Description:  rule.description,
			RewardXP:     rule.rewardXP,
			RewardPoints: rule.rewardPoints,
			Progress:     progress,
			Target:       rule.target,
			Completed:    progress >= rule.target,
			ExpiresAt:    &expires,
		})
	}
	return resp, nil
}
