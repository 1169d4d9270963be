package services

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"wingman/internal/models/db_models"
	"wingman/internal/models/request_models"
	"wingman/internal/models/response_models"
	"wingman/internal/repositories"
	"wingman/pkg/utils"
)

type UserServiceInterface interface {
	// GetOrCreate is idempotent and never returns nil: on a store outage
	// it synthesizes a default record so the UI is not blocked by
	// persistence problems.
	GetOrCreate(ctx context.Context, id, email, name string) *db_models.User
	UpdateProfile(ctx context.Context, userID string, req request_models.ProfileUpdateRequest) bool
	CompleteOnboarding(ctx context.Context, userID string, tier db_models.SubscriptionTier) bool
	UpdateStreak(ctx context.Context, userID string) int
	UpdateUsageMetrics(ctx context.Context, userID, feature string, increment int) bool
	UpdatePracticeStats(ctx context.Context, userID, scenarioID string, score float64, durationSeconds int) bool
	DashboardData(ctx context.Context, userID string) *response_models.DashboardResponse
}

type UserService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func defaultUser(id, email, name string, now time.Time) *db_models.User {
	if name == "" {
		name = "User"
	}
	return &db_models.User{
		ID:               id,
		Email:            email,
		Name:             name,
		SubscriptionTier: db_models.TierFree,
		Streak:           0,
		LastLogin:        now,
		Badges:           db_models.StringList{},
		PracticeStats: db_models.PracticeStats{
			CompletedScenarios: []string{},
		},
		UsageMetrics: db_models.UsageMetrics{
			DailyUsage:   map[string]int{},
			WeeklyUsage:  map[string]int{},
			MonthlyUsage: map[string]int{},
			FeatureUsage: map[string]int{},
			LastActivity: now.Format(time.RFC3339),
		},
		LoginHistory: db_models.LoginSessionList{},
	}
}

func (s *UserService) GetOrCreate(ctx context.Context, id, email, name string) *db_models.User {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching user %s, returning synthesized record: %v", id, err)
		return defaultUser(id, email, name, s.now())
	}
	if user != nil {
		return user
	}

	user = defaultUser(id, email, name, s.now())
	if err := s.userRepo.Insert(ctx, user); err != nil {
		log.Printf("Error creating user %s, returning synthesized record: %v", id, err)
	}
	return user
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, req request_models.ProfileUpdateRequest) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("Error loading user %s for profile update: %v", userID, err)
		return false
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.RelationshipStatus != nil {
		user.RelationshipStatus = req.RelationshipStatus
	}
	if req.ProfessionalStatus != nil {
		user.ProfessionalStatus = req.ProfessionalStatus
	}
	user.ProfileCompleted = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating profile for %s: %v", userID, err)
		return false
	}
	return true
}

func (s *UserService) CompleteOnboarding(ctx context.Context, userID string, tier db_models.SubscriptionTier) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("Error loading user %s for onboarding: %v", userID, err)
		return false
	}

	user.OnboardingCompleted = true
	user.SubscriptionTier = tier
	user.IsPremium = tier != db_models.TierFree

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error completing onboarding for %s: %v", userID, err)
		return false
	}
	return true
}

// UpdateStreak compares last login to today at calendar-day granularity:
// same day leaves the streak alone, exactly yesterday increments it,
// anything else resets to 1. Last login always moves to now.
func (s *UserService) UpdateStreak(ctx context.Context, userID string) int {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("Error loading user %s for streak update: %v", userID, err)
		return 0
	}

	now := s.now()
	newStreak := user.Streak
	switch {
	case utils.SameCalendarDay(user.LastLogin, now):
		// Already counted today.
	case utils.IsYesterday(user.LastLogin, now):
		newStreak++
	default:
		newStreak = 1
	}

	user.Streak = newStreak
	user.LastLogin = now
	user.LoginHistory = append(db_models.LoginSessionList{
		{Timestamp: now.Format(time.RFC3339)},
	}, user.LoginHistory...)
	if len(user.LoginHistory) > 100 {
		user.LoginHistory = user.LoginHistory[:100]
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error saving streak for %s: %v", userID, err)
	}
	return newStreak
}

func (s *UserService) UpdateUsageMetrics(ctx context.Context, userID, feature string, increment int) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("Error loading user %s for usage update: %v", userID, err)
		return false
	}
	if increment == 0 {
		increment = 1
	}

	now := s.now()
	m := &user.UsageMetrics
	if m.DailyUsage == nil {
		m.DailyUsage = map[string]int{}
	}
	if m.WeeklyUsage == nil {
		m.WeeklyUsage = map[string]int{}
	}
	if m.MonthlyUsage == nil {
		m.MonthlyUsage = map[string]int{}
	}
	if m.FeatureUsage == nil {
		m.FeatureUsage = map[string]int{}
	}

	m.DailyUsage[utils.DayKey(now)] += increment
	m.WeeklyUsage[utils.WeekKey(now)] += increment
	m.MonthlyUsage[utils.MonthKey(now)] += increment
	m.FeatureUsage[feature] += increment
	m.LastActivity = now.Format(time.RFC3339)
	m.EngagementScore = engagementScore(*m)

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error saving usage metrics for %s: %v", userID, err)
		return false
	}
	return true
}

// engagementScore summarizes recent intensity on a 0-100 scale from total
// feature usage plus the trailing seven days of daily counters.
func engagementScore(m db_models.UsageMetrics) int {
	totalFeatureUsage := 0
	for _, count := range m.FeatureUsage {
		totalFeatureUsage += count
	}

	days := make([]string, 0, len(m.DailyUsage))
	for day := range m.DailyUsage {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > 7 {
		days = days[len(days)-7:]
	}
	recentActivity := 0
	for _, day := range days {
		recentActivity += m.DailyUsage[day]
	}

	score := int(math.Round(float64(totalFeatureUsage)*2 + float64(recentActivity)*5))
	if score > 100 {
		score = 100
	}
	return score
}

func (s *UserService) UpdatePracticeStats(ctx context.Context, userID, scenarioID string, score float64, durationSeconds int) bool {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user == nil {
		log.Printf("Error loading user %s for practice stats: %v", userID, err)
		return false
	}

	stats := &user.PracticeStats
	oldCount := stats.TotalConversations
	stats.AverageScore = (stats.AverageScore*float64(oldCount) + score) / float64(oldCount+1)
	stats.TotalConversations = oldCount + 1

	found := false
	for _, id := range stats.CompletedScenarios {
		if id == scenarioID {
			found = true
			break
		}
	}
	if !found {
		stats.CompletedScenarios = append(stats.CompletedScenarios, scenarioID)
	}

	if durationSeconds > 0 {
		stats.VoiceMinutes += int(math.Round(float64(durationSeconds) / 60))
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error saving practice stats for %s: %v", userID, err)
		return false
	}
	return true
}

// Level maps total conversation count to a named level via fixed,
// non-overlapping thresholds.
func Level(totalConversations int) response_models.UserLevel {
	switch {
	case totalConversations < 5:
		return response_models.UserLevel{Level: 1, Title: "Beginner"}
	case totalConversations < 15:
		return response_models.UserLevel{Level: 2, Title: "Novice"}
	case totalConversations < 30:
		return response_models.UserLevel{Level: 3, Title: "Intermediate"}
	case totalConversations < 50:
		return response_models.UserLevel{Level: 4, Title: "Advanced"}
	case totalConversations < 100:
		return response_models.UserLevel{Level: 5, Title: "Expert"}
	default:
		return response_models.UserLevel{Level: 6, Title: "Master"}
	}
}

func (s *UserService) DashboardData(ctx context.Context, userID string) *response_models.DashboardResponse {
	user := s.GetOrCreate(ctx, userID, "", "")

	return &response_models.DashboardResponse{
		TotalConversations: user.PracticeStats.TotalConversations,
		Streak:             user.Streak,
		Level:              Level(user.PracticeStats.TotalConversations),
		Badges:             user.Badges,
		EngagementScore:    user.UsageMetrics.EngagementScore,
		CompletedScenarios: len(user.PracticeStats.CompletedScenarios),
		VoiceMinutes:       user.PracticeStats.VoiceMinutes,
		AverageScore:       user.PracticeStats.AverageScore,
	}
}
