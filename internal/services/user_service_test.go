package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wingman/internal/models/db_models"
	"wingman/internal/models/request_models"
)

type fakeUserRepo struct {
	users   map[string]*db_models.User
	failAll bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*db_models.User, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Insert(_ context.Context, user *db_models.User) error {
	if f.failAll {
		return errors.New("store down")
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	if f.failAll {
		return errors.New("store down")
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func newTestUserService(repo *fakeUserRepo, now time.Time) *UserService {
	return &UserService{
		userRepo: repo,
		now:      func() time.Time { return now },
	}
}

func TestGetOrCreateDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestUserService(repo, time.Now())

	user := svc.GetOrCreate(context.Background(), "user-1", "a@example.com", "Ada")
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, db_models.TierFree, user.SubscriptionTier)
	assert.False(t, user.ProfileCompleted)
	assert.False(t, user.OnboardingCompleted)
	assert.Zero(t, user.Streak)
	assert.Zero(t, user.PracticeStats.TotalConversations)

	// Second call returns the persisted record, not a second insert.
	again := svc.GetOrCreate(context.Background(), "user-1", "a@example.com", "Ada")
	require.NotNil(t, again)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, repo.users, 1)
}

func TestGetOrCreateStoreOutage(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failAll = true
	svc := newTestUserService(repo, time.Now())

	user := svc.GetOrCreate(context.Background(), "user-1", "a@example.com", "")
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "User", user.Name)
	assert.Equal(t, db_models.TierFree, user.SubscriptionTier)
}

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		lastLogin time.Time
		streak    int
		want      int
	}{
		{"same day unchanged", now.Add(-2 * time.Hour), 4, 4},
		{"same day late night", time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC), 4, 4},
		{"yesterday increments", now.AddDate(0, 0, -1), 4, 5},
		{"yesterday near midnight", time.Date(2026, 3, 9, 0, 5, 0, 0, time.UTC), 1, 2},
		{"two days ago resets", now.AddDate(0, 0, -2), 9, 1},
		{"long gap resets", now.AddDate(0, -2, 0), 30, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			repo.users["user-1"] = &db_models.User{
				ID:        "user-1",
				Streak:    tt.streak,
				LastLogin: tt.lastLogin,
			}
			svc := newTestUserService(repo, now)

			got := svc.UpdateStreak(context.Background(), "user-1")
			assert.Equal(t, tt.want, got)

			saved := repo.users["user-1"]
			assert.Equal(t, tt.want, saved.Streak)
			assert.True(t, saved.LastLogin.Equal(now))
			require.NotEmpty(t, saved.LoginHistory)
			assert.Equal(t, now.Format(time.RFC3339), saved.LoginHistory[0].Timestamp)
		})
	}
}

func TestUpdateStreakHistoryCap(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo()
	history := make(db_models.LoginSessionList, 100)
	for i := range history {
		history[i] = db_models.LoginSession{Timestamp: "old"}
	}
	repo.users["user-1"] = &db_models.User{ID: "user-1", LoginHistory: history}
	svc := newTestUserService(repo, now)

	svc.UpdateStreak(context.Background(), "user-1")
	assert.Len(t, repo.users["user-1"].LoginHistory, 100)
	assert.Equal(t, now.Format(time.RFC3339), repo.users["user-1"].LoginHistory[0].Timestamp)
}

func TestUpdateUsageMetrics(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo()
	repo.users["user-1"] = &db_models.User{ID: "user-1"}
	svc := newTestUserService(repo, now)

	ok := svc.UpdateUsageMetrics(context.Background(), "user-1", "text_chat", 3)
	require.True(t, ok)

	m := repo.users["user-1"].UsageMetrics
	assert.Equal(t, 3, m.DailyUsage["2026-03-10"])
	assert.Equal(t, 3, m.WeeklyUsage["2026-W11"])
	assert.Equal(t, 3, m.MonthlyUsage["2026-03"])
	assert.Equal(t, 3, m.FeatureUsage["text_chat"])
	// 3 feature uses * 2 + 3 recent daily * 5
	assert.Equal(t, 21, m.EngagementScore)
}

func TestUpdateUsageMetricsZeroIncrementCountsAsOne(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newFakeUserRepo()
	repo.users["user-1"] = &db_models.User{ID: "user-1"}
	svc := newTestUserService(repo, now)

	require.True(t, svc.UpdateUsageMetrics(context.Background(), "user-1", "voice_practice", 0))
	assert.Equal(t, 1, repo.users["user-1"].UsageMetrics.FeatureUsage["voice_practice"])
}

func TestEngagementScoreCapAndWindow(t *testing.T) {
	m := db_models.UsageMetrics{
		FeatureUsage: map[string]int{"text_chat": 500},
		DailyUsage:   map[string]int{"2026-03-10": 10},
	}
	assert.Equal(t, 100, engagementScore(m))

	// Only the trailing seven day keys count toward recent activity.
	daily := map[string]int{}
	for d := 1; d <= 9; d++ {
		daily[time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")] = 1
	}
	windowed := db_models.UsageMetrics{FeatureUsage: map[string]int{}, DailyUsage: daily}
	// 7 recent days * 1 * 5
	assert.Equal(t, 35, engagementScore(windowed))
}

func TestUpdatePracticeStats(t *testing.T) {
	now := time.Now()
	repo := newFakeUserRepo()
	repo.users["user-1"] = &db_models.User{
		ID: "user-1",
		PracticeStats: db_models.PracticeStats{
			TotalConversations: 2,
			AverageScore:       80,
			CompletedScenarios: []string{"cafe-1"},
		},
	}
	svc := newTestUserService(repo, now)

	require.True(t, svc.UpdatePracticeStats(context.Background(), "user-1", "park-1", 50, 150))

	stats := repo.users["user-1"].PracticeStats
	assert.Equal(t, 3, stats.TotalConversations)
	// (80*2 + 50) / 3
	assert.InDelta(t, 70.0, stats.AverageScore, 1e-9)
	assert.Equal(t, []string{"cafe-1", "park-1"}, stats.CompletedScenarios)
	assert.Equal(t, 3, stats.VoiceMinutes) // round(150/60) = 3

	// Repeating a scenario keeps the set unchanged and skips voice minutes
	// when no duration is given.
	require.True(t, svc.UpdatePracticeStats(context.Background(), "user-1", "park-1", 90, 0))
	stats = repo.users["user-1"].PracticeStats
	assert.Equal(t, []string{"cafe-1", "park-1"}, stats.CompletedScenarios)
	assert.Equal(t, 3, stats.VoiceMinutes)
	assert.Equal(t, 4, stats.TotalConversations)
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		conversations int
		level         int
		title         string
	}{
		{0, 1, "Beginner"},
		{4, 1, "Beginner"},
		{5, 2, "Novice"},
		{14, 2, "Novice"},
		{15, 3, "Intermediate"},
		{29, 3, "Intermediate"},
		{30, 4, "Advanced"},
		{49, 4, "Advanced"},
		{50, 5, "Expert"},
		{99, 5, "Expert"},
		{100, 6, "Master"},
		{1000, 6, "Master"},
	}
	for _, tt := range tests {
		got := Level(tt.conversations)
		assert.Equal(t, tt.level, got.Level, "conversations=%d", tt.conversations)
		assert.Equal(t, tt.title, got.Title, "conversations=%d", tt.conversations)
	}
}

func TestCompleteOnboardingSetsPremium(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["user-1"] = &db_models.User{ID: "user-1"}
	svc := newTestUserService(repo, time.Now())

	require.True(t, svc.CompleteOnboarding(context.Background(), "user-1", db_models.TierMonthly))
	saved := repo.users["user-1"]
	assert.True(t, saved.OnboardingCompleted)
	assert.True(t, saved.IsPremium)

	require.True(t, svc.CompleteOnboarding(context.Background(), "user-1", db_models.TierFree))
	assert.False(t, repo.users["user-1"].IsPremium)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeUserRepo()
	gender := "female"
	repo.users["user-1"] = &db_models.User{ID: "user-1", Name: "Old Name"}
	svc := newTestUserService(repo, time.Now())

	require.True(t, svc.UpdateProfile(context.Background(), "user-1", request_models.ProfileUpdateRequest{
		Gender: &gender,
	}))

	saved := repo.users["user-1"]
	assert.Equal(t, "Old Name", saved.Name)
	require.NotNil(t, saved.Gender)
	assert.Equal(t, "female", *saved.Gender)
	assert.True(t, saved.ProfileCompleted)
}

func TestDashboardData(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["user-1"] = &db_models.User{
		ID:     "user-1",
		Streak: 6,
		Badges: db_models.StringList{"first_conversation"},
		PracticeStats: db_models.PracticeStats{
			TotalConversations: 16,
			CompletedScenarios: []string{"cafe-1", "park-1"},
			VoiceMinutes:       12,
			AverageScore:       72.5,
		},
		UsageMetrics: db_models.UsageMetrics{EngagementScore: 40},
	}
	svc := newTestUserService(repo, time.Now())

	dash := svc.DashboardData(context.Background(), "user-1")
	require.NotNil(t, dash)
	assert.Equal(t, 16, dash.TotalConversations)
	assert.Equal(t, 6, dash.Streak)
	assert.Equal(t, 3, dash.Level.Level)
	assert.Equal(t, "Intermediate", dash.Level.Title)
	assert.Equal(t, 2, dash.CompletedScenarios)
	assert.Equal(t, 12, dash.VoiceMinutes)
	assert.InDelta(t, 72.5, dash.AverageScore, 1e-9)
	assert.Equal(t, 40, dash.EngagementScore)
}
