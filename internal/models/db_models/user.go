package db_models

import "time"

type SubscriptionTier string

const (
	TierTrial   SubscriptionTier = "trial"
	TierWeekly  SubscriptionTier = "weekly"
	TierMonthly SubscriptionTier = "monthly"
	TierFree    SubscriptionTier = "free"
)

// User is keyed by the external auth provider's identity, not a generated
// UUID; the record is created on first authenticated visit.
type User struct {
	ID    string `gorm:"primaryKey"`
	Email string
	Name  string

	DateOfBirth        *string
	Gender             *string
	RelationshipStatus *string
	ProfessionalStatus *string

	SubscriptionTier    SubscriptionTier `gorm:"default:free"`
	ProfileCompleted    bool
	OnboardingCompleted bool
	IsPremium           bool

	Streak    int
	LastLogin time.Time
	Badges    StringList `gorm:"type:jsonb"`

	PracticeStats PracticeStats    `gorm:"type:jsonb"`
	UsageMetrics  UsageMetrics     `gorm:"type:jsonb"`
	LoginHistory  LoginSessionList `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
