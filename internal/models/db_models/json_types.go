package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonbScan is shared by the JSONB column types below.
func jsonbScan(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// MessageList is the ordered, append-only message log of a conversation,
// stored as one JSONB array column.
type MessageList []Message

type Message struct {
	ID        string `json:"id,omitempty"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

const (
	RoleUser = "user"
	RoleAI   = "ai"
)

func (m MessageList) Value() (driver.Value, error) {
	if m == nil {
		m = MessageList{}
	}
	return json.Marshal(m)
}

func (m *MessageList) Scan(value interface{}) error {
	return jsonbScan(value, m)
}

type PracticeStats struct {
	TotalConversations int      `json:"totalConversations"`
	CompletedScenarios []string `json:"completedScenarios"`
	VoiceMinutes       int      `json:"voiceMinutes"`
	AverageScore       float64  `json:"averageScore"`
}

func (s PracticeStats) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *PracticeStats) Scan(value interface{}) error {
	return jsonbScan(value, s)
}

type UsageMetrics struct {
	DailyUsage      map[string]int `json:"daily_usage"`
	WeeklyUsage     map[string]int `json:"weekly_usage"`
	MonthlyUsage    map[string]int `json:"monthly_usage"`
	FeatureUsage    map[string]int `json:"feature_usage"`
	EngagementScore int            `json:"engagement_score"`
	LastActivity    string         `json:"last_activity"`
}

func (m UsageMetrics) Value() (driver.Value, error) {
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
	return json.Marshal(m)
}

func (m *UsageMetrics) Scan(value interface{}) error {
	return jsonbScan(value, m)
}

type LoginSessionList []LoginSession

type LoginSession struct {
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"user_agent"`
}

func (l LoginSessionList) Value() (driver.Value, error) {
	if l == nil {
		l = LoginSessionList{}
	}
	return json.Marshal(l)
}

func (l *LoginSessionList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// FeedbackPayload is the terminal feedback attached to a completed
// conversation. Shape is owned by the generation gateway.
type FeedbackPayload map[string]interface{}

func (f FeedbackPayload) Value() (driver.Value, error) {
	if f == nil {
		return nil, nil
	}
	return json.Marshal(f)
}

func (f *FeedbackPayload) Scan(value interface{}) error {
	return jsonbScan(value, f)
}
