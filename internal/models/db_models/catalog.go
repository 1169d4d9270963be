package db_models

// Scenario and Persona are static reference data. They are seeded at startup
// and never mutated by request handlers.

type Scenario struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Setting     string     `json:"setting"`
	Difficulty  string     `json:"difficulty"`
	IsPremium   bool       `json:"isPremium"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	PersonaID   string     `json:"personaId"`
	Tags        StringList `gorm:"type:jsonb" json:"tags"`
}

func (Scenario) TableName() string { return "scenarios" }

type Persona struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Name          string     `json:"name"`
	Age           int        `json:"age"`
	Occupation    string     `json:"occupation"`
	Traits        string     `json:"traits"`
	Tone          string     `json:"tone"`
	Interests     StringList `gorm:"type:jsonb" json:"interests"`
	Avatar        string     `json:"avatar"`
	Backstory     string     `json:"backstory"`
	ResponseStyle string     `json:"responseStyle"`
}

func (Persona) TableName() string { return "personas" }
