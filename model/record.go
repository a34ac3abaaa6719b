package model

import (
	"time"
)

// UserRecord is the users table. No login path reads it yet; the schema is
// kept so a real user store can replace the configured credential list.
type UserRecord struct {
	ID             int       `gorm:"primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	FullName       string
	HashedPassword string `gorm:"not null"`
	IsActive       bool   `gorm:"default:true"`
	CreatedAt      time.Time
}

func (UserRecord) TableName() string { return "users" }

// AnalysisRecord is the contract_analyses table. Analyses are transient per
// request; nothing writes here, so lookups report not-found.
type AnalysisRecord struct {
	ID            string `gorm:"primaryKey"` // UUID
	UserID        int    `gorm:"index;not null"`
	Filename      string `gorm:"not null"`
	ContractType  string `gorm:"not null"`
	AnalysisDepth string `gorm:"not null"`
	FileSize      int64

	// Analysis results stored as JSON text
	Summary      string `gorm:"type:text"`
	RisksJSON    string `gorm:"column:risks_json;type:text"`
	InsightsJSON string `gorm:"column:insights_json;type:text"`
	KeyTermsJSON string `gorm:"column:key_terms_json;type:text"`

	ComplianceScore  float64
	OverallRiskScore float64

	Status       string `gorm:"default:processing"` // processing, completed, failed
	ErrorMessage string `gorm:"type:text"`

	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (AnalysisRecord) TableName() string { return "contract_analyses" }
