package model

import (
	"time"
)

// ContractType steers the prompt focus for an analysis
type ContractType string

const (
	ContractEmployment  ContractType = "employment"
	ContractService     ContractType = "service"
	ContractNDA         ContractType = "nda"
	ContractLease       ContractType = "lease"
	ContractPartnership ContractType = "partnership"
	ContractGeneral     ContractType = "general"
)

// ParseContractType validates a contract category label
func ParseContractType(s string) (ContractType, bool) {
	switch ContractType(s) {
	case ContractEmployment, ContractService, ContractNDA, ContractLease, ContractPartnership, ContractGeneral:
		return ContractType(s), true
	}
	return "", false
}

// AnalysisDepth steers the prompt detail level
type AnalysisDepth string

const (
	DepthStandard       AnalysisDepth = "standard"
	DepthDeep           AnalysisDepth = "deep"
	DepthCompliance     AnalysisDepth = "compliance"
	DepthRiskAssessment AnalysisDepth = "risk_assessment"
)

// ParseAnalysisDepth validates an analysis depth label
func ParseAnalysisDepth(s string) (AnalysisDepth, bool) {
	switch AnalysisDepth(s) {
	case DepthStandard, DepthDeep, DepthCompliance, DepthRiskAssessment:
		return AnalysisDepth(s), true
	}
	return "", false
}

// RiskLevel is the four-level risk severity scale
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ValidRiskLevel reports whether s is one of the known severity labels
func ValidRiskLevel(s string) bool {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// RiskItem is a single identified contract risk
type RiskItem struct {
	Type           string    `json:"type"`
	Severity       RiskLevel `json:"severity"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
	Confidence     float64   `json:"confidence"`
	Location       string    `json:"location,omitempty"`
}

// Insight is a qualitative observation about the contract
type Insight struct {
	Category       string `json:"category"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

// AnalysisResult is the structured outcome of one contract analysis.
// Immutable once constructed.
type AnalysisResult struct {
	ID            string        `json:"id"`
	Filename      string        `json:"filename"`
	ContractType  ContractType  `json:"contract_type"`
	AnalysisDepth AnalysisDepth `json:"analysis_depth"`
	CreatedAt     time.Time     `json:"created_at"`

	Summary           string           `json:"summary"`
	KeyTerms          []map[string]any `json:"key_terms"`
	Risks             []RiskItem       `json:"risks"`
	Insights          []Insight        `json:"insights"`
	ComplianceScore   float64          `json:"compliance_score"`
	OverallRiskScore  float64          `json:"overall_risk_score"`
	NegotiationPoints []string         `json:"negotiation_points"`
	MissingClauses    []string         `json:"missing_clauses"`
	Improvements      []string         `json:"improvements"`
}

// FileResult is the per-file outcome of an upload request
type FileResult struct {
	Filename string          `json:"filename"`
	Status   string          `json:"status"` // success, error
	Analysis *AnalysisResult `json:"analysis,omitempty"`
	Error    string          `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// UploadResponse wraps the per-file results of one upload request
type UploadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Results []FileResult `json:"results"`
}

// User is the authenticated identity attached to requests
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	IsActive bool   `json:"is_active"`
}

// DashboardStats holds the dashboard figures
type DashboardStats struct {
	ContractsAnalyzed int    `json:"contracts_analyzed"`
	HighRiskDetected  int    `json:"high_risk_detected"`
	RiskAvoided       string `json:"risk_avoided"`
	TimeSaved         string `json:"time_saved"`
}
