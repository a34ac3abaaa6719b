package service

import (
	"reflect"
	"testing"

	"github.com/SuyashJain1994/Contract-Analyzer/model"
)

func TestParseAnalysisResponseValid(t *testing.T) {
	raw := `Here is the analysis you requested:
{
    "summary": "A service agreement with net-30 payment terms",
    "key_terms": [{"term": "payment", "value": "net 30", "importance": "high"}],
    "risks": [
        {
            "type": "Payment",
            "severity": "high",
            "description": "No late payment penalty",
            "recommendation": "Add interest on overdue amounts",
            "confidence": 0.9,
            "location": "Section 4"
        }
    ],
    "insights": [
        {
            "category": "Commercial",
            "title": "One-sided terms",
            "description": "Terms favor the provider",
            "impact": "Reduced leverage",
            "recommendation": "Negotiate mutual obligations"
        }
    ],
    "compliance_score": 0.8,
    "overall_risk_score": 0.4,
    "negotiation_points": ["payment schedule"],
    "missing_clauses": ["limitation of liability"],
    "improvements": ["define SLAs"]
}
Let me know if you need more detail.`

	fields := parseAnalysisResponse(raw)

	if fields.Summary != "A service agreement with net-30 payment terms" {
		t.Errorf("Unexpected summary: %q", fields.Summary)
	}
	if len(fields.Risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(fields.Risks))
	}
	risk := fields.Risks[0]
	if risk.Type != "Payment" || risk.Severity != model.RiskHigh || risk.Confidence != 0.9 || risk.Location != "Section 4" {
		t.Errorf("Unexpected risk: %+v", risk)
	}
	if len(fields.Insights) != 1 || fields.Insights[0].Title != "One-sided terms" {
		t.Errorf("Unexpected insights: %+v", fields.Insights)
	}
	if fields.ComplianceScore != 0.8 || fields.OverallRiskScore != 0.4 {
		t.Errorf("Unexpected scores: %v %v", fields.ComplianceScore, fields.OverallRiskScore)
	}
	if len(fields.KeyTerms) != 1 || fields.KeyTerms[0]["term"] != "payment" {
		t.Errorf("Unexpected key terms: %+v", fields.KeyTerms)
	}
}

func TestParseAnalysisResponseInvalidJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no braces", "the model replied with prose only"},
		{"malformed json", `{"summary": "unterminated`},
		{"empty string", ""},
		{"reversed braces", "} nothing here {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := parseAnalysisResponse(tt.raw)
			if !reflect.DeepEqual(fields, fallbackAnalysis()) {
				t.Error("Expected the exact fallback analysis")
			}
		})
	}
}

func TestParseAnalysisResponseFallbackShape(t *testing.T) {
	fields := fallbackAnalysis()

	if fields.Summary != "Contract analysis completed with limited AI processing" {
		t.Errorf("Unexpected fallback summary: %q", fields.Summary)
	}
	if len(fields.Risks) != 1 {
		t.Fatalf("Expected exactly one fallback risk, got %d", len(fields.Risks))
	}
	if fields.Risks[0].Severity != model.RiskMedium {
		t.Errorf("Expected medium severity, got %s", fields.Risks[0].Severity)
	}
	if len(fields.Insights) != 1 || fields.Insights[0].Title != "Limited Analysis" {
		t.Errorf("Unexpected fallback insight: %+v", fields.Insights)
	}
	if fields.ComplianceScore != 0.5 || fields.OverallRiskScore != 0.5 {
		t.Errorf("Expected 0.5 scores, got %v %v", fields.ComplianceScore, fields.OverallRiskScore)
	}
	if len(fields.NegotiationPoints) != 1 || fields.NegotiationPoints[0] != "Consider professional legal review" {
		t.Errorf("Unexpected negotiation points: %+v", fields.NegotiationPoints)
	}
}

func TestParseAnalysisResponseSparseJSON(t *testing.T) {
	// A valid but minimal object still produces a fully-populated result
	fields := parseAnalysisResponse(`{}`)

	if fields.Summary != "Analysis completed" {
		t.Errorf("Expected default summary, got %q", fields.Summary)
	}
	if fields.KeyTerms == nil || len(fields.KeyTerms) != 0 {
		t.Errorf("Expected empty key terms, got %+v", fields.KeyTerms)
	}
	if fields.Risks == nil || len(fields.Risks) != 0 {
		t.Errorf("Expected empty risks, got %+v", fields.Risks)
	}
	if fields.ComplianceScore != 0.5 || fields.OverallRiskScore != 0.5 {
		t.Errorf("Expected default 0.5 scores, got %v %v", fields.ComplianceScore, fields.OverallRiskScore)
	}
	if fields.NegotiationPoints == nil || fields.MissingClauses == nil || fields.Improvements == nil {
		t.Error("Expected empty lists, not nil")
	}
}

func TestParseAnalysisResponseRiskDefaults(t *testing.T) {
	fields := parseAnalysisResponse(`{"risks": [{}]}`)

	if len(fields.Risks) != 1 {
		t.Fatalf("Expected 1 risk, got %d", len(fields.Risks))
	}
	risk := fields.Risks[0]
	if risk.Type != "Unknown" {
		t.Errorf("Expected default type Unknown, got %q", risk.Type)
	}
	if risk.Severity != model.RiskMedium {
		t.Errorf("Expected default severity medium, got %s", risk.Severity)
	}
	if risk.Confidence != 0.5 {
		t.Errorf("Expected default confidence 0.5, got %v", risk.Confidence)
	}
}

func TestParseAnalysisResponseInvalidSeverity(t *testing.T) {
	// An unrecognized severity triggers full fallback, not field-level repair
	raw := `{
        "summary": "Otherwise fine",
        "risks": [{"type": "Payment", "severity": "catastrophic"}]
    }`

	fields := parseAnalysisResponse(raw)
	if !reflect.DeepEqual(fields, fallbackAnalysis()) {
		t.Error("Expected the exact fallback analysis for invalid severity")
	}
}

func TestParseAnalysisResponseCoercionErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"string score", `{"compliance_score": "high"}`},
		{"string confidence", `{"risks": [{"confidence": "very sure"}]}`},
		{"non-list risks", `{"risks": "none"}`},
		{"non-string negotiation point", `{"negotiation_points": [1, 2]}`},
		{"non-object insight", `{"insights": ["just text"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := parseAnalysisResponse(tt.raw)
			if !reflect.DeepEqual(fields, fallbackAnalysis()) {
				t.Error("Expected the exact fallback analysis")
			}
		})
	}
}

func TestParseAnalysisResponseInsightDefaults(t *testing.T) {
	fields := parseAnalysisResponse(`{"insights": [{"title": "Something"}]}`)

	if len(fields.Insights) != 1 {
		t.Fatalf("Expected 1 insight, got %d", len(fields.Insights))
	}
	if fields.Insights[0].Category != "General" {
		t.Errorf("Expected default category General, got %q", fields.Insights[0].Category)
	}
}
