package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SuyashJain1994/Contract-Analyzer/model"
)

// analysisFields holds the normalized analysis payload extracted from a
// model reply
type analysisFields struct {
	Summary           string
	KeyTerms          []map[string]any
	Risks             []model.RiskItem
	Insights          []model.Insight
	ComplianceScore   float64
	OverallRiskScore  float64
	NegotiationPoints []string
	MissingClauses    []string
	Improvements      []string
}

// parseAnalysisResponse normalizes a raw model reply into analysis fields.
// It never fails: malformed or invalid replies yield the fixed fallback
// analysis instead of partial data.
func parseAnalysisResponse(raw string) analysisFields {
	fields, err := coerceAnalysisResponse(raw)
	if err != nil {
		slog.Error("failed to parse AI response", "error", err)
		return fallbackAnalysis()
	}
	return fields
}

func coerceAnalysisResponse(raw string) (analysisFields, error) {
	var fields analysisFields

	// The reply may wrap the JSON object in extra prose
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return fields, fmt.Errorf("no JSON found in response")
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &data); err != nil {
		return fields, fmt.Errorf("invalid JSON in response: %w", err)
	}

	var err error
	if fields.Summary, err = stringField(data, "summary", "Analysis completed"); err != nil {
		return fields, err
	}
	if fields.KeyTerms, err = keyTermList(data, "key_terms"); err != nil {
		return fields, err
	}
	if fields.Risks, err = riskList(data, "risks"); err != nil {
		return fields, err
	}
	if fields.Insights, err = insightList(data, "insights"); err != nil {
		return fields, err
	}
	if fields.ComplianceScore, err = floatField(data, "compliance_score", 0.5); err != nil {
		return fields, err
	}
	if fields.OverallRiskScore, err = floatField(data, "overall_risk_score", 0.5); err != nil {
		return fields, err
	}
	if fields.NegotiationPoints, err = stringList(data, "negotiation_points"); err != nil {
		return fields, err
	}
	if fields.MissingClauses, err = stringList(data, "missing_clauses"); err != nil {
		return fields, err
	}
	if fields.Improvements, err = stringList(data, "improvements"); err != nil {
		return fields, err
	}

	return fields, nil
}

// fallbackAnalysis is substituted whenever the model reply cannot be parsed
// or validated. All-or-nothing: a clearly-labeled placeholder instead of a
// half-parsed analysis.
func fallbackAnalysis() analysisFields {
	return analysisFields{
		Summary:  "Contract analysis completed with limited AI processing",
		KeyTerms: []map[string]any{},
		Risks: []model.RiskItem{
			{
				Type:           "Analysis",
				Severity:       model.RiskMedium,
				Description:    "AI analysis was incomplete. Manual review recommended.",
				Recommendation: "Have a legal professional review this contract",
				Confidence:     0.5,
			},
		},
		Insights: []model.Insight{
			{
				Category:       "System",
				Title:          "Limited Analysis",
				Description:    "Full AI analysis was not available",
				Impact:         "May miss important contract details",
				Recommendation: "Consider manual legal review",
			},
		},
		ComplianceScore:   0.5,
		OverallRiskScore:  0.5,
		NegotiationPoints: []string{"Consider professional legal review"},
		MissingClauses:    []string{},
		Improvements:      []string{"Obtain comprehensive legal analysis"},
	}
}

func stringField(data map[string]any, key, fallback string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string", key)
	}
	return s, nil
}

func floatField(data map[string]any, key string, fallback float64) (float64, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return fallback, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q is not a number", key)
	}
	return f, nil
}

func stringList(data map[string]any, key string) ([]string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return []string{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not a list", key)
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-string entry", key)
		}
		result = append(result, s)
	}
	return result, nil
}

func keyTermList(data map[string]any, key string) ([]map[string]any, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return []map[string]any{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not a list", key)
	}
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-object entry", key)
		}
		result = append(result, m)
	}
	return result, nil
}

func riskList(data map[string]any, key string) ([]model.RiskItem, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return []model.RiskItem{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not a list", key)
	}
	result := make([]model.RiskItem, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-object entry", key)
		}

		riskType, err := stringField(m, "type", "Unknown")
		if err != nil {
			return nil, err
		}
		severity, err := stringField(m, "severity", string(model.RiskMedium))
		if err != nil {
			return nil, err
		}
		if !model.ValidRiskLevel(severity) {
			return nil, fmt.Errorf("invalid risk severity %q", severity)
		}
		description, err := stringField(m, "description", "")
		if err != nil {
			return nil, err
		}
		recommendation, err := stringField(m, "recommendation", "")
		if err != nil {
			return nil, err
		}
		confidence, err := floatField(m, "confidence", 0.5)
		if err != nil {
			return nil, err
		}
		location, err := stringField(m, "location", "")
		if err != nil {
			return nil, err
		}

		result = append(result, model.RiskItem{
			Type:           riskType,
			Severity:       model.RiskLevel(severity),
			Description:    description,
			Recommendation: recommendation,
			Confidence:     confidence,
			Location:       location,
		})
	}
	return result, nil
}

func insightList(data map[string]any, key string) ([]model.Insight, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return []model.Insight{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is not a list", key)
	}
	result := make([]model.Insight, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q contains a non-object entry", key)
		}

		category, err := stringField(m, "category", "General")
		if err != nil {
			return nil, err
		}
		title, err := stringField(m, "title", "")
		if err != nil {
			return nil, err
		}
		description, err := stringField(m, "description", "")
		if err != nil {
			return nil, err
		}
		impact, err := stringField(m, "impact", "")
		if err != nil {
			return nil, err
		}
		recommendation, err := stringField(m, "recommendation", "")
		if err != nil {
			return nil, err
		}

		result = append(result, model.Insight{
			Category:       category,
			Title:          title,
			Description:    description,
			Impact:         impact,
			Recommendation: recommendation,
		})
	}
	return result, nil
}
