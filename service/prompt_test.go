package service

import (
	"strings"
	"testing"

	"github.com/SuyashJain1994/Contract-Analyzer/model"
)

func TestBuildAnalysisPromptBase(t *testing.T) {
	prompt, truncated := BuildAnalysisPrompt("Payment due in 30 days.", model.ContractGeneral, model.DepthStandard)

	if truncated {
		t.Error("Short text should not be truncated")
	}
	if !strings.Contains(prompt, "Payment due in 30 days.") {
		t.Error("Expected contract text in prompt")
	}
	if !strings.Contains(prompt, "general contract with standard analysis depth") {
		t.Error("Expected contract type and depth in prompt")
	}

	// The requested JSON shape must always be present
	for _, field := range []string{"summary", "key_terms", "risks", "insights", "compliance_score", "overall_risk_score", "negotiation_points", "missing_clauses", "improvements"} {
		if !strings.Contains(prompt, `"`+field+`"`) {
			t.Errorf("Expected %q in requested JSON shape", field)
		}
	}
}

func TestBuildAnalysisPromptTruncation(t *testing.T) {
	long := strings.Repeat("a", promptTextLimit+100)

	prompt, truncated := BuildAnalysisPrompt(long, model.ContractGeneral, model.DepthStandard)
	if !truncated {
		t.Error("Expected truncation flag for long text")
	}
	if strings.Contains(prompt, strings.Repeat("a", promptTextLimit+1)) {
		t.Error("Expected embedded text capped at the character budget")
	}
	if !strings.Contains(prompt, strings.Repeat("a", promptTextLimit)) {
		t.Error("Expected the full character budget to be embedded")
	}

	// Exactly at the limit is not truncation
	_, truncated = BuildAnalysisPrompt(strings.Repeat("b", promptTextLimit), model.ContractGeneral, model.DepthStandard)
	if truncated {
		t.Error("Text at the limit should not be truncated")
	}
}

func TestBuildAnalysisPromptTruncationCountsRunes(t *testing.T) {
	// Multibyte characters count as one each
	long := strings.Repeat("é", promptTextLimit)
	_, truncated := BuildAnalysisPrompt(long, model.ContractGeneral, model.DepthStandard)
	if truncated {
		t.Error("Rune count at the limit should not be truncated")
	}

	_, truncated = BuildAnalysisPrompt(long+"é", model.ContractGeneral, model.DepthStandard)
	if !truncated {
		t.Error("Rune count above the limit should be truncated")
	}
}

func TestBuildAnalysisPromptContractTypeFocus(t *testing.T) {
	tests := []struct {
		contractType model.ContractType
		marker       string
		present      bool
	}{
		{model.ContractEmployment, "Non-compete and confidentiality", true},
		{model.ContractNDA, "Definition of confidential information", true},
		{model.ContractService, "Liability and indemnification", true},
		{model.ContractLease, "Focus on:", false},
		{model.ContractPartnership, "Focus on:", false},
		{model.ContractGeneral, "Focus on:", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.contractType), func(t *testing.T) {
			prompt, _ := BuildAnalysisPrompt("text", tt.contractType, model.DepthStandard)
			if got := strings.Contains(prompt, tt.marker); got != tt.present {
				t.Errorf("Contains(%q) = %v, want %v", tt.marker, got, tt.present)
			}
		})
	}
}

func TestBuildAnalysisPromptDepthInstructions(t *testing.T) {
	tests := []struct {
		depth   model.AnalysisDepth
		marker  string
		present bool
	}{
		{model.DepthDeep, "clause-by-clause", true},
		{model.DepthCompliance, "regulatory compliance", true},
		{model.DepthRiskAssessment, "mitigation strategies", true},
		{model.DepthStandard, "clause-by-clause", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.depth), func(t *testing.T) {
			prompt, _ := BuildAnalysisPrompt("text", model.ContractGeneral, tt.depth)
			if got := strings.Contains(prompt, tt.marker); got != tt.present {
				t.Errorf("Contains(%q) = %v, want %v", tt.marker, got, tt.present)
			}
		})
	}
}
