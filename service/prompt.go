package service

import (
	"fmt"
	"strings"

	"github.com/SuyashJain1994/Contract-Analyzer/model"
)

// promptTextLimit caps how much contract text is embedded in a prompt, to
// respect the model's input limits
const promptTextLimit = 8000

const promptJSONShape = `{
    "summary": "Brief summary of the contract",
    "key_terms": [
        {"term": "term name", "value": "term value", "importance": "high/medium/low"}
    ],
    "risks": [
        {
            "type": "risk category",
            "severity": "low/medium/high/critical",
            "description": "detailed description",
            "recommendation": "how to address this risk",
            "confidence": 0.85,
            "location": "section/clause reference"
        }
    ],
    "insights": [
        {
            "category": "insight category",
            "title": "insight title",
            "description": "detailed description",
            "impact": "potential impact",
            "recommendation": "recommended action"
        }
    ],
    "compliance_score": 0.75,
    "overall_risk_score": 0.65,
    "negotiation_points": ["point 1", "point 2"],
    "missing_clauses": ["clause 1", "clause 2"],
    "improvements": ["improvement 1", "improvement 2"]
}`

var contractTypeFocus = map[model.ContractType]string{
	model.ContractEmployment: `Focus on:
- Compensation and benefits
- Termination clauses
- Non-compete and confidentiality
- Intellectual property rights
- Work conditions and expectations`,
	model.ContractNDA: `Focus on:
- Definition of confidential information
- Permitted disclosures
- Term and survival
- Return of information
- Remedies for breach`,
	model.ContractService: `Focus on:
- Scope of services
- Payment terms
- Performance standards
- Liability and indemnification
- Termination conditions`,
}

var depthInstructions = map[model.AnalysisDepth]string{
	model.DepthDeep:           "Provide detailed clause-by-clause analysis with legal precedents where applicable.",
	model.DepthCompliance:     "Focus heavily on regulatory compliance, industry standards, and legal requirements.",
	model.DepthRiskAssessment: "Prioritize risk identification and mitigation strategies.",
}

// BuildAnalysisPrompt composes the analysis instruction for the model.
// Pure function, no I/O. The returned flag reports whether the contract text
// was truncated to fit the character budget.
func BuildAnalysisPrompt(text string, contractType model.ContractType, depth model.AnalysisDepth) (string, bool) {
	embedded, truncated := truncateRunes(text, promptTextLimit)

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert legal contract analyzer. Analyze the following %s contract with %s analysis depth.\n\n", contractType, depth)
	fmt.Fprintf(&sb, "Contract Text:\n%s\n\n", embedded)
	fmt.Fprintf(&sb, "Please provide a comprehensive analysis in the following JSON format:\n%s\n", promptJSONShape)

	if focus, ok := contractTypeFocus[contractType]; ok {
		sb.WriteString("\n")
		sb.WriteString(focus)
		sb.WriteString("\n")
	}

	if instruction, ok := depthInstructions[depth]; ok {
		sb.WriteString("\n")
		sb.WriteString(instruction)
		sb.WriteString("\n")
	}

	return sb.String(), truncated
}

func truncateRunes(s string, limit int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}
