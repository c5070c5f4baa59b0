package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func envelopeWith(text string) string {
	envelope := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	raw, _ := json.Marshal(envelope)
	return string(raw)
}

const fencedAnalysis = "```json\n" + `{
  "jobInformation": {"jobTitle": "Backend Engineer", "company": "Acme"},
  "matchEvaluation": {"matchPercentage": 72, "explanation": "Strong infra background.\nSome gaps in Go."},
  "tailoredCv": {"name": "CANDIDATE_NAME", "summary": "Backend engineer.", "skills": [{"category": "Backend", "skills": ["Go"]}]}
}` + "\n```"

func TestParseJobMatchResponse(t *testing.T) {
	raw := envelopeWith(fencedAnalysis)

	analysis, err := ParseJobMatchResponse(raw)

	assert.NoError(t, err)
	assert.Equal(t, "Backend Engineer", analysis.JobInformation.JobTitle)
	assert.Equal(t, "Acme", analysis.JobInformation.Company)
	assert.Equal(t, 72, analysis.MatchEvaluation.MatchPercentage)
	assert.Contains(t, analysis.MatchEvaluation.Explanation, "Strong infra background.")
	assert.Equal(t, "CANDIDATE_NAME", analysis.TailoredCv.Name)
	assert.Equal(t, []string{"Go"}, analysis.TailoredCv.Skills[0].Skills)
}

func TestParseJobMatchResponseIsIdempotent(t *testing.T) {
	raw := envelopeWith(fencedAnalysis)

	first, err := ParseJobMatchResponse(raw)
	assert.NoError(t, err)

	second, err := ParseJobMatchResponse(raw)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseJobMatchResponseCaseInsensitiveFields(t *testing.T) {
	raw := envelopeWith(`{"MATCHEVALUATION": {"MatchPercentage": 55, "EXPLANATION": "ok"}}`)

	analysis, err := ParseJobMatchResponse(raw)

	assert.NoError(t, err)
	assert.Equal(t, 55, analysis.MatchEvaluation.MatchPercentage)
	assert.Equal(t, "ok", analysis.MatchEvaluation.Explanation)
}

func TestParseJobMatchResponseNoRangeValidation(t *testing.T) {
	// The match percentage is provider-controlled and passed through as-is.
	raw := envelopeWith(`{"matchEvaluation": {"matchPercentage": 150, "explanation": ""}}`)

	analysis, err := ParseJobMatchResponse(raw)

	assert.NoError(t, err)
	assert.Equal(t, 150, analysis.MatchEvaluation.MatchPercentage)
}

func TestParseJobMatchResponseEmptyOrMissing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "internal error"},
		{name: "no candidates", raw: `{"candidates": []}`},
		{name: "no parts", raw: `{"candidates": [{"content": {"parts": []}}]}`},
		{name: "whitespace text", raw: envelopeWith("  \n\t ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJobMatchResponse(tt.raw)
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestParseJobMatchResponseMalformedPayload(t *testing.T) {
	raw := envelopeWith("```json\nthis is not json\n```")

	_, err := ParseJobMatchResponse(raw)

	assert.ErrorIs(t, err, ErrMalformedPayload)
}
