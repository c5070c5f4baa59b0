package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"narike/portfolio-api/internal/models"
)

var (
	ErrEmptyResponse    = errors.New("empty or missing response")
	ErrMalformedPayload = errors.New("malformed provider payload")
)

// geminiEnvelope is the provider's generateContent response shape; only the
// first candidate's first text part is consumed.
type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ParseJobMatchResponse extracts the model's reply text from the provider
// envelope, strips Markdown code fences and decodes the analysis payload.
//
// The payload content itself is trusted as-is: no range check on the match
// percentage and no required-field enforcement beyond decoding. The provider
// owns those values.
func ParseJobMatchResponse(raw string) (*models.JobMatchAnalysis, error) {
	var envelope geminiEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyResponse, err)
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	text := envelope.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResponse
	}

	cleaned := stripCodeFences(text)

	// encoding/json matches fields case-insensitively, which covers the
	// provider's unstable casing.
	var analysis models.JobMatchAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return &analysis, nil
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
