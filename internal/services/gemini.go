package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// QuotaExceededError means the provider kept answering 429 past the retry
// budget. RetryAfterSeconds is 0 when the provider gave no hint.
type QuotaExceededError struct {
	RetryAfterSeconds int
}

func (e *QuotaExceededError) Error() string {
	return "Gemini API rate limit exceeded. Please try again later."
}

// ServiceUnavailableError means 503 responses persisted past the retry budget.
type ServiceUnavailableError struct{}

func (e *ServiceUnavailableError) Error() string {
	return "Gemini API service unavailable after multiple retries."
}

// ProviderStatusError is any other non-success status from the provider.
// These are never retried.
type ProviderStatusError struct {
	StatusCode int
}

func (e *ProviderStatusError) Error() string {
	return fmt.Sprintf("Gemini API error: %d", e.StatusCode)
}

type GeminiService interface {
	GenerateJobMatch(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	apiKey       string
	model        string
	baseURL      string
	httpClient   *http.Client
	maxRetries   int
	initialDelay time.Duration
}

func NewGeminiService(apiKey string, maxRetries int, initialDelay time.Duration) GeminiService {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if initialDelay <= 0 {
		initialDelay = time.Second
	}

	return &geminiService{
		apiKey:       apiKey,
		model:        defaultGeminiModel,
		baseURL:      defaultGeminiBaseURL,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
	}
}

type generateContentRequest struct {
	Contents []promptContent `json:"contents"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

// requestSpec is the immutable template from which every send attempt builds
// its own request. An *http.Request body is single-use, so a request is never
// resent; a fresh one is constructed per attempt instead.
type requestSpec struct {
	method string
	url    string
	header http.Header
	body   []byte
}

func (s *requestSpec) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, s.method, s.url, bytes.NewReader(s.body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header = s.header.Clone()
	return req, nil
}

// GenerateJobMatch implements GeminiService. It returns the raw response body
// on success and one of QuotaExceededError, ServiceUnavailableError or
// ProviderStatusError (or a wrapped transport error) on failure.
func (g *geminiService) GenerateJobMatch(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateContentRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	spec := &requestSpec{
		method: http.MethodPost,
		url: fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
			g.baseURL, g.model, url.QueryEscape(g.apiKey)),
		header: header,
		body:   body,
	}

	resp, err := g.sendWithRetries(ctx, spec)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &QuotaExceededError{RetryAfterSeconds: retryAfterSeconds(resp.Header)}
	case resp.StatusCode == http.StatusServiceUnavailable:
		return "", &ServiceUnavailableError{}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", &ProviderStatusError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}

	return string(raw), nil
}

// sendWithRetries drives the retry state machine: 429 waits for the provider's
// Retry-After hint when present, otherwise exponential backoff; 503 always
// backs off exponentially; any other status returns right away. Once the
// budget is spent, one last unconditional send is issued and its outcome is
// returned as-is.
func (g *geminiService) sendWithRetries(ctx context.Context, spec *requestSpec) (*http.Response, error) {
	currentRetry := 0

	for currentRetry < g.maxRetries {
		req, err := spec.newRequest(ctx)
		if err != nil {
			return nil, err
		}

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("gemini request failed: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			delay := g.backoffDelay(currentRetry, retryAfterSeconds(resp.Header))
			resp.Body.Close()
			log.Printf("⚠️ Rate limit hit (429). Retrying in %s. Attempt %d/%d\n", delay, currentRetry+1, g.maxRetries)
			if err := sleepWithContext(ctx, delay); err != nil {
				return nil, err
			}
			currentRetry++
		case http.StatusServiceUnavailable:
			// Not counted as quota pressure, but backed off the same way.
			delay := g.backoffDelay(currentRetry, 0)
			resp.Body.Close()
			log.Printf("⚠️ Service unavailable (503). Retrying in %s. Attempt %d/%d\n", delay, currentRetry+1, g.maxRetries)
			if err := sleepWithContext(ctx, delay); err != nil {
				return nil, err
			}
			currentRetry++
		default:
			return resp, nil
		}
	}

	// Retry budget exhausted: send one final time no matter what and let the
	// caller classify whatever comes back. This extra attempt beyond the
	// nominal budget is deliberate.
	req, err := spec.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	return resp, nil
}

// backoffDelay prefers the provider's Retry-After hint; without one it grows
// as initialDelay * 2^attempt.
func (g *geminiService) backoffDelay(attempt, hintSeconds int) time.Duration {
	if hintSeconds > 0 {
		return time.Duration(hintSeconds) * time.Second
	}
	return g.initialDelay * (1 << attempt)
}

func retryAfterSeconds(header http.Header) int {
	seconds, err := strconv.Atoi(header.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("backoff cancelled: %w", ctx.Err())
	}
}
