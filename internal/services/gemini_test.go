package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGeminiService(baseURL string, maxRetries int) *geminiService {
	return &geminiService{
		apiKey:       "test-key",
		model:        defaultGeminiModel,
		baseURL:      baseURL,
		httpClient:   &http.Client{},
		maxRetries:   maxRetries,
		initialDelay: time.Millisecond,
	}
}

type recordedRequest struct {
	method string
	uri    string
	accept string
	body   string
}

// recordingServer captures every request it receives so tests can assert on
// attempt counts and on the exact shape of resent requests.
type recordingServer struct {
	mu       sync.Mutex
	requests []recordedRequest
	statuses []int
	headers  []http.Header
	body     string
}

func (s *recordingServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		s.mu.Lock()
		attempt := len(s.requests)
		s.requests = append(s.requests, recordedRequest{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			accept: r.Header.Get("Accept"),
			body:   string(body),
		})
		status := s.statuses[len(s.statuses)-1]
		if attempt < len(s.statuses) {
			status = s.statuses[attempt]
		}
		var header http.Header
		if attempt < len(s.headers) {
			header = s.headers[attempt]
		}
		s.mu.Unlock()

		for key, values := range header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			w.Write([]byte(s.body))
		}
	}
}

func (s *recordingServer) attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func TestGenerateJobMatchSuccess(t *testing.T) {
	server := &recordingServer{statuses: []int{http.StatusOK}, body: `{"candidates":[]}`}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)

	raw, err := g.GenerateJobMatch(context.Background(), "test prompt")

	assert.NoError(t, err)
	assert.Equal(t, `{"candidates":[]}`, raw)
	assert.Equal(t, 1, server.attempts())

	req := server.requests[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Contains(t, req.uri, "key=test-key")
	assert.Equal(t, "application/json", req.accept)
	assert.Contains(t, req.body, "test prompt")
}

func TestRetryCeilingOnPersistentRateLimit(t *testing.T) {
	// With maxRetries budget spent, one extra unconditional send goes out.
	// That last-chance attempt is deliberate, so the total is maxRetries+1.
	server := &recordingServer{statuses: []int{http.StatusTooManyRequests}}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)

	_, err := g.GenerateJobMatch(context.Background(), "prompt")

	var quotaErr *QuotaExceededError
	assert.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 0, quotaErr.RetryAfterSeconds)
	assert.Equal(t, 4, server.attempts())
}

func TestRetryCeilingOnPersistentUnavailability(t *testing.T) {
	server := &recordingServer{statuses: []int{http.StatusServiceUnavailable}}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 2)

	_, err := g.GenerateJobMatch(context.Background(), "prompt")

	var unavailableErr *ServiceUnavailableError
	assert.ErrorAs(t, err, &unavailableErr)
	assert.Equal(t, 3, server.attempts())
}

func TestBackoffDelayGrowsExponentially(t *testing.T) {
	g := &geminiService{initialDelay: 100 * time.Millisecond}

	assert.Equal(t, 100*time.Millisecond, g.backoffDelay(0, 0))
	assert.Equal(t, 200*time.Millisecond, g.backoffDelay(1, 0))
	assert.Equal(t, 400*time.Millisecond, g.backoffDelay(2, 0))
}

func TestBackoffDelayHonorsRetryAfterHint(t *testing.T) {
	g := &geminiService{initialDelay: 100 * time.Millisecond}

	// The provider hint wins over the exponential value.
	assert.Equal(t, 5*time.Second, g.backoffDelay(0, 5))
	assert.Equal(t, 5*time.Second, g.backoffDelay(2, 5))
}

func TestRetryAfterSecondsParsing(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "numeric", value: "5", expected: 5},
		{name: "missing", value: "", expected: 0},
		{name: "non-numeric", value: "soon", expected: 0},
		{name: "negative", value: "-3", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := make(http.Header)
			if tt.value != "" {
				header.Set("Retry-After", tt.value)
			}
			assert.Equal(t, tt.expected, retryAfterSeconds(header))
		})
	}
}

func TestQuotaErrorCarriesRetryAfterHint(t *testing.T) {
	header := make(http.Header)
	header.Set("Retry-After", "1")
	server := &recordingServer{
		statuses: []int{http.StatusTooManyRequests},
		headers:  []http.Header{header, header, header, header},
	}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)

	_, err := g.GenerateJobMatch(context.Background(), "prompt")

	var quotaErr *QuotaExceededError
	assert.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, 1, quotaErr.RetryAfterSeconds)
}

func TestResentRequestMatchesOriginal(t *testing.T) {
	// A request body is single-use, so every retry must be a fresh request
	// carrying the same method, URI, headers and body as the first send.
	server := &recordingServer{
		statuses: []int{http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusOK},
		body:     `{"candidates":[]}`,
	}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)

	_, err := g.GenerateJobMatch(context.Background(), "prompt under retry")

	assert.NoError(t, err)
	assert.Equal(t, 3, server.attempts())

	first := server.requests[0]
	assert.NotEmpty(t, first.body)
	for _, resent := range server.requests[1:] {
		assert.Equal(t, first.method, resent.method)
		assert.Equal(t, first.uri, resent.uri)
		assert.Equal(t, first.accept, resent.accept)
		assert.Equal(t, first.body, resent.body)
	}
}

func TestNoRetryOnOtherStatuses(t *testing.T) {
	server := &recordingServer{statuses: []int{http.StatusBadRequest}}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)

	_, err := g.GenerateJobMatch(context.Background(), "prompt")

	var statusErr *ProviderStatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, 1, server.attempts())
}

func TestCancellationAbortsBackoff(t *testing.T) {
	server := &recordingServer{statuses: []int{http.StatusTooManyRequests}}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	g := newTestGeminiService(ts.URL, 3)
	g.initialDelay = 5 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.GenerateJobMatch(ctx, "prompt")

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, server.attempts())
	assert.Less(t, time.Since(start), time.Second)
}
