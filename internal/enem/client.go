// Package enem is a thin client for the public ENEM exam catalog API. It
// handles transient-failure retries, response envelope normalization, and
// nothing else; callers decide how results are presented.
package enem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the public catalog endpoint used when no override is
// configured.
const DefaultBaseURL = "https://api.enem.dev/v1"

// Per-endpoint timeouts. Question listings page through large payloads and
// get a longer budget than the catalog and single-question lookups.
const (
	examsTimeout     = 20 * time.Second
	questionsTimeout = 30 * time.Second
	questionTimeout  = 20 * time.Second
)

const (
	retryMax            = 2 // three attempts total
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 8 * time.Second
)

// transientStatuses are the response codes worth retrying: throttling and
// upstream gateway failures.
var transientStatuses = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// Client talks to one catalog deployment. Use New.
type Client struct {
	baseURL string

	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		retryWaitMin: defaultRetryWaitMin,
		retryWaitMax: defaultRetryWaitMax,
	}
}

// ListExams fetches the full exam catalog.
func (c *Client) ListExams(ctx context.Context) ([]any, error) {
	body, err := c.get(ctx, "/exams", nil, examsTimeout)
	if err != nil {
		return nil, err
	}
	return Normalize(body)
}

// ExamByYear scans the catalog for the first exam held in the given year.
// Absence is reported through ok rather than an error; records without a
// usable year field are skipped.
func (c *Client) ExamByYear(ctx context.Context, year int) (map[string]any, bool, error) {
	exams, err := c.ListExams(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, entry := range exams {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if y, ok := RecordYear(record); ok && y == year {
			return record, true, nil
		}
	}
	return nil, false, nil
}

// ListQuestions fetches questions matching the given query parameters. The
// parameters are forwarded untouched; absent keys stay absent so the server
// applies its own defaults.
func (c *Client) ListQuestions(ctx context.Context, params url.Values) ([]any, error) {
	body, err := c.get(ctx, "/questions", params, questionsTimeout)
	if err != nil {
		return nil, err
	}
	return Normalize(body)
}

// GetQuestion fetches a single question by its identifier. The result is
// returned as-is, without list normalization.
func (c *Client) GetQuestion(ctx context.Context, id string) (any, error) {
	body, err := c.get(ctx, "/questions/"+url.PathEscape(id), nil, questionTimeout)
	if err != nil {
		return nil, err
	}
	var question any
	if err := decodeJSON(body, &question); err != nil {
		return nil, fmt.Errorf("failed to decode question %s: %w", id, err)
	}
	return question, nil
}

// get issues one GET against the API and returns the body of a 2xx response.
// A fresh retrying session is built per call and torn down with it.
func (c *Client) get(ctx context.Context, path string, params url.Values, timeout time.Duration) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	session := c.session(timeout)
	defer session.HTTPClient.CloseIdleConnections()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := session.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// session builds the scoped retrying HTTP client for a single call.
func (c *Client) session(timeout time.Duration) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retryMax
	rc.RetryWaitMin = c.retryWaitMin
	rc.RetryWaitMax = c.retryWaitMax
	rc.HTTPClient.Timeout = timeout
	rc.CheckRetry = checkRetry
	// Keep the final response so its status and body survive retry
	// exhaustion instead of being drained into a generic error.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = slog.Default()
	return rc
}

// checkRetry retries idempotent GETs on transient statuses only. Transport
// errors surface immediately.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return false, err
	}
	if resp == nil {
		return false, nil
	}
	if resp.Request != nil && resp.Request.Method != http.MethodGet {
		return false, nil
	}
	_, transient := transientStatuses[resp.StatusCode]
	return transient, nil
}

// RecordYear extracts the integer year of an exam record. The catalog has
// carried years both as numbers and as numeric strings.
func RecordYear(record map[string]any) (int, bool) {
	switch year := record["year"].(type) {
	case json.Number:
		n, err := strconv.Atoi(year.String())
		if err != nil {
			return 0, false
		}
		return n, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
