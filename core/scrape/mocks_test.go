package scrape

import (
	"context"
	"errors"
	"io"
	"strings"

	"pools-app-api/core/interfaces"
)

// mockResponse implements interfaces.Response over a string body
type mockResponse struct {
	statusCode int
	body       string
}

func (r *mockResponse) StatusCode() int { return r.statusCode }

func (r *mockResponse) Body() io.ReadCloser { return io.NopCloser(strings.NewReader(r.body)) }

func (r *mockResponse) Header(key string) string { return "" }

// mockHTTPClient serves canned responses keyed by URL
type mockHTTPClient struct {
	responses map[string]*mockResponse
	err       error
}

func (c *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if c.err != nil {
		return nil, c.err
	}
	resp, ok := c.responses[url]
	if !ok {
		return nil, errors.New("no canned response for " + url)
	}
	return resp, nil
}

// mockLogger discards log output while recording warn calls
type mockLogger struct {
	warnings []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}

func testDeps(client *mockHTTPClient) (interfaces.Dependencies, *mockLogger) {
	logger := &mockLogger{}
	return interfaces.Dependencies{
		HTTPClient: client,
		Logger:     logger,
	}, logger
}
