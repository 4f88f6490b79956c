package itunes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestNewClient_Defaults(t *testing.T) {
	client, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected base URL %s, got %s", DefaultBaseURL, client.baseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, client.httpClient.Timeout)
	}
	if client.Search() == nil {
		t.Error("expected search service")
	}
}

func TestNewClient_CustomHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	client, err := NewClient(Config{HTTPClient: hc, UserAgent: "test/1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient != hc {
		t.Error("expected provided HTTP client to be used")
	}
	if client.userAgent != "test/1" {
		t.Errorf("expected user agent test/1, got %s", client.userAgent)
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"not a url", "/relative/path", "://missing"} {
		if _, err := NewClient(Config{BaseURL: base}); err == nil {
			t.Errorf("expected error for base URL %q", base)
		}
	}
}

func TestClient_LogsRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount": 0, "results": []}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client, err := NewClient(Config{BaseURL: server.URL, Logger: logger})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.Search().Tracks(t.Context(), "Yoasobi", 1, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logger.lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %v", len(logger.lines), logger.lines)
	}
	if !strings.Contains(logger.lines[0], "GET "+server.URL) {
		t.Errorf("expected request line, got %q", logger.lines[0])
	}
}
