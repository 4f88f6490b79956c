package itunes

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Config holds client configuration.
type Config struct {
	HTTPClient *http.Client // Optional: HTTP client (defaults to a client with DefaultTimeout)
	BaseURL    string       // Optional: Search endpoint (defaults to DefaultBaseURL, used for testing)
	UserAgent  string       // Optional: User-Agent header value
	Logger     Logger       // Optional: Logger interface for debug logging
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for iTunes Search API operations.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     Logger

	search *SearchService
}

const (
	// DefaultBaseURL is the default iTunes Search API endpoint.
	DefaultBaseURL = "https://itunes.apple.com/search"

	// DefaultTimeout bounds a single request when no HTTP client is supplied.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "storefront/1.0"
)

// NewClient creates a new iTunes Search API client.
//
// Returns an error if BaseURL is set but is not an absolute URL.
func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("itunes: invalid BaseURL %q", baseURL)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	c := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     cfg.Logger,
	}

	c.search = &SearchService{client: c}

	return c, nil
}

// Search returns the search service.
func (c *Client) Search() *SearchService {
	return c.search
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
