package itunes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBodyExcerpt bounds the body text kept on a DecodeError.
const maxBodyExcerpt = 256

// get makes a single GET request against the search endpoint and decodes
// the JSON body into dest.
//
// Exactly one attempt is made. Callers decide whether to retry.
func (c *Client) get(ctx context.Context, kind Kind, params url.Values, dest interface{}) error {
	reqURL := c.baseURL + "?" + params.Encode()

	c.logDebugf("itunes: GET %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &TransportError{URL: reqURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{URL: reqURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{URL: reqURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", http.StatusText(resp.StatusCode))}
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return &DecodeError{Kind: kind, Body: excerpt(body), Err: err}
	}

	c.logDebugf("itunes: %s search succeeded (%d bytes)", kind, len(body))
	return nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt])
	}
	return string(body)
}
