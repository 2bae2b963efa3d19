package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Transport handles the low-level HTTP round trip to the published sheet
// endpoint. One request per user action, no retries.
type Transport struct {
	AuthToken  string
	HTTPClient *http.Client
}

func NewTransport(token string) *Transport {
	return &Transport{
		AuthToken:  token,
		HTTPClient: &http.Client{},
	}
}

// helper: append query params to an absolute URL
func buildURL(rawURL string, query map[string]string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Get sends a GET request
func (t *Transport) Get(ctx context.Context, rawURL string, query map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildURL(rawURL, query), nil)
	if err != nil {
		return nil, err
	}

	if t.AuthToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", t.AuthToken))
	}

	return t.HTTPClient.Do(req)
}
