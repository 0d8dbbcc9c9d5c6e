package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parcel-gateway/internal/core/proxy"
)

// ErrInsecureEndpoint is returned when asked to post to a non-HTTPS endpoint.
var ErrInsecureEndpoint = errors.New("endpoint must use https")

// StatusError is returned when the gateway answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status: %d", e.StatusCode)
}

// XMLClient posts XML documents to carrier gateways.
type XMLClient struct {
	client *http.Client
}

// NewXMLClient creates an XMLClient with the given timeout and proxy.
func NewXMLClient(timeout time.Duration, proxySettings proxy.Settings) (*XMLClient, error) {
	client, err := NewClient(timeout, proxySettings)
	if err != nil {
		return nil, err
	}
	return &XMLClient{client: client}, nil
}

// Post sends body to endpoint and returns the reply text. Newlines are removed
// from the body first because the gateway rejects them inside element text.
func (c *XMLClient) Post(ctx context.Context, endpoint, body string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "https" {
		return "", fmt.Errorf("%w: %s", ErrInsecureEndpoint, endpoint)
	}

	payload := strings.ReplaceAll(body, "\n", "")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("Accept", "text/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return string(data), nil
}
