// Package api provides the client for the Practicum homework statuses API.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// APIError classifies a failed request to the homework statuses endpoint:
// either the transport failed or the server answered with a non-200 code.
type APIError struct {
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("homework API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("homework API request failed: %v", e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client issues requests to the homework statuses endpoint.
type Client struct {
	client   *http.Client
	endpoint string
	token    string
}

// NewClient creates a Client for the given endpoint authorized with an OAuth token.
func NewClient(endpoint, token string) *Client {
	return &Client{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
		token:    token,
	}
}

// HomeworkStatuses requests homework statuses changed since fromDate (Unix time)
// and returns the decoded JSON body. Shape validation is left to the caller.
// Exactly one attempt is made per call.
func (c *Client) HomeworkStatuses(fromDate int64) (any, error) {
	req, err := http.NewRequest(http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		apiErr := &APIError{Err: err}
		logrus.Error(apiErr)
		return nil, apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		logrus.Errorf("Endpoint %s is unavailable: %v", c.endpoint, apiErr)
		return nil, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &APIError{Err: fmt.Errorf("read body: %w", err)}
		logrus.Error(apiErr)
		return nil, apiErr
	}

	var body any
	if err = json.Unmarshal(data, &body); err != nil {
		apiErr := &APIError{Err: fmt.Errorf("decode body: %w", err)}
		logrus.Error(apiErr)
		return nil, apiErr
	}

	logrus.Infof("Got API answer, status %s", resp.Status)
	return body, nil
}
