package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPStatusError is returned when the server does not answer 200 OK
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s: %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// HTTPGetJSON GETs the url and decodes the JSON body into v.
// A non-200 status returns an *HTTPStatusError, a failure while reading the body is temporary.
func HTTPGetJSON(ctx context.Context, client *http.Client, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("HTTPGet: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTPGet: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return MakeTemporary(fmt.Errorf("HTTPGet.ReadAll: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		if len(body) > 512 {
			body = body[:512]
		}
		return &HTTPStatusError{URL: url, StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("HTTPGet.Decode: %w (response: %.256s)", err, body)
	}
	return nil
}
