package immich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}
	return c.do(ctx, http.MethodPost, path, body, out, operation)
}

func (c *Client) getJSON(ctx context.Context, path string, out any, operation string) error {
	return c.do(ctx, http.MethodGet, path, nil, out, operation)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any, operation string) error {
	err := c.exec.Execute(ctx, operation, func(ctx context.Context) error {
		start := time.Now()
		err := c.roundTrip(ctx, method, path, body, out, operation)
		c.metrics.ObserveRequest(operation, time.Since(start), err)
		return err
	}, classifyCatalogError)
	return wrapTemporary(operation, err)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body []byte, out any, operation string) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return newStatusError(operation, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}
