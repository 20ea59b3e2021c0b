package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDecode is returned when a 200 response body is not valid JSON for the target type.
	ErrDecode = errors.New("failed to decode response")
)

// getJSON issues a GET for u and decodes the body into out.
func getJSON(ctx context.Context, httpClient *http.Client, logger *slog.Logger, u *url.URL, out any) error {
	logger.Debug("fetching Open-Meteo data", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		logger.Error("failed to fetch Open-Meteo data", "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("Open-Meteo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("%w: fetch returned status %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("failed to decode Open-Meteo response", "error", err)
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

func orDefaultClient(httpClient *http.Client) *http.Client {
	if httpClient == nil {
		return &http.Client{}
	}
	return httpClient
}
