package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charhateom/qrakhsa/dto"
)

// ErrUnauthorized means the server rejected the bearer token: the persisted
// session is stale and the operator has to log in again.
var ErrUnauthorized = errors.New("unauthorized")

// apiClient is the console's thin REST client. No retries anywhere: a failed
// call is surfaced once and the next poll tick is the retry.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string) *apiClient {
	return &apiClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *apiClient) adminLogin(ctx context.Context, username, password string) (string, error) {
	body, _ := json.Marshal(dto.LoginDTO{Username: username, Password: password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/admin/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var out dto.AdminLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	if out.Token == "" {
		return "", errors.New("login: empty token in response")
	}
	return out.Token, nil
}

func (c *apiClient) listAlerts(ctx context.Context, token string) ([]dto.AlertResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/admin/sos-alerts", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list alerts: unexpected status %d", resp.StatusCode)
	}

	var alerts []dto.AlertResponse
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		return nil, fmt.Errorf("list alerts: decode response: %w", err)
	}
	return alerts, nil
}
