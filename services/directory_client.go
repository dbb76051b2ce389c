package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hr-dashboard-server/models"
)

// DirectoryClient fetches the employee listing from the external mock API.
// The fetch happens once per process start; there is no retry and no timeout,
// matching the reference behavior of leaving the view loading on a hung
// source.
type DirectoryClient struct {
	sourceURL string
	limit     int
	client    *http.Client
}

// NewDirectoryClient creates a client for the given source URL, requesting up
// to limit records.
func NewDirectoryClient(sourceURL string, limit int) *DirectoryClient {
	return &DirectoryClient{
		sourceURL: sourceURL,
		limit:     limit,
		client:    &http.Client{},
	}
}

// directoryResponse is the source payload shape: a JSON object wrapping the
// employee list under a "users" key.
type directoryResponse struct {
	Users []models.Employee `json:"users"`
}

// FetchEmployees performs the listing request. The returned records carry no
// department or rating; the store enriches both on load.
func (dc *DirectoryClient) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	url := dc.sourceURL + "?limit=" + strconv.Itoa(dc.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := dc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch employees: source returned %s", resp.Status)
	}

	var payload directoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode employee listing: %w", err)
	}

	return payload.Users, nil
}
