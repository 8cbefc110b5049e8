package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the HTTP wrapper for the workspace service REST API.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
}

// NewClient creates a new workspace HTTP client. The service token
// authenticates this backend; the acting user travels in a header.
func NewClient(baseURL, serviceToken string) *Client {
	return &Client{
		baseURL:      baseURL,
		serviceToken: serviceToken,
		httpClient:   &http.Client{},
	}
}

// timelineResponse is the wire shape of the personal timeline endpoint.
// Due dates arrive as RFC3339 strings; parsing happens in the repository
// so a malformed value degrades to "no due date" instead of failing.
type timelineResponse struct {
	Tasks      []wireTask      `json:"tasks"`
	Milestones []wireMilestone `json:"milestones"`
}

type wireTask struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	DueAt  string `json:"due_at"`
}

type wireMilestone struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	DueAt string `json:"due_at"`
}

// updateTaskRequest is the body for PATCH /api/v1/tasks/{id}.
type updateTaskRequest struct {
	Title  string `json:"title,omitempty"`
	Status string `json:"status,omitempty"`
	DueAt  string `json:"due_at,omitempty"`
}

// GetTimeline fetches the full personal timeline for one user.
func (c *Client) GetTimeline(ctx context.Context, userID string) (timelineResponse, error) {
	url := fmt.Sprintf("%s/api/v1/users/%s/timeline", c.baseURL, userID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return timelineResponse{}, fmt.Errorf("failed to build timeline request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return timelineResponse{}, fmt.Errorf("failed to call workspace timeline API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return timelineResponse{}, fmt.Errorf("workspace API timeline error %d: %s", resp.StatusCode, string(raw))
	}

	var out timelineResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return timelineResponse{}, fmt.Errorf("failed to decode workspace timeline response: %w", err)
	}
	return out, nil
}

// PatchTask applies a partial task update on behalf of a user.
func (c *Client) PatchTask(ctx context.Context, userID, taskID string, req updateTaskRequest) error {
	url := fmt.Sprintf("%s/api/v1/tasks/%s", c.baseURL, taskID)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal task update request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build task update request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceToken))
	httpReq.Header.Set("X-Acting-User", userID)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call workspace task update API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("workspace API task update error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
