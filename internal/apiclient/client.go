// Package apiclient is the HTTP client the board tool uses to talk to the
// onboarding service.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vaultscope/asset-onboarding/internal/application"
	"github.com/vaultscope/asset-onboarding/internal/domain"
)

const defaultTimeout = 10 * time.Second

// MoveRejectedError is a server refusal of a stage move. Reason holds the
// denial text exactly as the server sent it.
type MoveRejectedError struct {
	Code   string
	Reason string
}

func (e *MoveRejectedError) Error() string {
	return fmt.Sprintf("move rejected (%s): %s", e.Code, e.Reason)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

type successEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) ListAssets(ctx context.Context) ([]application.AssetResponse, error) {
	var out []application.AssetResponse
	if err := c.do(ctx, http.MethodGet, "/v1/assets", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MoveStage asks the server to move the asset. A nil error means the move
// was committed; a *MoveRejectedError means the server refused it.
func (c *Client) MoveStage(ctx context.Context, assetID uuid.UUID, target domain.Stage) (application.AssetResponse, error) {
	body := application.MoveStageRequest{Stage: string(target)}
	var out application.AssetResponse
	if err := c.do(ctx, http.MethodPatch, "/v1/assets/"+assetID.String()+"/stage", body, &out); err != nil {
		return application.AssetResponse{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr != nil {
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}
		return &MoveRejectedError{Code: envelope.Code, Reason: envelope.Message}
	}

	var envelope successEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}
