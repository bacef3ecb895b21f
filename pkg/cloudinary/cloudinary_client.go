package cloudinary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Client struct {
	HttpClient *http.Client
	// e.g. https://api.cloudinary.com
	BaseUrl   string
	CloudName string
	ApiKey    string
	ApiSecret string
}

type PingResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Ping calls the admin API ping endpoint, which only succeeds with valid
// credentials for the cloud.
func (c Client) Ping(ctx context.Context) (*PingResponse, error) {
	url := fmt.Sprintf("%s/v1_1/%s/ping", strings.TrimRight(c.BaseUrl, "/"), c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.ApiKey, c.ApiSecret)

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach cloudinary: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		errJson := errorResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil || errJson.Error.Message == "" {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error.Message)
	}

	out := PingResponse{}
	if err := json.Unmarshal(responseBytes, &out); err != nil {
		return nil, fmt.Errorf("failed to parse ping response: %w", err)
	}

	return &out, nil
}
