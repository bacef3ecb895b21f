package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrRelationMissing means the project is reachable but the table hasn't
// been created yet
var ErrRelationMissing = errors.New("relation does not exist")

const publishableKeyPrefix = "sb_publishable_"

type Client struct {
	HttpClient *http.Client
	Url        string
	ApiKey     string
}

type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Hint    string `json:"hint"`
}

// relationMissing only matches the probed table; other missing objects
// (columns, roles) are real failures
func (e postgrestError) relationMissing(table string) bool {
	if e.Code == "42P01" || e.Code == "PGRST205" {
		return true
	}
	return strings.Contains(e.Message, fmt.Sprintf(`relation "%s" does not exist`, table)) ||
		strings.Contains(e.Message, fmt.Sprintf(`relation "public.%s" does not exist`, table))
}

// ProbeTable runs the cheapest possible select against table through the
// REST gateway.
func (c Client) ProbeTable(ctx context.Context, table string) error {
	url := fmt.Sprintf("%s/rest/v1/%s?select=count&limit=1", strings.TrimRight(c.Url, "/"), table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.ApiKey)
	if !strings.HasPrefix(c.ApiKey, publishableKeyPrefix) {
		req.Header.Set("Authorization", "Bearer "+c.ApiKey)
	}

	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach supabase: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	errJson := postgrestError{}
	if err := json.Unmarshal(responseBytes, &errJson); err != nil {
		return fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}
	if errJson.relationMissing(table) {
		return fmt.Errorf("%s: %w", errJson.Message, ErrRelationMissing)
	}
	return fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Message)
}

type ApiKeyClaims struct {
	Role string `json:"role"`
	Ref  string `json:"ref"`
	jwt.RegisteredClaims
}

// IsPublishableKey reports the newer non-JWT key format
func IsPublishableKey(key string) bool {
	return strings.HasPrefix(key, publishableKeyPrefix)
}

// DecodeApiKey reads the claims of a legacy JWT api key. The signature is
// not verified since the signing secret never leaves Supabase.
func DecodeApiKey(key string) (*ApiKeyClaims, error) {
	claims := &ApiKeyClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(key, claims)
	if err != nil {
		return nil, fmt.Errorf("failed to decode api key: %w", err)
	}
	return claims, nil
}
