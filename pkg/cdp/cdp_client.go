package cdp

import (
	"context"
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	FormatPEM    = "PEM"
	FormatBase64 = "Base64"

	tokenLifetime = 2 * time.Minute
)

// KeyFormat guesses the encoding of a CDP secret the same way the portal
// exports them: EC keys as PEM, Ed25519 keys as raw base64.
func KeyFormat(privateKey string) string {
	if strings.HasPrefix(strings.TrimSpace(privateKey), "-----BEGIN") {
		return FormatPEM
	}
	return FormatBase64
}

// ParsePrivateKey returns the signing key and the matching jwt method.
// Escaped newlines, as found in most .env files, are accepted.
func ParsePrivateKey(privateKey string) (crypto.Signer, jwt.SigningMethod, error) {
	privateKey = strings.TrimSpace(privateKey)
	if privateKey == "" {
		return nil, nil, fmt.Errorf("private key is empty")
	}

	if KeyFormat(privateKey) == FormatPEM {
		pem := strings.ReplaceAll(privateKey, `\n`, "\n")
		key, err := jwt.ParseECPrivateKeyFromPEM([]byte(pem))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse EC private key: %w", err)
		}
		return key, jwt.SigningMethodES256, nil
	}

	raw, err := base64.StdEncoding.DecodeString(privateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode base64 private key: %w", err)
	}
	switch len(raw) {
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), jwt.SigningMethodEdDSA, nil
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), jwt.SigningMethodEdDSA, nil
	default:
		return nil, nil, fmt.Errorf("unexpected ed25519 key length %d", len(raw))
	}
}

type Client struct {
	HttpClient *http.Client
	// host only, e.g. api.cdp.coinbase.com; it is part of the signed uri claim
	Host    string
	Scheme  string
	KeyName string

	key    crypto.Signer
	method jwt.SigningMethod
	now    func() time.Time
}

// NewClient parses the key up front, so a returned client is configured
// and able to sign requests.
func NewClient(keyName, privateKey, host string, httpClient *http.Client) (*Client, error) {
	if keyName == "" {
		return nil, fmt.Errorf("api key name is empty")
	}
	key, method, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		HttpClient: httpClient,
		Host:       host,
		Scheme:     "https",
		KeyName:    keyName,
		key:        key,
		method:     method,
		now:        time.Now,
	}, nil
}

func (c Client) SigningAlgorithm() string {
	return c.method.Alg()
}

type bearerClaims struct {
	Uri string `json:"uri"`
	jwt.RegisteredClaims
}

// BearerToken signs a short lived token scoped to one request
func (c Client) BearerToken(method, path string) (string, error) {
	now := c.now()
	claims := bearerClaims{
		Uri: fmt.Sprintf("%s %s%s", method, c.Host, path),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cdp",
			Subject:   c.KeyName,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	nonce := make([]byte, 16)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	token := jwt.NewWithClaims(c.method, claims)
	token.Header["kid"] = c.KeyName
	token.Header["nonce"] = hex.EncodeToString(nonce)

	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

type Network struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	ChainID     int64  `json:"chain_id"`
	IsTestnet   bool   `json:"is_testnet"`
}

// GetNetwork is a read-only call used to prove the credentials are accepted
func (c Client) GetNetwork(ctx context.Context, networkID string) (*Network, error) {
	path := "/platform/v1/networks/" + networkID
	token, err := c.BearerToken(http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s://%s%s", c.Scheme, c.Host, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach cdp: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		errJson := errResponse{}
		if err := json.Unmarshal(responseBytes, &errJson); err != nil {
			return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
		}
		return nil, fmt.Errorf("failed with status code %d: %s %s", response.StatusCode, errJson.Code, errJson.Message)
	}

	out := Network{}
	if err := json.Unmarshal(responseBytes, &out); err != nil {
		return nil, fmt.Errorf("failed to parse network response: %w", err)
	}
	return &out, nil
}
