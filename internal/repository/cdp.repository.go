package repository

import (
	"context"
	"fairhold/internal/util"
	"fairhold/pkg/cdp"
	"fmt"
	"net/http"
)

//go:generate mockgen -source=cdp.repository.go -destination=mocks/mock_cdp.repository.go

// CdpRepository is a configured CDP client. Constructing one parses the
// private key, which is the equivalent of configuring the SDK.
type CdpRepository interface {
	SigningAlgorithm() string
	GetNetwork(ctx context.Context, networkID string) (*cdp.Network, error)
}

type cdpRepositoryHandler struct {
	client *cdp.Client
}

func NewCdpRepository(secrets util.CdpSecrets) (CdpRepository, error) {
	client, err := cdp.NewClient(
		secrets.ApiKeyName,
		secrets.PrivateKey,
		secrets.ApiHost,
		http.DefaultClient,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cdp client: %w", err)
	}
	return cdpRepositoryHandler{client: client}, nil
}

func (h cdpRepositoryHandler) SigningAlgorithm() string {
	return h.client.SigningAlgorithm()
}

func (h cdpRepositoryHandler) GetNetwork(ctx context.Context, networkID string) (*cdp.Network, error) {
	return h.client.GetNetwork(ctx, networkID)
}
