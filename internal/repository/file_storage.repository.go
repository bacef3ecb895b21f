package repository

import (
	"context"
	"fairhold/internal/util"
	"fairhold/pkg/cloudinary"
	"net/http"
)

//go:generate mockgen -source=file_storage.repository.go -destination=mocks/mock_file_storage.repository.go

type FileStorageRepository interface {
	// Ping returns the status string reported by the storage provider
	Ping(ctx context.Context) (string, error)
}

type fileStorageRepositoryHandler struct {
	client cloudinary.Client
}

func NewFileStorageRepository(secrets util.CloudinarySecrets) FileStorageRepository {
	return fileStorageRepositoryHandler{
		client: cloudinary.Client{
			HttpClient: http.DefaultClient,
			BaseUrl:    secrets.ApiHost,
			CloudName:  secrets.CloudName,
			ApiKey:     secrets.ApiKey,
			ApiSecret:  secrets.ApiSecret,
		},
	}
}

func (h fileStorageRepositoryHandler) Ping(ctx context.Context) (string, error) {
	out, err := h.client.Ping(ctx)
	if err != nil {
		return "", err
	}
	return out.Status, nil
}
