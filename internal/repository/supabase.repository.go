package repository

import (
	"context"
	"errors"
	"fairhold/internal/domain"
	"fairhold/internal/util"
	"fairhold/pkg/supabase"
	"fmt"
	"net/http"
)

//go:generate mockgen -source=supabase.repository.go -destination=mocks/mock_supabase.repository.go

type SupabaseRepository interface {
	ProbeUsers(ctx context.Context) (domain.SchemaStatus, error)
}

type supabaseRepositoryHandler struct {
	client supabase.Client
}

func NewSupabaseRepository(secrets util.SupabaseSecrets) SupabaseRepository {
	return supabaseRepositoryHandler{
		client: supabase.Client{
			HttpClient: http.DefaultClient,
			Url:        secrets.Url,
			ApiKey:     secrets.AnonKey,
		},
	}
}

func (h supabaseRepositoryHandler) ProbeUsers(ctx context.Context) (domain.SchemaStatus, error) {
	err := h.client.ProbeTable(ctx, "users")
	if errors.Is(err, supabase.ErrRelationMissing) {
		return domain.SchemaMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to probe users: %w", err)
	}
	return domain.SchemaReady, nil
}
