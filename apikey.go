package dhesend

import (
	"context"
	"time"

	"github.com/dhesend-org/dhesend-go/internal/api"
)

// CreateAPIKeyResponse is returned by APIKeyService.Create. Token is only
// shown once.
type CreateAPIKeyResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Token string `json:"token"`
}

// APIKey is an API key as listed by the API.
type APIKey struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}

// APIKeyService manages API keys.
type APIKeyService struct {
	api *api.Client
}

// Create creates an API key. title may be empty.
func (s *APIKeyService) Create(ctx context.Context, title string) (*CreateAPIKeyResponse, error) {
	return api.PostJSON[CreateAPIKeyResponse](ctx, s.api, api.PathCreateAPIKey,
		&api.CreateAPIKeyRequest{Title: title}).Unwrap()
}

// List returns all API keys.
func (s *APIKeyService) List(ctx context.Context) ([]APIKey, error) {
	keys, err := api.Get[[]APIKey](ctx, s.api, api.PathListAPIKeys).Unwrap()
	if err != nil {
		return nil, err
	}
	return *keys, nil
}

// Delete revokes an API key.
func (s *APIKeyService) Delete(ctx context.Context, id string) (*DeleteResponse, error) {
	return api.PostJSON[DeleteResponse](ctx, s.api, api.PathDeleteAPIKey,
		&api.DeleteAPIKeyRequest{ID: id}).Unwrap()
}
