package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// ApiKeyService manages the account's API keys and their usage counters.
// Key and usage payloads are backend-owned JSON and pass through untouched.
type ApiKeyService struct {
	c Caller
}

func NewApiKeyService(c Caller) *ApiKeyService {
	return &ApiKeyService{c: c}
}

// List returns all API keys of the signed-in account.
func (s *ApiKeyService) List(ctx context.Context) (json.RawMessage, error) {
	return s.c.Get(ctx, "/keys", nil)
}

// Create issues a new API key labelled name.
func (s *ApiKeyService) Create(ctx context.Context, name string) (json.RawMessage, error) {
	return s.c.Post(ctx, "/keys", map[string]string{"name": name})
}

// Revoke permanently disables the key with the given id.
func (s *ApiKeyService) Revoke(ctx context.Context, id string) (json.RawMessage, error) {
	return s.c.Delete(ctx, "/keys/"+url.PathEscape(id))
}

// Usage returns the request counters for one key.
func (s *ApiKeyService) Usage(ctx context.Context, id string) (json.RawMessage, error) {
	return s.c.Get(ctx, "/keys/"+url.PathEscape(id)+"/usage", nil)
}
