package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// SslService exposes the certificate diagnostics endpoint.
type SslService struct {
	c Caller
}

func NewSslService(c Caller) *SslService {
	return &SslService{c: c}
}

// Check inspects the certificate chain presented by host.
func (s *SslService) Check(ctx context.Context, host string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("host", host)
	return s.c.Get(ctx, "/ssl/check", q)
}
