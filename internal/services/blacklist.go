package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// BlacklistService exposes the RBL listing check.
type BlacklistService struct {
	c Caller
}

func NewBlacklistService(c Caller) *BlacklistService {
	return &BlacklistService{c: c}
}

// Check looks up target (an IP address or domain) across the monitored
// blacklists.
func (s *BlacklistService) Check(ctx context.Context, target string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("target", target)
	return s.c.Get(ctx, "/blacklist/check", q)
}
