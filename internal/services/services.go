// Package services contains the per-domain application services of the
// mxradar client. Each is a thin pass-through: one call in, one payload out.
// Domain payloads (DNS, SMTP, SSL, blacklist results) are owned by the
// backend and forwarded as opaque JSON, never interpreted here.
package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// Caller is the outbound surface the domain services need. *api.Client
// satisfies it; tests provide fakes.
type Caller interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}
