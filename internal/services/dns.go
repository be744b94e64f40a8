package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// DnsService exposes the DNS analysis endpoints.
type DnsService struct {
	c Caller
}

func NewDnsService(c Caller) *DnsService {
	return &DnsService{c: c}
}

// Lookup queries the records of recordType (A, AAAA, MX, TXT, NS, CNAME,
// SOA or ANY) for domain.
func (s *DnsService) Lookup(ctx context.Context, domain, recordType string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("domain", domain)
	q.Set("type", recordType)
	return s.c.Get(ctx, "/dns/lookup", q)
}

// Propagation checks how far a record change has propagated across the
// backend's resolver fleet.
func (s *DnsService) Propagation(ctx context.Context, domain, recordType string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("domain", domain)
	q.Set("type", recordType)
	return s.c.Get(ctx, "/dns/propagation", q)
}
