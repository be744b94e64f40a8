package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// SmtpService exposes the mail-server diagnostics endpoint.
type SmtpService struct {
	c Caller
}

func NewSmtpService(c Caller) *SmtpService {
	return &SmtpService{c: c}
}

// Check runs the SMTP handshake diagnostics against the MX hosts of domain.
func (s *SmtpService) Check(ctx context.Context, domain string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("domain", domain)
	return s.c.Get(ctx, "/smtp/check", q)
}
