package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// renderJSON pretty-prints an opaque backend payload. The client never
// interprets lookup results, it only forwards them for display.
func renderJSON(payload json.RawMessage) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		printlnFn(string(payload))
		return
	}
	printlnFn(buf.String())
}

// Dns runs a record lookup: dns <domain> [type]. The type defaults to ANY.
func (a *App) Dns(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: dns <domain> [type]")
		return nil
	}
	recordType := "ANY"
	if len(args) > 1 {
		recordType = strings.ToUpper(args[1])
	}

	payload, err := a.dns.Lookup(ctx, args[0], recordType)
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// Propagation runs a propagation check: prop <domain> [type].
func (a *App) Propagation(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: prop <domain> [type]")
		return nil
	}
	recordType := "A"
	if len(args) > 1 {
		recordType = strings.ToUpper(args[1])
	}

	payload, err := a.dns.Propagation(ctx, args[0], recordType)
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// Smtp runs the mail-server diagnostics: smtp <domain>.
func (a *App) Smtp(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: smtp <domain>")
		return nil
	}

	payload, err := a.smtp.Check(ctx, args[0])
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// Ssl runs the certificate diagnostics: ssl <host>.
func (a *App) Ssl(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: ssl <host>")
		return nil
	}

	payload, err := a.ssl.Check(ctx, args[0])
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// Blacklist runs the RBL check: bl <ip|domain>.
func (a *App) Blacklist(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: bl <ip|domain>")
		return nil
	}

	payload, err := a.blacklist.Check(ctx, args[0])
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}
