package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Keys lists the account's API keys.
func (a *App) Keys(ctx context.Context) error {
	payload, err := a.keys.List(ctx)
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// NewKey issues a new API key: newkey <name...>. The name may contain spaces.
func (a *App) NewKey(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: newkey <name>")
		return nil
	}
	name := args[0]
	for _, part := range args[1:] {
		name += " " + part
	}

	payload, err := a.keys.Create(ctx, name)
	if err != nil {
		showError(err)
		return err
	}
	renderJSON(payload)
	return nil
}

// RevokeKey revokes an API key: revoke <id>.
func (a *App) RevokeKey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: revoke <id>")
		return nil
	}

	if _, err := a.keys.Revoke(ctx, args[0]); err != nil {
		showError(err)
		return err
	}
	printlnFn("Key revoked.")
	return nil
}

// keyID is the only field of the opaque key payload this side ever reads,
// and only to address follow-up usage queries.
type keyID struct {
	ID string `json:"id"`
}

// KeyUsage shows usage counters: usage <id> for one key, plain 'usage' for
// every key of the account. The all-keys form fans the per-key queries out
// concurrently; each call is independent and carries no shared request state.
func (a *App) KeyUsage(ctx context.Context, args []string) error {
	if len(args) == 1 {
		payload, err := a.keys.Usage(ctx, args[0])
		if err != nil {
			showError(err)
			return err
		}
		renderJSON(payload)
		return nil
	}

	listed, err := a.keys.List(ctx)
	if err != nil {
		showError(err)
		return err
	}

	var ids []keyID
	if err := json.Unmarshal(listed, &ids); err != nil {
		showError(fmt.Errorf("unexpected key list payload: %w", err))
		return err
	}
	if len(ids) == 0 {
		printlnFn("No API keys.")
		return nil
	}

	type result struct {
		id      string
		payload json.RawMessage
		err     error
	}

	results := make([]result, len(ids))
	var wg sync.WaitGroup
	for i, key := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			payload, err := a.keys.Usage(ctx, id)
			results[i] = result{id: id, payload: payload, err: err}
		}(i, key.ID)
	}
	wg.Wait()

	for _, r := range results {
		printlnFn(fmt.Sprintf("--- %s", r.id))
		if r.err != nil {
			showError(r.err)
			continue
		}
		renderJSON(r.payload)
	}
	return nil
}
