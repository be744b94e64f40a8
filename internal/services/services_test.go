package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller records the last call and plays back a canned payload.
type fakeCaller struct {
	method string
	path   string
	query  url.Values
	body   any

	payload json.RawMessage
	err     error
}

func (f *fakeCaller) Get(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	f.method, f.path, f.query = "GET", path, query
	return f.payload, f.err
}

func (f *fakeCaller) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.method, f.path, f.body = "POST", path, body
	return f.payload, f.err
}

func (f *fakeCaller) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.method, f.path, f.body = "PUT", path, body
	return f.payload, f.err
}

func (f *fakeCaller) Delete(_ context.Context, path string) (json.RawMessage, error) {
	f.method, f.path = "DELETE", path
	return f.payload, f.err
}

func TestDnsService_Lookup(t *testing.T) {
	payload := json.RawMessage(`{"records":[{"type":"MX","host":"mail.example.com","priority":10}]}`)
	f := &fakeCaller{payload: payload}
	s := NewDnsService(f)

	got, err := s.Lookup(context.Background(), "example.com", "MX")
	require.NoError(t, err)

	assert.Equal(t, "GET", f.method)
	assert.Equal(t, "/dns/lookup", f.path)
	assert.Equal(t, "example.com", f.query.Get("domain"))
	assert.Equal(t, "MX", f.query.Get("type"))
	assert.JSONEq(t, string(payload), string(got), "payload must pass through untouched")
}

func TestDnsService_Propagation(t *testing.T) {
	f := &fakeCaller{payload: json.RawMessage(`{}`)}
	s := NewDnsService(f)

	_, err := s.Propagation(context.Background(), "example.com", "A")
	require.NoError(t, err)
	assert.Equal(t, "/dns/propagation", f.path)
	assert.Equal(t, "A", f.query.Get("type"))
}

func TestSmtpService_Check(t *testing.T) {
	f := &fakeCaller{payload: json.RawMessage(`{"hosts":[]}`)}
	s := NewSmtpService(f)

	got, err := s.Check(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "/smtp/check", f.path)
	assert.Equal(t, "example.com", f.query.Get("domain"))
	assert.JSONEq(t, `{"hosts":[]}`, string(got))
}

func TestSslService_Check(t *testing.T) {
	f := &fakeCaller{payload: json.RawMessage(`{"chain":[]}`)}
	s := NewSslService(f)

	_, err := s.Check(context.Background(), "example.com:443")
	require.NoError(t, err)
	assert.Equal(t, "/ssl/check", f.path)
	assert.Equal(t, "example.com:443", f.query.Get("host"))
}

func TestBlacklistService_Check(t *testing.T) {
	f := &fakeCaller{payload: json.RawMessage(`{"listed":false}`)}
	s := NewBlacklistService(f)

	_, err := s.Check(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "/blacklist/check", f.path)
	assert.Equal(t, "203.0.113.7", f.query.Get("target"))
}

func TestApiKeyService(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := &fakeCaller{payload: json.RawMessage(`[]`)}
		_, err := NewApiKeyService(f).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "GET", f.method)
		assert.Equal(t, "/keys", f.path)
	})

	t.Run("create", func(t *testing.T) {
		f := &fakeCaller{payload: json.RawMessage(`{"id":"k-1"}`)}
		_, err := NewApiKeyService(f).Create(context.Background(), "ci pipeline")
		require.NoError(t, err)
		assert.Equal(t, "POST", f.method)
		assert.Equal(t, map[string]string{"name": "ci pipeline"}, f.body)
	})

	t.Run("revoke escapes the id", func(t *testing.T) {
		f := &fakeCaller{payload: json.RawMessage(`{}`)}
		_, err := NewApiKeyService(f).Revoke(context.Background(), "k/1")
		require.NoError(t, err)
		assert.Equal(t, "DELETE", f.method)
		assert.Equal(t, "/keys/k%2F1", f.path)
	})

	t.Run("usage", func(t *testing.T) {
		f := &fakeCaller{payload: json.RawMessage(`{"rpm":3,"rpd":120}`)}
		_, err := NewApiKeyService(f).Usage(context.Background(), "k-1")
		require.NoError(t, err)
		assert.Equal(t, "/keys/k-1/usage", f.path)
	})
}

func TestServices_PropagateErrors(t *testing.T) {
	boom := errors.New("boom")
	f := &fakeCaller{err: boom}

	_, err := NewDnsService(f).Lookup(context.Background(), "example.com", "A")
	assert.ErrorIs(t, err, boom)

	_, err = NewApiKeyService(f).List(context.Background())
	assert.ErrorIs(t, err, boom)
}
