package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxradar/mxradar/internal/apierr"
	"github.com/mxradar/mxradar/internal/services"
	"github.com/mxradar/mxradar/internal/session"
)

func stubInputs(t *testing.T, answers []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		ans := answers[i]
		i++
		return ans, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

// fakeAPI implements services.SessionClient for App-level tests.
type fakeAPI struct {
	method string
	path   string
	query  url.Values
	body   any

	payload json.RawMessage
	err     error

	loginEmail    string
	loginPassword string
	loginProfile  *session.Profile
	loginErr      error

	profile   *session.Profile
	loggedOut bool
}

func (f *fakeAPI) Get(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	f.method, f.path, f.query = "GET", path, query
	return f.payload, f.err
}

func (f *fakeAPI) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.method, f.path, f.body = "POST", path, body
	return f.payload, f.err
}

func (f *fakeAPI) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	f.method, f.path, f.body = "PUT", path, body
	return f.payload, f.err
}

func (f *fakeAPI) Delete(_ context.Context, path string) (json.RawMessage, error) {
	f.method, f.path = "DELETE", path
	return f.payload, f.err
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*session.Profile, error) {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.profile = f.loginProfile
	return f.loginProfile, nil
}

func (f *fakeAPI) Logout(context.Context) error {
	f.loggedOut = true
	f.profile = nil
	return nil
}

func (f *fakeAPI) IsAuthenticated() bool { return f.profile != nil }

func (f *fakeAPI) Profile() *session.Profile { return f.profile }

func (f *fakeAPI) TokenExpiry() (time.Time, bool) { return time.Time{}, false }

func (f *fakeAPI) ReplaceProfile(_ context.Context, p session.Profile) error {
	f.profile = &p
	return nil
}

func newTestApp(f *fakeAPI) *App {
	return &App{
		auth:      services.NewAuthService(f),
		dns:       services.NewDnsService(f),
		smtp:      services.NewSmtpService(f),
		ssl:       services.NewSslService(f),
		blacklist: services.NewBlacklistService(f),
		keys:      services.NewApiKeyService(f),
		reader:    bufio.NewReader(strings.NewReader("")),
	}
}

func TestApp_Login_Success(t *testing.T) {
	lines := stubPrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "s3cret")

	f := &fakeAPI{loginProfile: &session.Profile{Email: "alice@example.org"}}
	a := newTestApp(f)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice@example.org", f.loginEmail)
	assert.Equal(t, "s3cret", f.loginPassword)
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, strings.Join(*lines, "\n"), "Signed in as alice@example.org")
}

func TestApp_Login_FailureShowsClassifiedMessage(t *testing.T) {
	lines := stubPrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "wrong")

	f := &fakeAPI{loginErr: apierr.Server(401, "Invalid email or password")}
	a := newTestApp(f)

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, strings.Join(*lines, "\n"), "Invalid email or password")
}

func TestApp_Logout(t *testing.T) {
	stubPrintln(t)
	f := &fakeAPI{profile: &session.Profile{Email: "alice@example.org"}}
	a := newTestApp(f)

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.loggedOut)
	assert.False(t, a.isLoggedIn())
}

func TestApp_Register_SendsAllFields(t *testing.T) {
	stubPrintln(t)
	stubInputs(t, []string{"bob@example.org", "Bob", "Example Corp"}, "pw")

	f := &fakeAPI{payload: json.RawMessage(`{}`)}
	a := newTestApp(f)

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "/auth/register", f.path)
	assert.Equal(t, map[string]string{
		"email": "bob@example.org", "password": "pw", "name": "Bob", "company": "Example Corp",
	}, f.body)
}

func TestApp_VerifyEmail_Usage(t *testing.T) {
	lines := stubPrintln(t)
	f := &fakeAPI{payload: json.RawMessage(`{}`)}
	a := newTestApp(f)

	require.NoError(t, a.VerifyEmail(context.Background(), nil))
	assert.Contains(t, strings.Join(*lines, "\n"), "Usage: verify <token>")
	assert.Empty(t, f.path, "no request should be made without a token")
}

func TestApp_ResetPassword(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		stubPrintln(t)
		f := &fakeAPI{payload: json.RawMessage(`{}`)}
		a := newTestApp(f)

		require.NoError(t, a.ResetPassword(context.Background(), []string{"bob@example.org"}))
		assert.Equal(t, "/auth/password-reset", f.path)
	})

	t.Run("confirm", func(t *testing.T) {
		stubPrintln(t)
		f := &fakeAPI{payload: json.RawMessage(`{}`)}
		a := newTestApp(f)

		require.NoError(t, a.ResetPassword(context.Background(), []string{"tok", "newpw"}))
		assert.Equal(t, "/auth/password-reset/confirm", f.path)
		assert.Equal(t, map[string]string{"token": "tok", "password": "newpw"}, f.body)
	})
}

func TestApp_Whoami(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		lines := stubPrintln(t)
		a := newTestApp(&fakeAPI{})
		require.NoError(t, a.Whoami(context.Background()))
		assert.Contains(t, strings.Join(*lines, "\n"), "Not signed in.")
	})

	t.Run("signed in", func(t *testing.T) {
		lines := stubPrintln(t)
		f := &fakeAPI{profile: &session.Profile{Name: "Alice", Email: "alice@example.org", Plan: "pro"}}
		a := newTestApp(f)
		require.NoError(t, a.Whoami(context.Background()))
		joined := strings.Join(*lines, "\n")
		assert.Contains(t, joined, "Alice <alice@example.org>")
		assert.Contains(t, joined, "Plan: pro")
	})
}

func TestApp_EditProfile_KeepsCurrentValuesOnEmptyInput(t *testing.T) {
	lines := stubPrintln(t)
	stubInputs(t, []string{"", ""}, "")

	f := &fakeAPI{profile: &session.Profile{ID: "u-1", Name: "Alice", Email: "alice@example.org"}}
	a := newTestApp(f)

	require.NoError(t, a.EditProfile(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "Nothing to change.")
	assert.Empty(t, f.path, "no request should be made when nothing changed")
}

func TestApp_EditProfile_PushesChange(t *testing.T) {
	stubPrintln(t)
	stubInputs(t, []string{"Alice Cooper", ""}, "")

	f := &fakeAPI{
		profile: &session.Profile{ID: "u-1", Name: "Alice", Email: "alice@example.org"},
		payload: json.RawMessage(`{"id":"u-1","email":"alice@example.org","name":"Alice Cooper"}`),
	}
	a := newTestApp(f)

	require.NoError(t, a.EditProfile(context.Background()))
	assert.Equal(t, "PUT", f.method)
	assert.Equal(t, "/auth/profile", f.path)
	require.NotNil(t, f.profile)
	assert.Equal(t, "Alice Cooper", f.profile.Name)
}

func TestApp_SessionExpiredNotice(t *testing.T) {
	lines := stubPrintln(t)
	a := newTestApp(&fakeAPI{})

	a.SessionExpired()
	assert.Contains(t, strings.Join(*lines, "\n"), "Your session has expired. Please sign in again.")
}
