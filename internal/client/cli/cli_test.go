package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/GrowthMindset/internal/client/api"
	"github.com/atinyakov/GrowthMindset/internal/client/storage"
)

// fakeServer answers like the real API for a single account alice/pw.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["username"] != "alice" || req["password"] != "pw" {
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok","user_id":1}`))
	})
	mux.HandleFunc("POST /api/progress", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			http.Error(w, "please log in", http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"entry":{"id":1,"user_id":1,"progress":80,"date":"2024-01-01"},"message":"Amazing progress! Keep up the fantastic work!"}`))
	})
	mux.HandleFunc("POST /api/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	})
	mux.HandleFunc("GET /api/motivation", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"quote":"Keep going","tips":["tip one"],"feedback_options":["Great"]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestContext(t *testing.T, input string) (*Context, *bytes.Buffer) {
	t.Helper()
	srv := fakeServer(t)
	out := &bytes.Buffer{}
	store := storage.New(filepath.Join(t.TempDir(), "session.json"))
	return NewContext(api.New(srv.URL), store, strings.NewReader(input), out), out
}

func TestRegisterCmd_PromptsForMissingFields(t *testing.T) {
	ctx, out := newTestContext(t, "alice\npw\n")
	require.NoError(t, (&RegisterCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Username: ")
	assert.Contains(t, out.String(), "Password: ")
	assert.Contains(t, out.String(), "successfully signed up")
}

func TestRegisterCmd_EmptyInput(t *testing.T) {
	ctx, _ := newTestContext(t, "\n")
	err := (&RegisterCmd{}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must not be empty")
}

func TestLoginCmd_StoresSession(t *testing.T) {
	ctx, out := newTestContext(t, "")
	require.NoError(t, (&LoginCmd{Username: "alice", Password: "pw"}).Run(ctx))
	assert.Contains(t, out.String(), "Welcome back, alice!")

	reloaded := storage.New(ctx.Store.Path())
	require.NoError(t, reloaded.Load())
	token, err := reloaded.BearerToken()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, int64(1), reloaded.UserID)
}

func TestLoginCmd_WrongPassword(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	err := (&LoginCmd{Username: "alice", Password: "nope"}).Run(ctx)
	assert.True(t, errors.Is(err, api.ErrUnauthorized))
	_, err = ctx.Store.BearerToken()
	assert.ErrorIs(t, err, storage.ErrNotLoggedIn)
}

func TestProgressCmd(t *testing.T) {
	ctx, out := newTestContext(t, "")

	err := (&ProgressCmd{Percent: 80}).Run(ctx)
	assert.ErrorIs(t, err, storage.ErrNotLoggedIn)

	err = (&ProgressCmd{Percent: 101}).Run(ctx)
	assert.EqualError(t, err, "progress must be between 0 and 100")

	require.NoError(t, (&LoginCmd{Username: "alice", Password: "pw"}).Run(ctx))
	require.NoError(t, (&ProgressCmd{Percent: 80}).Run(ctx))
	assert.Contains(t, out.String(), "Saved 80% for 2024-01-01.")
	assert.Contains(t, out.String(), "Amazing progress!")
}

func TestProgressCmd_RejectedToken(t *testing.T) {
	ctx, _ := newTestContext(t, "")
	ctx.Store.SetSession("", "alice", 1, "stale")

	err := (&ProgressCmd{Percent: 10}).Run(ctx)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
	assert.Contains(t, err.Error(), "please log in again")
}

func TestLogoutCmd(t *testing.T) {
	ctx, out := newTestContext(t, "")
	require.NoError(t, (&LoginCmd{Username: "alice", Password: "pw"}).Run(ctx))
	require.NoError(t, (&LogoutCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Logged out.")
	_, err := ctx.Store.BearerToken()
	assert.ErrorIs(t, err, storage.ErrNotLoggedIn)
}

func TestSummaryCmd_WritesFile(t *testing.T) {
	ctx, out := newTestContext(t, "Learn Go\n")
	path := filepath.Join(t.TempDir(), "summary.pdf")

	require.NoError(t, (&SummaryCmd{Date: "2024-01-01", Output: path}).Run(ctx))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, out.String(), "Learning goal: ")
	assert.Contains(t, out.String(), "Saved "+path)
}

func TestMotivationCmd(t *testing.T) {
	ctx, out := newTestContext(t, "")
	require.NoError(t, (&MotivationCmd{Tips: true}).Run(ctx))
	assert.Contains(t, out.String(), `"Keep going"`)
	assert.Contains(t, out.String(), "tip one")
	assert.Contains(t, out.String(), "Great")
}
