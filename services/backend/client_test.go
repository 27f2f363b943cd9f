package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconfiguredClientStartsInFallback(t *testing.T) {
	c := NewClient("https://your-project-url.supabase.co", "your-anon-key")
	assert.Equal(t, ModeFallback, c.Mode())

	c = NewClient("", "")
	assert.Equal(t, ModeFallback, c.Mode())
}

func TestConfiguredClientStartsLive(t *testing.T) {
	c := NewClient("https://portal-backend.example.com", "anon")
	assert.Equal(t, ModeLive, c.Mode())
}

func TestUnreachableBackendFlipsModePermanently(t *testing.T) {
	// A closed server guarantees a connection error.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	c := NewClient(url, "anon")
	require.Equal(t, ModeLive, c.Mode())

	_, err := c.SignInWithPassword(context.Background(), "alex.j@niat.edu", "pw")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, ModeFallback, c.Mode())

	// Subsequent calls short-circuit without touching the network.
	_, err = c.QueryRecords(context.Background(), "profiles", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, ModeFallback, c.Mode())
}

func TestRejectedSignInDoesNotFlipMode(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "anon")
	_, err := c.SignInWithPassword(context.Background(), "alex.j@niat.edu", "wrong")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, ModeLive, c.Mode())
}

func TestQueryRecordsUsesEqualityFilters(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq.S001", r.URL.Query().Get("id"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"S001","name":"Alex Johnson"}]`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL, "anon")
	rows, err := c.QueryRecords(context.Background(), "profiles", map[string]string{"id": "S001"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alex Johnson", rows[0]["name"])
}
