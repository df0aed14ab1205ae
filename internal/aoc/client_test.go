package aoc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2025/internal/config"
	"aoc2025/internal/puzzle"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := config.DefaultConfig()
	cfg.BaseURL = ts.URL + "/"
	cfg.Session = "abc123"
	c := NewClient(cfg, zap.NewNop())
	c.HTTP = ts.Client()
	return c
}

func TestFetchInput(t *testing.T) {
	var gotPath, gotCookie, gotAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if ck, err := r.Cookie("session"); err == nil {
			gotCookie = ck.Value
		}
		gotAgent = r.UserAgent()
		fmt.Fprint(w, "L68\r\nR48\r\n")
	})

	input, err := c.FetchInput(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "L68\nR48\n", input)
	assert.Equal(t, "/2025/day/1/input", gotPath)
	assert.Equal(t, "abc123", gotCookie)
	assert.Equal(t, config.DefaultConfig().UserAgent, gotAgent)
}

func TestFetchInputRequiresSession(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })
	c.Session = ""

	_, err := c.FetchInput(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoSession)
	assert.False(t, called)
}

func TestFetchInputStatusErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Please don't repeatedly request this endpoint before it unlocks!", http.StatusNotFound)
	})

	_, err := c.FetchInput(context.Background(), 12)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Contains(t, se.Body, "before it unlocks")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not unlocked yet")
}

func TestFetchInvalidDay(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.FetchInput(context.Background(), 26)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDay)
	_, err = c.FetchPuzzle(context.Background(), 0)
	assert.ErrorIs(t, err, puzzle.ErrInvalidDay)
}

func TestFetchPuzzle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2025/day/7", r.URL.Path)
		fmt.Fprint(w, samplePage)
	})

	p, err := c.FetchPuzzle(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Laboratories", p.Title)
}

func TestFetchHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchInput(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
