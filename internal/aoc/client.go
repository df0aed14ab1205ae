// Package aoc talks to adventofcode.com: it downloads puzzle inputs with
// the user's session cookie, caches them on disk and extracts the puzzle
// description from the day page.
package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"aoc2025/internal/config"
	"aoc2025/internal/logging"
	"aoc2025/internal/puzzle"
)

// maxBody bounds every response body read from the site.
const maxBody = 2 << 20

// Client fetches pages for one event year.
type Client struct {
	BaseURL   string
	Year      int
	Session   string
	UserAgent string
	HTTP      *http.Client
	Logger    *zap.Logger
}

// NewClient builds a client from the workspace config.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		Year:      cfg.Year,
		Session:   cfg.Session,
		UserAgent: cfg.UserAgent,
		HTTP:      &http.Client{Timeout: cfg.GetTimeout()},
		Logger:    logging.For(logger, logging.CategoryFetch),
	}
}

// DayURL returns the puzzle page URL.
func (c *Client) DayURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d", strings.TrimSuffix(c.BaseURL, "/"), c.Year, day)
}

// InputURL returns the personal input URL.
func (c *Client) InputURL(day int) string {
	return c.DayURL(day) + "/input"
}

// FetchInput downloads the puzzle input for day. It requires a session.
func (c *Client) FetchInput(ctx context.Context, day int) (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	body, err := c.get(ctx, day, c.InputURL(day))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(body, "\r\n", "\n"), nil
}

// FetchPuzzle downloads and parses the puzzle page. Without a session only
// part one is visible.
func (c *Client) FetchPuzzle(ctx context.Context, day int) (*Puzzle, error) {
	body, err := c.get(ctx, day, c.DayURL(day))
	if err != nil {
		return nil, err
	}
	return ParseArticle(body)
}

func (c *Client) get(ctx context.Context, day int, url string) (string, error) {
	if day < puzzle.FirstDay || day > puzzle.LastDay {
		return "", fmt.Errorf("%w: %d", puzzle.ErrInvalidDay, day)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	}

	log := c.logger().With(zap.Int("day", day), zap.String("url", url))
	log.Debug("Fetching")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn("Unexpected status", zap.Int("status", resp.StatusCode))
		return "", &StatusError{
			URL:    url,
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
			Body:   strings.TrimSpace(string(body)),
		}
	}

	log.Info("Fetched", zap.Int("bytes", len(body)))
	return string(body), nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
