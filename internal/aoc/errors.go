package aoc

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoSession is returned when no session cookie is configured. Puzzle
	// inputs differ per user, so the site refuses anonymous downloads.
	ErrNoSession = errors.New("no adventofcode.com session configured (set AOC_SESSION)")

	// ErrNoArticle is returned when a puzzle page has no description.
	ErrNoArticle = errors.New("puzzle page has no day-desc article")
)

// StatusError reports a non-200 response from the site.
type StatusError struct {
	URL    string
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.Code, e.Status)
	switch e.Code {
	case http.StatusNotFound:
		msg += " (puzzle not unlocked yet?)"
	case http.StatusBadRequest, http.StatusInternalServerError:
		msg += " (session cookie expired?)"
	}
	return msg
}

// IsNotFound reports whether err is a 404 from the site.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
