package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aoc2025/internal/answers"
	"aoc2025/internal/config"
	"aoc2025/internal/puzzle"
	"aoc2025/internal/scaffold"
	"aoc2025/internal/ui"
)

const day01Sample = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"

// setupWorkspace points the command globals at a fresh temporary workspace.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	styles = ui.PlainStyles()

	root := t.TempDir()
	cfg = config.DefaultConfig()
	cfg.Root = root
	cfg.DatabasePath = filepath.Join(root, "answers.db")

	runAll, runParts, runInput, runSample, runRecord, runCheck = false, nil, "", false, false, false
	newTitle, newNoFetch = "", false
	fetchForce, describeRaw = false, false
	return root
}

func writeInput(t *testing.T, root string, day int, input string) {
	t.Helper()
	path := scaffold.InputPath(root, day)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(input), 0644))
}

func TestParseDay(t *testing.T) {
	day, err := parseDay("7")
	require.NoError(t, err)
	assert.Equal(t, 7, day)

	_, err = parseDay("26")
	assert.ErrorIs(t, err, puzzle.ErrInvalidDay)

	_, err = parseDay("seven")
	assert.Error(t, err)
}

func TestSetupLoadsConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultPath), []byte("year: 2024\nlogging:\n  level: debug\n"), 0644))

	workspace, configPath, verbose = dir, "", false
	defer func() { workspace = "" }()

	require.NoError(t, setup())
	assert.Equal(t, 2024, cfg.Year)
	assert.Equal(t, dir, cfg.Root)
	assert.NotNil(t, logger)
}

func TestAllDaysRegistered(t *testing.T) {
	assert.Equal(t, 11, puzzle.Global().Count())
}

func TestRunDays(t *testing.T) {
	root := setupWorkspace(t)
	writeInput(t, root, 1, day01Sample)

	output := captureOutput(t, func() {
		if err := runDays(&cobra.Command{}, []string{"1"}); err != nil {
			t.Fatalf("runDays returned error: %v", err)
		}
	})

	assert.Contains(t, output, "🎄 Day 01: Secret Entrance")
	assert.Contains(t, output, "🔻 Result:\n3 (")
	assert.Contains(t, output, "🔻 Result:\n6 (")
}

func TestRunDaysSelectedPart(t *testing.T) {
	root := setupWorkspace(t)
	writeInput(t, root, 1, day01Sample)
	runParts = []int{2}

	output := captureOutput(t, func() {
		require.NoError(t, runDays(&cobra.Command{}, []string{"1"}))
	})

	assert.NotContains(t, output, "Part 1:")
	assert.Contains(t, output, "Part 2:")
}

func TestRunDaysErrors(t *testing.T) {
	setupWorkspace(t)

	err := runDays(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "no days given")

	err = runDays(&cobra.Command{}, []string{"1"})
	assert.ErrorContains(t, err, "failed to read input")

	runInput = "input.txt"
	err = runDays(&cobra.Command{}, []string{"1", "2"})
	assert.ErrorContains(t, err, "--input needs exactly one day")

	runInput = ""
	runAll = true
	err = runDays(&cobra.Command{}, nil)
	assert.ErrorContains(t, err, "no day has an input")
}

func TestRunDaysRecordAndCheck(t *testing.T) {
	root := setupWorkspace(t)
	writeInput(t, root, 1, day01Sample)

	runRecord = true
	output := captureOutput(t, func() {
		require.NoError(t, runDays(&cobra.Command{}, []string{"1"}))
	})
	assert.Contains(t, output, "recorded 2 answers")

	runRecord, runCheck = false, true
	output = captureOutput(t, func() {
		require.NoError(t, runDays(&cobra.Command{}, []string{"1"}))
	})
	assert.Contains(t, output, "answers match the log")

	// A later, different answer for the same input must be flagged.
	store, err := answers.Open(cfg.GetDatabasePath(), nil)
	require.NoError(t, err)
	_, err = store.Record([]puzzle.Result{{Day: 1, Part: 1, Value: 99}}, answers.HashInput(day01Sample))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	output = captureOutput(t, func() {
		err = runDays(&cobra.Command{}, []string{"1"})
	})
	assert.ErrorIs(t, err, ErrAnswersChanged)
	assert.Contains(t, output, "day 1 part 1: got 3, recorded 99")
}

func TestRunAllUsesSamples(t *testing.T) {
	root := setupWorkspace(t)
	sample := filepath.Join(scaffold.SolutionDir(root, 1), "testdata", "test.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(sample), 0755))
	require.NoError(t, os.WriteFile(sample, []byte(day01Sample), 0644))
	runSample = true

	output := captureOutput(t, func() {
		require.NoError(t, runDays(&cobra.Command{}, []string{"1"}))
	})
	assert.Contains(t, output, "🔻 Result:\n3 (")
}

func TestShowHistory(t *testing.T) {
	setupWorkspace(t)

	output := captureOutput(t, func() {
		require.NoError(t, showHistory(&cobra.Command{}, []string{"4"}))
	})
	assert.Contains(t, output, "No answers recorded for day 4")

	store, err := answers.Open(cfg.GetDatabasePath(), nil)
	require.NoError(t, err)
	_, err = store.Record([]puzzle.Result{{Day: 4, Part: 1, Value: 13}, {Day: 4, Part: 2, Value: 43}}, "cafe")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	output = captureOutput(t, func() {
		require.NoError(t, showHistory(&cobra.Command{}, []string{"4"}))
	})
	assert.Contains(t, output, "Day 04 answers")
	assert.Contains(t, output, "13")
	assert.Contains(t, output, "43")
	assert.Contains(t, output, "cafe")
}

func TestListDays(t *testing.T) {
	root := setupWorkspace(t)
	writeInput(t, root, 3, "987654321111111\n")

	output := captureOutput(t, func() {
		require.NoError(t, listDays(&cobra.Command{}, nil))
	})
	assert.Contains(t, output, "Advent of Code 2025")
	assert.Contains(t, output, "Secret Entrance")
	assert.Contains(t, output, "16 bytes")
	assert.Contains(t, output, "missing")
}

func TestNewDayOffline(t *testing.T) {
	root := setupWorkspace(t)
	newNoFetch = true
	newTitle = "Christmas Tree Farm"

	output := captureOutput(t, func() {
		require.NoError(t, newDay(&cobra.Command{}, []string{"12"}))
	})

	assert.FileExists(t, filepath.Join(root, "internal", "solutions", "day12", "day12.go"))
	assert.FileExists(t, filepath.Join(root, "cmd", "day12", "main.go"))
	assert.NoFileExists(t, scaffold.InputPath(root, 12))
	assert.Contains(t, output, "🎄 Done!")
	assert.Contains(t, output, "cd "+filepath.Join("cmd", "day12")+" && go run .")

	err := newDay(&cobra.Command{}, []string{"12"})
	assert.ErrorIs(t, err, scaffold.ErrDayExists)
}

const puzzlePage = `<html><body><main>
<article class="day-desc"><h2>--- Day 12: Christmas Tree Farm ---</h2>
<p>Fit the presents.</p>
<pre><code>0:
###
</code></pre>
</article>
</main></body></html>`

func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2025/day/12":
			io.WriteString(w, puzzlePage)
		case "/2025/day/12/input":
			c, err := r.Cookie("session")
			if err != nil || c.Value != "secret" {
				http.Error(w, "Puzzle inputs differ by user.", http.StatusBadRequest)
				return
			}
			io.WriteString(w, "1x1: 1\n")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewDayFetches(t *testing.T) {
	root := setupWorkspace(t)
	cfg.BaseURL = newSiteServer(t).URL
	cfg.Session = "secret"

	output := captureOutput(t, func() {
		require.NoError(t, newDay(&cobra.Command{}, []string{"12"}))
	})

	src, err := os.ReadFile(filepath.Join(root, "internal", "solutions", "day12", "day12.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `"Christmas Tree Farm"`)

	sample, err := os.ReadFile(filepath.Join(root, "internal", "solutions", "day12", "testdata", "test.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0:\n###\n", string(sample))

	input, err := os.ReadFile(scaffold.InputPath(root, 12))
	require.NoError(t, err)
	assert.Equal(t, "1x1: 1\n", string(input))
	assert.Contains(t, output, "🎄 Done!")
}

func TestNewDayWithoutSession(t *testing.T) {
	setupWorkspace(t)
	cfg.BaseURL = newSiteServer(t).URL

	output := captureOutput(t, func() {
		require.NoError(t, newDay(&cobra.Command{}, []string{"12"}))
	})
	assert.Contains(t, output, "set AOC_SESSION")
}

func TestFetchInput(t *testing.T) {
	root := setupWorkspace(t)
	cfg.BaseURL = newSiteServer(t).URL
	cfg.Session = "secret"

	output := captureOutput(t, func() {
		require.NoError(t, fetchInput(&cobra.Command{}, []string{"12"}))
	})
	assert.Contains(t, output, "Saved")

	writeInput(t, root, 12, "edited\n")
	output = captureOutput(t, func() {
		require.NoError(t, fetchInput(&cobra.Command{}, []string{"12"}))
	})
	assert.Contains(t, output, "Input already present")

	fetchForce = true
	captureOutput(t, func() {
		require.NoError(t, fetchInput(&cobra.Command{}, []string{"12"}))
	})
	data, err := os.ReadFile(scaffold.InputPath(root, 12))
	require.NoError(t, err)
	assert.Equal(t, "1x1: 1\n", string(data))
}

func TestDescribeDayRaw(t *testing.T) {
	setupWorkspace(t)
	cfg.BaseURL = newSiteServer(t).URL
	describeRaw = true

	output := captureOutput(t, func() {
		require.NoError(t, describeDay(&cobra.Command{}, []string{"12"}))
	})
	assert.Contains(t, output, "Christmas Tree Farm")
	assert.Contains(t, output, "Fit the presents.")
}

func TestDescribeDayNotFound(t *testing.T) {
	setupWorkspace(t)
	cfg.BaseURL = newSiteServer(t).URL

	err := describeDay(&cobra.Command{}, []string{"13"})
	assert.Error(t, err)
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origOut := os.Stdout
	origErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		_, _ = io.Copy(&buf, rErr)
		done <- buf.String()
	}()

	fn()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = origOut
	os.Stderr = origErr
	return strings.TrimSpace(<-done) + "\n"
}
