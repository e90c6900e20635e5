package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gainsiq/gainsiq/internal/api"
	"github.com/gainsiq/gainsiq/internal/cli"
	"github.com/gainsiq/gainsiq/internal/config"
	"github.com/gainsiq/gainsiq/internal/service"
	"github.com/gainsiq/gainsiq/internal/workout"
)

var testNow = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

// testBackend is an in-memory GainsIQ server
type testBackend struct {
	mu sync.Mutex

	exercises []string
	sets      []workout.WorkoutSet
	weights   []workout.WeightEntry
	trend     *workout.WeightTrend
	injuries  []workout.Injury
	bodyparts []string
	analysis  string

	// failStatus makes every request fail with this status when set
	failStatus int

	requests []recordedRequest
}

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func (b *testBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	raw, _ := io.ReadAll(r.Body)
	rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &rec.Body)
	}
	b.requests = append(b.requests, rec)

	if b.failStatus != 0 {
		writeJSON(w, b.failStatus, map[string]string{"error": "backend failure"})
		return
	}

	route := r.Method + " " + r.URL.Path
	switch route {
	case "GET /exercises":
		writeJSON(w, http.StatusOK, b.exercises)
	case "GET /sets":
		start, _ := strconv.ParseInt(r.URL.Query().Get("start"), 10, 64)
		end, _ := strconv.ParseInt(r.URL.Query().Get("end"), 10, 64)
		var out []workout.WorkoutSet
		for _, s := range b.sets {
			if s.Timestamp >= start && s.Timestamp <= end {
				out = append(out, s)
			}
		}
		writeJSON(w, http.StatusOK, out)
	case "GET /sets/by_exercise":
		name := r.URL.Query().Get("exerciseName")
		var out []workout.WorkoutSet
		for _, s := range b.sets {
			if s.Exercise == name {
				out = append(out, s)
			}
		}
		writeJSON(w, http.StatusOK, out)
	case "GET /sets/last_month":
		writeJSON(w, http.StatusOK, b.sets)
	case "POST /sets/pop":
		writeJSON(w, http.StatusOK, map[string]string{"message": "Removed Squat 5 x 225"})
	case "GET /weight":
		writeJSON(w, http.StatusOK, b.weights)
	case "GET /weight/trend":
		if b.trend == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not enough data"})
			return
		}
		writeJSON(w, http.StatusOK, b.trend)
	case "GET /injury":
		writeJSON(w, http.StatusOK, b.injuries)
	case "GET /injury/active":
		var out []workout.Injury
		for _, i := range b.injuries {
			if i.Active {
				out = append(out, i)
			}
		}
		writeJSON(w, http.StatusOK, out)
	case "GET /bodyparts":
		writeJSON(w, http.StatusOK, b.bodyparts)
	case "GET /analysis":
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, b.analysis)
	case "POST /analysis":
		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Analysis queued"})
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}
}

// last returns the most recent request with method and path
func (b *testBackend) last(method, path string) (recordedRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i].Method == method && b.requests[i].Path == path {
			return b.requests[i], true
		}
	}
	return recordedRequest{}, false
}

// writes counts the non-GET requests
func (b *testBackend) writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.Method != http.MethodGet {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func testConfig(url string) config.Config {
	cfg := config.DefaultConfig()
	cfg.APIURL = url
	cfg.APIKey = "test-key-1234"
	cfg.Timezone = "UTC"
	return cfg
}

func newServices(t *testing.T, backend service.API, cfg config.Config) *service.Services {
	t.Helper()
	clock := func() time.Time { return testNow }
	return &service.Services{
		Exercise: service.NewExerciseService(backend),
		Set:      service.NewSetService(backend, cfg, clock),
		Weight:   service.NewWeightService(backend, cfg, clock),
		Progress: service.NewProgressService(backend, cfg, clock),
		Injury:   service.NewInjuryService(backend, clock),
		Bodypart: service.NewBodypartService(backend),
		Analysis: service.NewAnalysisService(backend),
		Config:   service.NewConfigService(filepath.Join(t.TempDir(), "config.toml"), cfg),
	}
}

func newDeps(services *service.Services) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := 0

	deps := &cli.Deps{
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
		Exit:     func(code int) { exitCode = code },
		Services: services,
		Now:      func() time.Time { return testNow },
	}
	return deps, stdout, stderr, &exitCode
}

// setupTestDeps creates deps backed by an in-memory server
func setupTestDeps(t *testing.T, backend *testBackend) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL)
	client := api.NewClient(api.Options{BaseURL: cfg.APIURL, APIKey: cfg.APIKey, Timeout: 5 * time.Second})
	return newDeps(newServices(t, client, cfg))
}

// setupUnconfiguredDeps creates deps without an API URL or key
func setupUnconfiguredDeps(t *testing.T) (*cli.Deps, *bytes.Buffer, *bytes.Buffer, *int) {
	t.Helper()
	cfg := config.DefaultConfig()
	client := api.NewClient(api.Options{})
	return newDeps(newServices(t, client, cfg))
}

func assertExit(t *testing.T, exitCode *int, want int, stderr *bytes.Buffer) {
	t.Helper()
	if *exitCode != want {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", want, *exitCode, stderr.String())
	}
}

func assertContains(t *testing.T, out *bytes.Buffer, want string) {
	t.Helper()
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected %q in output, got %q", want, out.String())
	}
}

func ts(day, hour, min int) int64 {
	return time.Date(2024, 3, day, hour, min, 0, 0, time.UTC).Unix()
}

func sampleSets() []workout.WorkoutSet {
	return []workout.WorkoutSet{
		{WorkoutID: "w1", Timestamp: ts(15, 9, 0), Exercise: "Squat", Reps: "5", SetNumber: 1, Weight: 225},
		{WorkoutID: "w2", Timestamp: ts(15, 9, 10), Exercise: "Squat", Reps: "5", SetNumber: 2, Weight: 235, WeightModulation: workout.ModulationCutting},
		{WorkoutID: "w3", Timestamp: ts(15, 9, 30), Exercise: "Bench Press", Reps: "8 or below", SetNumber: 1, Weight: 185},
		{WorkoutID: "w4", Timestamp: ts(13, 8, 0), Exercise: "Squat", Reps: "3", SetNumber: 1, Weight: 245},
	}
}
