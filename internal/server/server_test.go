package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/dcrodman/objdefs/internal/catalog"
	"github.com/dcrodman/objdefs/internal/core"
	"github.com/dcrodman/objdefs/internal/registry"
)

const testTable = "name,value,deprecated\n" +
	"CI_CHEST01,25,\n" +
	"MI_MALE,11,\n" +
	"MI_FEMALE,12,\n" +
	"MI_BUFF,15,true\n" +
	"RI_TRIGGER,10,\n"

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// Writes the test table to a temp config directory and returns a config
// pointing at it.
func testConfig(t *testing.T, table string) *core.Config {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "identifiers.csv"), []byte(table), 0644); err != nil {
		t.Fatalf("error writing test table: %v", err)
	}
	cfg, err := core.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() returned an unexpected error: %v", err)
	}
	cfg.Registry.Source = "identifiers.csv"
	return cfg
}

func newTestServer(t *testing.T, cfg *core.Config) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, ts *httptest.Server, path string, wantStatus int, v interface{}) string {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s returned an unexpected error: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("error reading response body: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d; body: %s", path, resp.StatusCode, wantStatus, body)
	}
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			t.Fatalf("GET %s returned invalid JSON %q: %v", path, body, err)
		}
	}
	return string(body)
}

func TestServer_Identifiers(t *testing.T) {
	_, ts := newTestServer(t, testConfig(t, testTable))

	var e registry.Entry
	get(t, ts, "/v1/identifiers/MI_FEMALE", http.StatusOK, &e)
	if diff := cmp.Diff(registry.Entry{Namespace: registry.Mover, Name: "MI_FEMALE", Value: 12}, e); diff != "" {
		t.Errorf("unexpected entry; diff:\n%s", diff)
	}

	var missing errorResponse
	get(t, ts, "/v1/identifiers/MI_NOPE", http.StatusNotFound, &missing)
	if missing.Retired != nil {
		t.Errorf("unknown name reported as retired: %+v", missing.Retired)
	}

	var retired errorResponse
	get(t, ts, "/v1/identifiers/MI_BUFF", http.StatusNotFound, &retired)
	if retired.Retired == nil || retired.Retired.Value != 15 {
		t.Errorf("retired name response = %+v, want the retired entry", retired)
	}
}

func TestServer_Namespaces(t *testing.T) {
	_, ts := newTestServer(t, testConfig(t, testTable))

	var summary namespacesResponse
	get(t, ts, "/v1/namespaces", http.StatusOK, &summary)
	if summary.LastID != 25 || summary.NextGlobalID != 26 || len(summary.Namespaces) != len(registry.Namespaces) {
		t.Errorf("unexpected namespace summary: %+v", summary)
	}
	for _, ns := range summary.Namespaces {
		if ns.Namespace == registry.Mover && (ns.Active != 2 || ns.Retired != 1 || ns.NextID != 16) {
			t.Errorf("unexpected mover summary: %+v", ns)
		}
	}

	var movers entriesResponse
	get(t, ts, "/v1/namespaces/mover", http.StatusOK, &movers)
	if len(movers.Entries) != 2 || movers.Entries[0].Name != "MI_MALE" || movers.Entries[1].Name != "MI_FEMALE" {
		t.Errorf("unexpected mover listing: %+v", movers)
	}
	var retired entriesResponse
	get(t, ts, "/v1/namespaces/MI?retired=true", http.StatusOK, &retired)
	if !retired.Retired || len(retired.Entries) != 1 || retired.Entries[0].Name != "MI_BUFF" {
		t.Errorf("unexpected retired listing: %+v", retired)
	}
	// Empty namespaces list as [] rather than null.
	if body := get(t, ts, "/v1/namespaces/XI", http.StatusOK, nil); !strings.Contains(body, `"entries":[]`) {
		t.Errorf("empty namespace listing = %s", body)
	}
	get(t, ts, "/v1/namespaces/ZZ", http.StatusNotFound, nil)

	var next nextResponse
	get(t, ts, "/v1/namespaces/RI/next", http.StatusOK, &next)
	if next.NextID != 11 || next.NextGlobalID != 26 {
		t.Errorf("unexpected next IDs: %+v", next)
	}
}

func TestServer_Values(t *testing.T) {
	_, ts := newTestServer(t, testConfig(t, testTable))

	var e registry.Entry
	get(t, ts, "/v1/namespaces/MI/values/11", http.StatusOK, &e)
	if e.Name != "MI_MALE" {
		t.Errorf("value 11 resolved to %s, want MI_MALE", e.Name)
	}
	// Values are per namespace.
	get(t, ts, "/v1/namespaces/CI/values/11", http.StatusNotFound, nil)

	var reserved errorResponse
	get(t, ts, "/v1/namespaces/MI/values/15", http.StatusNotFound, &reserved)
	if reserved.Retired == nil || reserved.Retired.Name != "MI_BUFF" {
		t.Errorf("reserved value response = %+v, want MI_BUFF", reserved)
	}
	get(t, ts, "/v1/namespaces/MI/values/eleven", http.StatusBadRequest, nil)
}

func TestServer_Validation(t *testing.T) {
	_, ts := newTestServer(t, testConfig(t, testTable+"MI_HERO,12,\n"))

	var report validationResponse
	get(t, ts, "/v1/validation", http.StatusOK, &report)
	if report.Errors != 1 || len(report.Findings) != 1 || report.Findings[0].Kind != registry.Collision {
		t.Errorf("unexpected validation report: %+v", report)
	}
	if body := get(t, ts, "/v1/validation", http.StatusOK, nil); !strings.Contains(body, `"severity":"error"`) {
		t.Errorf("validation report does not name the severity: %s", body)
	}
}

func TestServer_HealthAndMetrics(t *testing.T) {
	_, ts := newTestServer(t, testConfig(t, testTable))

	get(t, ts, "/healthz", http.StatusOK, nil)
	get(t, ts, "/v1/identifiers/MI_MALE", http.StatusOK, nil)
	get(t, ts, "/v1/identifiers/MI_NOPE", http.StatusNotFound, nil)
	get(t, ts, "/v1/identifiers/ZZ_1", http.StatusNotFound, nil)
	get(t, ts, "/v1/identifiers/EVIL_PREFIX_x", http.StatusNotFound, nil)

	body := get(t, ts, "/metrics", http.StatusOK, nil)
	for _, want := range []string{
		`objdefs_lookups_total{namespace="MI",result="hit"} 1`,
		`objdefs_lookups_total{namespace="MI",result="miss"} 1`,
		`objdefs_reloads_total{result="ok"} 1`,
		`objdefs_identifiers{namespace="MI",state="retired"} 1`,
		`objdefs_lookups_total{namespace="unknown",result="miss"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics are missing %q", want)
		}
	}
	// Unknown prefixes share one label.
	for _, label := range []string{`namespace="ZZ"`, `namespace="EVIL"`} {
		if strings.Contains(body, label) {
			t.Errorf("metrics carry a label for an unknown prefix: %s", label)
		}
	}
}

func TestServer_Reload(t *testing.T) {
	cfg := testConfig(t, testTable)
	s, ts := newTestServer(t, cfg)
	path := cfg.QualifiedPath(cfg.Registry.Source)

	// Prime the cache, then change the source.
	get(t, ts, "/v1/namespaces/MI", http.StatusOK, nil)
	if err := os.WriteFile(path, []byte(testTable+"MI_HERO,16,\n"), 0644); err != nil {
		t.Fatalf("error rewriting test table: %v", err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload() returned an unexpected error: %v", err)
	}
	var movers entriesResponse
	get(t, ts, "/v1/namespaces/MI", http.StatusOK, &movers)
	if len(movers.Entries) != 3 {
		t.Errorf("listing after Reload() has %d movers, want 3", len(movers.Entries))
	}

	// A broken source leaves the last good registry in place.
	before := s.Registry()
	if err := os.WriteFile(path, []byte("name,value\nMI_HERO,sixteen\n"), 0644); err != nil {
		t.Fatalf("error rewriting test table: %v", err)
	}
	if err := s.Reload(); err == nil {
		t.Fatal("Reload() accepted a malformed source")
	}
	if s.Registry() != before {
		t.Error("a failed Reload() replaced the registry")
	}
	get(t, ts, "/v1/identifiers/MI_HERO", http.StatusOK, nil)
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig(t, testTable)
	cfg.Registry.Source = "missing.csv"
	if _, err := New(cfg, testLogger(), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("New() error = %v, want os.ErrNotExist", err)
	}

	// The embedded table is served when no source is configured.
	cfg.Registry.Source = ""
	s, err := New(cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	if err := s.Registry().CheckCounts(catalog.SnapshotCounts); err != nil {
		t.Errorf("embedded table counts drifted: %v", err)
	}
}

func TestServer_ServeWatchesSource(t *testing.T) {
	cfg := testConfig(t, testTable)
	cfg.Registry.Watch = true
	s, err := New(cfg, testLogger(), nil)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("error creating listener: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, listener) }()

	// Give the watcher a moment to register before changing the file.
	time.Sleep(100 * time.Millisecond)
	path := cfg.QualifiedPath(cfg.Registry.Source)
	if err := os.WriteFile(path, []byte(testTable+"RI_SPAWN,11,\n"), 0644); err != nil {
		t.Fatalf("error rewriting test table: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, ok := s.Registry().Lookup("RI_SPAWN"); ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the watcher to reload the registry")
		}
		time.Sleep(50 * time.Millisecond)
	}

	resp, err := http.Get("http://" + listener.Addr().String() + "/v1/identifiers/RI_SPAWN")
	if err != nil {
		t.Fatalf("GET returned an unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET RI_SPAWN status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned an unexpected error on shutdown: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve() did not return after the context was cancelled")
	}
}
