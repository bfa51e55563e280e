package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/boisserenc/atelier/internal/apiclient"
	"github.com/boisserenc/atelier/internal/catalog"
	"github.com/boisserenc/atelier/internal/repository/memory"
	"github.com/boisserenc/atelier/internal/service"
	"github.com/boisserenc/atelier/internal/snapshot"
)

func newMemoryCatalog(t *testing.T) *catalog.Local {
	t.Helper()
	fixed := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	store := memory.New(memory.WithClock(func() time.Time { return fixed }))
	data, err := service.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	seeder := service.NewSeeder(store.BlogPosts(), store.StoveProjects(), store.Testimonials())
	if _, err := seeder.Seed(context.Background(), data); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return catalog.NewLocal(
		service.NewContentService(store.BlogPosts(), store.StoveProjects(), store.Testimonials()),
		service.NewContactService(store.ContactMessages()),
	)
}

func fetchBody(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

// The site served from an exported snapshot must match the site served
// from the store it was exported from.
func TestIntegration_StaticSnapshotMatchesStore(t *testing.T) {
	local := newMemoryCatalog(t)

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	results := snapshot.NewExporter(local, dir, snapshot.WithLogger(logger)).Run(context.Background())
	if failed := snapshot.Failed(results); len(failed) != 0 {
		t.Fatalf("expected clean export, got failures %v", failed)
	}

	static := apiclient.New("http://snapshot.local", apiclient.WithHTTPClient(&http.Client{
		Transport: snapshot.NewFileTransport(dir, snapshot.WithCache()),
	}))

	live := newTestServer(t, local)
	offline := newTestServer(t, static)

	paths := []string{
		"/?lang=en",
		"/creations?category=custom",
		"/blog",
		"/blog/histoire-fourneaux-stephanois?lang=en",
		"/blog/missing",
		"/api/stoves/featured",
		"/api/stoves/4",
		"/api/stoves/999",
		"/api/stoves/abc",
		"/api/blog/conseils-entretien-fourneau-ancien",
		"/api/stoves/3/",
		"/api/stoves/featured/",
	}
	for _, path := range paths {
		wantStatus, want := fetchBody(t, live.URL+path)
		gotStatus, got := fetchBody(t, offline.URL+path)
		if gotStatus != wantStatus {
			t.Fatalf("%s: expected status %d, got %d", path, wantStatus, gotStatus)
		}
		if got != want {
			t.Fatalf("%s: static body differs from store body\nexpected: %s\ngot: %s", path, want, got)
		}
	}
}

// Requests the live mux cannot route must get the same answer from the
// snapshot transport, before any catalog is involved.
func TestIntegration_StaticTransportRoutesLikeLiveAPI(t *testing.T) {
	local := newMemoryCatalog(t)
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	snapshot.NewExporter(local, dir, snapshot.WithLogger(logger)).Run(context.Background())

	live := newTestServer(t, local)
	static := &http.Client{Transport: snapshot.NewFileTransport(dir)}

	paths := []string{
		"/api/stoves/3/",
		"/api/stoves/featured/",
		"/api/stoves/3/extra",
		"/api/blog/restauration-fourneau-versailles/",
		"/api/stoves-featured",
		"/api/foo",
		"/api/stoves/abc",
		"/api/stoves/3",
		"/api/stoves/featured",
	}
	for _, path := range paths {
		wantStatus, wantBody := fetchBody(t, live.URL+path)

		resp, err := static.Get("http://snapshot.local" + path)
		if err != nil {
			t.Fatalf("%s: static Get: %v", path, err)
		}
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != wantStatus {
			t.Fatalf("%s: expected status %d, got %d", path, wantStatus, resp.StatusCode)
		}
		var want, got any
		if err := json.Unmarshal([]byte(wantBody), &want); err != nil {
			t.Fatalf("%s: decode live body: %v", path, err)
		}
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("%s: decode static body: %v", path, err)
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("%s: expected body %s, got %s", path, wantBody, data)
		}
	}
}

func TestIntegration_StaticSnapshotRejectsContact(t *testing.T) {
	captureLogs(t)
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	snapshot.NewExporter(newMemoryCatalog(t), dir, snapshot.WithLogger(logger)).Run(context.Background())

	static := apiclient.New("http://snapshot.local", apiclient.WithHTTPClient(&http.Client{
		Transport: snapshot.NewFileTransport(dir),
	}))
	srv := newTestServer(t, static)

	resp, data := postJSON(t, srv.URL+"/api/contact", `{"name":"Marie","email":"marie@example.com","message":"Bonjour"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", resp.StatusCode, data)
	}
}
