package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/amaumene/escort/internal/config"
	"github.com/amaumene/escort/internal/domain"
	"github.com/timshannon/bolthold"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:           t.TempDir(),
		ServerPort:        "127.0.0.1:0",
		HTTPTimeout:       time.Second,
		ShutdownTimeout:   time.Second,
		DBFilePermissions: 0666,
	}
}

func TestNew_ServesIndex(t *testing.T) {
	a, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })

	for _, path := range []string{"/", "/health"} {
		resp, err := a.server.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		if err != nil {
			t.Fatalf("Test(%s) error = %v", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, resp.StatusCode, http.StatusOK)
		}
	}
}

func TestRun_InvalidSeedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "missing.yaml")

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })

	if err := a.Run(context.Background()); err == nil {
		t.Error("Run() error = nil, want seed error")
	}

	var profile domain.Profile
	if err := a.store.Get("any", &profile); err == nil || errors.Is(err, bolthold.ErrNotFound) {
		t.Errorf("store Get after failed Run error = %v, want closed database error", err)
	}
}
