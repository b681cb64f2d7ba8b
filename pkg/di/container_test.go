package di

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ssargent/freyja-ope/pkg/config"
)

func TestNewContainer_NilConfigUsesDefault(t *testing.T) {
	c := NewContainer(nil)
	if c.Config == nil {
		t.Fatal("expected a default config, got nil")
	}
	if c.Config.Engine.StoreDir == "" {
		t.Error("expected default config to set an engine store dir")
	}
}

func TestContainer_OpenEngineCreatesStoreDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "engine")
	cfg := config.DefaultConfig()
	cfg.Engine.StoreDir = dir

	c := NewContainer(cfg)
	engine, err := c.OpenEngine()
	if err != nil {
		t.Fatalf("OpenEngine failed: %v", err)
	}
	defer engine.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected store dir to exist: %v", err)
	}
}
