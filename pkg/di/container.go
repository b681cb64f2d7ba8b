// Package di wires configuration through to the storage engine shared by
// every cmd/freyja subcommand, the one dependency every command needs and
// the one most worth constructing in a single place.
package di

import (
	"fmt"
	"os"

	"github.com/ssargent/freyja-ope/pkg/config"
	"github.com/ssargent/freyja-ope/pkg/storage"
)

// Container holds the application's configuration and lazily opens the
// storage engine it describes.
type Container struct {
	Config *config.Config
}

// NewContainer returns a Container wrapping cfg. A nil cfg is replaced
// with config.DefaultConfig().
func NewContainer(cfg *config.Config) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Container{Config: cfg}
}

// OpenEngine creates the configured store directory if needed and opens
// the pebble-backed storage engine over it.
func (c *Container) OpenEngine() (*storage.Engine, error) {
	dir := c.Config.Engine.StoreDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("di: creating store dir %q: %w", dir, err)
	}
	engine, err := storage.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("di: opening storage engine: %w", err)
	}
	return engine, nil
}
