/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/freyja-ope/pkg/config"
	"github.com/ssargent/freyja-ope/pkg/di"
	"github.com/ssargent/freyja-ope/pkg/storage"
)

type engineKeyType struct{}

var engineKey = engineKeyType{}

var container *di.Container

// SetContainer injects the dependency container built by main.main, before
// Execute runs.
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "freyja",
	Short: "FreyjaDB - an order-preserving tuple store",
	Long: `FreyjaDB encodes typed values into byte strings whose unsigned
lexicographic order matches their logical order, and uses that encoding to
back an ordered tuple store with range-scannable composite keys.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			container = di.NewContainer(config.DefaultConfig())
		}
		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			container.Config.Engine.StoreDir = dataDir
		}
		engine, err := container.OpenEngine()
		if err != nil {
			return fmt.Errorf("failed to open storage engine: %w", err)
		}
		cmd.SetContext(context.WithValue(cmd.Context(), engineKey, engine))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if engine, ok := cmd.Context().Value(engineKey).(*storage.Engine); ok {
			return engine.Close()
		}
		return nil
	},
}

// engineFromContext retrieves the storage engine opened by rootCmd's
// PersistentPreRunE.
func engineFromContext(cmd *cobra.Command) (*storage.Engine, error) {
	engine, ok := cmd.Context().Value(engineKey).(*storage.Engine)
	if !ok {
		return nil, fmt.Errorf("storage engine not found in command context")
	}
	return engine, nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main. It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Storage directory (overrides config)")
}
