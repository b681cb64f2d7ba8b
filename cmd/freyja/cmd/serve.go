/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/freyja-ope/pkg/api"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server exposing the codec and tuple store.

Example:
  freyja serve --port 8080 --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")
		if apiKey == "" && container != nil && container.Config != nil {
			apiKey = container.Config.Security.ClientAPIKey
		}

		engine, err := engineFromContext(cmd)
		if err != nil {
			return err
		}

		config := api.ServerConfig{Port: port, APIKey: apiKey}
		if err := api.StartServer(engine, config); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key clients must send via X-API-Key (empty uses the config's client API key; auth is disabled when both are empty)")
}
