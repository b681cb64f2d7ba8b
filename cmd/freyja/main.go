/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/freyja-ope/cmd/freyja/cmd"
	"github.com/ssargent/freyja-ope/pkg/config"
	"github.com/ssargent/freyja-ope/pkg/di"
)

func main() {
	configPath := config.GetDefaultConfigPath()

	var cfg *config.Config
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	} else {
		bootstrapped, err := config.BootstrapConfig(configPath, "")
		if err != nil {
			panic(err)
		}
		cfg = bootstrapped
	}

	container := di.NewContainer(cfg)
	cmd.SetContainer(container)
	cmd.Execute()
}
