package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/AntonioJCosta/wordfreq/internal/core/services/counting"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/cli"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/AntonioJCosta/wordfreq/internal/repositories/source"
)

// Version is set at build time
var Version = "dev"

func main() {
	sourceReader := source.NewFileReader()

	newService := func(logger ports.Logger) ports.CountingService {
		return counting.NewService(sourceReader, logger)
	}
	rootCmd := cli.NewRootCommand(Version, newService)
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorColor("Error:"), err)
		os.Exit(1)
	}
}
