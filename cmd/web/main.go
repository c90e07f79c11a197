package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/fin-tools/tax-atlas/pkg/server"
	"github.com/fin-tools/tax-atlas/pkg/services/tax"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var catalogPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Tax Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "",
		"Path to a YAML slab/deduction catalog (built-in tables are used when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	catalog := tax.DefaultCatalog()
	if catalogPath != "" {
		loaded, err := tax.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		catalog = loaded
		logger.Info().Msgf("Catalog loaded from `%s`.", catalogPath)
	}

	engine := tax.NewEngine(catalog)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "8080"
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Planner: engine,
			Logger:  logger,
		},
	})

	return api.Start()
}
