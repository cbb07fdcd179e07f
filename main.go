package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	api "github.com/rpupo63/portfolio/api"
	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
	"github.com/rpupo63/portfolio/database"
	"github.com/rpupo63/portfolio/errs"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	configureLogging(c)
	site := config.LoadSite(c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := loadCatalog(ctx, site, c)
	if err != nil {
		fmt.Printf("Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)

	server, err := api.NewServer(site, cat)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.SweepSessions(ctx)
	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	cancel()
	server.ShutdownGracefully(30 * time.Second)
}

func configureLogging(c map[string]string) {
	level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(c, "LOG_FORMAT", "") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// loadCatalog builds the catalog from the configured source.
func loadCatalog(ctx context.Context, site config.Site, c map[string]string) (*catalog.Catalog, error) {
	fmt.Printf("CATALOG_SOURCE: %s\n", site.CatalogSource)
	switch site.CatalogSource {
	case config.CatalogEmbedded:
		return catalog.Default()
	case config.CatalogFile:
		return catalog.LoadFile(site.CatalogFile)
	case config.CatalogPostgres:
		fmt.Println("Connecting to catalog database...")
		db, err := database.Open(database.DSN(c))
		if err != nil {
			if errs.IsDatabaseConnectionError(err) {
				return nil, fmt.Errorf("catalog database at %s unreachable: %w", config.GetString(c, "DB_HOST", "localhost"), err)
			}
			return nil, err
		}
		return database.New(db).LoadCatalog(ctx)
	default:
		return nil, fmt.Errorf("unsupported CATALOG_SOURCE %q", site.CatalogSource)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
