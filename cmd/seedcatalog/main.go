// Command seedcatalog copies a YAML catalog into the Postgres catalog tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rpupo63/portfolio/catalog"
	"github.com/rpupo63/portfolio/config"
	"github.com/rpupo63/portfolio/database"
)

func main() {
	file := flag.String("file", "", "catalog YAML to seed from; the embedded catalog when empty")
	migrate := flag.Bool("migrate", true, "create or update the catalog tables first")
	flag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
		fmt.Println("Continuing with environment variables...")
	}

	cat, err := loadSource(*file)
	if err != nil {
		fmt.Printf("Error reading catalog: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(database.DSN(config.New()))
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	if *migrate {
		if err := database.Migrate(db); err != nil {
			fmt.Printf("Error migrating: %v\n", err)
			os.Exit(1)
		}
	}

	if err := database.Seed(context.Background(), db, cat); err != nil {
		fmt.Printf("Error seeding: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Catalog seeded.")
}

func loadSource(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
