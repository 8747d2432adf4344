package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"billforge/internal/config"
)

const migrationsPath = "file://db/migrations"

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|down|steps N|version>")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	m, err := migrate.New(migrationsPath, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("opening migration source: %v", err)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		report(m.Up(), "schema is up to date")

	case "down":
		report(m.Down(), "schema rolled back")

	case "steps":
		if len(os.Args) < 3 {
			usage()
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("steps wants an integer, got %q", os.Args[2])
		}
		report(m.Steps(n), fmt.Sprintf("moved %d migration steps", n))

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied yet")
			return
		}
		if err != nil {
			log.Fatalf("reading schema version: %v", err)
		}
		fmt.Printf("version %d (dirty=%v)\n", version, dirty)

	default:
		usage()
	}
}

func report(err error, done string) {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("no change")
	case err != nil:
		log.Fatalf("migration failed: %v", err)
	default:
		log.Println(done)
	}
}
