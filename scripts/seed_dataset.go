// seed_dataset.go loads the compiled-in country dataset into Postgres.
//
// Usage:
//
//	go run scripts/seed_dataset.go -database postgres://localhost:5432/payoff
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/MikeSquared-Agency/Payoff/internal/dataset"
	"github.com/MikeSquared-Agency/Payoff/internal/store"
)

func main() {
	databaseURL := flag.String("database", os.Getenv("PAYOFF_DATABASE_URL"), "Postgres connection URL")
	dryRun := flag.Bool("dry-run", false, "print what would be seeded without writing")
	flag.Parse()

	countries := dataset.Countries()
	cells := dataset.EstimatedCells()

	if *dryRun {
		for _, c := range countries {
			fmt.Printf("%-24s %-16s %d sub-metrics, %d estimated\n",
				c.Name, c.Region, len(c.Scores), len(dataset.DefaultEstimates().For(c.Name)))
		}
		fmt.Printf("\n%d countries, %d estimated cells\n", len(countries), len(cells))
		return
	}

	if *databaseURL == "" {
		log.Fatal("database URL required (-database or PAYOFF_DATABASE_URL)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.NewPostgresStore(ctx, *databaseURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.Seed(ctx, countries, cells); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("Seeded %d countries and %d estimated cells\n", len(countries), len(cells))
}
