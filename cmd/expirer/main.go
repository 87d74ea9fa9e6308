package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"foodbridge/internal/adapter/repo"
	"foodbridge/internal/domain"
	"foodbridge/internal/infra"
)

// expirer marks listings whose expiry date has passed as expired. It is meant
// to run from cron; -dry-run prints the candidates without touching them.
func main() {
	var (
		asOfFlag   string
		dryRunFlag bool
	)

	flag.StringVar(&asOfFlag, "as-of", "", "cutoff date YYYY-MM-DD (default: today)")
	flag.BoolVar(&dryRunFlag, "dry-run", false, "list overdue listings without expiring them")
	flag.Parse()

	asOf := time.Now().UTC()
	if v := strings.TrimSpace(asOfFlag); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			exitWithError(fmt.Errorf("-as-of must be YYYY-MM-DD: %w", err))
		}
		asOf = parsed
	}

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		exitWithError(err)
	}
	logger := infra.NewLogger("cli").With().Str("cmd", "expirer").Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := infra.NewDB(ctx, cfg)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer db.Close()

	runner := infra.NewSQLRunner(db, logger)
	listings := repo.NewListingRepository(runner)

	if dryRunFlag {
		cutoff := asOf
		overdue, err := listings.List(ctx, domain.ListingFilter{
			Status:        domain.StatusAvailable,
			ExpiresBefore: &cutoff,
		})
		if err != nil {
			exitWithError(fmt.Errorf("failed to list overdue listings: %w", err))
		}
		for _, l := range overdue {
			fmt.Printf("%d\t%s\t%s\t%s\n", l.ID, l.FoodName, l.ExpiryDate.Format("2006-01-02"), l.Location)
		}
		fmt.Printf("%d listing(s) would expire as of %s\n", len(overdue), asOf.Format("2006-01-02"))
		return
	}

	count, err := listings.ExpireOverdue(ctx, asOf)
	if err != nil {
		exitWithError(fmt.Errorf("failed to expire listings: %w", err))
	}
	logger.Info().Int64("count", count).Str("as_of", asOf.Format("2006-01-02")).Msg("expired overdue listings")
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
