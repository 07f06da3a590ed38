// Command userplan sets a user's subscription status directly in the
// database. It exists for local development and support operations
// where no Stripe webhook will arrive.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/autointern/server/internal/domain"
	"github.com/autointern/server/internal/infra"
	"github.com/autointern/server/internal/sqlinline"
)

func main() {
	_ = godotenv.Load()

	var (
		ident    = flag.String("user", "", "user id or email (required)")
		status   = flag.String("status", "active", "subscription status: active, inactive, or canceled")
		interval = flag.String("interval", "", "plan interval to record: month or year")
	)
	flag.Parse()

	if *ident == "" {
		fmt.Fprintln(os.Stderr, "usage: userplan -user <id-or-email> [-status active|inactive|canceled] [-interval month|year]")
		os.Exit(2)
	}

	switch domain.SubscriptionStatus(*status) {
	case domain.SubscriptionActive, domain.SubscriptionInactive, domain.SubscriptionCanceled:
	default:
		fmt.Fprintf(os.Stderr, "invalid status %q\n", *status)
		os.Exit(2)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	logger := infra.NewLogger(os.Getenv("APP_ENV"))
	runner := infra.NewSQLRunner(pool, logger)

	var userID, newStatus string
	err = runner.QueryRow(ctx, sqlinline.QSetSubscriptionStatus, *ident, *status, *interval).
		Scan(&userID, &newStatus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "update subscription: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("user %s subscription set to %s\n", userID, newStatus)
}
