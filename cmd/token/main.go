// Command token mints a session JWT for local development, so the API
// can be exercised with curl before any auth frontend exists.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/autointern/server/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	var (
		userID = flag.String("user", "", "user id to embed as the subject (required)")
		email  = flag.String("email", "", "email claim")
		ttl    = flag.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: token -user <id> [-email <email>] [-ttl 24h]")
		os.Exit(2)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(2)
	}

	token, err := middleware.SignToken(secret, *userID, *email, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
