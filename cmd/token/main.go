// Command token prints a bearer token for a user, signed with the
// configured secret. It is meant for local development and smoke tests;
// production tokens come from the identity service.
//
// Usage:
//
//	token -user 3f0c...-uuid [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/postcal-backend/internal/auth"
	"github.com/heartmarshall/postcal-backend/internal/config"
)

func main() {
	user := flag.String("user", "", "user ID (UUID); a random one is generated when empty")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		userID, err = uuid.Parse(*user)
		if err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).IssueToken(userID, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Printf("user:  %s\ntoken: %s\n", userID, token)
}
