// Command token mints a bearer token for local development, signed with the
// configured AUTH_JWT_SECRET.
//
// Usage:
//
//	token [user-id]
//
// A random user id is used when none is given. The token is printed to stdout.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/focuslog-backend/internal/auth"
	"github.com/heartmarshall/focuslog-backend/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if len(os.Args) > 1 {
		userID, err = uuid.Parse(os.Args[1])
		if err != nil {
			log.Fatalf("parse user id: %v", err)
		}
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL, cfg.Auth.Leeway)
	token, err := jwt.IssueToken(userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user %s, valid for %s\n", userID, cfg.Auth.TokenTTL)
	fmt.Println(token)
}
