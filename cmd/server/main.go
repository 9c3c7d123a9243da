// Command server runs the session accounting HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and the
// environment. A .env file in the working directory is loaded first when
// present.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata" // IANA zones for settings.timezone on minimal images

	"github.com/joho/godotenv"

	"github.com/heartmarshall/focuslog-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
