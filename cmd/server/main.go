// Command server runs the Sindhi poetry HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables.
// SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/sindhipoetry/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
