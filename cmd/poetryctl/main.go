// Command poetryctl is the authoring CLI for the Sindhi poetry API.
//
// It runs the couplet workflow (spelling check, romanization, details and
// submit) against a running server and exposes a few admin shortcuts.
//
// Usage:
//
//	poetryctl couplet create --file couplet.txt --poet shah-abdul-latif-bhittai
//	poetryctl dict sync
//	poetryctl poets list
//
// Exit codes: 0 = success, 1 = error, 2 = server unreachable.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sindhipoetry/backend/internal/adapter/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if api.IsUnavailable(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
