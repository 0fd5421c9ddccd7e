// Command coolstat loads StatsBomb-style CSV extracts into SQLite and
// answers match analytics queries: team sheets, pass breakdowns, shot
// maps, pass networks, and pass-origin density surfaces.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
