// SPDX-License-Identifier: EPL-2.0

// Command sfxplay lists, plays and renders the sounds of an sfx manifest.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sfxplay:", err)
		stop()
		os.Exit(1)
	}
}
