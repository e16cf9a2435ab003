// Package main is the entry point for the locker lint tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/locker/cmd/locker/commands"
	"go.trai.ch/locker/internal/app"
	"go.trai.ch/locker/internal/core/domain"
	_ "go.trai.ch/locker/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Duplicates are already reported by the renderer; they only decide
		// the exit code here.
		if errors.Is(err, domain.ErrDuplicatesFound) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
