package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Root prints the banner and runs the REPL until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintf(a.out, "Welcome to hotelbook CLI, server %s (type 'help' for commands)\n", a.config.ServerURL)
	runREPL(ctx, a, a.getStatus, a.reader)
}
