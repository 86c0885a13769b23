// Package cli implements the interactive hotelbook shell: a small REPL that
// registers or signs in a user and manages that user's hotels through the
// HTTP API.
package cli
