// Package client talks to the hotelbook HTTP API on behalf of the CLI.
//
// The session lives in the auth_token cookie kept by an in-memory cookie
// jar, so a successful SignIn or Register authenticates every later call
// made through the same APIClient until SignOut.
//
// Errors:
//   - ErrUnavailable when the server cannot be reached.
//   - ErrUnauthorized on 401 responses.
//   - *APIError for other non-2xx responses; its message is the text the
//     server returned.
package client
