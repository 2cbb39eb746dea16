// Package timeouts holds the HTTP server timeouts shared by the server and
// its tests.
package timeouts

import "time"

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long in-flight requests get to drain during graceful
// shutdown.
const Shutdown = 5 * time.Second
