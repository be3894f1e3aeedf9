// Package timeouts defines shared HTTP timeout constants.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Export caps how long a single page may take to render during a static export.
const Export = 10 * time.Second
