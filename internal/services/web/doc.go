// Package web serves the chapter website: it composes the page modules into
// one handler, wraps it with request middleware, and runs the HTTP server.
package web
