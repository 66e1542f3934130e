// Package app provides application initialization and lifecycle management.
//
// The App type wires the store, repositories, services and the fiber
// server together, optionally imports a seed catalog, and shuts everything
// down on SIGINT/SIGTERM or context cancellation.
package app
