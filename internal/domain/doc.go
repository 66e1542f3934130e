// Package domain defines the core listing entities and repository contracts.
//
// This package contains the Profile, Location and Story models together with
// the rules that depend only on them (display name, online window, "new"
// listing). All repository interfaces accept context for cancellation.
package domain
