// Package storage provides BoltDB-based implementations of domain repositories.
//
// Profiles, locations and stories are persisted with BoltHold. Every
// operation checks the context first, and bolthold's not-found and
// key-exists errors are translated to their domain counterparts.
package storage
