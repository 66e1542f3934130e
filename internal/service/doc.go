// Package service contains the listing business logic.
//
// Services sit between the HTTP layer and the domain repositories:
// - CatalogService: builds the index and profile page view models
// - LocationService: manages the admin-maintained location list
// - SeedService: imports YAML catalogs into the store
//
// Time-dependent rules (new listings, availability) read from an injected
// clock so they can be tested deterministically.
package service
