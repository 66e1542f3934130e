// Package config handles application configuration loading.
//
// LoadEnvFile seeds the process environment from a dotenv file at startup.
// Load then reads the environment, falling back to defaults for anything
// unset. Nothing is strictly required: an empty ADMIN_KEY only disables the
// admin API.
package config
