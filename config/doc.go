// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, then overlaid with TRANSIT_*
// environment variables (optionally read from a .env file), and validated
// using struct tags. Routing settings here are defaults; a document that
// carries its own routing_settings overrides them.
package config
