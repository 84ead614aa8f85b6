// Package mock provides a test double for the ai.Embedder interface.
//
// The mock produces deterministic vectors derived from the input text, so
// tests can assert on embedding output without an external service. Custom
// behavior, failure injection, and call counting support retry and
// pre-flight tests.
package mock
