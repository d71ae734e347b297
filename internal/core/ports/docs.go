// Package ports declares the contracts the application core depends on and
// the adapters implement: order persistence, logging, and storage health.
package ports
