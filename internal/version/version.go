// Package version holds build metadata set at link time:
//
//	go build -ldflags "-X orders/internal/version.Version=v1.2.0"
package version

// Version is reported by /info and the OpenAPI document.
var Version = "v1.0.0"
