package ports

import "context"

// StoragePinger checks that the backing store answers. Used by readiness probes.
type StoragePinger interface {
	Ping(ctx context.Context) error
}
