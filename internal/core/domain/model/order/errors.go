package order

import "errors"

// ErrOrderIsNil is returned by Validate on a nil receiver.
var ErrOrderIsNil = errors.New("order is nil")
