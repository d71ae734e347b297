package memory

import (
	"errors"

	"orders/internal/pkg/errs"
)

var errDuplicateID = errors.New("order id already stored")

func wrapListError(cause error) error {
	return errs.NewPersistenceError("list orders", cause)
}
