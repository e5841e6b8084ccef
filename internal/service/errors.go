package service

import (
	"errors"

	"github.com/empmgmt/employee-backend/internal/model"
	"github.com/empmgmt/employee-backend/internal/repository"
)

// ErrUnavailable wraps any persistence failure that is not one of the typed
// recoverable conditions. Callers should present it as "try again later".
var ErrUnavailable = errors.New("operation failed, try again later")

// recoverable reports whether err is a typed condition the caller can act
// on, as opposed to a generic store failure worth hiding behind
// ErrUnavailable.
func recoverable(err error) bool {
	return errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrDuplicate) ||
		errors.Is(err, repository.ErrForeignKey) ||
		errors.Is(err, repository.ErrWriteConflict) ||
		errors.Is(err, model.ErrInvalidValue)
}
