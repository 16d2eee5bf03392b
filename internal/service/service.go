// Package service implements the application's business logic on top of
// the store. Services validate input, enforce the authorization policy,
// and translate store errors into domain errors; handlers stay thin.
package service

import (
	"errors"

	domainerrors "github.com/inkwellapp/inkwell-server/internal/errors"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

// validate is the shared request validator. Field names in error details
// use JSON tag names so they line up with what clients sent.
var validate = validation.New()

// storeError translates storage sentinels into domain errors so handler
// code only ever sees the domain error vocabulary. notFoundMsg is used
// when the underlying record is missing.
func storeError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return domainerrors.NotFound(notFoundMsg)
	case errors.Is(err, store.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	default:
		return domainerrors.Wrap(err, domainerrors.CodeInternal, "storage operation failed")
	}
}
