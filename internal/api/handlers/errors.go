package handlers

import (
	"errors"

	apperrors "workjunction-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// isBadRequest reports whether an error maps to a 400 response. Services
// surface both domain validation errors and raw validator failures.
func isBadRequest(err error) bool {
	var validationErrs validator.ValidationErrors
	return apperrors.IsValidation(err) || errors.As(err, &validationErrs)
}
