package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a uniqueness constraint was violated while creating
// a resource (e.g., a tax identifier already registered to another company).
var ErrConflict = errors.New("resource already exists")

// ErrDependency indicates that a resource a write depends on is missing,
// such as a chart-of-accounts code the template never provided.
var ErrDependency = errors.New("required dependency not found")

// ErrTransient indicates the backing store failed for infrastructure
// reasons; the write itself was well-formed.
var ErrTransient = errors.New("transient store failure")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// IsConflict reports whether err is classified as a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation reports whether err is classified as a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDependency reports whether err is classified as a missing dependency.
func IsDependency(err error) bool {
	return errors.Is(err, ErrDependency)
}
