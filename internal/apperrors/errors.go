package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found, or that
// it exists but belongs to a different business where scoping is enforced.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBusinessRequired indicates the caller attempted an operation that must be
// stamped with a business before any business has been created for them.
var ErrBusinessRequired = errors.New("please create a business first")
