package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers (HTTP mapping, UI toasts, job retries).
type Kind string

const (
	KindMissingConfiguration Kind = "missing_configuration"
	KindValidation           Kind = "validation"
	KindDomainRule           Kind = "domain_rule"
	KindInvalidAttachment    Kind = "invalid_attachment"
	KindPersistence          Kind = "persistence"
	KindEmptyFeed            Kind = "empty_feed"
	KindNotFound             Kind = "not_found"
	KindSyncInProgress       Kind = "sync_in_progress"
)

// Error codes
const (
	CodeMissingConfiguration = "CFG001"
	CodeMissingRequiredField = "VAL001"
	CodeInvalidField         = "VAL002"
	CodeDomainRule           = "DOM001"
	CodeInvalidAttachment    = "ATT001"
	CodePersistence          = "DB001"
	CodeNotFound             = "DB002"
	CodeEmptyFeed            = "FEED001"
	CodeSyncInProgress       = "FEED002"
)

// Error is the single error type surfaced by the content layer.
type Error struct {
	Kind    Kind
	Code    string
	Field   string // external (camelCase) field name, when the error concerns one field
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// =====================================================
// CONSTRUCTORS
// =====================================================

func MissingConfiguration(what string) *Error {
	return &Error{
		Kind:    KindMissingConfiguration,
		Code:    CodeMissingConfiguration,
		Message: fmt.Sprintf("missing configuration: %s", what),
	}
}

func MissingRequiredField(field string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeMissingRequiredField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func InvalidField(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    CodeInvalidField,
		Field:   field,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

func DomainRule(field, message string) *Error {
	return &Error{
		Kind:    KindDomainRule,
		Code:    CodeDomainRule,
		Field:   field,
		Message: message,
	}
}

func InvalidAttachment(field, contentType string) *Error {
	return &Error{
		Kind:    KindInvalidAttachment,
		Code:    CodeInvalidAttachment,
		Field:   field,
		Message: fmt.Sprintf("%s must be an image (got %q)", field, contentType),
	}
}

// Persistence carries the store's message verbatim.
func Persistence(message string, err error) *Error {
	return &Error{
		Kind:    KindPersistence,
		Code:    CodePersistence,
		Message: message,
		Err:     err,
	}
}

func NotFound(entity string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

func EmptyFeed() *Error {
	return &Error{
		Kind:    KindEmptyFeed,
		Code:    CodeEmptyFeed,
		Message: "feed returned no usable items; existing posts left untouched",
	}
}

func SyncInProgress() *Error {
	return &Error{
		Kind:    KindSyncInProgress,
		Code:    CodeSyncInProgress,
		Message: "a feed sync is already running",
	}
}
