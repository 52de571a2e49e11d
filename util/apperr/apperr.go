// Package apperr carries the error kinds shared by all services.
// Controllers translate a kind to an HTTP status; services never do.
package apperr

import "errors"

type Kind string

const (
	NotFound        Kind = "NOT_FOUND"
	AccessDenied    Kind = "ACCESS_DENIED"
	InvalidDate     Kind = "INVALID_DATE"
	ItemUnavailable Kind = "ITEM_UNAVAILABLE"
	AlreadyExists   Kind = "ALREADY_EXISTS"
	InvalidRequest  Kind = "INVALID_REQUEST"
)

type kindError struct {
	kind Kind
	msg  string
}

func (e kindError) Error() string { return e.msg }
func (e kindError) Kind() Kind    { return e.kind }

func New(k Kind, msg string) error { return kindError{kind: k, msg: msg} }

// Code extracts the kind, or "" for plain errors.
func Code(err error) Kind {
	var ke interface{ Kind() Kind }
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return ""
}

func Is(err error, k Kind) bool { return Code(err) == k }
