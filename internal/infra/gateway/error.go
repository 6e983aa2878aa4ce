package gateway

import (
	"errors"

	"zen-booking/internal/pkg/errs"
)

type ErrorKind string

const (
	// KindBadSignature marks a completion event whose signature did not
	// match the webhook secret. This is the one authentication boundary.
	KindBadSignature   ErrorKind = "BAD_SIGNATURE"
	KindUnknownSession ErrorKind = "UNKNOWN_SESSION"
	KindNotPaid        ErrorKind = "NOT_PAID"
	KindUnavailable    ErrorKind = "UNAVAILABLE"
)

type GatewayError struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func NewGatewayError(kind ErrorKind, msg string) error {
	return GatewayError{Kind: kind, msg: msg}
}

func wrapGatewayErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
