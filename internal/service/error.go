package service

import "errors"

var (
	ErrInvalidXML     = errors.New("INVALID_XML")
	ErrMissingOrderID = errors.New("MISSING_ORDER_ID")
	ErrNoMockMatched  = errors.New("NO_MOCK_MATCHED")
	ErrMissingOkURL   = errors.New("MISSING_OK_URL")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
