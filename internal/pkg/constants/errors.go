package constants

import "net/http"

// CodedError is an error that maps to an HTTP status code. The api error
// handler unwraps the chain looking for one.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrUnknownChapter = NewCodedError(http.StatusBadRequest, "unknown chapter id")
	ErrBadFilter      = NewCodedError(http.StatusBadRequest, "invalid filter selection")
	ErrBadRequest     = NewCodedError(http.StatusBadRequest, "malformed request")
	ErrEmptyDataset   = NewCodedError(http.StatusInternalServerError, "consolidated dataset is empty")
)
