package internal

import "fmt"

type BaseError string

func (e BaseError) Error() string {
	return string(e)
}

const (
	ErrMissingParam BaseError = "missing parameter"
	ErrInvalidParam BaseError = "invalid parameter"
)

// ParamError reports a bad constructor argument.
type ParamError struct {
	Err   error
	Param string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Param)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func NewMissingParamError(param string) error {
	return &ParamError{
		Err:   ErrMissingParam,
		Param: param,
	}
}

func NewInvalidParamError(param string) error {
	return &ParamError{
		Err:   ErrInvalidParam,
		Param: param,
	}
}
