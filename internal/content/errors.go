package content

import (
	"errors"
	"fmt"
)

var (
	ErrBranchNotFound = errors.New("branch not found")
	ErrQueryFailure   = errors.New("query failed")
)

// QueryError wraps a failed store request.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailure
}
