package cli

import "errors"

// errMismatch marks a check that ran to completion but found a mismatch.
var errMismatch = errors.New("value does not match definition")

// exitError carries the process exit code for a failed command. A nil err
// means the command already reported the failure on its own output.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return errMismatch.Error()
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// userError reports bad input: unknown names, invalid files, mismatches.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError reports failures of the environment: I/O and storage.
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }
