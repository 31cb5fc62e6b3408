package cmderr

import (
	"errors"
	"fmt"
	"os"

	"github.com/nspcc-dev/vfsacl/pkg/vfs"
)

// ExitErr specific error for ExitOnErr function that passes the exit code and error caused.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

func (x ExitErr) Unwrap() error { return x.Cause }

// Exit codes of ACL operation failures.
const (
	CodeFailure = 1 + iota
	CodeNoACL
	CodeCorrupt
	CodeIO
	CodeUnsupported
)

// FromStatus wraps err into ExitErr with the code matching its vfs.Status.
// Returns nil if err is nil.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}

	code := CodeFailure
	switch vfs.StatusOf(err) {
	case vfs.StatusNoACL:
		code = CodeNoACL
	case vfs.StatusCorrupt:
		code = CodeCorrupt
	case vfs.StatusIO:
		code = CodeIO
	case vfs.StatusUnsupported:
		code = CodeUnsupported
	}

	return ExitErr{Code: code, Cause: err}
}

// ExitOnErr writes error to os.Stderr and calls os.Exit with passed exit code or by default 1.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		var e ExitErr
		if !errors.As(err, &e) {
			e.Code = CodeFailure
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(e.Code)
	}
}
