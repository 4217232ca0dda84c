package somnon

import "errors"

var (
	// ErrUnwrap is the kind of fault raised when the held value of an absent
	// or failed container is requested.
	ErrUnwrap = errors.New("somnon: unwrap of an absent value")
	// ErrTranspose is the kind of fault raised when an option is transposed
	// while its held value is not a valid result.
	ErrTranspose = errors.New("somnon: transpose of a value that is not a result")
)

// Fault is the panic value for programming errors. Callers that do not check
// the variant before unwrapping get one of these.
type Fault struct {
	// Kind is ErrUnwrap or ErrTranspose
	Kind error
	// Message replaces the generic Kind text when set (see Expect)
	Message string
	// Cause is the failure payload of the container, if it is an error
	Cause error
}

func (f *Fault) Error() string {
	msg := f.Message
	if msg == "" {
		msg = f.Kind.Error()
	}
	if f.Cause != nil {
		msg += ": " + f.Cause.Error()
	}
	return msg
}

func (f *Fault) Unwrap() []error {
	if f.Cause == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.Cause}
}

// Is reports whether err is a Fault of the given kind.
func Is(err error, kind error) bool {
	var f *Fault
	if !errors.As(err, &f) {
		return false
	}
	return errors.Is(f.Kind, kind)
}
