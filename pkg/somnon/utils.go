package somnon

import "reflect"

// IsNil reports whether i is nil or a nil pointer stored in an interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// AsError returns v as an error when it is a non-nil error value.
func AsError(v any) error {
	err, ok := v.(error)
	if !ok || IsNil(err) {
		return nil
	}
	return err
}

// Recover turns a Fault panic into an error. It must be deferred directly:
//
//	defer somnon.Recover(&err)
//
// Panics that are not faults are re-raised.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	f, ok := r.(*Fault)
	if !ok {
		panic(r)
	}
	*err = f
}

// Catch runs fn and returns the fault it raised, if any.
func Catch(fn func()) (err error) {
	defer Recover(&err)
	fn()
	return nil
}
