package somnon

// Dispatch calls present with the held value of m, or absent when m holds
// nothing. Exactly one of the two is called, exactly once.
func Dispatch[T, R any](m Maybe[T], present func(T) R, absent func() R) R {
	if v, ok := m.Get(); ok {
		return present(v)
	}
	return absent()
}

// Unwrap returns the held value of m. It panics with a *Fault of kind
// ErrUnwrap when m is absent or failed.
func Unwrap[T any](m Maybe[T]) T {
	return Expect(m, "")
}

// Expect is Unwrap with a caller supplied fault message.
func Expect[T any](m Maybe[T], message string) T {
	return Dispatch(m,
		func(v T) T { return v },
		func() T { panic(faultOf(m, ErrUnwrap, message)) })
}

func UnwrapOr[T any](m Maybe[T], def T) T {
	if v, ok := m.Get(); ok {
		return v
	}
	return def
}

// UnwrapOrElse calls supplier only when m holds nothing.
func UnwrapOrElse[T any](m Maybe[T], supplier func() T) T {
	return Dispatch(m, func(v T) T { return v }, supplier)
}

// MapOr applies transform to the held value, or returns def.
func MapOr[T, U any](m Maybe[T], transform func(T) U, def U) U {
	return Dispatch(m, transform, func() U { return def })
}

// MapOrElse applies transform to the held value, or calls supplier.
func MapOrElse[T, U any](m Maybe[T], transform func(T) U, supplier func() U) U {
	return Dispatch(m, transform, supplier)
}

func faultOf(m any, kind error, message string) *Fault {
	f := &Fault{Kind: kind, Message: message}
	if c, ok := m.(Causer); ok {
		f.Cause = c.Cause()
	}
	return f
}
