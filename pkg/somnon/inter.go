package somnon

// Maybe is the case split shared by Option and Result.
type Maybe[T any] interface {
	// Get returns the held value and true for the present variant
	// (Som or Ok), or the zero value and false otherwise.
	Get() (T, bool)
}

// Causer is implemented by containers whose failure variant can carry an
// error. Faults raised while unwrapping such a container wrap that error.
type Causer interface {
	// Cause returns the failure payload when it is an error, nil otherwise
	Cause() error
}
