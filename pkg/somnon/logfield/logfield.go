package logfield

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/somnon/pkg/somnon"
	"github.com/ib-77/somnon/pkg/somnon/option"
	"github.com/ib-77/somnon/pkg/somnon/result"
)

const (
	variantKey = "variant"
	valueKey   = "value"
	errorKey   = "error"
)

type optionObject[T any] struct {
	o option.Option[T]
}

func (m optionObject[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	v, ok := m.o.Get()
	if !ok {
		enc.AddString(variantKey, "Non")
		return nil
	}
	enc.AddString(variantKey, "Som")
	return enc.AddReflected(valueKey, v)
}

type resultObject[T, E any] struct {
	r result.Result[T, E]
}

func (m resultObject[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	// logging must not fault on an uninitialized result
	if m.r.IsZero() {
		enc.AddString(variantKey, "zero")
		return nil
	}
	if v, ok := m.r.Get(); ok {
		enc.AddString(variantKey, "Ok")
		return enc.AddReflected(valueKey, v)
	}
	enc.AddString(variantKey, "Err")
	e, _ := m.r.ErrValue()
	if err := somnon.AsError(e); err != nil {
		enc.AddString(errorKey, err.Error())
		return nil
	}
	return enc.AddReflected(errorKey, e)
}

// Option returns a field logging o under key.
func Option[T any](key string, o option.Option[T]) zap.Field {
	return zap.Object(key, optionObject[T]{o: o})
}

// Result returns a field logging r under key.
func Result[T, E any](key string, r result.Result[T, E]) zap.Field {
	return zap.Object(key, resultObject[T, E]{r: r})
}
