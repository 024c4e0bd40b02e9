// Package patch holds values for partial updates that keep track of whether a
// key was sent at all, so that an explicit null can be told apart from an
// absent key.
package patch

import (
	"bytes"
	"encoding/json"
)

var null = []byte("null")

// Field is a JSON value that is either absent, null or set.
type Field[T comparable] struct {
	present bool
	value   *T
}

// Raw is implemented by every Field instantiation. It is what the request
// validator sees in place of the field.
type Raw interface {
	Raw() interface{}
}

func Set[T comparable](v T) Field[T] {
	return Field[T]{present: true, value: &v}
}

func Null[T comparable]() Field[T] {
	return Field[T]{present: true}
}

func (f Field[T]) Present() bool {
	return f.present
}

func (f Field[T]) IsNull() bool {
	return f.present && f.value == nil
}

// Get returns the value and true when the field was sent with a non-null value.
func (f Field[T]) Get() (T, bool) {
	if f.value == nil {
		var zero T
		return zero, false
	}
	return *f.value, true
}

func (f Field[T]) Raw() interface{} {
	if f.value == nil {
		return nil
	}
	return *f.value
}

// Apply overwrites a required value. Nulls and zero values are ignored.
func (f Field[T]) Apply(dst *T) bool {
	v, ok := f.Get()
	if !ok || isZero(v) || equal(*dst, v) {
		return false
	}
	*dst = v
	return true
}

// ApplyOptional overwrites a nullable value; an explicit null clears it.
// Zero values are ignored like absent ones.
func (f Field[T]) ApplyOptional(dst **T) bool {
	if !f.present {
		return false
	}
	if f.value == nil {
		if *dst == nil {
			return false
		}
		*dst = nil
		return true
	}
	if isZero(*f.value) || (*dst != nil && equal(**dst, *f.value)) {
		return false
	}
	v := *f.value
	*dst = &v
	return true
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(b), null) {
		f.value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.value == nil {
		return null, nil
	}
	return json.Marshal(*f.value)
}

func isZero[T comparable](v T) bool {
	var zero T
	return equal(v, zero)
}

// equal prefers an Equal method (time.Time) over ==.
func equal[T comparable](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	return a == b
}
