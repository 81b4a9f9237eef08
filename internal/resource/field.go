package resource

import (
	"bytes"
	"encoding/json"
)

// Field is a JSON value that remembers whether its key was present in the
// request body. Set is true for any present key, Null is true when the key
// carried an explicit null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what makes absent and null distinguishable.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Null = true
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// Ptr returns nil for an absent or null field, otherwise a pointer to a copy
// of the value.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// Or returns the value, or def when the key was absent or null.
func (f Field[T]) Or(def T) T {
	if !f.Set || f.Null {
		return def
	}
	return f.Value
}

// Nullable resolves a create-time optional field: absent keys get def,
// explicit nulls stay nil.
func Nullable[T any](f Field[T], def T) *T {
	if !f.Set {
		return &def
	}
	return f.Ptr()
}

// Assign copies a present value onto dst. The target column is not nullable,
// so an explicit null is rejected.
func Assign[T any](dst *T, f Field[T], name string) error {
	if !f.Set {
		return nil
	}
	if f.Null {
		return &FieldError{Field: name, Reason: "cannot be null"}
	}
	*dst = f.Value
	return nil
}

// AssignNullable copies a present value onto dst; an explicit null clears it.
func AssignNullable[T any](dst **T, f Field[T]) {
	if !f.Set {
		return
	}
	*dst = f.Ptr()
}
