package model

import (
	"errors"
	"fmt"
)

// NilCollectionError reports an attempt to replace a repeating element with
// a nil collection.
type NilCollectionError struct {
	Type  string
	Field string
}

func (e *NilCollectionError) Error() string {
	return fmt.Sprintf("%s.%s: cannot replace with a nil collection", e.Type, e.Field)
}

// Staging records builder failures that happen before Build. Builders embed
// it; the offending call leaves the builder state untouched.
type Staging struct {
	errs []error
}

// RejectNil records a nil collection replacement for field of typeName.
func (s *Staging) RejectNil(typeName, field string) {
	s.errs = append(s.errs, &NilCollectionError{Type: typeName, Field: field})
}

// Err returns the failures recorded so far, or nil.
func (s *Staging) Err() error {
	return errors.Join(s.errs...)
}
