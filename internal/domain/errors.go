package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrItemNotFound          = errors.New("item not found")
	ErrEmptyCatalog          = errors.New("empty catalog")
	ErrSessionNotFound       = errors.New("session not found")
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)

// LoadError reports a startup data or model load failure. It is fatal: the
// process must not serve requests after one.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func IsLoadFailure(err error) bool {
	var target *LoadError
	return errors.As(err, &target)
}
